package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Pjt727/classhours/internal/projectpath"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var schoolFixture = filepath.Join(projectpath.Root, "data", "fixture", "testdata", "school.yaml")

// resetFlags puts every flag back to its default, cobra keeps parsed values
// and Changed between executions of the same command tree
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--data", schoolFixture, "--log-level", "error"))
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestHoursCommand(t *testing.T) {
	got := strings.TrimSpace(run(t, "hours", "--subject", "1", "--trimester", "1"))
	if got != "58" {
		t.Errorf("expected 58, got %q", got)
	}
}

func TestHoursCommandUnknownSubject(t *testing.T) {
	resetFlags(rootCmd)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"hours", "--subject", "99", "--data", schoolFixture, "--log-level", "error"})
	if err := rootCmd.Execute(); err == nil || !strings.Contains(err.Error(), "no subject 99") {
		t.Errorf("expected a missing subject error, got %v", err)
	}
}

func TestHoursCommandTeacher(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"assigned teacher", []string{"--teacher", "2"}, "45"},
		{"teacher without rows", []string{"--teacher", "1"}, "0"},
		{"every row after a teacher run", nil, "45"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"hours", "--subject", "2"}, tt.args...)
			got := strings.TrimSpace(run(t, args...))
			if got != tt.expected {
				t.Errorf("expected %s, got %q", tt.expected, got)
			}
		})
	}
}

func TestReportCommand(t *testing.T) {
	teacher := run(t, "report", "--teacher", "1")
	lines := strings.Split(strings.TrimSpace(teacher), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], "Matemáticas") {
		t.Errorf("expected only the subject of teacher 1, got %q", lines)
	}
	if !strings.Contains(lines[1], "58") {
		t.Errorf("expected 58 first trimester hours, got %q", lines[1])
	}

	admin := run(t, "report")
	lines = strings.Split(strings.TrimSpace(admin), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected a header and 3 subjects, got %q", lines)
	}
	for i, subject := range []string{"Lengua", "Matemáticas", "Tutoría"} {
		if !strings.Contains(lines[i+1], subject) {
			t.Errorf("line %d: expected %s, got %q", i+1, subject, lines[i+1])
		}
	}
	if !strings.Contains(lines[3], "Sin curso") {
		t.Errorf("expected Tutoría without course, got %q", lines[3])
	}
}

func TestExportCommandTeacher(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(run(t, "export", "--teacher", "1")), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "Ana García\tMatemáticas\t1º ESO\t58\t") {
		t.Errorf("expected only the row of teacher 1, got %q", lines)
	}
}

func TestExportCommand(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(run(t, "export")), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected a header and 2 rows, got %q", lines)
	}
	if lines[1] != "Luis Pérez\tLengua\t2º ESO\t45\t0\t0" {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestCalendarCommandListsCourses(t *testing.T) {
	got := run(t, "calendar")
	if !strings.Contains(got, "1: 1º ESO\n2: 2º ESO\n") {
		t.Errorf("expected the live courses, got %q", got)
	}
}

func TestCalendarCommand(t *testing.T) {
	got := run(t, "calendar", "--course", "1")
	if !strings.HasPrefix(got, "1º ESO\n") {
		t.Errorf("expected the course name first, got %q", got)
	}
	for _, expected := range []string{"September 2023", "June 2024", "2023-12-06  Festivo"} {
		if !strings.Contains(got, expected) {
			t.Errorf("expected %q in the calendar", expected)
		}
	}
}
