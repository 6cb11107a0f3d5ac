package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Pjt727/classhours/hours"
)

func TestBuildTemporalization(t *testing.T) {
	ctx := context.Background()
	course := hours.Course{
		ID:   1,
		Name: "2º ESO",
		Trimesters: [hours.TrimesterCount]hours.Trimester{
			{Start: hours.NewDate(2024, 1, 8), End: hours.NewDate(2024, 1, 31)},
			{Start: hours.NewDate(2024, 2, 5), End: hours.NewDate(2024, 2, 29)},
			{Start: hours.NewDate(2024, 3, 1), End: hours.NewDate(2024, 3, 15)},
		},
	}
	festivo := hours.EntryType{ID: 1, Name: "Festivo"}
	store := hours.NewMemoryStore().AddCalendarEntry(
		hours.CalendarEntry{ID: 1, Date: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), Description: "Carnaval", Type: festivo},
		hours.CalendarEntry{ID: 2, Date: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), Description: "Evaluación", Type: festivo},
		hours.CalendarEntry{ID: 3, Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Description: "Fuera", Type: festivo},
	)

	tz, err := BuildTemporalization(ctx, store, course)
	if err != nil {
		t.Fatal(err)
	}
	if len(tz.Months) != 3 {
		t.Fatalf("expected 3 months, got %d", len(tz.Months))
	}
	if len(tz.Marked) != 2 {
		t.Errorf("expected 2 marked entries, got %d", len(tz.Marked))
	}

	for _, month := range tz.Months {
		if len(month.Cells) != MonthCells {
			t.Errorf("%s: expected %d cells, got %d", month.Key, MonthCells, len(month.Cells))
		}
	}

	// the range starts on monday the 8th so january has no padding
	january := tz.Months[0]
	if january.Key != "2024-01" || january.Cells[0] == nil || january.Cells[0].Day != 8 {
		t.Errorf("expected january to start on the 8th, got %+v", january.Cells[0])
	}

	// february 2024 starts on a thursday
	february := tz.Months[1]
	for i := 0; i < 3; i++ {
		if february.Cells[i] != nil {
			t.Errorf("expected cell %d of february to be padding", i)
		}
	}
	first := february.Cells[3]
	if first == nil || first.Day != 1 || first.ISOWeekday != 4 || first.Trimester != 0 {
		t.Errorf("unexpected first of february %+v", first)
	}
	twelfth := february.Cells[3+11]
	if twelfth.Day != 12 || len(twelfth.Entries) != 2 || twelfth.Trimester != 2 {
		t.Errorf("unexpected february 12th %+v", twelfth)
	}
	if last := february.Cells[3+28]; last.Day != 29 {
		t.Errorf("expected the 29th, got %d", last.Day)
	}
	if february.Cells[3+29] != nil {
		t.Error("expected padding after the last day of february")
	}

	march := tz.Months[2]
	if march.Name != "March 2024" || march.Cells[4].Day != 1 || march.Cells[4].Trimester != 3 {
		t.Errorf("unexpected march %s %+v", march.Name, march.Cells[4])
	}
}

func TestBuildTemporalizationMissingDates(t *testing.T) {
	ctx := context.Background()
	course := hours.Course{ID: 1, Name: "Sin fechas"}
	course.Trimesters[0] = hours.Trimester{Start: hours.NewDate(2024, 1, 8), End: hours.NewDate(2024, 1, 31)}

	_, err := BuildTemporalization(ctx, hours.NewMemoryStore(), course)
	if !errors.Is(err, ErrCourseDatesMissing) {
		t.Errorf("expected ErrCourseDatesMissing, got %v", err)
	}
}
