/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Pjt727/classhours/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Prints the school year of a course month by month",
	Long: `Prints every month from the start of the first trimester to the end
of the third. Each day shows the trimester it belongs to and days on the
calendar are starred and listed below. Without --course the courses are listed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{
			"job": "calendar",
		})
		ctx := context.Background()
		store, err := openStore(ctx, cmd, logger)
		if err != nil {
			logger.Error("Could not open store: ", err)
			return err
		}

		if !cmd.Flags().Changed("course") {
			courses, err := store.ListCourses(ctx)
			if err != nil {
				logger.Error("Could not list courses: ", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Choose a course with --course:")
			for _, course := range courses {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", course.ID, course.Name)
			}
			return nil
		}
		courseID, err := cmd.Flags().GetInt64("course")
		if err != nil {
			return err
		}

		course, ok, err := store.CourseByID(ctx, courseID)
		if err != nil {
			logger.Error("Could not get course: ", err)
			return err
		}
		if !ok {
			return fmt.Errorf("there is no course %d", courseID)
		}

		t, err := report.BuildTemporalization(ctx, store, course)
		if err != nil {
			logger.Error("Could not build calendar: ", err)
			return err
		}
		writeTemporalization(cmd.OutOrStdout(), t)
		return nil
	},
}

func writeTemporalization(out io.Writer, t *report.Temporalization) {
	fmt.Fprintln(out, t.Course.Name)
	for _, month := range t.Months {
		fmt.Fprintf(out, "\n%s\n", month.Name)
		fmt.Fprintln(out, "  Mo   Tu   We   Th   Fr   Sa   Su")
		for week := 0; week < report.MonthCells/7; week++ {
			var line strings.Builder
			blank := true
			for _, day := range month.Cells[week*7 : week*7+7] {
				if day == nil {
					line.WriteString("     ")
					continue
				}
				blank = false
				mark := " "
				if len(day.Entries) > 0 {
					mark = "*"
				}
				fmt.Fprintf(&line, "%3d%s%d", day.Day, mark, day.Trimester)
			}
			if !blank {
				fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
			}
		}
	}
	if len(t.Marked) > 0 {
		fmt.Fprintln(out, "\nMarked days")
		for _, entry := range t.Marked {
			fmt.Fprintf(out, "%s  %-12s %s\n", entry.Date.Format("2006-01-02"), entry.Type.Name, entry.Description)
		}
	}
}

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().Int64("course", 0, "The course to lay out (none to list the courses)")
}
