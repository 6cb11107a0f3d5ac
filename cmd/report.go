/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/Pjt727/classhours/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Lists the trimester hours of every subject",
	Long: `Prints a table with the hours of each subject in each trimester.
With --teacher only that teacher's subjects and schedule rows are counted`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{
			"job": "report",
		})
		viewer, err := viewerOf(cmd)
		if err != nil {
			return err
		}
		ctx := context.Background()
		store, err := openStore(ctx, cmd, logger)
		if err != nil {
			logger.Error("Could not open store: ", err)
			return err
		}

		rows, err := report.NewBuilder(logger, store).SubjectHours(ctx, viewer)
		if err != nil {
			logger.Error("Could not build report: ", err)
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSUBJECT\tGRADE\tCOURSE\tWEEKLY\tT1\tT2\tT3")
		for _, row := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
				row.SubjectID,
				row.Subject,
				row.Grade,
				row.Course,
				row.WeeklyHours,
				row.Hours[0],
				row.Hours[1],
				row.Hours[2],
			)
		}
		return w.Flush()
	},
}

func viewerOf(cmd *cobra.Command) (report.Viewer, error) {
	teacherID, err := viewerFlag(cmd)
	if err != nil {
		return report.Viewer{}, err
	}
	if teacherID == nil {
		return report.Admin(), nil
	}
	return report.TeacherViewer(*teacherID), nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addTeacherFlag(reportCmd)
}
