/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/Pjt727/classhours/report"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the trimester hours of every teacher and subject",
	Long: `Prints one tab separated line per teacher and subject they are
assigned to: teacher, subject, course, then the hours of each trimester.
Teachers without hours in any trimester are left out`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{
			"job": "export",
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

		rows, err := report.NewBuilder(logger, store).TeacherRows(ctx, viewer)
		if err != nil {
			logger.Error("Could not build export: ", err)
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "teacher\tsubject\tcourse\tt1\tt2\tt3")
		for _, row := range rows {
			fmt.Fprintf(out, "%s\t%s\t%s\t%d\t%d\t%d\n",
				row.Teacher,
				row.Subject,
				row.Course,
				row.Hours[0],
				row.Hours[1],
				row.Hours[2],
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addTeacherFlag(exportCmd)
}
