/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/Pjt727/classhours/hours"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Counts the hours of a single subject in a trimester",
	Long: `Prints the number of hours the subject is taught in the trimester
(1, 2 or 3), skipping every day marked on the calendar. With --teacher only
that teacher's schedule rows are counted`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.WithFields(log.Fields{
			"job": "hours",
		})
		subjectID, err := cmd.Flags().GetInt64("subject")
		if err != nil {
			return err
		}
		trimester, err := cmd.Flags().GetInt("trimester")
		if err != nil {
			return err
		}
		teacherID, err := viewerFlag(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		store, err := openStore(ctx, cmd, logger)
		if err != nil {
			logger.Error("Could not open store: ", err)
			return err
		}

		subject, ok, err := store.SubjectByID(ctx, subjectID)
		if err != nil {
			logger.Error("Could not get subject: ", err)
			return err
		}
		if !ok {
			return fmt.Errorf("there is no subject %d", subjectID)
		}

		total, err := hours.NewStoreCalculator(logger, store).Hours(ctx, subject, trimester, teacherID)
		if err != nil {
			logger.Error("Could not count hours: ", err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hoursCmd)

	hoursCmd.Flags().Int64("subject", 0, "The subject to count")
	hoursCmd.Flags().Int("trimester", 1, "The trimester to count (1, 2 or 3)")
	addTeacherFlag(hoursCmd)
	hoursCmd.MarkFlagRequired("subject")
}
