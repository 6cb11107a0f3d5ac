package cmd

import (
	"context"
	"fmt"

	"github.com/Pjt727/classhours/data"
	"github.com/Pjt727/classhours/data/fixture"
	"github.com/Pjt727/classhours/hours"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// openStore reads from the --data fixture when given and from postgres otherwise
func openStore(ctx context.Context, cmd *cobra.Command, logger *log.Entry) (hours.Store, error) {
	path, err := cmd.Flags().GetString("data")
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Debugf("Reading fixture %s", path)
		store, err := fixture.Load(path)
		if err != nil {
			return nil, fmt.Errorf("could not load fixture %s: %w", path, err)
		}
		return store, nil
	}
	dbPool, err := data.NewPool(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("could not connect to db: %w", err)
	}
	return hours.NewPgStore(dbPool), nil
}

// viewerFlag gives the teacher view when --teacher is set
func viewerFlag(cmd *cobra.Command) (*int64, error) {
	if !cmd.Flags().Changed("teacher") {
		return nil, nil
	}
	teacherID, err := cmd.Flags().GetInt64("teacher")
	if err != nil {
		return nil, err
	}
	return &teacherID, nil
}

func addTeacherFlag(cmd *cobra.Command) {
	cmd.Flags().Int64("teacher", 0, "Only count the schedule rows of this teacher")
}
