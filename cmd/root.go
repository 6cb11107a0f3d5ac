package cmd

import (
	"fmt"
	"os"

	"github.com/Pjt727/classhours/data"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "classhours",
	Short: "classhours counts the teaching hours of every subject per trimester",
	Long: `Classhours reads courses, weekly schedules and the school calendar
(from postgres or a yaml fixture) and counts how many hours each subject is
taught in each trimester`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		log.SetLevel(parsed)
		log.SetOutput(os.Stderr)
		return data.LoadEnv()
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(
		"data",
		"",
		"A yaml fixture to read from instead of the database",
	)
	rootCmd.PersistentFlags().String(
		"log-level",
		log.WarnLevel.String(),
		"The log level (trace, debug, info, warn, error)",
	)
}
