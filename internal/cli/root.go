// Package cli команды citizen-interview на cobra.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "citizen-interview",
	Short: "Practice the civics part of the US citizenship interview",
	Long: `citizen-interview runs a spoken-style civics interview in the terminal.
Questions are sampled from a question bank, phrased by a language model
acting as the interviewer and graded against the reference answers.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/interview.yaml", "interview config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging and metrics summary")
}

// Execute запускает корневую команду
func Execute() error {
	return rootCmd.Execute()
}
