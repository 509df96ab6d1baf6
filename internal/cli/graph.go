package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"citizen-interview/internal/interview"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the interview state graph as a Mermaid diagram",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), interview.Mermaid(interview.Graph()))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
