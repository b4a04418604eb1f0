package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "uccagen",
	Short: "Unsafe-combination enumeration for STPA control structures",
	Long: `uccagen enumerates candidate unsafe combinations of control actions
from a control-structure snapshot, scores them against hazards, and
reports the ranked survivors. It can run a single analysis, replay
scenario fixtures, or watch a snapshot file and re-enumerate on change.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
