package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airvair/STAMPWebTool-sub001/internal/snapshot"
	"github.com/airvair/STAMPWebTool-sub001/internal/store"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <snapshot> <db>",
	Short: "Seed an analysis database from a snapshot file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ac, err := snapshot.Load(args[0])
		if err != nil {
			return err
		}

		st, err := store.Open(args[1])
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SeedContext(cmd.Context(), ac); err != nil {
			return err
		}
		fmt.Printf("imported %d controllers, %d actions, %d hazards\n",
			len(ac.Controllers), len(ac.Actions), len(ac.Hazards))
		return nil
	},
}
