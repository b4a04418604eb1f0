package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airvair/STAMPWebTool-sub001/internal/engine"
	"github.com/airvair/STAMPWebTool-sub001/internal/snapshot"
	"github.com/airvair/STAMPWebTool-sub001/internal/store"
)

var (
	acceptConfig string
	acceptRank   int
)

func init() {
	acceptCmd.Flags().StringVar(&acceptConfig, "config", "", "engine configuration file")
	acceptCmd.Flags().IntVar(&acceptRank, "rank", 1, "rank of the candidate to accept (1-based)")
	rootCmd.AddCommand(acceptCmd)
}

var acceptCmd = &cobra.Command{
	Use:   "accept <db>",
	Short: "Persist a ranked candidate as an accepted entry",
	Long: `accept re-runs enumeration against the database's control structure
and records the candidate at the given rank as an existing entry, so
later runs deduplicate against it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(args[0])
		if err != nil {
			return err
		}
		defer st.Close()

		ac, err := st.LoadContext(cmd.Context())
		if err != nil {
			return err
		}
		if err := snapshot.Validate(ac); err != nil {
			return err
		}

		cfg, err := engine.LoadConfig(acceptConfig)
		if err != nil {
			return err
		}
		e, err := engine.New(cfg)
		if err != nil {
			return err
		}

		res, err := e.Enumerate(cmd.Context(), ac)
		if err != nil {
			return err
		}
		if acceptRank < 1 || acceptRank > len(res.Candidates) {
			return fmt.Errorf("rank %d out of range: %d candidates", acceptRank, len(res.Candidates))
		}

		cand := res.Candidates[acceptRank-1]
		id, err := st.SaveEntry(cmd.Context(), cand)
		if err != nil {
			return err
		}
		fmt.Printf("accepted %s (score %.2f): %s\n", id, cand.RiskScore, cand.Description)
		return nil
	},
}
