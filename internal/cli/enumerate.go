package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/airvair/STAMPWebTool-sub001/internal/engine"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
	"github.com/airvair/STAMPWebTool-sub001/internal/report"
	"github.com/airvair/STAMPWebTool-sub001/internal/snapshot"
	"github.com/airvair/STAMPWebTool-sub001/internal/store"
)

var (
	enumerateSnapshot string
	enumerateDB       string
	enumerateConfig   string
	enumerateFormat   string
)

func init() {
	enumerateCmd.Flags().StringVar(&enumerateSnapshot, "snapshot", "", "control-structure snapshot file (YAML)")
	enumerateCmd.Flags().StringVar(&enumerateDB, "db", "", "analysis database (SQLite)")
	enumerateCmd.Flags().StringVar(&enumerateConfig, "config", "", "engine configuration file")
	enumerateCmd.Flags().StringVar(&enumerateFormat, "format", "text", "output format: text|json")
	rootCmd.AddCommand(enumerateCmd)
}

var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "Enumerate unsafe combinations from a snapshot or database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ac, err := loadContext(cmd)
		if err != nil {
			return err
		}

		cfg, err := engine.LoadConfig(enumerateConfig)
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

		switch enumerateFormat {
		case "json":
			out, err := report.FormatJSON(res)
			if err != nil {
				return err
			}
			fmt.Println(out)
		case "text":
			fmt.Print(report.FormatText(res))
		default:
			return fmt.Errorf("unknown format: %s", enumerateFormat)
		}
		return nil
	},
}

// loadContext resolves the analysis context from --snapshot or --db.
// Exactly one source must be given.
func loadContext(cmd *cobra.Command) (*model.AnalysisContext, error) {
	switch {
	case enumerateSnapshot != "" && enumerateDB != "":
		return nil, fmt.Errorf("--snapshot and --db are mutually exclusive")
	case enumerateSnapshot != "":
		return snapshot.Load(enumerateSnapshot)
	case enumerateDB != "":
		if _, err := os.Stat(enumerateDB); err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		st, err := store.Open(enumerateDB)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		ac, err := st.LoadContext(cmd.Context())
		if err != nil {
			return nil, err
		}
		if err := snapshot.Validate(ac); err != nil {
			return nil, err
		}
		return ac, nil
	default:
		return nil, fmt.Errorf("one of --snapshot or --db is required")
	}
}
