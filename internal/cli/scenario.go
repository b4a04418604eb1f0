package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/airvair/STAMPWebTool-sub001/internal/scenario"
)

var scenarioFormat string

func init() {
	scenarioCmd.Flags().StringVar(&scenarioFormat, "format", "text", "output format: text|json")
	rootCmd.AddCommand(scenarioCmd)
}

var scenarioCmd = &cobra.Command{
	Use:   "scenario [files or globs...]",
	Short: "Run scenario fixtures and check their expectations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		for _, arg := range args {
			matches, err := filepath.Glob(arg)
			if err != nil {
				return fmt.Errorf("bad pattern %q: %w", arg, err)
			}
			if len(matches) == 0 {
				// Not a glob; let the loader report a useful error.
				matches = []string{arg}
			}
			files = append(files, matches...)
		}

		var results []*scenario.RunResult
		failed := false
		for _, f := range files {
			res, err := scenario.LoadAndRun(cmd.Context(), f)
			if err != nil {
				return err
			}
			if res.Failed > 0 {
				failed = true
			}
			results = append(results, res)
		}

		switch scenarioFormat {
		case "json":
			out, err := scenario.FormatJSON(results)
			if err != nil {
				return err
			}
			fmt.Println(out)
		case "text":
			fmt.Print(scenario.FormatText(results))
		default:
			return fmt.Errorf("unknown format: %s", scenarioFormat)
		}

		if failed {
			os.Exit(1)
		}
		return nil
	},
}
