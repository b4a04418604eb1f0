package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/airvair/STAMPWebTool-sub001/internal/engine"
	"github.com/airvair/STAMPWebTool-sub001/internal/model"
	"github.com/airvair/STAMPWebTool-sub001/internal/report"
	"github.com/airvair/STAMPWebTool-sub001/internal/watch"
)

var watchConfig string

func init() {
	watchCmd.Flags().StringVar(&watchConfig, "config", "", "engine configuration file")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <snapshot>",
	Short: "Watch a snapshot file and re-enumerate on change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := engine.LoadConfig(watchConfig)
		if err != nil {
			return err
		}
		e, err := engine.New(cfg)
		if err != nil {
			return err
		}

		log, err := zap.NewProduction()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		w := watch.New(args[0], e, func(res *model.EnumerationResult) {
			fmt.Print(report.FormatText(res))
		}, log)
		if err := w.Run(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	},
}
