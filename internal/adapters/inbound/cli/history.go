package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/euvat/euvat/internal/adapters/outbound/tui"
	"github.com/euvat/euvat/internal/domain"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit      int
		jsonOutput bool
		clearAll   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded calculations",
		Long:  "Show the add and subtract calculations recorded in .euvat/history, oldest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dir, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// Reading and clearing work even when recording is disabled.
			cfg.History.Enabled = true
			svc := newCalculator(cfg, dir)

			if clearAll {
				if err := svc.ClearHistory(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
				return nil
			}

			entries, err := svc.History(limit)
			if err != nil {
				return err
			}
			if jsonOutput {
				if entries == nil {
					entries = []domain.CalculationEntry{}
				}
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries, newFormatter(cfg)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Show only the most recent N entries (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete the recorded history")

	return cmd
}
