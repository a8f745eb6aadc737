package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/euvat/euvat/internal/adapters/outbound/config"
	"github.com/euvat/euvat/internal/adapters/outbound/history"
	"github.com/euvat/euvat/internal/adapters/outbound/tui"
	"github.com/euvat/euvat/internal/application"
	"github.com/euvat/euvat/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "euvat",
		Short: "EU VAT rates and calculator",
		Long: "euvat looks up EU VAT rates by country and category and adds VAT to, or removes it from, " +
			"an amount. Defaults are read from .euvat.yaml and EUVAT_* environment variables.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("dir", ".", "Directory holding .euvat.yaml and the .euvat/ history")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newSubtractCmd())
	cmd.AddCommand(newRatesCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// loadConfig reads the configuration for the --dir directory.
func loadConfig(cmd *cobra.Command) (domain.Config, string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	cfg, err := config.New().Load(dir)
	if err != nil {
		return domain.Config{}, dir, fmt.Errorf("loading config: %w", err)
	}
	return cfg, dir, nil
}

// newCalculator wires the calculation service with the file-backed history.
func newCalculator(cfg domain.Config, dir string) *application.CalculatorService {
	return application.NewCalculatorService(cfg, history.New(dir))
}

func newFormatter(cfg domain.Config) tui.Formatter {
	return tui.NewFormatter(cfg.LanguageTag(), cfg.Precision)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
