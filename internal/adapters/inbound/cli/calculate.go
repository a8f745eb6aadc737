package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/euvat/euvat/internal/adapters/outbound/tui"
	"github.com/euvat/euvat/internal/application"
	"github.com/euvat/euvat/internal/domain"
)

func newAddCmd() *cobra.Command {
	return newCalculationCmd(
		domain.OperationAdd,
		"add <net-amount> [country]",
		"Add VAT to a net amount",
		"Compute the VAT on a net amount and the resulting gross total.",
	)
}

func newSubtractCmd() *cobra.Command {
	return newCalculationCmd(
		domain.OperationSubtract,
		"subtract <gross-amount> [country]",
		"Remove VAT from a gross amount",
		"Compute the net amount and the VAT contained in a gross amount.",
	)
}

func newCalculationCmd(op domain.Operation, use, short, long string) *cobra.Command {
	var (
		category   string
		jsonOutput bool
		noHistory  bool
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: long + " The country defaults to default_country and the category to " +
			"default_category (or STANDARD) from the configuration.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			cfg, dir, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if noHistory {
				cfg.History.Enabled = false
			}

			req := domain.CalculationRequest{Amount: amount, Category: category}
			if len(args) > 1 {
				req.Country = args[1]
			}

			svc := newCalculator(cfg, dir)
			calc, err := run(svc, op, req)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, calc)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCalculation(calc, newFormatter(cfg)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Rate category: super_reduced, reduced, reduced2, standard, parking")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this calculation in the history")

	return cmd
}

func run(svc *application.CalculatorService, op domain.Operation, req domain.CalculationRequest) (domain.Calculation, error) {
	if op == domain.OperationSubtract {
		return svc.Subtract(req)
	}
	return svc.Add(req)
}
