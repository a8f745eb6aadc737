package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/euvat/euvat/internal/adapters/outbound/tui"
	"github.com/euvat/euvat/vat"
)

func newRatesCmd() *cobra.Command {
	var (
		standardOnly bool
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "rates [country]",
		Short: "Show VAT rates",
		Long:  "Show the VAT rates of one country, or the whole rate table when no country is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			f := newFormatter(cfg)

			if len(args) == 1 {
				country, err := vat.GetCountryRates(args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return renderJSON(cmd, country)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderCountry(country, f))
				return nil
			}

			if standardOnly {
				rates := vat.GetAllStandardRates()
				if jsonOutput {
					return renderJSON(cmd, rates)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderStandardRates(vat.Codes(), rates, f))
				return nil
			}

			all := vat.GetAll()
			if jsonOutput {
				return renderJSON(cmd, all)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRates(vat.Codes(), all, f))
			return nil
		},
	}

	cmd.Flags().BoolVar(&standardOnly, "standard", false, "Show only the standard rate of each country")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output rates as JSON")

	return cmd
}
