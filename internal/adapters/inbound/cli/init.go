package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/euvat/euvat/internal/adapters/outbound/config"
	"github.com/euvat/euvat/internal/domain"
	"github.com/euvat/euvat/vat"
)

func newInitCmd() *cobra.Command {
	var (
		country  string
		category string
		locale   string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .euvat.yaml configuration file",
		Long:  "Create a .euvat.yaml in --dir with the default settings, optionally pinning a default country and category.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			absPath, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			cfg.DefaultCountry = strings.ToUpper(country)
			if category != "" {
				cfg.DefaultCategory = string(vat.ParseRateCategory(category))
			}
			if locale != "" {
				cfg.Locale = locale
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "Default country code, e.g. DE")
	cmd.Flags().StringVar(&category, "category", "", "Default rate category")
	cmd.Flags().StringVar(&locale, "locale", "", "Display locale (BCP 47), e.g. de or fr-BE")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .euvat.yaml")

	return cmd
}

func generateConfig(cfg domain.Config) string {
	var b strings.Builder
	b.WriteString("# euvat configuration\n# Every key can be overridden with an EUVAT_* environment variable.\n\n")

	if cfg.DefaultCountry != "" {
		fmt.Fprintf(&b, "default_country: %s\n", cfg.DefaultCountry)
	} else {
		b.WriteString("# default_country: DE\n")
	}
	if cfg.DefaultCategory != "" {
		fmt.Fprintf(&b, "default_category: %s\n", strings.ToLower(cfg.DefaultCategory))
	} else {
		b.WriteString("# default_category: standard\n")
	}

	fmt.Fprintf(&b, "precision: %d\n", cfg.Precision)
	fmt.Fprintf(&b, "locale: %s\n", cfg.Locale)
	fmt.Fprintf(&b, "log_format: %s\n\n", cfg.LogFormat)
	fmt.Fprintf(&b, "history:\n  enabled: %t\n\n", cfg.History.Enabled)
	fmt.Fprintf(&b, "http:\n  addr: %q\n  read_timeout: %s\n  write_timeout: %s\n  rate_limit: %d\n",
		cfg.HTTP.Addr, cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout, cfg.HTTP.RateLimit)

	return b.String()
}
