package cli

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/euvat/euvat/internal/adapters/inbound/mcp"
	"github.com/euvat/euvat/internal/adapters/outbound/logging"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the euvat MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start euvat MCP server (stdio)",
		Long: "Start the euvat MCP server using stdio transport. This lets AI assistants look up " +
			"VAT rates and add or remove VAT through tools and resources.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dir, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// stdout carries the protocol; logs go to stderr.
			logger := logging.New(cfg.LogFormat, cmd.ErrOrStderr())
			logger.Info("mcp server starting", slog.String("version", version))

			s := mcpadapter.NewEuvatMCPServer(newCalculator(cfg, dir).WithLogger(logger), version)
			return server.ServeStdio(s, server.WithErrorLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError)))
		},
	}
}
