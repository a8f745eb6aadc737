// Package mcp exposes the VAT rate table and calculator as an MCP server.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/euvat/euvat/internal/application"
)

// NewEuvatMCPServer creates an MCP server with every euvat tool and resource
// registered. Calculations run through calc so configured defaults and
// history apply the same way they do on the command line.
func NewEuvatMCPServer(calc *application.CalculatorService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"euvat",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, calc)
	registerResources(s)

	return s
}
