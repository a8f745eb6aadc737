package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/euvat/euvat/internal/application"
	"github.com/euvat/euvat/internal/domain"
	"github.com/euvat/euvat/vat"
)

const categoryDescription = "Rate category: super_reduced, reduced, reduced2, standard or parking (default: configured category, else standard)"

func registerTools(s *server.MCPServer, calc *application.CalculatorService) {
	s.AddTool(
		mcplib.NewTool("vat_add_tax",
			mcplib.WithDescription("Add VAT to a net amount. Returns the rate used, the tax amount and the gross total."),
			mcplib.WithNumber("amount", mcplib.Required(), mcplib.Description("Net amount")),
			mcplib.WithString("country", mcplib.Description("Two-letter country code, e.g. DE or EL (default: configured country)")),
			mcplib.WithString("category", mcplib.Description(categoryDescription)),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		handleCalculation(calc.Add),
	)

	s.AddTool(
		mcplib.NewTool("vat_subtract_tax",
			mcplib.WithDescription("Remove VAT from a gross amount. Returns the rate used, the tax amount and the net amount."),
			mcplib.WithNumber("amount", mcplib.Required(), mcplib.Description("Gross amount")),
			mcplib.WithString("country", mcplib.Description("Two-letter country code, e.g. DE or EL (default: configured country)")),
			mcplib.WithString("category", mcplib.Description(categoryDescription)),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		handleCalculation(calc.Subtract),
	)

	s.AddTool(
		mcplib.NewTool("vat_country_rates",
			mcplib.WithDescription("Returns every VAT rate of one country"),
			mcplib.WithString("country", mcplib.Required(), mcplib.Description("Two-letter country code")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		handleCountryRates,
	)

	s.AddTool(
		mcplib.NewTool("vat_standard_rates",
			mcplib.WithDescription("Returns the standard VAT rate of every supported country"),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			return jsonResult(vat.GetAllStandardRates())
		},
	)

	s.AddTool(
		mcplib.NewTool("vat_all_rates",
			mcplib.WithDescription("Returns the complete VAT rate table keyed by country code"),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			return jsonResult(vat.GetAll())
		},
	)
}

func handleCalculation(run func(domain.CalculationRequest) (domain.Calculation, error)) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		amount, err := request.RequireFloat("amount")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		calc, err := run(domain.CalculationRequest{
			Amount:   amount,
			Country:  request.GetString("country", ""),
			Category: request.GetString("category", ""),
		})
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(calc)
	}
}

func handleCountryRates(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	code, err := request.RequireString("country")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	country, err := vat.GetCountryRates(code)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	return jsonResult(struct {
		vat.CountryRate
		Categories []vat.RateCategory `json:"categories"`
	}{country, country.Categories()})
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
