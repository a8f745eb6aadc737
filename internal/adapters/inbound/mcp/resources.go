package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/euvat/euvat/vat"
)

const (
	ratesURI       = "vat://rates"
	countryURIBase = "vat://rates/"
)

func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			ratesURI,
			"VAT Rate Table",
			mcplib.WithResourceDescription("Every supported country with its super-reduced, reduced, standard and parking rates"),
			mcplib.WithMIMEType("application/json"),
		),
		func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
			return jsonContents(ratesURI, vat.GetAll())
		},
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			countryURIBase+"{code}",
			"Country VAT Rates",
			mcplib.WithTemplateDescription("VAT rates of a single country"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleCountryResource,
	)
}

func handleCountryResource(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	code := templateArg(request, "code")
	if code == "" {
		return nil, fmt.Errorf("country code is required")
	}

	country, err := vat.GetCountryRates(code)
	if err != nil {
		return nil, err
	}
	return jsonContents(request.Params.URI, country)
}

// templateArg reads a variable filled in by template matching. Values may
// arrive as a string or a one-element slice; the URI itself is the fallback.
func templateArg(request mcplib.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return strings.TrimPrefix(request.Params.URI, countryURIBase)
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
