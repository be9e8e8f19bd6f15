package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Clauser resources.
	uriScheme = "clauser://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing standards.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "standards",
		Name:        "standards",
		Description: "List of all uploaded PDF standards",
		MIMEType:    "application/json",
	}, s.handleStandardsResource)

	// Template for a standard's extracted text.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "standards/{standardId}/text",
		Name:        "standard-text",
		Description: "Extracted text of a specific standard",
		MIMEType:    "text/plain",
	}, s.handleStandardTextResource)
}

// handleStandardsResource returns a list of all uploaded standards.
func (s *Server) handleStandardsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	standards, err := s.ports.Library.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing standards: %w", err)
	}

	type standardInfo struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		SizeBytes  int64  `json:"size_bytes"`
		UploadedAt string `json:"uploaded_at"`
	}

	infos := make([]standardInfo, len(standards))
	for i := range standards {
		infos[i] = standardInfo{
			ID:         standards[i].ID,
			Name:       standards[i].Name,
			SizeBytes:  standards[i].Size,
			UploadedAt: standards[i].UploadedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling standards: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleStandardTextResource returns the extracted text of one standard.
func (s *Server) handleStandardTextResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract standardId from URI: clauser://standards/{standardId}/text
	standardID := extractStandardID(req.Params.URI)
	if standardID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	standard, err := s.ports.Library.Get(ctx, standardID)
	if err != nil {
		return nil, fmt.Errorf("getting standard: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     standard.Text,
		}},
	}, nil
}

// extractStandardID extracts the standard ID from a URI like clauser://standards/{standardId}/text.
func extractStandardID(uri string) string {
	const prefix = uriScheme + "standards/"
	const suffix = "/text"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
