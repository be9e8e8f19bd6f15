package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the uploaded standards"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer    string           `json:"answer"`
	Citations []CitationOutput `json:"citations,omitempty"`
}

// CitationOutput represents a single citation in an answer.
type CitationOutput struct {
	Standard string `json:"standard"`
	Clause   string `json:"clause,omitempty"`
	Page     int    `json:"page,omitempty"`
}

// ListStandardsOutput is the output schema for the list_standards tool.
type ListStandardsOutput struct {
	Standards []StandardOutput `json:"standards"`
	Count     int              `json:"count"`
}

// StandardOutput represents a single stored standard.
type StandardOutput struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SizeBytes  int64  `json:"size_bytes"`
	UploadedAt string `json:"uploaded_at"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask a question about the uploaded PDF standards and get a cited answer",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_standards",
		Description: "List the PDF standards stored in the local library",
	}, s.handleListStandards)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	reply, err := s.ports.Chat.Ask(ctx, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:    reply.Body,
		Citations: make([]CitationOutput, len(reply.Citations)),
	}
	for i, c := range reply.Citations {
		output.Citations[i] = CitationOutput{
			Standard: c.Standard,
			Clause:   c.Clause,
			Page:     c.Page,
		}
	}

	return nil, output, nil
}

// handleListStandards handles the list_standards tool invocation.
func (s *Server) handleListStandards(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ListStandardsOutput, error) {
	standards, err := s.ports.Library.List(ctx)
	if err != nil {
		return nil, ListStandardsOutput{}, err
	}

	output := ListStandardsOutput{
		Standards: make([]StandardOutput, len(standards)),
		Count:     len(standards),
	}
	for i := range standards {
		output.Standards[i] = StandardOutput{
			ID:         standards[i].ID,
			Name:       standards[i].Name,
			SizeBytes:  standards[i].Size,
			UploadedAt: standards[i].UploadedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}

	return nil, output, nil
}
