package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// errorPrefix starts the text of every error-flagged result.
const errorPrefix = "Error: "

// TextResult creates a CallToolResult with a single text block.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// ErrorResult creates an error-flagged CallToolResult describing err.
func ErrorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: errorPrefix + err.Error()},
		},
		IsError: true,
	}
}

// ResultText returns the text of the first text block of a result.
func ResultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}

	for _, c := range result.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			return text.Text
		}
	}

	return ""
}

// ParseArguments unmarshals CallToolRequest arguments into a map.
func ParseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil {
		return make(map[string]any), nil
	}

	if len(req.Params.Arguments) == 0 || string(req.Params.Arguments) == "null" {
		return make(map[string]any), nil
	}

	var args map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
	}

	return args, nil
}

// Handle implements mcp.ToolHandler by decoding the raw arguments and
// delegating to Call. The returned error is always nil.
func (d *Dispatcher) Handle(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var name string
	if req != nil && req.Params != nil {
		name = req.Params.Name
	}

	args, err := ParseArguments(req)
	if err != nil {
		if _, known := d.catalog.Lookup(name); known {
			return d.reject(name, invalidArguments(name, err)), nil
		}

		args = nil
	}

	return d.Call(ctx, name, args), nil
}
