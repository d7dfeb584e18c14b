package proofessor

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/proofessor-mcp/internal/catalog"
	"github.com/wagiedev/proofessor-mcp/internal/config"
	"github.com/wagiedev/proofessor-mcp/internal/dispatch"
	"github.com/wagiedev/proofessor-mcp/internal/selfcheck"
)

// ===== Options and Configuration =====

// Options configures the server. Build it with Option functions.
type Options = config.Options

// LogFormat selects the slog handler used by the CLI.
type LogFormat = config.LogFormat

// ===== Catalog =====

// ToolDescriptor describes one tool and its argument contract.
type ToolDescriptor = catalog.Descriptor

// Tool names.
const (
	ToolAskProofessor       = catalog.AskProofessor
	ToolExplainCode         = catalog.ExplainCode
	ToolAnalyzeArchitecture = catalog.AnalyzeArchitecture
	ToolDebugHelp           = catalog.DebugHelp
	ToolBestPractices       = catalog.BestPractices
)

// Tools returns the Proofessor tool descriptors in declaration order.
func Tools() []ToolDescriptor {
	return catalog.Default().Tools()
}

// ===== MCP Types =====

// Re-export MCP SDK types for public API.
type (
	// CallToolResult is the server's response to a tool call.
	CallToolResult = mcp.CallToolResult

	// McpTextContent represents text content in a tool result.
	McpTextContent = mcp.TextContent

	// McpTool represents an MCP tool definition from the official SDK.
	McpTool = mcp.Tool

	// McpTransport is a bidirectional MCP message stream.
	McpTransport = mcp.Transport

	// Schema is a JSON Schema object for tool input.
	Schema = jsonschema.Schema
)

// ResultText returns the text of the first text block of a result.
func ResultText(result *CallToolResult) string {
	return dispatch.ResultText(result)
}

// ===== Self Check =====

// SelfCheckReport collects the outcome of Server.SelfCheck.
type SelfCheckReport = selfcheck.Report

// SelfCheckResult is the outcome of one self check.
type SelfCheckResult = selfcheck.Result
