package proofessor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/proofessor-mcp/internal/catalog"
	"github.com/wagiedev/proofessor-mcp/internal/dispatch"
	internalmcp "github.com/wagiedev/proofessor-mcp/internal/mcp"
	"github.com/wagiedev/proofessor-mcp/internal/selfcheck"
)

// readyMessage is written once the stdio transport is bound.
const readyMessage = "MCP Roo server running on stdio"

// Server is a Proofessor MCP server.
type Server struct {
	options    *Options
	dispatcher *dispatch.Dispatcher
	server     *internalmcp.Server
	closed     atomic.Bool
}

// NewServer creates a server exposing the Proofessor tools.
func NewServer(opts ...Option) (*Server, error) {
	options := applyOptions(opts)
	if options.Logger == nil {
		options.Logger = NopLogger()
	}

	if options.ReadyOutput == nil {
		options.ReadyOutput = os.Stderr
	}

	if options.Name == "" || options.Version == "" {
		return nil, errors.New("server name and version are required")
	}

	d, err := dispatch.New(catalog.Default(),
		dispatch.WithLogger(options.Logger),
		dispatch.WithLenientArguments(options.LenientArguments),
	)
	if err != nil {
		return nil, fmt.Errorf("create dispatcher: %w", err)
	}

	return &Server{
		options:    options,
		dispatcher: d,
		server:     internalmcp.NewServer(options.Name, options.Version, d, options.Logger),
	}, nil
}

// Run serves the stdio transport until the client disconnects or ctx is
// cancelled. A readiness line is written to the ready output once stdio is
// bound. A server serves one session; later calls return ErrServerClosed.
func (s *Server) Run(ctx context.Context) error {
	return s.serve(ctx, &mcp.StdioTransport{}, s.announceReady)
}

// announceReady writes the readiness line. It bypasses the logger so the line
// appears at every log level.
func (s *Server) announceReady() {
	fmt.Fprintln(s.options.ReadyOutput, readyMessage)
	s.options.Logger.Debug("Transport bound", "transport", "stdio")
}

// RunTransport serves a single session on transport.
func (s *Server) RunTransport(ctx context.Context, transport McpTransport) error {
	return s.serve(ctx, transport, nil)
}

func (s *Server) serve(ctx context.Context, transport McpTransport, ready func()) error {
	if s.closed.Swap(true) {
		return ErrServerClosed
	}

	return s.server.Run(ctx, transport, ready)
}

// ListTools returns the tool descriptors in declaration order.
func (s *Server) ListTools() []ToolDescriptor {
	return s.dispatcher.ListTools()
}

// CallTool executes a tool by name. It never fails: errors are reported in
// the result with IsError set.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) *CallToolResult {
	return s.dispatcher.Call(ctx, name, args)
}

// CallToolErr executes a tool like CallTool and also returns the typed error
// behind an error result: *UnknownToolError, *InvalidArgumentsError or
// *HandlerFailureError. The error is nil exactly when result.IsError is false.
func (s *Server) CallToolErr(ctx context.Context, name string, args map[string]any) (*CallToolResult, error) {
	return s.dispatcher.Execute(ctx, name, args)
}

// SelfCheck runs every tool through an in-memory MCP session.
func (s *Server) SelfCheck(ctx context.Context) (*SelfCheckReport, error) {
	return selfcheck.Run(ctx, s.server, s.dispatcher.Catalog())
}

// MCPServer returns the underlying SDK server.
func (s *Server) MCPServer() *mcp.Server {
	return s.server.MCPServer()
}
