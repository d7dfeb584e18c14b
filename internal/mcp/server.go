package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/proofessor-mcp/internal/dispatch"
)

const (
	methodCallTool  = "tools/call"
	methodListTools = "tools/list"
)

// Server wraps the official MCP SDK server with the Proofessor tools registered.
type Server struct {
	name       string
	version    string
	log        *slog.Logger
	dispatcher *dispatch.Dispatcher
	server     *mcp.Server
	tools      []*mcp.Tool
}

// NewServer creates a server exposing every tool of the dispatcher's catalog.
func NewServer(name, version string, dispatcher *dispatch.Dispatcher, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Server{
		name:       name,
		version:    version,
		log:        log.With("component", "mcp"),
		dispatcher: dispatcher,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    name,
			Version: version,
		}, &mcp.ServerOptions{
			HasTools: true,
		}),
	}

	for _, desc := range dispatcher.ListTools() {
		tool := desc.MCPTool()
		s.tools = append(s.tools, tool)
		s.server.AddTool(tool, dispatcher.Handle)
	}

	s.server.AddReceivingMiddleware(s.loggingMiddleware, s.listToolsMiddleware, s.unknownToolMiddleware)

	return s
}

// Name returns the server name.
func (s *Server) Name() string {
	return s.name
}

// Version returns the server version.
func (s *Server) Version() string {
	return s.version
}

// MCPServer returns the underlying SDK server.
func (s *Server) MCPServer() *mcp.Server {
	return s.server
}

// Run serves a single session on transport until the client disconnects or
// ctx is cancelled. ready, if non-nil, is called once the transport is bound.
func (s *Server) Run(ctx context.Context, transport mcp.Transport, ready func()) error {
	session, err := s.Connect(ctx, transport)
	if err != nil {
		return fmt.Errorf("connect transport: %w", err)
	}

	if ready != nil {
		ready()
	}

	closed := make(chan error, 1)
	go func() {
		closed <- session.Wait()
	}()

	select {
	case <-ctx.Done():
		_ = session.Close()
		<-closed

		return ctx.Err()
	case err := <-closed:
		return err
	}
}

// Connect starts a session on transport without blocking.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

func (s *Server) loggingMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		s.log.Debug("Received request", "method", method)

		result, err := next(ctx, method, req)
		if err != nil {
			s.log.Warn("Request failed", "method", method, "error", err)
		}

		return result, err
	}
}

// listToolsMiddleware answers tools/list in catalog declaration order. The SDK
// would otherwise list tools sorted by name.
func (s *Server) listToolsMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		if method != methodListTools {
			return next(ctx, method, req)
		}

		return &mcp.ListToolsResult{Tools: slices.Clone(s.tools)}, nil
	}
}

// unknownToolMiddleware routes calls for undeclared tools to the dispatcher,
// which reports them as error-flagged results.
func (s *Server) unknownToolMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		if method != methodCallTool {
			return next(ctx, method, req)
		}

		call, ok := req.(*mcp.CallToolRequest)
		if !ok || call.Params == nil {
			return next(ctx, method, req)
		}

		if _, known := s.dispatcher.Catalog().Lookup(call.Params.Name); known {
			return next(ctx, method, req)
		}

		result, err := s.dispatcher.Handle(ctx, call)

		return result, err
	}
}
