package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/wagiedev/proofessor-mcp/internal/catalog"
	"github.com/wagiedev/proofessor-mcp/internal/dispatch"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	d, err := dispatch.New(catalog.Default())
	require.NoError(t, err)

	return NewServer("mcp-roo", "1.0.0", d, nil)
}

func connectClient(t *testing.T, ctx context.Context, server *Server) *mcp.ClientSession {
	t.Helper()

	ct, st := mcp.NewInMemoryTransports()
	_, err := server.Connect(ctx, st)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "0.1.0"}, nil)
	session, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)

	t.Cleanup(func() { _ = session.Close() })

	return session
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected *mcp.TextContent, got %T", result.Content[0])

	return text.Text
}

func TestServerMetadata(t *testing.T) {
	server := newTestServer(t)

	require.Equal(t, "mcp-roo", server.Name())
	require.Equal(t, "1.0.0", server.Version())
	require.NotNil(t, server.MCPServer())
}

func TestServerListTools(t *testing.T) {
	ctx := context.Background()
	session := connectClient(t, ctx, newTestServer(t))

	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, res.Tools, 5)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
		require.NotEmpty(t, tool.Description)
		require.NotNil(t, tool.InputSchema)
	}

	require.Equal(t, catalog.Default().Names(), names)
}

func TestServerListToolsKeepsDeclarationOrder(t *testing.T) {
	ctx := context.Background()
	session := connectClient(t, ctx, newTestServer(t))

	for range 2 {
		res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
		require.NoError(t, err)

		names := make([]string, 0, len(res.Tools))
		for _, tool := range res.Tools {
			names = append(names, tool.Name)
		}

		require.Equal(t, []string{
			catalog.AskProofessor,
			catalog.ExplainCode,
			catalog.AnalyzeArchitecture,
			catalog.DebugHelp,
			catalog.BestPractices,
		}, names)
		require.Empty(t, res.NextCursor)
	}
}

func TestServerCallTool(t *testing.T) {
	ctx := context.Background()
	session := connectClient(t, ctx, newTestServer(t))

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      catalog.ExplainCode,
		Arguments: map[string]any{"code": "x=1", "language": "python"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Contains(t, textOf(t, res), "```python\nx=1\n```")
}

func TestServerUnknownToolIsToolError(t *testing.T) {
	ctx := context.Background()
	session := connectClient(t, ctx, newTestServer(t))

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "does_not_exist",
		Arguments: map[string]any{},
	})
	require.NoError(t, err, "unknown tools must not surface as protocol errors")
	require.True(t, res.IsError)
	require.Equal(t, "Error: Unknown tool: does_not_exist", textOf(t, res))
}

func TestServerMissingRequiredArgument(t *testing.T) {
	ctx := context.Background()
	session := connectClient(t, ctx, newTestServer(t))

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      catalog.DebugHelp,
		Arguments: map[string]any{"code_context": "f()"},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)
	require.Contains(t, textOf(t, res), "error_message")
}

func TestServerRunStopsOnCancel(t *testing.T) {
	server := newTestServer(t)
	ct, st := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- server.Run(ctx, st, func() { close(ready) })
	}()

	<-ready

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "0.1.0"}, nil)
	session, err := client.Connect(context.Background(), ct, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      catalog.BestPractices,
		Arguments: map[string]any{"topic": "API design"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
