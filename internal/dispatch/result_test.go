package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/wagiedev/proofessor-mcp/internal/catalog"
)

func TestResultHelpers(t *testing.T) {
	t.Parallel()

	ok := TextResult("fine")
	require.False(t, ok.IsError)
	require.Equal(t, "fine", ResultText(ok))

	failed := ErrorResult(errors.New("bad"))
	require.True(t, failed.IsError)
	require.Equal(t, "Error: bad", ResultText(failed))

	require.Empty(t, ResultText(nil))
	require.Empty(t, ResultText(&mcp.CallToolResult{}))
}

func TestParseArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     *mcp.CallToolRequest
		want    map[string]any
		wantErr bool
	}{
		{name: "nil request", req: nil, want: map[string]any{}},
		{name: "nil params", req: &mcp.CallToolRequest{}, want: map[string]any{}},
		{name: "empty arguments", req: &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Name: "x"}}, want: map[string]any{}},
		{name: "null arguments", req: &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(`null`)}}, want: map[string]any{}},
		{
			name: "object arguments",
			req:  &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(`{"topic":"go"}`)}},
			want: map[string]any{"topic": "go"},
		},
		{
			name:    "array arguments",
			req:     &mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(`["go"]`)}},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseArguments(tc.req)
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestHandle(t *testing.T) {
	t.Parallel()

	d := newTestDispatcher(t)

	t.Run("decodes raw arguments", func(t *testing.T) {
		t.Parallel()

		result, err := d.Handle(context.Background(), &mcp.CallToolRequest{
			Params: &mcp.CallToolParamsRaw{
				Name:      catalog.BestPractices,
				Arguments: json.RawMessage(`{"topic":"error handling"}`),
			},
		})
		require.NoError(t, err)
		require.False(t, result.IsError)
		require.Contains(t, ResultText(result), "Topic: error handling")
	})

	t.Run("malformed arguments for known tool", func(t *testing.T) {
		t.Parallel()

		result, err := d.Handle(context.Background(), &mcp.CallToolRequest{
			Params: &mcp.CallToolParamsRaw{
				Name:      catalog.BestPractices,
				Arguments: json.RawMessage(`"topic"`),
			},
		})
		require.NoError(t, err)
		require.True(t, result.IsError)
		require.Contains(t, ResultText(result), "invalid arguments for best_practices")
	})

	t.Run("malformed arguments for unknown tool", func(t *testing.T) {
		t.Parallel()

		result, err := d.Handle(context.Background(), &mcp.CallToolRequest{
			Params: &mcp.CallToolParamsRaw{
				Name:      "nope",
				Arguments: json.RawMessage(`[1]`),
			},
		})
		require.NoError(t, err)
		require.True(t, result.IsError)
		require.Equal(t, "Error: Unknown tool: nope", ResultText(result))
	})
}

func TestValidationDetail(t *testing.T) {
	t.Parallel()

	d, ok := catalog.Default().Lookup(catalog.DebugHelp)
	require.True(t, ok)

	schema, err := compileArgumentSchema(d)
	require.NoError(t, err)

	require.NoError(t, validateArguments(schema, map[string]any{"error_message": "e", "code_context": 7}))

	err = validateArguments(schema, map[string]any{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "error_message")
	require.NotContains(t, err.Error(), "\n")

	require.Equal(t, "plain", validationDetail(errors.New("plain")))
}
