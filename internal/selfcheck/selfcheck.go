// Package selfcheck exercises a Proofessor server end to end over an
// in-memory MCP session.
package selfcheck

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/proofessor-mcp/internal/catalog"
	"github.com/wagiedev/proofessor-mcp/internal/dispatch"
	mcpserver "github.com/wagiedev/proofessor-mcp/internal/mcp"
)

// unknownProbe is called to confirm unknown tools come back as tool errors.
const unknownProbe = "selfcheck_unknown_tool"

// Result is the outcome of one check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Report collects the outcome of a self check.
type Report struct {
	Results []Result
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}

	return true
}

// String renders one line per check.
func (r *Report) String() string {
	var b strings.Builder
	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}

		fmt.Fprintf(&b, "%s %s", status, res.Name)
		if res.Detail != "" {
			b.WriteString(": " + res.Detail)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// SampleArguments fills every declared field of d with a recognisable value.
func SampleArguments(d catalog.Descriptor) map[string]any {
	args := make(map[string]any, len(d.InputSchema.Properties))
	for name := range d.InputSchema.Properties {
		args[name] = "sample " + name
	}

	return args
}

// Run connects an in-memory client to server, checks the tool listing
// against cat, then calls every tool concurrently with sample arguments.
// The returned error reports transport failures; check failures are in the
// report.
func Run(ctx context.Context, server *mcpserver.Server, cat *catalog.Catalog) (*Report, error) {
	ct, st := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("connect server: %w", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "proofessor-selfcheck", Version: server.Version()}, nil)

	session, err := client.Connect(ctx, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("connect client: %w", err)
	}
	defer session.Close()

	listed, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}

	tools := cat.Tools()
	results := make([]Result, len(tools)+2)
	results[0] = checkListing(listed.Tools, cat.Names())

	g, gCtx := errgroup.WithContext(ctx)

	for i, desc := range tools {
		g.Go(func() error {
			args := SampleArguments(desc)

			res, err := session.CallTool(gCtx, &mcp.CallToolParams{Name: desc.Name, Arguments: args})
			if err != nil {
				return fmt.Errorf("call %s: %w", desc.Name, err)
			}

			results[i+1] = checkEcho(desc.Name, res, args)

			return nil
		})
	}

	g.Go(func() error {
		res, err := session.CallTool(gCtx, &mcp.CallToolParams{Name: unknownProbe, Arguments: map[string]any{}})
		if err != nil {
			return fmt.Errorf("call %s: %w", unknownProbe, err)
		}

		results[len(results)-1] = checkUnknown(res)

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{Results: results}, nil
}

func checkListing(listed []*mcp.Tool, want []string) Result {
	got := make([]string, 0, len(listed))
	for _, tool := range listed {
		got = append(got, tool.Name)
	}

	if !slices.Equal(got, want) {
		return Result{Name: "tools/list", Detail: fmt.Sprintf("listed %v, want %v", got, want)}
	}

	return Result{Name: "tools/list", Passed: true, Detail: fmt.Sprintf("%d tools", len(got))}
}

func checkEcho(name string, res *mcp.CallToolResult, args map[string]any) Result {
	if res.IsError {
		return Result{Name: name, Detail: "unexpected error result: " + dispatch.ResultText(res)}
	}

	if len(res.Content) != 1 {
		return Result{Name: name, Detail: fmt.Sprintf("got %d content blocks, want 1", len(res.Content))}
	}

	text := dispatch.ResultText(res)
	for field, value := range args {
		if !strings.Contains(text, value.(string)) {
			return Result{Name: name, Detail: "response does not echo " + field}
		}
	}

	return Result{Name: name, Passed: true}
}

func checkUnknown(res *mcp.CallToolResult) Result {
	name := "unknown tool"
	if !res.IsError {
		return Result{Name: name, Detail: "unknown tool did not return an error result"}
	}

	if !strings.Contains(dispatch.ResultText(res), unknownProbe) {
		return Result{Name: name, Detail: "error result does not name the tool"}
	}

	return Result{Name: name, Passed: true}
}
