// Package proofessor provides the Proofessor Model Context Protocol server.
//
// The server exposes five tools to MCP clients over stdio: ask_proofessor,
// explain_code, analyze_architecture, debug_help and best_practices. Each
// tool formats its arguments into a templated placeholder response; no
// request leaves the process.
//
// # Basic Usage
//
//	server, err := proofessor.NewServer(
//	    proofessor.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, nil))),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := server.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Calling Tools Directly
//
// CallTool runs the same dispatch path as a tools/call request without a
// transport:
//
//	result := server.CallTool(ctx, "explain_code", map[string]any{
//	    "code":     "x = 1",
//	    "language": "python",
//	})
//	fmt.Println(proofessor.ResultText(result))
//
// # Error Handling
//
// CallTool never returns a Go error. Unknown tools, missing required
// arguments and handler failures produce a result with IsError set and a
// single text block starting with "Error: ". CallToolErr returns the same
// result together with the typed error behind it:
//
//	result, err := server.CallToolErr(ctx, "summon_professor", nil)
//
//	var unknown *proofessor.UnknownToolError
//	if errors.As(err, &unknown) {
//	    // result.IsError is true; unknown.Name is "summon_professor"
//	}
//
//	if errors.Is(err, proofessor.ErrInvalidArguments) {
//	    // a required argument was missing or not a string
//	}
package proofessor
