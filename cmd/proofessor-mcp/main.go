// Command proofessor-mcp serves the Proofessor tools over MCP stdio.
package main

import (
	"errors"
	"log/slog"
	"os"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		var exitErr exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}

		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("Fatal error", "error", err)
		os.Exit(1)
	}
}
