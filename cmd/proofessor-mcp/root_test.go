package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wagiedev/proofessor-mcp/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := newRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestToolsCommandJSON(t *testing.T) {
	stdout, _, err := execute(t, "tools", "--json")
	require.NoError(t, err)

	var summaries []toolSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summaries))
	require.Len(t, summaries, 5)
	require.Equal(t, "ask_proofessor", summaries[0].Name)
	require.Equal(t, []string{"question"}, summaries[0].Required)
	require.Equal(t, []string{"context"}, summaries[0].Optional)
	require.Equal(t, []string{"attempted_solutions", "code_context"}, summaries[3].Optional)
}

func TestToolsCommandTable(t *testing.T) {
	stdout, _, err := execute(t, "tools")
	require.NoError(t, err)

	require.Contains(t, stdout, "TOOL")
	require.Contains(t, stdout, "debug_help")
	require.Contains(t, stdout, "error_message")
}

func TestCheckCommand(t *testing.T) {
	stdout, _, err := execute(t, "check")
	require.NoError(t, err)

	require.Contains(t, stdout, "PASS tools/list")
	require.Contains(t, stdout, "PASS unknown tool")
	require.NotContains(t, stdout, "FAIL")
}

func TestInvalidConfigFails(t *testing.T) {
	_, _, err := execute(t, "tools", "--log-format", "xml")
	require.ErrorContains(t, err, "unsupported log format")

	_, _, err = execute(t, "tools", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proofessor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nserver:\n  name: from-file\n  version: 2.0.0\n"), 0o600))

	opts := &cliOptions{viper: config.NewViper()}

	root := buildRootCommand(opts)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"tools", "--config", path, "--name", "from-flag"})
	require.NoError(t, root.Execute())

	require.NotNil(t, opts.resolved)
	require.Equal(t, "from-flag", opts.resolved.Name)
	require.Equal(t, "2.0.0", opts.resolved.Version)
	require.Equal(t, slog.LevelDebug, opts.resolved.LogLevel)
	require.False(t, opts.resolved.LenientArguments)
}
