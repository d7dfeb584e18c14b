package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	proofessor "github.com/wagiedev/proofessor-mcp"
	"github.com/wagiedev/proofessor-mcp/internal/config"
)

type cliOptions struct {
	configPath string
	viper      *viper.Viper
	resolved   *config.Options
	logger     *slog.Logger
	stderr     io.Writer
}

func newRootCommand() *cobra.Command {
	return buildRootCommand(&cliOptions{
		viper:  config.NewViper(),
		logger: proofessor.NopLogger(),
	})
}

func buildRootCommand(opts *cliOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "proofessor-mcp",
		Short:         "Proofessor MCP server over stdio",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.ReadFile(opts.viper, opts.configPath); err != nil {
				return err
			}

			resolved, err := config.Load(opts.viper)
			if err != nil {
				return err
			}

			opts.resolved = resolved
			opts.stderr = cmd.ErrOrStderr()
			opts.logger = resolved.NewLogger(opts.stderr)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := opts.newServer()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			err = server.Run(ctx)
			if errors.Is(err, context.Canceled) {
				opts.logger.Info("Shutting down")

				return nil
			}

			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", string(config.LogFormatText), "log format (text or json)")
	flags.String("name", config.DefaultServerName, "server implementation name")
	flags.String("server-version", config.DefaultServerVersion, "server implementation version")
	flags.Bool("lenient", false, "accept calls that omit required arguments")

	bindFlag(opts.viper, config.KeyLogLevel, flags.Lookup("log-level"))
	bindFlag(opts.viper, config.KeyLogFormat, flags.Lookup("log-format"))
	bindFlag(opts.viper, config.KeyServerName, flags.Lookup("name"))
	bindFlag(opts.viper, config.KeyServerVersion, flags.Lookup("server-version"))
	bindFlag(opts.viper, config.KeyArgumentsLenient, flags.Lookup("lenient"))

	root.AddCommand(
		newToolsCmd(opts),
		newCheckCmd(opts),
	)

	return root
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func (o *cliOptions) newServer() (*proofessor.Server, error) {
	return proofessor.NewServer(
		proofessor.WithLogger(o.logger),
		proofessor.WithReadyOutput(o.stderr),
		proofessor.WithName(o.resolved.Name),
		proofessor.WithVersion(o.resolved.Version),
		proofessor.WithLenientArguments(o.resolved.LenientArguments),
	)
}
