package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Call every tool over an in-memory session and report the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := opts.newServer()
			if err != nil {
				return err
			}

			report, err := server.SelfCheck(cmd.Context())
			if err != nil {
				return fmt.Errorf("self check: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), report.String())

			if !report.OK() {
				return exitSilent(1)
			}

			return nil
		},
	}
}
