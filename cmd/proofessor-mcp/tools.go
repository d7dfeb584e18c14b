package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type toolSummary struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Required    []string `json:"required"`
	Optional    []string `json:"optional"`
}

func newToolsCmd(opts *cliOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server, err := opts.newServer()
			if err != nil {
				return err
			}

			summaries := make([]toolSummary, 0, len(server.ListTools()))
			for _, d := range server.ListTools() {
				summaries = append(summaries, toolSummary{
					Name:        d.Name,
					Description: d.Description,
					Required:    d.Required(),
					Optional:    d.Optional(),
				})
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(summaries)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TOOL\tREQUIRED\tOPTIONAL")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, strings.Join(s.Required, ", "), strings.Join(s.Optional, ", "))
			}

			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output JSON")

	return cmd
}
