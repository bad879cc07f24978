package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/document"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/orchestrator"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/render"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/renderers/tui"
)

type authorParams struct {
	Format string
	Output string
	Values string
	Only   []string
}

func newAuthorCmd(params *cliParams) *cobra.Command {
	ap := &authorParams{}
	cmd := &cobra.Command{
		Use:   "author",
		Short: "author a clothing item interactively",
		Long: `Prompt for every field of a clothing item and print the resulting
document. Prompts validate as you type; Ctrl+C aborts without output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var extra []orchestrator.Option
			if cmd.Flags().Changed("format") {
				format, ok := tui.ParseOutputFormat(ap.Format)
				if !ok {
					return fmt.Errorf("author: unknown format %q", ap.Format)
				}
				extra = append(extra, orchestrator.WithTUIOptions(tui.WithOutputFormat(format)))
			}
			orch, err := params.orchestrator(extra...)
			if err != nil {
				return err
			}

			req := orchestrator.Request{
				Renderer:      tui.Name,
				RenderOptions: render.RenderOptions{Only: ap.Only},
			}
			if ap.Values != "" {
				entry, err := document.LoadFile(ap.Values)
				if err != nil {
					return err
				}
				req.Values = entry.Fields
			}

			resp, err := orch.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			params.logger.Debug().Str("content_type", resp.ContentType).Msg("document authored")
			return params.writeOutput(ap.Output, resp.Output)
		},
	}
	cmd.Flags().StringVarP(&ap.Format, "format", "f", "json", "output format (json, yaml or pretty)")
	cmd.Flags().StringVarP(&ap.Output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&ap.Values, "values", "", "JSON or YAML document used as prompt defaults")
	cmd.Flags().StringSliceVar(&ap.Only, "only", nil, "prompt only for these fields")
	return cmd
}
