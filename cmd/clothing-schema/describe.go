package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/openapi"
)

type describeParams struct {
	Format string
	Output string
}

func newDescribeCmd(params *cliParams) *cobra.Command {
	dp := &describeParams{}
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "print the clothingItem schema descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := params.orchestrator()
			if err != nil {
				return err
			}
			desc, err := orch.Descriptor(cmd.Context())
			if err != nil {
				return err
			}

			var data []byte
			switch strings.ToLower(dp.Format) {
			case "json", "":
				data, err = json.MarshalIndent(desc, "", "  ")
				data = append(data, '\n')
			case "yaml", "yml":
				data, err = yaml.Marshal(desc)
			case "openapi":
				data, err = openapi.Export(cmd.Context(), desc, params.cfg.OpenAPI.Version)
				data = append(data, '\n')
			default:
				return fmt.Errorf("describe: unknown format %q", dp.Format)
			}
			if err != nil {
				return fmt.Errorf("describe: %w", err)
			}
			params.logger.Debug().Str("format", dp.Format).Int("fields", len(desc.Fields)).Msg("descriptor exported")
			return params.writeOutput(dp.Output, data)
		},
	}
	cmd.Flags().StringVarP(&dp.Format, "format", "f", "json", "output format (json, yaml or openapi)")
	cmd.Flags().StringVarP(&dp.Output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
