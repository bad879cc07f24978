package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/document"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/orchestrator"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/render"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/renderers/html"
)

type renderParams struct {
	Values string
	Output string
	Only   []string
	Action string
	Errors string
}

func newRenderCmd(params *cliParams) *cobra.Command {
	rp := &renderParams{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "render the clothingItem HTML editing form",
		Long: `Render the HTML editing form. With --values the form is prefilled from a
JSON or YAML document, which is validated first so failures show inline.
--errors reads a server error payload keyed by field path (/body/slug/current,
image.asset._ref, sizes[0]); paths that match no field render as form errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var extra []orchestrator.Option
			if strings.TrimSpace(rp.Action) != "" {
				extra = append(extra, orchestrator.WithHTMLOptions(html.WithAction(rp.Action)))
			}
			orch, err := params.orchestrator(extra...)
			if err != nil {
				return err
			}

			req := orchestrator.Request{
				Renderer:      html.Name,
				RenderOptions: render.RenderOptions{Only: rp.Only},
			}
			if rp.Values != "" {
				entry, err := document.LoadFile(rp.Values)
				if err != nil {
					return err
				}
				req.Values = entry.Fields
				req.ValidateValues = true
			}
			if rp.Errors != "" {
				payload, err := loadErrorPayload(rp.Errors)
				if err != nil {
					return err
				}
				desc, err := orch.Descriptor(cmd.Context())
				if err != nil {
					return err
				}
				mapping := render.MapErrorPayload(desc, payload)
				req.RenderOptions.Errors = mapping.Fields
				req.RenderOptions.FormErrors = mapping.Form
			}

			resp, err := orch.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if resp.Result != nil && !resp.Result.Valid {
				params.logger.Warn().Str("values", rp.Values).Int("errors", len(resp.Result.Errors)).Msg("prefilled values are invalid")
			}
			return params.writeOutput(rp.Output, resp.Output)
		},
	}
	cmd.Flags().StringVar(&rp.Values, "values", "", "JSON or YAML document used to prefill the form")
	cmd.Flags().StringVarP(&rp.Output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringSliceVar(&rp.Only, "only", nil, "render only these fields")
	cmd.Flags().StringVar(&rp.Action, "action", "", "form action URL (overrides html.action)")
	cmd.Flags().StringVar(&rp.Errors, "errors", "", "JSON or YAML error payload rendered inline")
	return cmd
}

// loadErrorPayload reads a path -> message(s) map. Values may be a single
// message or a list of messages.
func loadErrorPayload(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: read errors %s: %w", path, err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("render: parse errors %s: %w", path, err)
	}
	payload := make(map[string][]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			payload[key] = []string{v}
		case []any:
			for _, item := range v {
				msg, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("render: errors %s: %s: messages must be strings", path, key)
				}
				payload[key] = append(payload[key], msg)
			}
		case nil:
		default:
			return nil, fmt.Errorf("render: errors %s: %s: expected a message or a list of messages", path, key)
		}
	}
	return payload, nil
}
