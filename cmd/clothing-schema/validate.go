package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/document"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/orchestrator"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/validation"
)

type validateParams struct {
	FillSlug bool
	Format   string
}

type validateReport struct {
	Source     string                  `json:"source"`
	Valid      bool                    `json:"valid"`
	SlugFilled bool                    `json:"slugFilled,omitempty"`
	Errors     []validation.FieldError `json:"errors,omitempty"`
}

func newValidateCmd(params *cliParams) *cobra.Command {
	vp := &validateParams{}
	cmd := &cobra.Command{
		Use:   "validate FILE|DIR...",
		Short: "validate clothing item documents",
		Long: `Validate JSON or YAML clothing item documents. Directories are walked
for *.json, *.yaml and *.yml files. Every failing constraint prints one line;
the command exits non-zero when any document is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []orchestrator.Option
			if cmd.Flags().Changed("fill-slug") {
				extra = append(extra, orchestrator.WithSlugFill(vp.FillSlug))
			}
			orch, err := params.orchestrator(extra...)
			if err != nil {
				return err
			}

			entries, err := document.LoadPaths(args...)
			if err != nil {
				return err
			}
			params.logger.Debug().Int("documents", len(entries)).Msg("documents loaded")

			reports, err := orch.Validate(cmd.Context(), entries)
			if err != nil {
				return err
			}

			invalid := 0
			for _, report := range reports {
				if !report.Result.Valid {
					invalid++
				}
			}

			switch strings.ToLower(vp.Format) {
			case "text", "":
				printTextReports(params, reports)
			case "json":
				if err := printJSONReports(params, reports); err != nil {
					return err
				}
			default:
				return fmt.Errorf("validate: unknown format %q", vp.Format)
			}

			params.logger.Info().Int("documents", len(reports)).Int("invalid", invalid).Msg("validation finished")
			if invalid > 0 {
				return errInvalidDocuments
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&vp.FillSlug, "fill-slug", false, "write slugs derived from the name into the documents before validating")
	cmd.Flags().StringVarP(&vp.Format, "format", "f", "text", "report format (text or json)")
	return cmd
}

func printTextReports(params *cliParams, reports []orchestrator.Report) {
	out := params.streams.out
	for _, report := range reports {
		if report.Result.Valid {
			fmt.Fprintf(out, "%s: ok\n", report.Entry.Source)
			continue
		}
		for _, fe := range report.Result.Errors {
			fmt.Fprintf(out, "%s: %s: %s\n", report.Entry.Source, fe.Field, fe.Message)
		}
	}
}

func printJSONReports(params *cliParams, reports []orchestrator.Report) error {
	payload := make([]validateReport, 0, len(reports))
	for _, report := range reports {
		payload = append(payload, validateReport{
			Source:     report.Entry.Source,
			Valid:      report.Result.Valid,
			SlugFilled: report.SlugFilled,
			Errors:     report.Result.Errors,
		})
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("validate: encode report: %w", err)
	}
	_, err = params.streams.out.Write(append(data, '\n'))
	return err
}
