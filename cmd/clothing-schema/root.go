package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/biologist01/HACKATHON-THREE-2025/internal/config"
	"github.com/biologist01/HACKATHON-THREE-2025/internal/logging"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/orchestrator"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/renderers/html"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/renderers/tui"
)

// errInvalidDocuments signals that validation reported failures that were
// already printed.
var errInvalidDocuments = errors.New("one or more documents are invalid")

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func newStreams() streams {
	return streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

type cliParams struct {
	streams streams

	ConfigFile string
	LogLevel   string
	LogFormat  string

	cfg    *config.Config
	logger zerolog.Logger

	// promptDriver replaces the survey driver, used by tests.
	promptDriver tui.PromptDriver
}

func execRootCmd(ctx context.Context, args []string, s streams) error {
	params := &cliParams{streams: s}
	rootCmd := newRootCmd(params)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd(params *cliParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clothing-schema",
		Short: "Clothing item content schema tooling",
		Long: `clothing-schema works with the clothingItem document type of the
product catalogue.

  clothing-schema describe --format openapi   # export the schema
  clothing-schema validate items/             # check documents
  clothing-schema render --values tee.json    # HTML editing form
  clothing-schema author --format yaml        # interactive authoring`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return params.setup(cmd)
		},
	}
	cmd.SetIn(params.streams.in)
	cmd.SetOut(params.streams.out)
	cmd.SetErr(params.streams.err)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&params.ConfigFile, "config", "c", "", "config file path")
	flags.StringVar(&params.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&params.LogFormat, "log-format", "", "log format (console or json)")

	cmd.AddCommand(
		newDescribeCmd(params),
		newValidateCmd(params),
		newRenderCmd(params),
		newAuthorCmd(params),
	)
	return cmd
}

// setup loads the configuration, applies flag overrides and builds the
// logger.
func (p *cliParams) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if p.ConfigFile != "" {
		loaded, err := config.Load(p.ConfigFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = p.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = p.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: logging.Format(cfg.Logging.Format),
		Out:    p.streams.err,
	})
	if err != nil {
		return err
	}

	p.cfg = cfg
	p.logger = logger
	if p.ConfigFile != "" {
		p.logger.Debug().Str("config", p.ConfigFile).Msg("configuration loaded")
	}
	return nil
}

// orchestrator builds the pipeline from the loaded configuration.
func (p *cliParams) orchestrator(extra ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	cfg := p.cfg

	htmlOptions := []html.Option{
		html.WithAction(cfg.HTML.Action),
		html.WithMethod(cfg.HTML.Method),
		html.WithSubmitLabel(cfg.HTML.SubmitLabel),
	}
	if cfg.HTML.TemplatesDir != "" {
		htmlOptions = append(htmlOptions, html.WithTemplatesDir(cfg.HTML.TemplatesDir))
	}

	format, _ := tui.ParseOutputFormat(cfg.TUI.Format)
	tuiOptions := []tui.Option{
		tui.WithOutputFormat(format),
		tui.WithMessageWriter(p.streams.err),
	}
	if p.promptDriver != nil {
		tuiOptions = append(tuiOptions, tui.WithPromptDriver(p.promptDriver))
	}

	options := []orchestrator.Option{
		orchestrator.WithHTMLOptions(htmlOptions...),
		orchestrator.WithTUIOptions(tuiOptions...),
		orchestrator.WithSlugFill(cfg.Validation.FillSlug),
	}
	if rt := cfg.RendererTheme(); rt != nil {
		options = append(options, orchestrator.WithTheme(*rt))
	}
	if cfg.Preset != "" {
		transformer, err := orchestrator.NewPresetTransformerFromFS(os.DirFS(filepath.Dir(cfg.Preset)), filepath.Base(cfg.Preset))
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithSchemaTransformer(transformer))
	}
	options = append(options, extra...)

	return orchestrator.New(options...), nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func (p *cliParams) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := p.streams.out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	p.logger.Info().Str("path", path).Int("bytes", len(data)).Msg("output written")
	return nil
}
