package tui

import (
	"io"
	"strings"
)

// OutputFormat controls how collected values are serialised.
type OutputFormat string

const (
	// OutputFormatJSON emits an indented JSON document.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML emits a YAML document.
	OutputFormatYAML OutputFormat = "yaml"
	// OutputFormatPrettyText emits one "Label: value" line per field.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat maps a flag value onto an OutputFormat.
func ParseOutputFormat(raw string) (OutputFormat, bool) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case OutputFormatJSON, "":
		return OutputFormatJSON, true
	case OutputFormatYAML, "yml":
		return OutputFormatYAML, true
	case OutputFormatPrettyText, "text":
		return OutputFormatPrettyText, true
	default:
		return "", false
	}
}

// Theme captures optional message prefixes.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// SubmitTransformer mutates collected values before serialisation.
type SubmitTransformer func(map[string]any) (map[string]any, error)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialisation format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithMessageWriter sets where the default driver prints informational
// messages (stderr by default, keeping stdout for the document).
func WithMessageWriter(w io.Writer) Option {
	return func(r *Renderer) {
		r.messages = w
	}
}

// WithIDGenerator overrides how `_id` is assigned to new documents.
func WithIDGenerator(fn func() string) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// WithSubmitTransformer allows callers to mutate collected values prior to
// serialisation.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
