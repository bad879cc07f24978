// Package config loads the clothing-schema CLI configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/renderers/tui"
)

// Config is the root configuration structure.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Theme      ThemeConfig      `yaml:"theme"`
	HTML       HTMLConfig       `yaml:"html"`
	TUI        TUIConfig        `yaml:"tui"`
	Validation ValidationConfig `yaml:"validate"`
	OpenAPI    OpenAPIConfig    `yaml:"openapi"`
	// Preset points at a presentation preset applied to the descriptor.
	Preset string `yaml:"preset,omitempty"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// ThemeConfig mirrors the go-theme renderer configuration.
type ThemeConfig struct {
	Name     string            `yaml:"name"`
	Variant  string            `yaml:"variant"`
	Partials map[string]string `yaml:"partials,omitempty"`
	Tokens   map[string]string `yaml:"tokens,omitempty"`
	CSSVars  map[string]string `yaml:"css_vars,omitempty"`
	Assets   map[string]string `yaml:"assets,omitempty"`
}

// HTMLConfig configures the HTML form renderer.
type HTMLConfig struct {
	Action       string `yaml:"action"`
	Method       string `yaml:"method"`
	SubmitLabel  string `yaml:"submit_label"`
	TemplatesDir string `yaml:"templates_dir,omitempty"`
}

// TUIConfig configures the terminal authoring renderer.
type TUIConfig struct {
	Format string `yaml:"format"` // "json", "yaml" or "pretty"
}

// ValidationConfig configures document validation.
type ValidationConfig struct {
	FillSlug bool `yaml:"fill_slug"`
}

// OpenAPIConfig configures the OpenAPI export.
type OpenAPIConfig struct {
	Version string `yaml:"version"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads path, expands environment variables, applies defaults and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	setDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.HTML.Method == "" {
		cfg.HTML.Method = "post"
	}
	if cfg.HTML.SubmitLabel == "" {
		cfg.HTML.SubmitLabel = "Save"
	}
	if cfg.TUI.Format == "" {
		cfg.TUI.Format = string(tui.OutputFormatJSON)
	}
	if cfg.OpenAPI.Version == "" {
		cfg.OpenAPI.Version = "1.0.0"
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not a known level", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	switch strings.ToLower(c.HTML.Method) {
	case "get", "post":
	default:
		errs = append(errs, fmt.Errorf("html.method must be get or post, got %q", c.HTML.Method))
	}
	if _, ok := tui.ParseOutputFormat(c.TUI.Format); !ok {
		errs = append(errs, fmt.Errorf("tui.format %q is not supported", c.TUI.Format))
	}
	return errors.Join(errs...)
}

// RendererTheme converts the theme section into a go-theme renderer
// configuration. It returns nil when no theme is named.
func (c *Config) RendererTheme() *theme.RendererConfig {
	t := c.Theme
	if strings.TrimSpace(t.Name) == "" {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:    t.Name,
		Variant:  t.Variant,
		Partials: t.Partials,
		Tokens:   t.Tokens,
		CSSVars:  t.CSSVars,
	}
	if len(t.Assets) > 0 {
		assets := make(map[string]string, len(t.Assets))
		for key, value := range t.Assets {
			assets[key] = value
		}
		cfg.AssetURL = func(key string) string {
			return assets[key]
		}
	}
	return cfg
}
