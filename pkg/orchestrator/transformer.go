package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

// Transformer mutates a descriptor copy before it reaches a renderer.
type Transformer interface {
	Transform(ctx context.Context, desc *schema.DocumentType) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, desc *schema.DocumentType) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, desc *schema.DocumentType) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, desc)
}

// PresetTransformer applies declarative presentation overrides loaded from
// a JSON or YAML document:
//
//	{
//	  "title": "Product",
//	  "fields": {
//	    "name": {"label": "Title", "description": "Shown on listings"},
//	    "category": {"options": {"outerwear": "Coats & Jackets"}}
//	  }
//	}
type PresetTransformer struct {
	document presetDocument
}

type presetDocument struct {
	Title  string                 `yaml:"title"`
	Fields map[string]fieldPreset `yaml:"fields"`
}

type fieldPreset struct {
	Label       string            `yaml:"label"`
	Description *string           `yaml:"description"`
	Options     map[string]string `yaml:"options"`
}

// NewPresetTransformer constructs a transformer from raw JSON or YAML bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{document: document}, nil
}

// NewPresetTransformerFromFS loads a preset document from fsys.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the preset onto desc. Unknown fields and option values
// are errors so stale presets are noticed.
func (t *PresetTransformer) Transform(ctx context.Context, desc *schema.DocumentType) error {
	if desc == nil {
		return errors.New("preset transformer: descriptor is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if title := strings.TrimSpace(t.document.Title); title != "" {
		desc.Title = title
	}
	for name, patch := range t.document.Fields {
		field := findField(desc.Fields, name)
		if field == nil {
			return fmt.Errorf("preset transformer: field %q not found", name)
		}
		if err := applyFieldPreset(field, patch); err != nil {
			return err
		}
	}
	return nil
}

func applyFieldPreset(field *schema.Field, patch fieldPreset) error {
	if label := strings.TrimSpace(patch.Label); label != "" {
		field.Label = label
	}
	if patch.Description != nil {
		field.Description = *patch.Description
	}
	for value, title := range patch.Options {
		option := findOption(field.Options.List, value)
		if option == nil {
			return fmt.Errorf("preset transformer: field %q has no option %q", field.Name, value)
		}
		option.Title = title
	}
	return nil
}

func findField(fields []schema.Field, name string) *schema.Field {
	for idx := range fields {
		if fields[idx].Name == name {
			return &fields[idx]
		}
	}
	return nil
}

func findOption(options []schema.ListOption, value string) *schema.ListOption {
	for idx := range options {
		if options[idx].Value == value {
			return &options[idx]
		}
	}
	return nil
}
