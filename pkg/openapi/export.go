package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

// Extension keys attached to exported schemas.
const (
	ExtensionKind       = "x-cms-kind"
	ExtensionOptions    = "x-cms-options"
	ExtensionValidation = "x-cms-validation"
)

const openAPIVersion = "3.0.3"

// Schema converts a document type into an OpenAPI object schema. Required
// constraints populate the object's required list; bounds map onto
// minLength/maxLength, minItems/maxItems, minimum and enum. The original
// constraint records (with their editor messages) travel in the
// x-cms-validation extension.
func Schema(desc schema.DocumentType) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	root.Title = desc.Title
	root.Extensions = map[string]any{ExtensionKind: "document"}

	var required []string
	for _, field := range desc.Fields {
		root.WithProperty(field.Name, fieldSchema(field))
		if field.Required() {
			required = append(required, field.Name)
		}
	}
	root.Required = required
	return root
}

// Export wraps the document type schema in an OpenAPI document under
// components.schemas, validates it, and returns the JSON encoding.
func Export(ctx context.Context, desc schema.DocumentType, version string) ([]byte, error) {
	doc, err := Document(ctx, desc, version)
	if err != nil {
		return nil, err
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: encode document: %w", err)
	}
	return payload, nil
}

// Document builds and validates the OpenAPI document for desc.
func Document(ctx context.Context, desc schema.DocumentType, version string) (*openapi3.T, error) {
	if ctx == nil {
		return nil, errors.New("openapi: context is required")
	}
	if strings.TrimSpace(desc.Name) == "" {
		return nil, errors.New("openapi: document type name is required")
	}
	if strings.TrimSpace(version) == "" {
		version = "1.0.0"
	}

	title := desc.Title
	if title == "" {
		title = desc.Name
	}

	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				desc.Name: openapi3.NewSchemaRef("", Schema(desc)),
			},
		},
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate export: %w", err)
	}
	return doc, nil
}

func fieldSchema(field schema.Field) *openapi3.Schema {
	var s *openapi3.Schema
	switch field.Kind {
	case schema.KindNumber:
		s = &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeNumber}}
	case schema.KindStringArray, schema.KindColorArray, schema.KindTagArray:
		s = openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
	case schema.KindSlug:
		s = slugSchema(field.Required())
	case schema.KindImageReference:
		s = imageSchema(field.Required(), field.Options.Hotspot)
	default:
		s = openapi3.NewStringSchema()
	}

	s.Title = field.Label
	s.Description = field.Description
	s.Extensions = map[string]any{ExtensionKind: string(field.Kind)}
	if opts := optionsExtension(field.Options); len(opts) > 0 {
		s.Extensions[ExtensionOptions] = opts
	}
	if len(field.Constraints) > 0 {
		s.Extensions[ExtensionValidation] = field.Constraints
	}

	applyConstraints(s, field)
	return s
}

func applyConstraints(s *openapi3.Schema, field schema.Field) {
	isArray := field.Kind.IsArray()
	isText := field.Kind.IsText()

	for _, c := range field.Constraints {
		switch c.Kind {
		case schema.ConstraintRequired:
			switch {
			case isArray && s.MinItems < 1:
				s.WithMinItems(1)
			case isText && s.MinLength < 1:
				s.WithMinLength(1)
			}
		case schema.ConstraintMaxLength:
			switch {
			case isArray:
				s.WithMaxItems(int64(c.Value))
			case isText:
				s.WithMaxLength(int64(c.Value))
			case field.Kind == schema.KindSlug:
				if current := s.Properties["current"]; current != nil && current.Value != nil {
					current.Value.WithMaxLength(int64(c.Value))
				}
			}
		case schema.ConstraintMinLength:
			if isArray {
				s.WithMinItems(int64(c.Value))
			} else if isText {
				s.WithMinLength(int64(c.Value))
			}
		case schema.ConstraintMinValue:
			if field.Kind == schema.KindNumber {
				s.WithMin(c.Value)
			}
		case schema.ConstraintOneOf:
			values := field.Options.Values()
			enum := make([]any, len(values))
			for i, v := range values {
				enum[i] = v
			}
			s.WithEnum(enum...)
		}
	}
}

func slugSchema(required bool) *openapi3.Schema {
	current := openapi3.NewStringSchema()
	s := openapi3.NewObjectSchema().
		WithProperty("_type", openapi3.NewStringSchema()).
		WithProperty("current", current)
	if required {
		current.WithMinLength(1)
		s.Required = []string{"current"}
	}
	return s
}

func imageSchema(required, hotspot bool) *openapi3.Schema {
	ref := openapi3.NewStringSchema()
	asset := openapi3.NewObjectSchema().
		WithProperty("_type", openapi3.NewStringSchema()).
		WithProperty("_ref", ref)
	s := openapi3.NewObjectSchema().
		WithProperty("_type", openapi3.NewStringSchema()).
		WithProperty("asset", asset)
	if hotspot {
		number := func() *openapi3.Schema {
			return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeNumber}}
		}
		s.WithProperty("hotspot", openapi3.NewObjectSchema().
			WithProperty("x", number()).
			WithProperty("y", number()).
			WithProperty("width", number()).
			WithProperty("height", number()))
	}
	if required {
		ref.WithMinLength(1)
		asset.Required = []string{"_ref"}
		s.Required = []string{"asset"}
	}
	return s
}

func optionsExtension(opts schema.FieldOptions) map[string]any {
	out := make(map[string]any)
	if opts.Source != "" {
		out["source"] = opts.Source
	}
	if opts.MaxLength > 0 {
		out["maxLength"] = opts.MaxLength
	}
	if opts.Layout != "" {
		out["layout"] = opts.Layout
	}
	if len(opts.List) > 0 {
		out["list"] = opts.List
	}
	if opts.Hotspot {
		out["hotspot"] = true
	}
	return out
}
