// Package clothingschema is the top-level entry point for the clothing item
// content schema: descriptor, validation, OpenAPI export and form rendering.
package clothingschema

import (
	"context"
	"io/fs"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/clothing"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/document"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/openapi"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/orchestrator"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/render"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/renderers/html"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/slug"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/validation"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// Result is the outcome of validating one document.
type Result = validation.Result

// Describe returns a fresh copy of the clothing item descriptor.
func Describe() schema.DocumentType {
	return clothing.Describe()
}

// Validate checks doc against the clothing item descriptor.
func Validate(doc map[string]any) Result {
	return validation.Validate(clothing.Describe(), doc)
}

// DecodeItem validates doc and returns its typed form with the slug filled
// in. Validation failures come back as a *validation.Error.
func DecodeItem(doc map[string]any) (clothing.Item, error) {
	desc := clothing.Describe()
	if err := validation.Validate(desc, doc).Err(); err != nil {
		return clothing.Item{}, err
	}
	filled, _, err := slug.Fill(desc, doc)
	if err != nil {
		return clothing.Item{}, err
	}
	return clothing.ItemFromDocument(filled)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the editing form. When values is non-nil the form is
// prefilled and validation failures render inline.
func GenerateHTML(ctx context.Context, values map[string]any, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	resp, err := gen.Generate(ctx, orchestrator.Request{
		Renderer:       html.Name,
		Values:         values,
		ValidateValues: values != nil,
	})
	if err != nil {
		return nil, err
	}
	return resp.Output, nil
}

// ExportOpenAPI returns the clothing item schema as an OpenAPI 3 JSON
// document.
func ExportOpenAPI(ctx context.Context, version string) ([]byte, error) {
	return openapi.Export(ctx, clothing.Describe(), version)
}

// LoadDocuments reads JSON or YAML documents from files and directories.
func LoadDocuments(paths ...string) ([]document.Entry, error) {
	return document.LoadPaths(paths...)
}

// EmbeddedTemplates exposes the built-in HTML form templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
