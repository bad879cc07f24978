// Package template defines the seam between form renderers and the template
// engine that executes their markup.
package template

import "io"

// TemplateRenderer executes named templates or inline template text. When
// writers are supplied the rendered output is also copied to each of them.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
}
