package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// DefaultTemplate is the form template used when the theme does not name a
// "form" partial.
const DefaultTemplate = "templates/form.tmpl"

// TemplatesFS exposes the embedded template bundle so callers can copy or
// extend it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
