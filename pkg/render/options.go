package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the shared descriptor.
type RenderOptions struct {
	// Values pre-populates rendered controls keyed by top-level field name.
	// Slug and image values may use either the stored object shape or a plain
	// string.
	Values map[string]any
	// Errors surfaces validation feedback keyed by field name. Use
	// ErrorsFromResult or MapErrorPayload to build it.
	Errors map[string][]string
	// FormErrors are messages that do not belong to a single field.
	FormErrors []string
	// Hidden carries extra hidden inputs (document id, revision, ...).
	Hidden map[string]string
	// Only restricts rendering to the named fields, in descriptor order.
	Only []string
	// Locale and Translator localise labels, descriptions and messages.
	// Missing translations fall back to the descriptor text.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
	// Theme selects partials, tokens and CSS variables for HTML output.
	Theme *theme.RendererConfig
}
