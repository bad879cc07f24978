package render

import (
	"errors"
	"strings"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

// ErrMissingTranslator is passed to the missing handler when options carry a
// locale but no translator.
var ErrMissingTranslator = errors.New("render: translator is not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what to show when a key cannot be
// translated. fallback is the descriptor text.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

func missingTranslationDefault(_, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// TranslationKey builds the lookup key for a descriptor text. Keys follow
// `<type>.<field>.<part>`, for example `clothingItem.price.min-value` or
// `clothingItem.category.options.shirts`.
func TranslationKey(parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			clean = append(clean, trimmed)
		}
	}
	return strings.Join(clean, ".")
}

// Localize returns a copy of desc whose title, labels, descriptions, option
// titles and constraint messages are translated. Without a locale desc is
// returned unchanged.
func Localize(desc schema.DocumentType, opts RenderOptions) schema.DocumentType {
	out := desc.Clone()
	if strings.TrimSpace(opts.Locale) == "" {
		return out
	}

	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	tr := func(fallback string, parts ...string) string {
		return translate(opts.Locale, TranslationKey(parts...), fallback, opts.Translator, onMissing)
	}

	out.Title = tr(out.Title, out.Name, "title")
	for i := range out.Fields {
		field := &out.Fields[i]
		field.Label = tr(field.Label, out.Name, field.Name, "label")
		field.Description = tr(field.Description, out.Name, field.Name, "description")
		for j := range field.Options.List {
			option := &field.Options.List[j]
			option.Title = tr(option.Title, out.Name, field.Name, "options", option.Value)
		}
		for j := range field.Constraints {
			constraint := &field.Constraints[j]
			constraint.Message = tr(constraint.Message, out.Name, field.Name, string(constraint.Kind))
		}
	}
	return out
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	if key == "" {
		return fallback
	}
	if t == nil {
		return onMissing(locale, key, fallback, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, fallback, err)
}
