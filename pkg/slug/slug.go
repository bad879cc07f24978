// Package slug derives URL-safe identifiers from a document's slug source
// field, mirroring what editors do when the slug is generated from the name.
package slug

import (
	"errors"
	"fmt"
	"strings"

	gosimple "github.com/gosimple/slug"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

var (
	// ErrNotSlugField is returned when the field is not of kind slug.
	ErrNotSlugField = errors.New("slug: field is not a slug field")
	// ErrSourceMissing is returned when the source value is absent or blank.
	ErrSourceMissing = errors.New("slug: source value is missing")
)

// Make slugifies text and truncates the result to maxLength characters
// without leaving a trailing separator. A maxLength of zero disables
// truncation.
func Make(text string, maxLength int) string {
	out := gosimple.Make(text)
	if maxLength <= 0 {
		return out
	}
	runes := []rune(out)
	if len(runes) <= maxLength {
		return out
	}
	return strings.TrimRight(string(runes[:maxLength]), "-")
}

// Generate builds the slug for field from its configured source in doc.
func Generate(field schema.Field, doc map[string]any) (string, error) {
	if field.Kind != schema.KindSlug {
		return "", fmt.Errorf("%w: %q", ErrNotSlugField, field.Name)
	}
	raw, ok := doc[field.Options.Source].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: %q", ErrSourceMissing, field.Options.Source)
	}
	out := Make(raw, field.Options.MaxLength)
	if out == "" {
		return "", fmt.Errorf("%w: %q has no sluggable characters", ErrSourceMissing, field.Options.Source)
	}
	return out, nil
}

// Value wraps a slug string in the stored document shape.
func Value(current string) map[string]any {
	return map[string]any{"_type": "slug", "current": current}
}

// Fill returns a shallow copy of doc with the slug populated when it is empty
// and its source is present. The boolean reports whether a slug was written.
// A descriptor without a slug field leaves the document unchanged.
func Fill(desc schema.DocumentType, doc map[string]any) (map[string]any, bool, error) {
	out := make(map[string]any, len(doc)+1)
	for key, value := range doc {
		out[key] = value
	}

	field, ok := desc.SlugField()
	if !ok || hasSlug(out[field.Name]) {
		return out, false, nil
	}

	current, err := Generate(field, out)
	if err != nil {
		if errors.Is(err, ErrSourceMissing) {
			return out, false, nil
		}
		return nil, false, err
	}
	out[field.Name] = Value(current)
	return out, true, nil
}

func hasSlug(value any) bool {
	switch v := value.(type) {
	case string:
		return v != ""
	case map[string]any:
		current, _ := v["current"].(string)
		return current != ""
	case map[string]string:
		return v["current"] != ""
	default:
		return false
	}
}
