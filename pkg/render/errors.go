package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/validation"
)

// ErrorMapping splits an error payload into field-level and form-level
// messages keyed by top-level field name.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// ErrorsFromResult groups validation errors by field, keeping the order in
// which the validator reported them.
func ErrorsFromResult(result validation.Result) map[string][]string {
	if len(result.Errors) == 0 {
		return nil
	}
	out := make(map[string][]string)
	for _, fieldErr := range result.Errors {
		out[fieldErr.Field] = append(out[fieldErr.Field], fieldErr.Message)
	}
	for field, messages := range out {
		out[field] = normalizeMessages(messages)
	}
	return out
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload normalises error payloads keyed by JSON pointer, dotted or
// bracket paths (`/body/slug/current`, `image.asset._ref`, `sizes[0]`) onto
// the descriptor's field names. Unknown paths become form-level errors so
// messages are not lost.
func MapErrorPayload(desc schema.DocumentType, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{
		Fields: make(map[string][]string),
	}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	fieldNames := make(map[string]struct{}, len(desc.Fields))
	for _, field := range desc.Fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			fieldNames[name] = struct{}{}
		}
	}

	rawPaths := make([]string, 0, len(payload))
	for rawPath := range payload {
		rawPaths = append(rawPaths, rawPath)
	}
	sort.Strings(rawPaths)

	for _, rawPath := range rawPaths {
		messages := normalizeMessages(payload[rawPath])
		if len(messages) == 0 {
			continue
		}

		mapped, formLevel := mapErrorPath(rawPath, fieldNames)
		if formLevel {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		mapping.Fields[mapped] = normalizeMessages(append(mapping.Fields[mapped], messages...))
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// mapErrorPath strips wrapper and index segments and returns the first
// remaining segment when it names a field.
func mapErrorPath(raw string, fieldNames map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", true
	}

	segments := stripNumericSegments(dropWrapperSegments(parsePathSegments(trimmed)))
	if len(segments) == 0 {
		return "", true
	}
	if _, ok := fieldNames[segments[0]]; ok {
		return segments[0], false
	}
	return "", true
}

func parsePathSegments(path string) []string {
	if path == "" {
		return nil
	}

	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = strings.TrimPrefix(clean, "#")
		clean = strings.TrimPrefix(clean, "/")
		clean = strings.TrimPrefix(clean, ".")
		clean = strings.TrimPrefix(clean, "$")
	}

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
	"document":   {},
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		if _, ok := wrapperSegments[strings.ToLower(out[0])]; !ok {
			break
		}
		out = out[1:]
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	if len(segments) == 0 {
		return segments
	}

	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
