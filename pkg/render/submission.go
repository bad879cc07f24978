package render

import (
	"fmt"
	"sort"
	"strings"
)

// System keys carried through an editing form as hidden inputs.
var systemKeys = []string{"_id", "_type", "_rev"}

// HiddenField is a hidden form input emitted alongside the visible fields.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// SystemFields extracts document system keys (`_id`, `_type`, `_rev`) from
// values so that a re-submitted form keeps the document identity. typeName
// fills `_type` when values do not carry one.
func SystemFields(typeName string, values map[string]any) []HiddenField {
	var out []HiddenField
	for _, key := range systemKeys {
		value, ok := values[key]
		if !ok || value == nil || fmt.Sprint(value) == "" {
			if key == "_type" && typeName != "" {
				out = append(out, Hidden(key, typeName))
			}
			continue
		}
		out = append(out, Hidden(key, value))
	}
	return out
}

// MergeHiddenFields returns a copy of base with the provided fields applied.
// Empty names are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	if len(base) == 0 && len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		if field.Name == "" {
			continue
		}
		out[field.Name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields returns fields ordered by name for deterministic output.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	result := make([]HiddenField, 0, len(fields))
	for name, value := range fields {
		result = append(result, HiddenField{Name: name, Value: value})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
