package render

import (
	"strings"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

// ApplySubset returns the descriptor fields named in only, in descriptor
// order. Unknown names are ignored; an empty subset keeps every field.
func ApplySubset(desc schema.DocumentType, only []string) []schema.Field {
	tokens := normaliseTokens(only)
	if len(tokens) == 0 {
		return desc.Fields
	}

	filtered := make([]schema.Field, 0, len(tokens))
	for _, field := range desc.Fields {
		if _, ok := tokens[field.Name]; ok {
			filtered = append(filtered, field)
		}
	}
	return filtered
}

func normaliseTokens(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out[trimmed] = struct{}{}
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
