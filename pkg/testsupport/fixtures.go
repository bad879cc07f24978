package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ValidItem returns a fresh clothing item document that satisfies every
// constraint. Callers may mutate the returned map.
func ValidItem() map[string]any {
	doc := ClassicTee()
	doc["slug"] = map[string]any{"_type": "slug", "current": "classic-tee"}
	doc["tags"] = []any{"new arrival"}
	doc["seoTitle"] = "Classic Tee | Everyday cotton t-shirt"
	doc["seoDescription"] = "A soft cotton t-shirt for everyday wear, available in black and white."
	return doc
}

// ClassicTee returns the minimal editor payload: every required field except
// the slug, which editors derive from the name.
func ClassicTee() map[string]any {
	return map[string]any{
		"_type":       "clothingItem",
		"name":        "Classic Tee",
		"description": "A soft cotton t-shirt for everyday wear.",
		"price":       19.99,
		"sizes":       []any{"S", "M", "L"},
		"colors":      []any{"black", "white"},
		"image": map[string]any{
			"_type": "image",
			"asset": map[string]any{
				"_type": "reference",
				"_ref":  "image-2f6b1c0e-1200x1200-jpg",
			},
		},
		"category": "shirts",
	}
}

// WriteFile writes data to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// CompareDocuments returns a diff string if the documents differ.
func CompareDocuments(want, got map[string]any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
