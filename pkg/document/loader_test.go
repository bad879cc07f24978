package document_test

import (
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/clothing"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/document"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/testsupport"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/validation"
)

const teeJSON = `{
  "_type": "clothingItem",
  "name": "Classic Tee",
  "slug": {"_type": "slug", "current": "classic-tee"},
  "description": "A soft cotton t-shirt for everyday wear.",
  "price": 19.99,
  "sizes": ["S", "M", "L"],
  "colors": ["black", "white"],
  "image": {"_type": "image", "asset": {"_type": "reference", "_ref": "image-2f6b1c0e-1200x1200-jpg"}},
  "category": "shirts"
}`

const teeYAML = `_type: clothingItem
name: Classic Tee
slug:
  _type: slug
  current: classic-tee
description: A soft cotton t-shirt for everyday wear.
price: 19.99
sizes: [S, M, L]
colors: [black, white]
image:
  _type: image
  asset:
    _type: reference
    _ref: image-2f6b1c0e-1200x1200-jpg
category: shirts
`

func TestParse_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := document.Parse([]byte(teeJSON), "tee.json")
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	fromYAML, err := document.Parse([]byte(teeYAML), "tee.yaml")
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if diff := testsupport.CompareDocuments(fromJSON, fromYAML); diff != "" {
		t.Fatalf("json/yaml mismatch (-json +yaml):\n%s", diff)
	}

	desc := clothing.Describe()
	for name, doc := range map[string]map[string]any{"json": fromJSON, "yaml": fromYAML} {
		if result := validation.Validate(desc, doc); !result.Valid {
			t.Fatalf("%s document should validate, got %#v", name, result.Errors)
		}
	}
}

func TestParse_YAMLIntegerPrice(t *testing.T) {
	doc, err := document.Parse([]byte("price: -5\n"), "neg.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	field, _ := clothing.Describe().Field(clothing.FieldPrice)
	errs := validation.ValidateField(field, doc[clothing.FieldPrice])
	if len(errs) != 1 || errs[0].Message != clothing.MsgPrice {
		t.Fatalf("expected price error for integer yaml value, got %#v", errs)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		target error
	}{
		{name: "empty", data: "  \n"},
		{name: "array root", data: `["a", "b"]`, target: document.ErrNotObject},
		{name: "scalar root", data: "just text", target: document.ErrNotObject},
		{name: "broken", data: "{\"name\": [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := document.Parse([]byte(tc.data), tc.name)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.target != nil && !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
		})
	}
}

func TestLoadFS_SortedAndFiltered(t *testing.T) {
	fsys := fstest.MapFS{
		"b/tee.yaml":  {Data: []byte(teeYAML)},
		"a/tee.json":  {Data: []byte(teeJSON)},
		"notes.txt":   {Data: []byte("ignored")},
		"c/empty.yml": {Data: []byte("name: Scarf\n")},
	}

	entries, err := document.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var got []string
	for _, entry := range entries {
		got = append(got, entry.Source)
		if entry.Kind != document.SourceKindFS {
			t.Fatalf("unexpected kind %q", entry.Kind)
		}
	}
	if diff := cmp.Diff([]string{"a/tee.json", "b/tee.yaml", "c/empty.yml"}, got); diff != "" {
		t.Fatalf("entry order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_Nil(t *testing.T) {
	entries, err := document.LoadFS(nil)
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected no entries, got %v, %v", entries, err)
	}
}

func TestLoadFS_PropagatesParseError(t *testing.T) {
	fsys := fstest.MapFS{"bad.json": {Data: []byte("[1, 2]")}}
	if _, err := document.LoadFS(fsys); !errors.Is(err, document.ErrNotObject) {
		t.Fatalf("expected ErrNotObject, got %v", err)
	}
}

func TestLoadPaths_FilesAndDirectories(t *testing.T) {
	dir := t.TempDir()
	single := testsupport.WriteFile(t, dir, "single.json", []byte(teeJSON))
	nested := filepath.Join(dir, "catalog")
	testsupport.WriteFile(t, nested, "tee.yaml", []byte(teeYAML))

	entries, err := document.LoadPaths(single, nested)
	if err != nil {
		t.Fatalf("load paths: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Source != single {
		t.Fatalf("unexpected first source %q", entries[0].Source)
	}
	if want := filepath.Join(nested, "tee.yaml"); entries[1].Source != want {
		t.Fatalf("unexpected nested source %q, want %q", entries[1].Source, want)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := document.LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
