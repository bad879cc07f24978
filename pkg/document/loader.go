package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotObject is returned when a file decodes to something other than a
// mapping.
var ErrNotObject = errors.New("document: root is not an object")

// SourceKind records how an entry was located.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
)

// Entry is a decoded document together with its origin.
type Entry struct {
	Source string
	Kind   SourceKind
	Fields map[string]any
}

// Parse decodes data as JSON, falling back to YAML. source only labels errors.
func Parse(data []byte, source string) (map[string]any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("document: file %s is empty", source)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		if yamlErr := yaml.Unmarshal(data, &raw); yamlErr != nil {
			return nil, fmt.Errorf("document: parse %s: invalid JSON or YAML", source)
		}
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotObject, source)
	}
	return doc, nil
}

// LoadFile reads and parses a single file.
func LoadFile(name string) (Entry, error) {
	clean := filepath.Clean(name)
	data, err := os.ReadFile(clean)
	if err != nil {
		return Entry{}, fmt.Errorf("document: read %s: %w", clean, err)
	}
	fields, err := Parse(data, clean)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Source: clean, Kind: SourceKindFile, Fields: fields}, nil
}

// LoadFS walks fsys and parses every .json, .yaml and .yml file, ordered by
// path. A nil fsys yields no entries.
func LoadFS(fsys fs.FS) ([]Entry, error) {
	if fsys == nil {
		return nil, nil
	}

	var names []string
	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !IsDocumentFile(name) {
			return nil
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("document: walk: %w", err)
	}
	sort.Strings(names)

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("document: read %s: %w", name, err)
		}
		fields, err := Parse(data, name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Source: name, Kind: SourceKindFS, Fields: fields})
	}
	return entries, nil
}

// LoadPaths loads each argument, expanding directories with LoadFS. Entries
// found inside a directory keep the directory prefix in Source.
func LoadPaths(paths ...string) ([]Entry, error) {
	var entries []Entry
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("document: stat %s: %w", p, err)
		}
		if !info.IsDir() {
			entry, err := LoadFile(p)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
			continue
		}

		found, err := LoadFS(os.DirFS(p))
		if err != nil {
			return nil, fmt.Errorf("%w (in %s)", err, p)
		}
		for _, entry := range found {
			entry.Source = filepath.Join(p, filepath.FromSlash(entry.Source))
			entry.Kind = SourceKindFile
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// IsDocumentFile reports whether name carries a supported extension.
func IsDocumentFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
