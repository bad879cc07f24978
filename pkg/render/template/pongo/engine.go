// Package pongo implements template.TemplateRenderer on top of pongo2.
package pongo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/render/template"
)

const defaultExtension = ".tmpl"

// Option configures an Engine during New. Loaders are consulted in the order
// their options were given.
type Option func(*Engine) error

// WithBaseDir adds a loader for templates stored on disk under dir.
func WithBaseDir(dir string) Option {
	return func(e *Engine) error {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return nil
		}
		loader, err := pongo2.NewLocalFileSystemLoader(dir)
		if err != nil {
			return fmt.Errorf("pongo: template dir %s: %w", dir, err)
		}
		e.loaders = append(e.loaders, loader)
		return nil
	}
}

// WithFS adds a loader for templates stored in files.
func WithFS(files fs.FS) Option {
	return func(e *Engine) error {
		if files != nil {
			e.loaders = append(e.loaders, pongo2.NewFSLoader(files))
		}
		return nil
	}
}

// WithExtension sets the extension appended to template names that have none.
func WithExtension(ext string) Option {
	return func(e *Engine) error {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return nil
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		e.ext = ext
		return nil
	}
}

// WithGlobalData makes values visible to every template. Later calls win on
// key collisions.
func WithGlobalData(data map[string]any) Option {
	return func(e *Engine) error {
		for key, value := range data {
			if key = strings.TrimSpace(key); key != "" {
				e.globals[key] = value
			}
		}
		return nil
	}
}

// Engine executes templates from a pongo2 template set. Compiled file
// templates are cached by name; rendering is safe for concurrent use.
type Engine struct {
	set      *pongo2.TemplateSet
	loaders  []pongo2.TemplateLoader
	globals  pongo2.Context
	ext      string
	compiled sync.Map // file name -> *pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an Engine. At least one of WithFS or WithBaseDir is required.
func New(options ...Option) (*Engine, error) {
	e := &Engine{ext: defaultExtension, globals: pongo2.Context{}}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	if len(e.loaders) == 0 {
		return nil, errors.New("pongo: no template source configured")
	}

	e.set = pongo2.NewSet("clothing-schema", e.loaders...)
	e.set.Globals.Update(e.globals)
	return e, nil
}

// RenderTemplate executes the named template file.
func (e *Engine) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is not initialised")
	}
	file := e.fileName(name)
	tmpl, err := e.template(file)
	if err != nil {
		return "", err
	}
	return execute(tmpl, file, data, out)
}

// template compiles file on first use. FromFile tries every loader in order,
// so a directory can override templates shipped in an fs.FS.
func (e *Engine) template(file string) (*pongo2.Template, error) {
	if cached, ok := e.compiled.Load(file); ok {
		return cached.(*pongo2.Template), nil
	}
	tmpl, err := e.set.FromFile(file)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", file, err)
	}
	actual, _ := e.compiled.LoadOrStore(file, tmpl)
	return actual.(*pongo2.Template), nil
}

// RenderString compiles and executes templateContent. The compiled template
// is not cached.
func (e *Engine) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is not initialised")
	}
	tmpl, err := e.set.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("pongo: compile inline template: %w", err)
	}
	return execute(tmpl, "inline", data, out)
}

// RegisterFilter exposes fn to templates as name. pongo2 keeps filters in a
// process-wide table, so a name can only be registered once.
func (e *Engine) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	name = strings.TrimSpace(name)
	if name == "" || fn == nil {
		return errors.New("pongo: filter needs a name and a function")
	}
	if pongo2.FilterExists(name) {
		return fmt.Errorf("pongo: filter %q is already registered", name)
	}
	return pongo2.RegisterFilter(name, adaptFilter(name, fn))
}

func (e *Engine) fileName(name string) string {
	if path.Ext(name) == "" {
		return name + e.ext
	}
	return name
}

func execute(tmpl *pongo2.Template, label string, data any, out []io.Writer) (string, error) {
	ctx, err := contextOf(data)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("pongo: execute %q: %w", label, err)
	}
	if len(out) > 0 {
		if _, err := io.MultiWriter(out...).Write(buf.Bytes()); err != nil {
			return "", fmt.Errorf("pongo: write %q: %w", label, err)
		}
	}
	return buf.String(), nil
}

// contextOf accepts map data only. Structs nested inside the map are
// resolved by pongo2 through their exported fields.
func contextOf(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	default:
		return nil, fmt.Errorf("pongo: template data must be a map, got %T", data)
	}
}

func adaptFilter(name string, fn func(input any, param any) (any, error)) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
}

func init() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(strings.TrimSpace(in.String())), nil
		})
	}
}
