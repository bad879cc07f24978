// Package html renders a document type descriptor as an HTML editing form.
// Markup comes from pongo2 templates embedded in the package; a theme can
// swap the template through its "form" partial.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/render"
	rendertemplate "github.com/biologist01/HACKATHON-THREE-2025/pkg/render/template"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/render/template/pongo"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

// Name is the registry key of the HTML renderer.
const Name = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	action           string
	method           string
	submitLabel      string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithAction sets the form action URL.
func WithAction(action string) Option {
	return func(cfg *config) {
		cfg.action = strings.TrimSpace(action)
	}
}

// WithMethod overrides the form method (default POST).
func WithMethod(method string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(method); trimmed != "" {
			cfg.method = strings.ToLower(trimmed)
		}
	}
}

// WithSubmitLabel overrides the submit button text.
func WithSubmitLabel(label string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			cfg.submitLabel = trimmed
		}
	}
}

type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	action      string
	method      string
	submitLabel string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:  TemplatesFS(),
		method:      "post",
		submitLabel: "Save",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:   renderer,
		action:      cfg.action,
		method:      cfg.method,
		submitLabel: cfg.submitLabel,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the editing form for desc. Values prefill controls and
// Errors render inline next to the offending field.
func (r *Renderer) Render(ctx context.Context, desc schema.DocumentType, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	localized := render.Localize(desc, options)
	themeCtx := buildThemeContext(options.Theme)

	view := formView{
		Name:        desc.Name,
		Title:       localized.Title,
		Action:      r.action,
		Method:      r.method,
		SubmitLabel: r.submitLabel,
		Theme:       themeCtx,
		FormErrors:  render.MergeFormErrors(options.FormErrors),
		Hidden: render.SortedHiddenFields(render.MergeHiddenFields(
			options.Hidden,
			render.SystemFields(desc.Name, options.Values)...,
		)),
	}
	for _, field := range render.ApplySubset(localized, options.Only) {
		view.Fields = append(view.Fields, buildFieldView(desc.Name, field, options.Values[field.Name], options.Errors[field.Name]))
	}

	templateName := DefaultTemplate
	if partial := strings.TrimSpace(themeCtx.Partials["form"]); partial != "" {
		templateName = partial
	}

	result, err := r.templates.RenderTemplate(templateName, map[string]any{
		"form": view,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}
