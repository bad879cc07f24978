package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/clothing"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/document"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/render"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/renderers/html"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/renderers/tui"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/slug"
	"github.com/biologist01/HACKATHON-THREE-2025/pkg/validation"
)

const defaultRendererName = html.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithDescriptor replaces the clothing item descriptor.
func WithDescriptor(desc schema.DocumentType) Option {
	return func(o *Orchestrator) {
		clone := desc.Clone()
		o.descriptor = &clone
	}
}

// WithRegistry injects a renderer registry. The built-in renderers are not
// registered when a registry is supplied.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithHTMLOptions forwards options to the built-in HTML renderer.
func WithHTMLOptions(options ...html.Option) Option {
	return func(o *Orchestrator) {
		o.htmlOptions = append(o.htmlOptions, options...)
	}
}

// WithTUIOptions forwards options to the built-in terminal renderer.
func WithTUIOptions(options ...tui.Option) Option {
	return func(o *Orchestrator) {
		o.tuiOptions = append(o.tuiOptions, options...)
	}
}

// WithSchemaTransformer registers a Transformer that adjusts the descriptor
// before rendering. Documents are still validated against the configured
// descriptor, so transformers should only change presentation.
func WithSchemaTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithSlugFill derives missing slugs from their source field before
// documents are validated.
func WithSlugFill(enabled bool) Option {
	return func(o *Orchestrator) {
		o.fillSlug = enabled
	}
}

// WithTheme sets the theme applied to requests that do not carry one.
func WithTheme(cfg theme.RendererConfig) Option {
	return func(o *Orchestrator) {
		c := cfg
		o.theme = &c
	}
}

// Orchestrator coordinates document preparation and rendering. It applies
// defaults (clothing descriptor, html and tui renderers) while remaining open
// to dependency injection.
type Orchestrator struct {
	descriptor      *schema.DocumentType
	registry        *render.Registry
	defaultRenderer string
	htmlOptions     []html.Option
	tuiOptions      []tui.Option
	transformer     Transformer
	fillSlug        bool
	theme           *theme.RendererConfig
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one rendering run.
type Request struct {
	// Renderer names the renderer to use. Empty selects the default.
	Renderer string

	// Values prefill the form. When ValidateValues is set they are validated
	// first and the failures surface as inline errors.
	Values         map[string]any
	ValidateValues bool

	// RenderOptions carries the remaining per-request instructions. Values and
	// Errors set here are merged with the ones derived from Values.
	RenderOptions render.RenderOptions
}

// Response is the rendered output with its content type and, when the
// request validated its values, the validation result.
type Response struct {
	Output      []byte
	ContentType string
	Result      *validation.Result
}

// Report pairs a loaded document with its validation result.
type Report struct {
	Entry  document.Entry
	Result validation.Result
	// SlugFilled reports whether the slug was derived during preparation.
	SlugFilled bool
}

// Descriptor returns a copy of the configured document type after the
// schema transformer ran.
func (o *Orchestrator) Descriptor(ctx context.Context) (schema.DocumentType, error) {
	if err := o.initialiseErr; err != nil {
		return schema.DocumentType{}, err
	}
	desc := o.descriptor.Clone()
	if o.transformer == nil {
		return desc, nil
	}
	if err := o.transformer.Transform(ctx, &desc); err != nil {
		return schema.DocumentType{}, fmt.Errorf("orchestrator: transform descriptor: %w", err)
	}
	return desc, nil
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Prepare fills the slug when enabled and validates doc. The returned map is
// a copy; doc is never modified.
func (o *Orchestrator) Prepare(ctx context.Context, doc map[string]any) (map[string]any, validation.Result, bool, error) {
	if ctx == nil {
		return nil, validation.Result{}, false, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, validation.Result{}, false, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, validation.Result{}, false, err
	}

	prepared := make(map[string]any, len(doc))
	for key, value := range doc {
		prepared[key] = value
	}
	filled := false
	if o.fillSlug {
		var err error
		prepared, filled, err = slug.Fill(*o.descriptor, prepared)
		if err != nil {
			return nil, validation.Result{}, false, fmt.Errorf("orchestrator: fill slug: %w", err)
		}
	}
	return prepared, validation.Validate(*o.descriptor, prepared), filled, nil
}

// Validate prepares and validates every entry, preserving order.
func (o *Orchestrator) Validate(ctx context.Context, entries []document.Entry) ([]Report, error) {
	reports := make([]Report, 0, len(entries))
	for _, entry := range entries {
		prepared, result, filled, err := o.Prepare(ctx, entry.Fields)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: %s: %w", entry.Source, err)
		}
		entry.Fields = prepared
		reports = append(reports, Report{Entry: entry, Result: result, SlugFilled: filled})
	}
	return reports, nil
}

// Generate renders the descriptor with the requested renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Response, error) {
	if ctx == nil {
		return Response{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Response{}, err
	}

	desc, err := o.Descriptor(ctx)
	if err != nil {
		return Response{}, err
	}

	name, err := o.rendererName(req.Renderer)
	if err != nil {
		return Response{}, err
	}

	opts := req.RenderOptions
	if opts.Theme == nil && o.theme != nil {
		cfg := *o.theme
		opts.Theme = &cfg
	}

	var resp Response
	if req.Values != nil {
		values := req.Values
		if req.ValidateValues {
			prepared, result, _, err := o.Prepare(ctx, req.Values)
			if err != nil {
				return Response{}, err
			}
			values = prepared
			resp.Result = &result
			opts.Errors = mergeErrors(opts.Errors, render.ErrorsFromResult(result))
		}
		opts.Values = mergeValues(values, opts.Values)
	}

	output, contentType, err := o.registry.Render(ctx, name, desc, opts)
	if err != nil {
		return Response{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	resp.Output = output
	resp.ContentType = contentType
	return resp, nil
}

// rendererName resolves the requested renderer, falling back to the default
// and then to the first registered one when no name was requested.
func (o *Orchestrator) rendererName(name string) (string, error) {
	if o.registry == nil {
		return "", errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		if o.registry.Has(target) {
			return target, nil
		}
		if name != "" {
			return "", fmt.Errorf("orchestrator: %w: %q", render.ErrUnknownRenderer, name)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return "", errors.New("orchestrator: no renderers registered")
	}
	return names[0], nil
}

func (o *Orchestrator) applyDefaults() {
	if o.descriptor == nil {
		desc := clothing.Describe()
		o.descriptor = &desc
	}
	if err := o.descriptor.Check(); err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: descriptor: %w", err)
		return
	}
	if o.registry != nil {
		return
	}

	o.registry = render.NewRegistry()
	htmlRenderer, err := html.New(o.htmlOptions...)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: html renderer: %w", err)
		return
	}
	tuiRenderer, err := tui.New(o.tuiOptions...)
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: tui renderer: %w", err)
		return
	}
	o.registry.MustRegister(htmlRenderer, tuiRenderer)
}

func mergeValues(base, override map[string]any) map[string]any {
	if len(override) == 0 {
		return base
	}
	out := make(map[string]any, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}

func mergeErrors(dst, src map[string][]string) map[string][]string {
	if len(src) == 0 {
		return dst
	}
	out := make(map[string][]string, len(dst)+len(src))
	for key, messages := range dst {
		out[key] = append([]string(nil), messages...)
	}
	for key, messages := range src {
		out[key] = append(out[key], messages...)
	}
	return out
}
