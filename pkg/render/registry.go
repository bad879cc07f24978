package render

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

var (
	// ErrUnknownRenderer is returned when a name has no registered renderer.
	ErrUnknownRenderer = errors.New("render: unknown renderer")
	// ErrDuplicateRenderer is returned when a name is registered twice.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
)

// Registry maps output names (html, tui) to renderers. It is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Renderer)}
}

// Register adds renderers under their Name(). Either every renderer is added
// or, on the first invalid or duplicate name, none is.
func (r *Registry) Register(renderers ...Renderer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := make(map[string]Renderer, len(renderers))
	for _, renderer := range renderers {
		if renderer == nil {
			return errors.New("render: renderer is required")
		}
		name := strings.TrimSpace(renderer.Name())
		if name == "" {
			return errors.New("render: renderer name is required")
		}
		_, registered := r.byName[name]
		_, repeated := pending[name]
		if registered || repeated {
			return fmt.Errorf("%w: %q", ErrDuplicateRenderer, name)
		}
		pending[name] = renderer
	}
	maps.Copy(r.byName, pending)
	return nil
}

// MustRegister is Register for wiring that cannot fail at runtime.
func (r *Registry) MustRegister(renderers ...Renderer) {
	if err := r.Register(renderers...); err != nil {
		panic(err)
	}
}

// Lookup returns the renderer registered as name.
func (r *Registry) Lookup(name string) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.byName[name]
	return renderer, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.byName))
}

// Render renders desc with the renderer registered as name and returns the
// output together with that renderer's content type.
func (r *Registry) Render(ctx context.Context, name string, desc schema.DocumentType, options RenderOptions) ([]byte, string, error) {
	renderer, ok := r.Lookup(name)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownRenderer, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	out, err := renderer.Render(ctx, desc, options)
	if err != nil {
		return nil, "", fmt.Errorf("render: %s: %w", name, err)
	}
	return out, renderer.ContentType(), nil
}
