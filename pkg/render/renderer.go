package render

import (
	"context"

	"github.com/biologist01/HACKATHON-THREE-2025/pkg/schema"
)

// Renderer turns a document type descriptor into a byte representation (an
// HTML editing form, a terminal session transcript, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, desc schema.DocumentType, options RenderOptions) ([]byte, error)
}
