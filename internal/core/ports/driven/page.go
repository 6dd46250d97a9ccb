package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/bilingual-preview/internal/core/domain"
)

// Page is a fully assembled comparison page held in memory.
type Page interface {
	// Title returns the heading shown at the top of the page.
	Title() string

	// Rows returns the number of row-groups (one per segment).
	Rows() int

	// Render serialises the page as an HTML document.
	Render(w io.Writer) error
}

// PageBuilder assembles a comparison page from a loaded document.
type PageBuilder interface {
	Build(ctx context.Context, doc *domain.BilingualDocument, settings domain.PreviewSettings) (Page, error)
}

// PageRenderer writes a page to a single output file.
type PageRenderer interface {
	// Write replaces the file at path with the rendered page.
	// Returns domain.ErrRenderFailure if the file cannot be written.
	Write(ctx context.Context, page Page, path string) error
}
