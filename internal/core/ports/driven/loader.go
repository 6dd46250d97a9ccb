package driven

import (
	"context"

	"github.com/custodia-labs/bilingual-preview/internal/core/domain"
)

// DocumentLoader reads a bilingual export from the filesystem.
type DocumentLoader interface {
	// Load returns the decoded document.
	// Returns domain.ErrInputNotFound before any parsing if path is not a file,
	// domain.ErrMalformedInput if decoding fails and
	// domain.ErrMissingField if a required field is absent.
	Load(ctx context.Context, path string) (*domain.BilingualDocument, error)
}
