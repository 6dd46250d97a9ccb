package driving

import (
	"context"

	"github.com/custodia-labs/bilingual-preview/internal/core/domain"
)

// PreviewService turns a bilingual export into a reviewable HTML page.
type PreviewService interface {
	// Generate loads the export, builds the page and writes it into the
	// project's preview directory. Nothing is written if any step fails.
	Generate(ctx context.Context, req PreviewRequest) (*PreviewResult, error)
}

// PreviewRequest carries everything a generation run needs.
type PreviewRequest struct {
	// InputPath is the bilingual JSON export.
	InputPath string

	// ProjectDir is the project whose preview/original.html is written.
	ProjectDir string

	// Settings controls presentation details.
	Settings domain.PreviewSettings
}

// PreviewResult describes a successful generation run.
type PreviewResult struct {
	// OutputPath is the file that was written.
	OutputPath string

	// Title is the page heading.
	Title string

	// SegmentCount is the number of row-groups in the page.
	SegmentCount int
}
