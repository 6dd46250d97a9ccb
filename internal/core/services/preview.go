package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/bilingual-preview/internal/core/domain"
	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driven"
	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driving"
	"github.com/custodia-labs/bilingual-preview/internal/logger"
)

// Ensure PreviewService implements the interface.
var _ driving.PreviewService = (*PreviewService)(nil)

// PreviewService generates bilingual comparison pages.
type PreviewService struct {
	loader   driven.DocumentLoader
	builder  driven.PageBuilder
	renderer driven.PageRenderer
}

// NewPreviewService creates a new preview service.
func NewPreviewService(
	loader driven.DocumentLoader,
	builder driven.PageBuilder,
	renderer driven.PageRenderer,
) *PreviewService {
	return &PreviewService{
		loader:   loader,
		builder:  builder,
		renderer: renderer,
	}
}

// Generate runs load, build and render in order. Each stage fails before the
// next starts, so the output file is only touched after the page is complete.
func (s *PreviewService) Generate(ctx context.Context, req driving.PreviewRequest) (*driving.PreviewResult, error) {
	if s.loader == nil || s.builder == nil || s.renderer == nil {
		return nil, domain.ErrNotImplemented
	}
	if req.InputPath == "" {
		return nil, fmt.Errorf("%w: input path is required", domain.ErrInvalidInput)
	}
	if req.ProjectDir == "" {
		return nil, fmt.Errorf("%w: project directory is required", domain.ErrInvalidInput)
	}
	if err := req.Settings.Validate(); err != nil {
		return nil, err
	}

	outputPath := domain.PreviewOutputPath(req.ProjectDir)

	logger.Section("Load")
	doc, err := s.loader.Load(ctx, req.InputPath)
	if err != nil {
		if errors.Is(err, domain.ErrInputNotFound) {
			logger.Error("File %s not found, unable to proceed.", req.InputPath)
		}
		return nil, err
	}

	logger.Section("Build")
	page, err := s.builder.Build(ctx, doc, req.Settings)
	if err != nil {
		return nil, fmt.Errorf("build page: %w", err)
	}
	logger.Info("built %q with %d row-groups", page.Title(), page.Rows())

	logger.Section("Render")
	if err := s.renderer.Write(ctx, page, outputPath); err != nil {
		return nil, err
	}

	return &driving.PreviewResult{
		OutputPath:   outputPath,
		Title:        page.Title(),
		SegmentCount: page.Rows(),
	}, nil
}
