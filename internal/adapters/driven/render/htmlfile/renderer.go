package htmlfile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/bilingual-preview/internal/core/domain"
	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driven"
	"github.com/custodia-labs/bilingual-preview/internal/logger"
)

// Ensure Renderer implements the interface.
var _ driven.PageRenderer = (*Renderer)(nil)

// Default permissions for generated files and directories.
const (
	defaultFileMode = 0o644
	defaultDirMode  = 0o755
)

// Renderer writes pages as single HTML files.
type Renderer struct{}

// New creates a new file renderer.
func New() *Renderer {
	return &Renderer{}
}

// Write renders page and replaces the file at path with it.
func (r *Renderer) Write(ctx context.Context, page driven.Page, path string) error {
	if page == nil {
		return fmt.Errorf("%w: nil page", domain.ErrInvalidInput)
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("%w: render %s: %v", domain.ErrRenderFailure, path, err)
	}

	// Last point at which nothing has touched the filesystem.
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defaultDirMode); err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrRenderFailure, dir, err)
	}

	if err := writeAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRenderFailure, path, err)
	}

	logger.Debug("wrote %d bytes to %s", buf.Len(), path)
	return nil
}

// writeAtomic writes data to a temp file next to path and renames it into place.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(defaultFileMode); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
