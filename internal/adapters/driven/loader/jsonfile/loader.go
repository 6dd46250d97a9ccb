package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/bilingual-preview/internal/core/domain"
	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driven"
	"github.com/custodia-labs/bilingual-preview/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// exportFile mirrors the JSON layout. Pointers distinguish absent fields
// from empty strings.
type exportFile struct {
	Study      *string      `json:"study"`
	Instrument *string      `json:"instrument"`
	Culture    *string      `json:"culture"`
	Textblocks *[]textblock `json:"Textblocks"`
}

type textblock struct {
	TextblockID *string `json:"textblock_id"`
	ItemLabel   *string `json:"item_label"`
	SourceText  *string `json:"source_text"`
	TargetText  *string `json:"target_text"`
	Comments    *string `json:"comments"`
}

// Loader reads bilingual exports from JSON files.
type Loader struct{}

// New creates a new JSON export loader.
func New() *Loader {
	return &Loader{}
}

// Load reads and validates the export at path.
func (l *Loader) Load(ctx context.Context, path string) (*domain.BilingualDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("stat input %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInputNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	defer f.Close()

	logger.Debug("loading export %s (%d bytes)", path, info.Size())

	export, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedInput, path, err)
	}

	doc, err := export.toDomain()
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded %d segments for %s", len(doc.Segments), doc.Heading())
	return doc, nil
}

// decode parses exactly one JSON object from r, skipping a leading BOM.
func decode(r io.Reader) (*exportFile, error) {
	dec := json.NewDecoder(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))

	var export exportFile
	if err := dec.Decode(&export); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level object")
	}
	return &export, nil
}

// toDomain checks required fields and converts to the domain model.
func (e *exportFile) toDomain() (*domain.BilingualDocument, error) {
	header := []struct {
		name  string
		value *string
	}{
		{"study", e.Study},
		{"instrument", e.Instrument},
		{"culture", e.Culture},
	}
	for _, h := range header {
		if h.value == nil {
			return nil, missing(h.name)
		}
	}
	if e.Textblocks == nil {
		return nil, missing("Textblocks")
	}

	doc := &domain.BilingualDocument{
		Study:      *e.Study,
		Instrument: *e.Instrument,
		Culture:    *e.Culture,
		Segments:   make([]domain.Segment, 0, len(*e.Textblocks)),
	}

	for i, tb := range *e.Textblocks {
		seg, err := tb.toSegment(i)
		if err != nil {
			return nil, err
		}
		doc.Segments = append(doc.Segments, seg)
	}
	return doc, nil
}

func (tb textblock) toSegment(index int) (domain.Segment, error) {
	required := []struct {
		name  string
		value *string
	}{
		{"textblock_id", tb.TextblockID},
		{"item_label", tb.ItemLabel},
		{"source_text", tb.SourceText},
		{"target_text", tb.TargetText},
	}
	for _, r := range required {
		if r.value == nil {
			return domain.Segment{}, missing(fmt.Sprintf("Textblocks[%d].%s", index, r.name))
		}
	}

	seg := domain.Segment{
		ID:         *tb.TextblockID,
		Label:      *tb.ItemLabel,
		SourceText: *tb.SourceText,
		TargetText: *tb.TargetText,
	}
	if tb.Comments != nil {
		seg.Comments = *tb.Comments
	}
	return seg, nil
}

func missing(field string) error {
	return fmt.Errorf("%w: %s", domain.ErrMissingField, field)
}
