package domain

import (
	"fmt"
	"path/filepath"
)

// BilingualDocument is a bilingual segment export held fully in memory.
type BilingualDocument struct {
	// Study identifies the study the export belongs to.
	Study string

	// Instrument identifies the questionnaire or instrument.
	Instrument string

	// Culture is the target locale, e.g. "hu-HU".
	Culture string

	// Segments are kept in document order. Nothing reorders them.
	Segments []Segment
}

// Heading returns the page title line "{study} - {instrument} [{culture}]".
func (d *BilingualDocument) Heading() string {
	return fmt.Sprintf("%s - %s [%s]", d.Study, d.Instrument, d.Culture)
}

// Segment is one bilingual unit of the export.
type Segment struct {
	// ID is unique within the document. It doubles as the DOM id of the
	// row and as the search key, so it is assumed to contain no whitespace.
	ID string

	// Label is the grouping or item label shown next to the id.
	Label string

	// SourceText is the raw source markup fragment.
	SourceText string

	// TargetText is the raw target markup fragment.
	TargetText string

	// Comments is loaded but not rendered.
	Comments string
}

// AnchorID returns the scroll anchor used by the search box ("id" + ID).
func (s Segment) AnchorID() string {
	return "id" + s.ID
}

// SourceCellID returns the DOM id of the source cell.
func (s Segment) SourceCellID() string {
	return "src" + s.ID
}

// TargetCellID returns the DOM id of the target cell.
func (s Segment) TargetCellID() string {
	return "tgt" + s.ID
}

// Preview output layout inside a project directory.
const (
	PreviewDirName  = "preview"
	PreviewFileName = "original.html"
)

// PreviewOutputPath returns the location of the generated page for a project.
func PreviewOutputPath(projectDir string) string {
	return filepath.Join(projectDir, PreviewDirName, PreviewFileName)
}
