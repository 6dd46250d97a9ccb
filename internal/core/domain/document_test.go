package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBilingualDocument_Heading(t *testing.T) {
	doc := &BilingualDocument{Study: "S", Instrument: "I", Culture: "en-US"}
	assert.Equal(t, "S - I [en-US]", doc.Heading())
}

func TestBilingualDocument_HeadingEmptyFields(t *testing.T) {
	doc := &BilingualDocument{}
	assert.Equal(t, " -  []", doc.Heading())
}

func TestSegment_DOMIDs(t *testing.T) {
	seg := Segment{ID: "001"}

	assert.Equal(t, "id001", seg.AnchorID())
	assert.Equal(t, "src001", seg.SourceCellID())
	assert.Equal(t, "tgt001", seg.TargetCellID())
}

func TestPreviewOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		project string
		want    string
	}{
		{"plain", "/work/proj", filepath.Join("/work/proj", "preview", "original.html")},
		{"trailing slash", "/work/proj/", filepath.Join("/work/proj", "preview", "original.html")},
		{"relative", "proj", filepath.Join("proj", "preview", "original.html")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PreviewOutputPath(tt.project))
		})
	}
}
