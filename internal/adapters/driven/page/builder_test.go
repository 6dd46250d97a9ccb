package page

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bilingual-preview/internal/core/domain"
	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driven"
	markup "github.com/custodia-labs/bilingual-preview/internal/normalisers/html"
)

func newTestBuilder() *Builder {
	return NewBuilder(markup.New())
}

func render(t *testing.T, p driven.Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf))
	return buf.String()
}

func build(t *testing.T, doc *domain.BilingualDocument, settings domain.PreviewSettings) (driven.Page, string) {
	t.Helper()
	p, err := newTestBuilder().Build(context.Background(), doc, settings)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p, render(t, p)
}

func singleSegmentDoc() *domain.BilingualDocument {
	return &domain.BilingualDocument{
		Study:      "S",
		Instrument: "I",
		Culture:    "en-US",
		Segments: []domain.Segment{
			{ID: "001", Label: "Q1", SourceText: "<p>Hello</p>", TargetText: "<p>Bonjour</p>"},
		},
	}
}

func TestBuild_SingleSegment(t *testing.T) {
	p, out := build(t, singleSegmentDoc(), domain.DefaultPreviewSettings())

	assert.Equal(t, "S - I [en-US]", p.Title())
	assert.Equal(t, 1, p.Rows())

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>S - I [en-US]</title>")
	assert.Contains(t, out, "<h1>S - I [en-US]</h1>")
	assert.Equal(t, 1, strings.Count(out, `class="id"`))
	assert.Contains(t, out, `<div id="001" class="id">`)
	assert.Contains(t, out, `<div id="id001" class="textblock_id">001</div>`)
	assert.Contains(t, out, `<div class="item_label">Q1</div>`)
	assert.Contains(t, out, `<div id="src001">Hello</div>`)
	assert.Contains(t, out, `<div id="tgt001">Bonjour</div>`)
}

func TestBuild_SearchControl(t *testing.T) {
	_, out := build(t, singleSegmentDoc(), domain.DefaultPreviewSettings())

	assert.Contains(t, out, `<div class="search sticky">`)
	assert.Contains(t, out, `<label for="idSearch">ID search</label>`)
	assert.Contains(t, out, `type="text"`)
	assert.Contains(t, out, `id="idSearch"`)
	assert.Contains(t, out, `size="6"`)
	assert.Contains(t, out, `maxlength="5"`)
}

func TestBuild_CustomSettings(t *testing.T) {
	settings := domain.DefaultPreviewSettings()
	settings.SearchLabel = "Suche"
	settings.SearchSize = 10
	settings.SearchMaxLength = 8
	settings.Lang = "de"

	_, out := build(t, singleSegmentDoc(), settings)

	assert.Contains(t, out, `<html lang="de">`)
	assert.Contains(t, out, ">Suche</label>")
	assert.Contains(t, out, `size="10"`)
	assert.Contains(t, out, `maxlength="8"`)
}

func TestBuild_EmbedsAssetsVerbatim(t *testing.T) {
	_, out := build(t, singleSegmentDoc(), domain.DefaultPreviewSettings())

	require.NotEmpty(t, styleSheet)
	require.NotEmpty(t, behaviourScript)
	assert.Contains(t, out, "<style>"+styleSheet+"</style>")
	assert.Contains(t, out, "<script>"+behaviourScript+"</script>")
	assert.Contains(t, styleSheet, "grid-template-columns: auto 40% 40%")
	assert.Contains(t, behaviourScript, "history")
	assert.Contains(t, behaviourScript, `"#id" + segmentId`)

	// The fragment jump must not cancel the centred smooth scroll.
	jump := strings.Index(behaviourScript, "location.replace(")
	scroll := strings.Index(behaviourScript, "scrollIntoView(")
	require.NotEqual(t, -1, jump)
	require.NotEqual(t, -1, scroll)
	assert.Less(t, jump, scroll)

	// Script runs after the table exists.
	assert.Less(t, strings.Index(out, `class="table"`), strings.Index(out, "<script>"))
}

func TestBuild_PreservesSegmentOrder(t *testing.T) {
	doc := &domain.BilingualDocument{
		Study: "S", Instrument: "I", Culture: "c",
		Segments: []domain.Segment{
			{ID: "30", Label: "c", SourceText: "third", TargetText: "t3"},
			{ID: "1", Label: "a", SourceText: "first", TargetText: "t1"},
			{ID: "200", Label: "b", SourceText: "second", TargetText: "t2"},
		},
	}

	p, out := build(t, doc, domain.DefaultPreviewSettings())
	assert.Equal(t, 3, p.Rows())

	i30 := strings.Index(out, `<div id="30" class="id">`)
	i1 := strings.Index(out, `<div id="1" class="id">`)
	i200 := strings.Index(out, `<div id="200" class="id">`)
	require.NotEqual(t, -1, i30)
	require.NotEqual(t, -1, i1)
	require.NotEqual(t, -1, i200)
	assert.Less(t, i30, i1)
	assert.Less(t, i1, i200)

	// Each row-group is three consecutive cells.
	assert.Less(t, strings.Index(out, `id="src30"`), i1)
	assert.Less(t, strings.Index(out, `id="tgt30"`), i1)
}

func TestBuild_Deterministic(t *testing.T) {
	doc := singleSegmentDoc()
	doc.Segments = append(doc.Segments, domain.Segment{
		ID: "002", Label: "Q2", SourceText: `<ul><li>a <b>b</b></li></ul>`, TargetText: "<b>unclosed",
	})

	_, first := build(t, doc, domain.DefaultPreviewSettings())
	_, second := build(t, doc, domain.DefaultPreviewSettings())
	assert.Equal(t, first, second)
}

func TestBuild_InlineFormattingIsMarkupNotText(t *testing.T) {
	doc := singleSegmentDoc()
	doc.Segments[0].SourceText = "<p>Hello <i>dear</i> <b>world</b></p>"

	_, out := build(t, doc, domain.DefaultPreviewSettings())

	assert.Contains(t, out, `<div id="src001">Hello <i>dear</i> <b>world</b></div>`)
	assert.NotContains(t, out, "&lt;i&gt;")
}

func TestBuild_MalformedFragmentIsTolerated(t *testing.T) {
	doc := singleSegmentDoc()
	doc.Segments[0].SourceText = "<b>bold"
	doc.Segments[0].TargetText = "a </span> b <p>c"

	_, out := build(t, doc, domain.DefaultPreviewSettings())

	assert.Contains(t, out, `<div id="src001"><b>bold</b></div>`)
	assert.Contains(t, out, `<div id="tgt001">`)
}

func TestBuild_PlaintextDoesNotTruncatePage(t *testing.T) {
	doc := singleSegmentDoc()
	doc.Segments[0].SourceText = "<plaintext>x"
	doc.Segments = append(doc.Segments, domain.Segment{
		ID: "002", Label: "Q2", SourceText: "two", TargetText: "deux",
	})

	p, out := build(t, doc, domain.DefaultPreviewSettings())

	assert.Equal(t, 2, p.Rows())
	assert.Contains(t, out, `<div id="src001"><pre>x</pre></div>`)
	assert.Contains(t, out, `<div id="tgt001">Bonjour</div>`)
	assert.Contains(t, out, `<div id="002" class="id">`)
	assert.Contains(t, out, `<div id="tgt002">deux</div>`)
	assert.Contains(t, out, "<script>")
	assert.NotContains(t, out, "plaintext")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</html>"))
}

func TestBuild_EscapesPlainFields(t *testing.T) {
	doc := singleSegmentDoc()
	doc.Study = "R&D"
	doc.Segments[0].Label = "<Q1>"

	_, out := build(t, doc, domain.DefaultPreviewSettings())

	assert.Contains(t, out, "<h1>R&amp;D - I [en-US]</h1>")
	assert.Contains(t, out, `<div class="item_label">&lt;Q1&gt;</div>`)
}

func TestBuild_CommentsNotRendered(t *testing.T) {
	doc := singleSegmentDoc()
	doc.Segments[0].Comments = "REVIEWER-NOTE-XYZ"

	_, out := build(t, doc, domain.DefaultPreviewSettings())
	assert.NotContains(t, out, "REVIEWER-NOTE-XYZ")
}

func TestBuild_RightToLeftTextPassesThrough(t *testing.T) {
	doc := singleSegmentDoc()
	doc.Segments[0].TargetText = "<p>مرحبا <b>بالعالم</b></p>"

	_, out := build(t, doc, domain.DefaultPreviewSettings())
	assert.Contains(t, out, `<div id="tgt001">مرحبا <b>بالعالم</b></div>`)
}

func TestBuild_Sanitize(t *testing.T) {
	doc := singleSegmentDoc()
	doc.Segments[0].SourceText = `<p>safe <b>text</b><script>alert("x")</script></p>`

	settings := domain.DefaultPreviewSettings()
	settings.Sanitize = true
	_, out := build(t, doc, settings)

	assert.Contains(t, out, "safe <b>text</b>")
	assert.NotContains(t, out, "alert(")
}

func TestBuild_EmptyDocument(t *testing.T) {
	doc := &domain.BilingualDocument{Study: "S", Instrument: "I", Culture: "c"}

	p, out := build(t, doc, domain.DefaultPreviewSettings())
	assert.Equal(t, 0, p.Rows())
	assert.Contains(t, out, `<div class="table"></div>`)
}

func TestBuild_Errors(t *testing.T) {
	ctx := context.Background()
	settings := domain.DefaultPreviewSettings()

	t.Run("nil normaliser", func(t *testing.T) {
		_, err := NewBuilder(nil).Build(ctx, singleSegmentDoc(), settings)
		assert.ErrorIs(t, err, domain.ErrNotImplemented)
	})

	t.Run("nil document", func(t *testing.T) {
		_, err := newTestBuilder().Build(ctx, nil, settings)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid settings", func(t *testing.T) {
		bad := settings
		bad.SearchSize = 0
		_, err := newTestBuilder().Build(ctx, singleSegmentDoc(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := newTestBuilder().Build(cancelled, singleSegmentDoc(), settings)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
