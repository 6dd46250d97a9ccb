package page

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/bilingual-preview/internal/core/domain"
	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driven"
	"github.com/custodia-labs/bilingual-preview/internal/logger"
)

// Ensure Builder implements the interface.
var _ driven.PageBuilder = (*Builder)(nil)

// searchInputID is the DOM id the behaviour script looks up.
const searchInputID = "idSearch"

// Builder assembles comparison pages.
type Builder struct {
	normaliser driven.MarkupNormaliser
}

// NewBuilder creates a page builder that normalises segment text with normaliser.
func NewBuilder(normaliser driven.MarkupNormaliser) *Builder {
	return &Builder{normaliser: normaliser}
}

// Build assembles the page for doc. Segments are emitted in document order.
func (b *Builder) Build(
	ctx context.Context,
	doc *domain.BilingualDocument,
	settings domain.PreviewSettings,
) (driven.Page, error) {
	if b.normaliser == nil {
		return nil, domain.ErrNotImplemented
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var policy *bluemonday.Policy
	if settings.Sanitize {
		policy = bluemonday.UGCPolicy()
	}

	title := doc.Heading()

	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	var htmlAttrs []html.Attribute
	if settings.Lang != "" {
		htmlAttrs = append(htmlAttrs, attr("lang", settings.Lang))
	}
	htmlEl := element(atom.Html, htmlAttrs...)
	root.AppendChild(htmlEl)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, attr("charset", "utf-8")))
	head.AppendChild(withText(element(atom.Title), title))
	head.AppendChild(withText(element(atom.Style), styleSheet))
	htmlEl.AppendChild(head)

	body := element(atom.Body)
	body.AppendChild(withText(element(atom.H1), title))
	body.AppendChild(searchControl(settings))

	table := element(atom.Div, attr("class", "table"))
	rows := 0
	for _, seg := range doc.Segments {
		rows++
		logger.Debug("row %d: segment %s", rows, seg.ID)

		table.AppendChild(idCell(seg))
		table.AppendChild(b.textCell(seg.SourceCellID(), seg.SourceText, policy))
		table.AppendChild(b.textCell(seg.TargetCellID(), seg.TargetText, policy))
	}
	body.AppendChild(table)

	body.AppendChild(withText(element(atom.Script), behaviourScript))
	htmlEl.AppendChild(body)

	return &Page{title: title, rows: rows, root: root}, nil
}

// searchControl returns the fixed search box holding a segment id.
func searchControl(settings domain.PreviewSettings) *html.Node {
	div := element(atom.Div, attr("class", "search sticky"))
	div.AppendChild(withText(element(atom.Label, attr("for", searchInputID)), settings.SearchLabel))
	div.AppendChild(element(atom.Input,
		attr("type", "text"),
		attr("id", searchInputID),
		attr("size", strconv.Itoa(settings.SearchSize)),
		attr("maxlength", strconv.Itoa(settings.SearchMaxLength)),
	))
	return div
}

// idCell is the first cell of a row-group. Its id is the search-match
// target; the inner "id"-prefixed div is the scroll anchor.
func idCell(seg domain.Segment) *html.Node {
	cell := element(atom.Div, attr("id", seg.ID), attr("class", "id"))
	cell.AppendChild(withText(element(atom.Div, attr("id", seg.AnchorID()), attr("class", "textblock_id")), seg.ID))
	cell.AppendChild(withText(element(atom.Div, attr("class", "item_label")), seg.Label))
	return cell
}

// textCell holds normalised segment markup as parsed nodes.
func (b *Builder) textCell(id, text string, policy *bluemonday.Policy) *html.Node {
	cell := element(atom.Div, attr("id", id))

	fragment := b.normaliser.Normalise(text)
	if policy != nil {
		fragment = policy.Sanitize(fragment)
	}

	nodes, err := html.ParseFragment(strings.NewReader(fragment), element(atom.Div))
	if err != nil {
		logger.Warn("cell %s: could not parse markup, embedding as text: %v", id, err)
		cell.AppendChild(&html.Node{Type: html.TextNode, Data: fragment})
		return cell
	}
	for _, n := range nodes {
		demotePlaintext(n)
		cell.AppendChild(n)
	}
	return cell
}

// demotePlaintext turns every <plaintext> element under n into <pre>.
// The renderer stops writing the document after a plaintext element, which
// would drop every later cell and the behaviour script.
func demotePlaintext(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Plaintext {
		n.DataAtom = atom.Pre
		n.Data = atom.Pre.String()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		demotePlaintext(c)
	}
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
