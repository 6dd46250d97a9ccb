package page

import (
	"io"

	"golang.org/x/net/html"

	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driven"
)

// Ensure Page implements the interface.
var _ driven.Page = (*Page)(nil)

// Page is an assembled HTML document tree.
type Page struct {
	title string
	rows  int
	root  *html.Node
}

// Title returns the page heading.
func (p *Page) Title() string {
	return p.title
}

// Rows returns the number of row-groups in the page.
func (p *Page) Rows() int {
	return p.rows
}

// Render serialises the document tree.
func (p *Page) Render(w io.Writer) error {
	return html.Render(w, p.root)
}
