package page

import _ "embed"

// styleSheet lays out the three-column grid, row shading, the fixed search
// box and the :target highlight.
//
//go:embed assets/preview.css
var styleSheet string

// behaviourScript switches to RTL for Arabic/Hebrew content and drives the
// id search box.
//
//go:embed assets/preview.js
var behaviourScript string
