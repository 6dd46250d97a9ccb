// Package html provides the MarkupNormaliser for segment fragments.
// It removes redundant outer block wrappers (p, ul, ol, li) from exported
// segment text without touching interior or inline markup.
package html
