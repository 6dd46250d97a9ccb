// Package page assembles the bilingual comparison page.
//
// The Builder walks segments in document order and emits three cells per
// segment (id/label, source, target) into a grid container. Segment markup is
// normalised, then reparsed as an HTML fragment so inline formatting renders
// instead of showing as literal tags. The style sheet and behaviour script
// under assets/ are embedded verbatim.
package page
