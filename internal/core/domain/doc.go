// Package domain defines the core entities of the bilingual preview generator.
//
// This package is the innermost layer of the hexagon and defines:
//
//   - BilingualDocument: the header fields and ordered segments of an export
//   - Segment: one bilingual unit (id, label, source, target, comments)
//   - PreviewSettings: presentation options for the generated page
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
