// Package cli implements the command-line interface of the preview generator.
//
// The root command converts one bilingual export into
// <project>/preview/original.html. Services are injected by main through
// SetPreviewService so commands can be tested with any implementation.
package cli
