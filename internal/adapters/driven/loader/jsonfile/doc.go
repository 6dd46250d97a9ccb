// Package jsonfile provides the DocumentLoader for bilingual JSON exports.
//
// The export is a single UTF-8 JSON object (a byte-order mark is tolerated)
// with study, instrument and culture header fields and a Textblocks array.
package jsonfile
