// Package htmlfile provides the PageRenderer that writes pages to disk.
// The page is rendered fully in memory, then written to a temporary file in
// the target directory and renamed over the destination, so a failed run
// never leaves a partial document behind.
package htmlfile
