// Package fetch downloads the pre-built fixture archive for fixturectl.
//
// The remote source serves the archive over a plain unauthenticated GET.
// Client wraps an injectable http.Client with a simple fixed-delay retry
// policy, and replaces the destination atomically (temp file + rename) so a
// failed download never leaves a truncated archive at the destination path:
//
//	c := fetch.NewClient(5 * time.Minute)
//	err := c.Download(ctx, layout.SourceURL, layout.ArchivePath(), nil)
//
// No integrity check is performed on the payload; a corrupt body surfaces
// later as an expansion failure, which is a distinct error category.
package fetch
