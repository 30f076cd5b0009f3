// Package diag defines the diagnostic model shared by the pipeline phases.
//
// A Diagnostic is a Severity, a compact numeric Code with a stable string
// form, a short message and the primary source.Span it points at, plus
// optional Notes. Producers emit through a Reporter; BagReporter collects into
// a Bag, which supports sorting and deduplication before the CLI hands it to
// internal/diagfmt for printing.
//
// The package performs no formatting or IO of its own.
package diag
