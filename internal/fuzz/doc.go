// Package fuzztests houses Go fuzz harnesses that run arbitrary bytes through
// the scanner, parser and renderer. They guard against panics, hangs and
// scanner output that does not cover its input.
package fuzztests
