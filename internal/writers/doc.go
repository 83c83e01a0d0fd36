// Package writers serializes rewritten table lines to disk.
//
// Design:
//   • Output is fully buffered, written to a temp file beside the target and
//     renamed into place, so a failed run never leaves a half-written table.
//   • Reconstruction stays domain-only; this package owns file handling.
package writers
