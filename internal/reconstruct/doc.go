// Package reconstruct rebuilds unitig sequences from minimizer tuples. It
// never imports app, writers or cli; keep it domain-only.
//
// For each row the tuple is cut into windows of k minimizers, each window is
// looked up in the reference (directly, then reversed with the sequence
// reverse-complemented) and the k-mer sequences are stitched on an overlap of
// l bases. Any missing window or overlap mismatch fails the whole batch.
package reconstruct
