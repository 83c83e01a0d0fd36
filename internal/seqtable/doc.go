// Package seqtable reads and writes the line-oriented .sequences table shared
// by reference and target files:
//
//	# k = 3
//	# l = 2
//	<id> [<m1>, <m2>, ...] <sequence>
//
// Lines starting with '#' are comments (and, in reference files, the k/l
// headers). Data lines are re-serialized tab separated; everything else is
// passed through verbatim.
package seqtable
