// Package nucleotide holds base-level helpers.
package nucleotide

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	for _, p := range []string{"AT", "CG", "at", "cg"} {
		complement[p[0]] = p[1]
		complement[p[1]] = p[0]
	}
}

// RevComp reverses seq and swaps A<->T, C<->G. Any other byte (N, IUPAC
// codes, gaps) is carried over in reversed position without complementing.
func RevComp(seq string) string {
	n := len(seq)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return string(out)
}
