package nucleotide

import "testing"

func TestRevCompSimple(t *testing.T) {
	cases := []struct{ in, want string }{
		{"AGTC", "GACT"},
		{"ACGT", "ACGT"},
		{"AACG", "CGTT"},
		{"TTCCA", "TGGAA"},
		{"acgtN", "Nacgt"},
	}
	for _, c := range cases {
		if got := RevComp(c.in); got != c.want {
			t.Errorf("RevComp(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestRevCompInvolution(t *testing.T) {
	for _, s := range []string{"", "A", "ACGTTGCA", "GATTACA", "NNACGTRY", "aacCGgt"} {
		if got := RevComp(RevComp(s)); got != s {
			t.Errorf("RevComp(RevComp(%q)) = %q", s, got)
		}
	}
}

func TestRevCompEmpty(t *testing.T) {
	if out := RevComp(""); out != "" {
		t.Errorf("RevComp(\"\") = %q, want empty", out)
	}
}
