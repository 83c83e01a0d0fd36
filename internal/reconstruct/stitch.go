package reconstruct

import (
	"unitigseq/internal/kmerr"
	"unitigseq/internal/nucleotide"
	"unitigseq/internal/seqtable"
)

// Lookup is the read side of a reference table.
type Lookup interface {
	Get(seqtable.Tuple) (string, bool)
}

// Resolved is one window bound to a sequence in the unitig's orientation.
type Resolved struct {
	Window   seqtable.Tuple
	Seq      string
	Reversed bool // found under the reversed tuple; Seq is already reverse-complemented
}

// Resolve looks w up directly, then reversed. A reversed hit is
// reverse-complemented so it reads along the unitig.
func Resolve(tab Lookup, w seqtable.Tuple) (Resolved, error) {
	if s, ok := tab.Get(w); ok {
		return Resolved{Window: w, Seq: s}, nil
	}
	if s, ok := tab.Get(w.Reverse()); ok {
		return Resolved{Window: w, Seq: nucleotide.RevComp(s), Reversed: true}, nil
	}
	return Resolved{}, &kmerr.LookupError{Window: w}
}

// Stitch concatenates resolved windows in order. Each window after the first
// must start with the last l bases accumulated so far; those bases are not
// repeated.
func Stitch(parts []Resolved, l int) (string, error) {
	var st stitcher
	st.l = l
	for _, p := range parts {
		if err := st.add(p); err != nil {
			return "", err
		}
	}
	return string(st.buf), nil
}

type stitcher struct {
	buf []byte
	l   int
	n   int
}

func (s *stitcher) add(p Resolved) error {
	s.n++
	if s.n == 1 {
		s.buf = append(s.buf, p.Seq...)
		return nil
	}
	if len(s.buf) < s.l || len(p.Seq) < s.l {
		want := string(s.buf)
		if len(s.buf) >= s.l {
			want = string(s.buf[len(s.buf)-s.l:])
		}
		return &kmerr.IntegrityError{Window: p.Window, Want: want, Got: p.Seq}
	}
	tail := s.buf[len(s.buf)-s.l:]
	if string(tail) != p.Seq[:s.l] {
		return &kmerr.IntegrityError{Window: p.Window, Want: string(tail), Got: p.Seq[:s.l]}
	}
	s.buf = append(s.buf, p.Seq[s.l:]...)
	return nil
}
