package reconstruct

import (
	"errors"
	"testing"

	"unitigseq/internal/kmerr"
	"unitigseq/internal/seqtable"
)

type mapLookup map[string]string

func (m mapLookup) Get(t seqtable.Tuple) (string, bool) {
	s, ok := m[t.String()]
	return s, ok
}

func TestResolve(t *testing.T) {
	tab := mapLookup{
		"[1, 2, 3]": "ACGTT",
		"[5, 4, 3]": "TTCCA",
	}
	r, err := Resolve(tab, seqtable.Tuple{1, 2, 3})
	if err != nil || r.Reversed || r.Seq != "ACGTT" {
		t.Fatalf("direct: %+v %v", r, err)
	}
	r, err = Resolve(tab, seqtable.Tuple{3, 4, 5})
	if err != nil || !r.Reversed || r.Seq != "TGGAA" {
		t.Fatalf("reversed: %+v %v", r, err)
	}
	_, err = Resolve(tab, seqtable.Tuple{2, 3, 4})
	var le *kmerr.LookupError
	if !errors.As(err, &le) || le.Window.String() != "[2, 3, 4]" {
		t.Fatalf("missing: %v", err)
	}
}

func TestStitch(t *testing.T) {
	parts := []Resolved{{Seq: "ACGTTG"}, {Seq: "TGCAAT"}, {Seq: "ATGG"}}
	got, err := Stitch(parts, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := "ACGTTGCAATGG"; got != want {
		t.Fatalf("Stitch = %q, want %q", got, want)
	}
	if got, _ := Stitch(nil, 2); got != "" {
		t.Fatalf("empty Stitch = %q", got)
	}
	if got, _ := Stitch(parts[:1], 2); got != "ACGTTG" {
		t.Fatalf("single Stitch = %q", got)
	}
}

func TestStitchOverlapMismatch(t *testing.T) {
	parts := []Resolved{
		{Window: seqtable.Tuple{1, 2, 3}, Seq: "ACGTT"},
		{Window: seqtable.Tuple{3, 4, 5}, Seq: "TGGAA"},
	}
	_, err := Stitch(parts, 2)
	var ie *kmerr.IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("want IntegrityError, got %v", err)
	}
	if ie.Want != "TT" || ie.Got != "TG" {
		t.Fatalf("mismatch detail = %q/%q", ie.Want, ie.Got)
	}
	if !errors.Is(err, kmerr.ErrIntegrity) {
		t.Fatal("IntegrityError must match ErrIntegrity")
	}
}

func TestStitchShortSequence(t *testing.T) {
	_, err := Stitch([]Resolved{{Seq: "ACGT"}, {Seq: "T"}}, 2)
	if !errors.Is(err, kmerr.ErrIntegrity) {
		t.Fatalf("short k-mer: %v", err)
	}
}
