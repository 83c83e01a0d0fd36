package kmertable

import (
	"fmt"

	"unitigseq/internal/kmerr"
	"unitigseq/internal/seqtable"
)

// Params are the window size (minimizers per k-mer) and the overlap length
// (bases shared by consecutive k-mers) declared in the reference header.
// Zero means the header line was absent.
type Params struct {
	K int
	L int
}

// Validate reports a MissingParameterError for an absent or non-positive
// value. Callers run it when windowing first needs K and L.
func (p Params) Validate() error {
	if p.K <= 0 {
		return &kmerr.MissingParameterError{Name: "k", Value: p.K}
	}
	if p.L <= 0 {
		return &kmerr.MissingParameterError{Name: "l", Value: p.L}
	}
	return nil
}

// DuplicatePolicy decides what happens when the same minimizer tuple appears
// twice in a reference table.
type DuplicatePolicy int

const (
	// LastWins keeps the later sequence.
	LastWins DuplicatePolicy = iota
	// Reject fails the load when a repeated tuple carries a different sequence.
	Reject
)

func (d DuplicatePolicy) String() string {
	switch d {
	case LastWins:
		return "last-wins"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("DuplicatePolicy(%d)", int(d))
}

// ParseDuplicatePolicy maps a flag value to a policy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "last-wins", "":
		return LastWins, nil
	case "reject":
		return Reject, nil
	}
	return LastWins, fmt.Errorf("invalid duplicate policy %q (want last-wins | reject)", s)
}

// Table maps minimizer tuples to k-mer sequences. It is filled once by the
// loader and only read afterwards.
type Table struct {
	seqs map[string]string
	dups int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{seqs: make(map[string]string)}
}

// Put stores seq under t and returns the previous sequence, if any.
func (tb *Table) Put(t seqtable.Tuple, seq string) (prev string, dup bool) {
	k := t.Key()
	prev, dup = tb.seqs[k]
	if dup {
		tb.dups++
	}
	tb.seqs[k] = seq
	return prev, dup
}

// Get returns the sequence stored under t, in t's orientation only.
func (tb *Table) Get(t seqtable.Tuple) (string, bool) {
	s, ok := tb.seqs[t.Key()]
	return s, ok
}

// Len is the number of distinct tuples.
func (tb *Table) Len() int { return len(tb.seqs) }

// Duplicates is the number of rows whose tuple was already present.
func (tb *Table) Duplicates() int { return tb.dups }
