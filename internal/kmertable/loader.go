// Package kmertable loads the reference k-mer table: minimizer tuple to
// sequence, plus the k and l header parameters.
package kmertable

import (
	"fmt"
	"io"
	"os"

	"unitigseq/internal/kmerr"
	"unitigseq/internal/seqtable"
)

type Options struct {
	Duplicates DuplicatePolicy
}

// Load reads a reference table from path. Missing k/l headers are not an
// error here; see Params.Validate.
func Load(path string, opts Options) (*Table, Params, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, Params{}, err
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh, path, opts)
}

// Parse is Load over an arbitrary reader; name is used in error messages.
func Parse(r io.Reader, name string, opts Options) (*Table, Params, error) {
	tb := NewTable()
	var p Params
	err := seqtable.Scan(r, name, func(l seqtable.Line) error {
		switch l.Kind {
		case seqtable.KindComment:
			return parseHeader(name, l, &p)
		case seqtable.KindData:
			if !l.Rec.HasSeq {
				return &kmerr.FormatError{Path: name, Line: l.No, Msg: fmt.Sprintf("k-mer %q has no sequence field", l.Rec.ID)}
			}
			prev, dup := tb.Put(l.Rec.Tuple, l.Rec.Seq)
			if dup && opts.Duplicates == Reject && prev != l.Rec.Seq {
				return &kmerr.FormatError{
					Path: name, Line: l.No,
					Msg: fmt.Sprintf("duplicate minimizer tuple %s with a different sequence (%q vs %q)", l.Rec.Tuple, prev, l.Rec.Seq),
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, Params{}, err
	}
	return tb, p, nil
}

func parseHeader(name string, l seqtable.Line, p *Params) error {
	for _, d := range []struct {
		key string
		dst *int
	}{{"k", &p.K}, {"l", &p.L}} {
		v, ok, err := seqtable.ParseDirective(l.Raw, d.key)
		if err != nil {
			return &kmerr.FormatError{Path: name, Line: l.No, Msg: err.Error()}
		}
		if ok {
			*d.dst = v
			return nil
		}
	}
	return nil
}
