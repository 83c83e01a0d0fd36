package seqtable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a line of a .sequences table.
type Kind uint8

const (
	KindData Kind = iota
	KindComment
	KindBlank
)

// Record is one data row: unitig (or k-mer) ID, minimizer tuple and sequence.
type Record struct {
	ID    string
	Tuple Tuple
	Seq   string
	// HasSeq is false when the row carried no sequence column.
	HasSeq bool
}

// Format renders the record as "<id>\t[<m1>, <m2>, ...]\t<seq>".
func (r Record) Format() string {
	return r.ID + "\t" + r.Tuple.String() + "\t" + r.Seq
}

// Line is one line of a table file. Raw holds the text without its line
// terminator; Rec is only meaningful for KindData.
type Line struct {
	No   int
	Kind Kind
	Raw  string
	Rec  Record
}

// String returns the text written back for l. Data lines are re-serialized,
// comments and blank lines are passed through verbatim.
func (l Line) String() string {
	if l.Kind == KindData {
		return l.Rec.Format()
	}
	return l.Raw
}

// ParseRecord splits a data line into ID, tuple and optional sequence. The
// tuple may be spread over several whitespace-separated words; everything
// from the first '[' to the matching ']' belongs to it.
func ParseRecord(line string) (Record, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Record{}, errors.New("empty data line")
	}
	cut := strings.IndexFunc(line, isSpace)
	if cut < 0 {
		return Record{}, fmt.Errorf("missing minimizer list after id %q", line)
	}
	rec := Record{ID: line[:cut]}
	rest := strings.TrimLeftFunc(line[cut:], isSpace)
	if !strings.HasPrefix(rest, "[") {
		return Record{}, fmt.Errorf("id %q: expected '[' to open the minimizer list, got %q", rec.ID, firstWord(rest))
	}
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return Record{}, fmt.Errorf("id %q: unterminated minimizer list", rec.ID)
	}
	t, err := ParseTuple(rest[:end+1])
	if err != nil {
		return Record{}, fmt.Errorf("id %q: %w", rec.ID, err)
	}
	rec.Tuple = t

	tail := strings.Fields(rest[end+1:])
	switch len(tail) {
	case 0:
	case 1:
		rec.Seq, rec.HasSeq = tail[0], true
	default:
		return Record{}, fmt.Errorf("id %q: expected a single sequence field after the minimizer list, got %d fields", rec.ID, len(tail))
	}
	return rec, nil
}

// ParseDirective reports whether line is a "# <name> = <int>" header and
// returns the value. The value is the last word of the line.
func ParseDirective(line, name string) (int, bool, error) {
	if !strings.HasPrefix(line, "# "+name+" = ") {
		return 0, false, nil
	}
	f := strings.Fields(line)
	v, err := strconv.Atoi(f[len(f)-1])
	if err != nil {
		return 0, true, fmt.Errorf("bad %s value %q", name, f[len(f)-1])
	}
	return v, true, nil
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\v' || r == '\f' }

func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return s
}
