package seqtable

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tuple is an ordered list of minimizer IDs. The reversed tuple is the same
// k-mer read on the opposite strand.
type Tuple []uint64

// Key returns a comparable form of t, suitable as a map key.
func (t Tuple) Key() string {
	b := make([]byte, 0, 8*len(t))
	for _, v := range t {
		b = binary.BigEndian.AppendUint64(b, v)
	}
	return string(b)
}

// Reverse returns a reversed copy of t.
func (t Tuple) Reverse() Tuple {
	out := make(Tuple, len(t))
	for i, v := range t {
		out[len(t)-1-i] = v
	}
	return out
}

// String renders t as a bracketed, comma-space separated list: [1, 2, 3].
func (t Tuple) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range t {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(v, 10))
	}
	sb.WriteByte(']')
	return sb.String()
}

// ParseTuple parses a bracketed list of unsigned integers such as
// "[101, 202, 303]" or "[101,202,303]". Whitespace is allowed around
// brackets and commas; "[]" is the empty tuple.
func ParseTuple(s string) (Tuple, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") {
		return nil, fmt.Errorf("minimizer list %q: missing '['", s)
	}
	if !strings.HasSuffix(s, "]") || len(s) < 2 {
		return nil, fmt.Errorf("minimizer list %q: missing ']'", s)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return Tuple{}, nil
	}
	if strings.ContainsAny(inner, "[]") {
		return nil, fmt.Errorf("minimizer list %q: nested or stray bracket", s)
	}
	parts := strings.Split(inner, ",")
	out := make(Tuple, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("minimizer list %q: empty element at position %d", s, i)
		}
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			var ne *strconv.NumError
			if errors.As(err, &ne) {
				err = ne.Err
			}
			return nil, fmt.Errorf("minimizer list %q: bad minimizer %q: %v", s, p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
