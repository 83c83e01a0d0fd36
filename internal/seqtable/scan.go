package seqtable

import (
	"bufio"
	"io"
	"os"
	"strings"

	"unitigseq/internal/kmerr"
)

// Scan reads r line by line and calls fn for each classified line. Data lines
// that fail to parse stop the scan with a *kmerr.FormatError naming name and
// the line number. Lines have no length limit; a CRLF terminator is dropped
// like a bare LF, so rewritten tables always use LF.
func Scan(r io.Reader, name string, fn func(Line) error) error {
	br := bufio.NewReaderSize(r, 64<<10)
	no := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if err == io.EOF && text == "" {
			return nil
		}
		no++
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")

		ln := Line{No: no, Raw: text}
		switch trimmed := strings.TrimSpace(text); {
		case trimmed == "":
			ln.Kind = KindBlank
		case strings.HasPrefix(text, "#"):
			ln.Kind = KindComment
		default:
			rec, perr := ParseRecord(text)
			if perr != nil {
				return &kmerr.FormatError{Path: name, Line: no, Msg: perr.Error()}
			}
			ln.Kind = KindData
			ln.Rec = rec
		}
		if ferr := fn(ln); ferr != nil {
			return ferr
		}
		if err == io.EOF {
			return nil
		}
	}
}

// ReadAll buffers every line of r.
func ReadAll(r io.Reader, name string) ([]Line, error) {
	var lines []Line
	err := Scan(r, name, func(l Line) error {
		lines = append(lines, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadFile opens path, buffers all of it and closes it again.
func ReadFile(path string) ([]Line, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ReadAll(fh, path)
}

// CountData returns the number of data lines.
func CountData(lines []Line) int {
	n := 0
	for _, l := range lines {
		if l.Kind == KindData {
			n++
		}
	}
	return n
}
