package writers

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"

	"unitigseq/internal/seqtable"
)

// Digest is the BLAKE2b-256 sum of a committed table.
type Digest [blake2b.Size256]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// WriteLines writes each line followed by '\n'.
func WriteLines(w io.Writer, lines []seqtable.Line) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	for _, l := range lines {
		if _, err := bw.WriteString(l.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// CommitLines replaces path with lines. The content goes to a temp file in
// the same directory first and is renamed over path once synced; an existing
// file keeps its permissions. A symlinked path is resolved so the file it
// points to is rewritten and the link stays in place.
func CommitLines(path string, lines []seqtable.Line) (Digest, error) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, lines); err != nil {
		return Digest{}, err
	}
	sum := Digest(blake2b.Sum256(buf.Bytes()))

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Digest{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return Digest{}, fmt.Errorf("create temp for %s: %w", path, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return Digest{}, fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return Digest{}, err
	}
	if err := tmp.Sync(); err != nil {
		return Digest{}, err
	}
	if err := tmp.Close(); err != nil {
		return Digest{}, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		committed = true
		return Digest{}, fmt.Errorf("replace %s: %w", path, err)
	}
	committed = true
	return sum, nil
}
