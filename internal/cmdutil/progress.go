package cmdutil

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// Progress is a row counter on stderr. A nil *Progress is a no-op, so
// callers need not branch on whether progress was requested.
type Progress struct {
	bar *pb.ProgressBar
}

// StartProgress starts a bar over total rows on dst, or returns nil when
// disabled or there is nothing to count.
func StartProgress(dst io.Writer, total int, enabled bool) *Progress {
	if !enabled || total <= 0 {
		return nil
	}
	bar := pb.Full.New(total)
	bar.SetWriter(dst)
	bar.Set(pb.Bytes, false)
	return &Progress{bar: bar.Start()}
}

// Increment is safe for concurrent use.
func (p *Progress) Increment() {
	if p == nil {
		return
	}
	p.bar.Increment()
}

func (p *Progress) Finish() {
	if p == nil {
		return
	}
	p.bar.Finish()
}
