package reconstruct

import (
	"context"
	"fmt"
	"runtime"

	"unitigseq/internal/kmertable"
	"unitigseq/internal/seqtable"
)

// Config tunes a Reconstructor.
type Config struct {
	Windowing Windowing
	Threads   int    // row workers; 0 = all CPUs, 1 = sequential
	OnRow     func() // called once per finished data row; must be safe for concurrent use
}

// Stats counts work done over one or more rows.
type Stats struct {
	Rows     int
	Windows  int
	Direct   int
	Reversed int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Rows += o.Rows
	s.Windows += o.Windows
	s.Direct += o.Direct
	s.Reversed += o.Reversed
}

// Reconstructor fills in unitig sequences from a reference table.
type Reconstructor struct {
	tab Lookup
	p   kmertable.Params
	cfg Config
}

func New(tab Lookup, p kmertable.Params, cfg Config) *Reconstructor {
	return &Reconstructor{tab: tab, p: p, cfg: cfg}
}

// Unitig rebuilds the sequence for one minimizer tuple. A tuple shorter than
// k reconstructs to the empty string.
func (r *Reconstructor) Unitig(t seqtable.Tuple) (string, Stats, error) {
	if err := r.p.Validate(); err != nil {
		return "", Stats{}, err
	}
	st := Stats{Rows: 1}
	wins := Windows(t, r.p.K, r.cfg.Windowing)
	sw := stitcher{l: r.p.L}
	for _, w := range wins {
		res, err := Resolve(r.tab, w)
		if err != nil {
			return "", st, err
		}
		if res.Reversed {
			st.Reversed++
		} else {
			st.Direct++
		}
		st.Windows++
		if err := sw.add(res); err != nil {
			return "", st, err
		}
	}
	return string(sw.buf), st, nil
}

// Lines returns a copy of lines with every data row's sequence rebuilt.
// Comment and blank lines are copied unchanged. On error no lines are
// returned; the error belongs to the earliest failing row.
func (r *Reconstructor) Lines(ctx context.Context, lines []seqtable.Line) ([]seqtable.Line, Stats, error) {
	out := make([]seqtable.Line, len(lines))
	copy(out, lines)

	var rows []int
	for i, l := range lines {
		if l.Kind == seqtable.KindData {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return out, Stats{}, nil
	}
	if err := r.p.Validate(); err != nil {
		return nil, Stats{}, err
	}

	thr := r.cfg.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	if thr > len(rows) {
		thr = len(rows)
	}

	var (
		st  Stats
		err error
	)
	if thr <= 1 {
		st, err = r.sequential(ctx, out, rows)
	} else {
		st, err = r.parallel(ctx, out, rows, thr)
	}
	if err != nil {
		return nil, Stats{}, err
	}
	return out, st, nil
}

func (r *Reconstructor) row(l *seqtable.Line) (Stats, error) {
	seq, st, err := r.Unitig(l.Rec.Tuple)
	if err != nil {
		return st, fmt.Errorf("line %d (%s): %w", l.No, l.Rec.ID, err)
	}
	l.Rec.Seq, l.Rec.HasSeq = seq, true
	if r.cfg.OnRow != nil {
		r.cfg.OnRow()
	}
	return st, nil
}

func (r *Reconstructor) sequential(ctx context.Context, out []seqtable.Line, rows []int) (Stats, error) {
	var total Stats
	for _, i := range rows {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		st, err := r.row(&out[i])
		if err != nil {
			return total, err
		}
		total.Add(st)
	}
	return total, nil
}
