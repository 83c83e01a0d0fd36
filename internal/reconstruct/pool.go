package reconstruct

import (
	"context"
	"sync"

	"unitigseq/internal/seqtable"
)

// parallel fans rows out to thr workers. Rows are fed in order and every fed
// row is finished, so the earliest failing row is always among the errors
// seen and the reported error matches a sequential run.
func (r *Reconstructor) parallel(parent context.Context, out []seqtable.Line, rows []int, thr int) (Stats, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	type result struct {
		pos int // index into rows
		st  Stats
		err error
	}
	jobs := make(chan int, thr*2)
	results := make(chan result, thr*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(thr)
	for w := 0; w < thr; w++ {
		go func() {
			defer wg.Done()
			for pos := range jobs {
				st, err := r.row(&out[rows[pos]])
				if err != nil {
					cancel()
				}
				results <- result{pos: pos, st: st, err: err}
			}
		}()
	}

	// Collector
	var (
		total  Stats
		errPos = -1
		first  error
		cwg    sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for res := range results {
			if res.err != nil {
				if errPos < 0 || res.pos < errPos {
					errPos, first = res.pos, res.err
				}
				continue
			}
			total.Add(res.st)
		}
	}()

	// Feed work
feed:
	for pos := range rows {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- pos:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if first != nil {
		return total, first
	}
	if err := parent.Err(); err != nil {
		return total, err
	}
	return total, nil
}
