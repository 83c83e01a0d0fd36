package reconstruct

import (
	"fmt"

	"unitigseq/internal/seqtable"
)

// Windowing selects how a unitig's tuple is cut into k-minimizer windows.
type Windowing int

const (
	// Sliding advances one minimizer at a time: n-k+1 windows.
	Sliding Windowing = iota
	// Chained makes consecutive windows share exactly one minimizer (stride
	// k-1), which is how the upstream graph lays out k-mers along a unitig.
	// A trailing partial window is dropped.
	Chained
)

func (w Windowing) String() string {
	switch w {
	case Sliding:
		return "sliding"
	case Chained:
		return "chained"
	}
	return fmt.Sprintf("Windowing(%d)", int(w))
}

// ParseWindowing maps a flag value to a Windowing.
func ParseWindowing(s string) (Windowing, error) {
	switch s {
	case "sliding", "":
		return Sliding, nil
	case "chained":
		return Chained, nil
	}
	return Sliding, fmt.Errorf("invalid windowing %q (want sliding | chained)", s)
}

// Stride is the step between window starts for width k.
func (w Windowing) Stride(k int) int {
	if w == Chained && k > 1 {
		return k - 1
	}
	return 1
}

// Windows returns the width-k windows of t in order. Each window aliases t.
// A tuple shorter than k yields no windows.
func Windows(t seqtable.Tuple, k int, mode Windowing) []seqtable.Tuple {
	if k <= 0 || len(t) < k {
		return nil
	}
	stride := mode.Stride(k)
	out := make([]seqtable.Tuple, 0, (len(t)-k)/stride+1)
	for i := 0; i+k <= len(t); i += stride {
		out = append(out, t[i:i+k:i+k])
	}
	return out
}
