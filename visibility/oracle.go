// Package visibility is a test-only oracle: an independent, brute-force
// sweep that recomputes which candidate span is front-most at every screen
// column, so that tests can cross-check Buffer's incremental AVL-based
// occlusion resolution against ground truth rather than against itself.
//
// It is deliberately not built for speed — segment membership per sweep
// interval is tested by a linear scan — since it only ever runs over the
// small candidate sets a test pushes through a Buffer.
package visibility

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
)

// Segment is one candidate span, shaped the same way as an argument list
// to Buffer.Push, plus a Priority recording its push order. The oracle
// breaks an exact depth tie in favour of the higher Priority (the later
// push). Buffer does not use this rule: on an exact tie it keeps the
// existing span unless the leftness test favours the new one.
type Segment[ID any] struct {
	X0, X1   float64
	W0, W1   float64
	ID       ID
	Priority int
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func depthAt[ID any](s *Segment[ID], x float64) float64 {
	span := s.X1 - s.X0
	if span <= 0 {
		return s.W0
	}
	p := (x - s.X0) / span
	return s.W0 + (s.W1-s.W0)*p
}

// FrontMost returns, for each of the size screen columns, a pointer to the
// ID of the front-most (nearest, i.e. largest-w) segment covering that
// column's center, or nil if no segment covers it.
//
// The sweep collects every segment endpoint as a breakpoint in an ordered
// google/btree set, then for each interval between consecutive breakpoints
// builds a per-interval emirpasic/gods red-black tree keyed by reciprocal
// depth w at the interval's midpoint, taking the tree's rightmost
// (largest-w, i.e. nearest) entry as that interval's winner.
func FrontMost[ID any](segments []Segment[ID], size int) []*ID {
	result := make([]*ID, size)
	if size <= 0 || len(segments) == 0 {
		return result
	}

	breakpoints := btree.NewG(32, func(a, b float64) bool { return a < b })
	for c := 0; c <= size; c++ {
		breakpoints.ReplaceOrInsert(float64(c))
	}
	for i := range segments {
		x0 := clamp(segments[i].X0, 0, float64(size))
		x1 := clamp(segments[i].X1, 0, float64(size))
		if x1 > x0 {
			breakpoints.ReplaceOrInsert(x0)
			breakpoints.ReplaceOrInsert(x1)
		}
	}

	var sorted []float64
	breakpoints.Ascend(func(x float64) bool {
		sorted = append(sorted, x)
		return true
	})

	for i := 0; i+1 < len(sorted); i++ {
		lo, hi := sorted[i], sorted[i+1]
		if hi <= lo {
			continue
		}
		mid := (lo + hi) / 2

		tree := rbt.NewWith(func(a, b interface{}) int {
			ea, eb := a.(*Segment[ID]), b.(*Segment[ID])
			wa, wb := depthAt(ea, mid), depthAt(eb, mid)
			switch {
			case wa < wb:
				return -1
			case wa > wb:
				return 1
			case ea.Priority < eb.Priority:
				return -1
			case ea.Priority > eb.Priority:
				return 1
			default:
				return 0
			}
		})

		for idx := range segments {
			s := &segments[idx]
			if s.X0 <= mid && mid < s.X1 {
				tree.Put(s, nil)
			}
		}

		if tree.Size() == 0 {
			continue
		}

		front := tree.Right().Key.(*Segment[ID]).ID

		// Assign this interval's winner only to the columns whose center
		// (c+0.5) actually falls within [lo, hi), matching the column-center
		// sampling convention Print uses. A fractional breakpoint can leave
		// a column straddling more than one interval; whichever interval
		// contains that column's center is authoritative for it.
		colStart := int(lo)
		colEnd := int(hi)
		if colStart < 0 {
			colStart = 0
		}
		if colEnd > size {
			colEnd = size
		}
		for c := colStart; c <= colEnd && c < size; c++ {
			center := float64(c) + 0.5
			if center >= lo && center < hi {
				result[c] = &front
			}
		}
	}

	return result
}
