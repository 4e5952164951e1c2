// Package sbuffer implements a Segment Buffer (S-Buffer): a self-balancing
// ordered binary tree of screen-space spans that solves the hidden-surface
// removal problem for a single horizontal raster scan, the way classic
// software 2.5-D ("Doom-style") wall renderers resolved visibility before
// per-pixel Z-buffers were affordable.
//
// # Overview
//
// A Buffer maintains, for a raster of width size, the set of currently
// visible sub-intervals (spans) together with their perspective-correct
// depths. Pushing a new candidate span resolves visibility against every
// previously inserted span — clipping, splitting, and occluding as
// geometry dictates — leaving the buffer representing the nearest
// (front-most) surface at every column.
//
// # Core Components
//
//   - [Span]: a half-open interval [x0, x1) with reciprocal-depth
//     endpoints, doubling as the tree node.
//   - The geometry kernel (unexported): floating-point predicates used to
//     resolve which of two overlapping spans is in front.
//   - [Buffer.Push]: the insertion engine that classifies overlap into one
//     of the visibility cases L1–L5 and R1–R8, mutates or bisects existing spans, and
//     rebalances the tree — all without true recursion, so that stack
//     depth is bounded by the configured MaxDepth regardless of host
//     language call-stack limits.
//   - [Buffer.Iterate], [Buffer.Dump], [Buffer.Print]: read-only traversal
//     and debugging aids.
//
// # Concurrency
//
// Buffer is not safe for concurrent use. Push is non-reentrant with
// respect to the same Buffer; there is no internal locking, and none
// should be added by callers sharing a Buffer across goroutines without
// their own synchronization.
//
// # Precision control
//
// Package [github.com/mikenye/sbuffer/options] provides functional options
// (WithEpsilon, WithTieBreakPrecision) for tuning the floating-point
// tolerances used by the insertion engine's geometric predicates.
package sbuffer

import (
	"fmt"

	"github.com/mikenye/sbuffer/options"
)

// Buffer is the S-Buffer itself: a root span pointer (nil when empty), the
// raster width Size, the view-space near-plane distance ZNear, and a
// configured MaxDepth bounding the insertion engine's descent stack.
//
// ID is the type used to identify spans for debugging (Dump, Print). It
// has no effect on the geometry; any type works, though Dump/Print are
// only as readable as fmt.Sprintf("%v", id) makes them.
type Buffer[ID any] struct {
	root     *Span[ID]
	size     int
	zNear    float64
	maxDepth int
	opts     options.BufferOptions
}

// Init creates a new, empty S-Buffer.
//
// Parameters:
//   - size: the raster width in columns; must be strictly positive.
//   - zNear: the view-space distance from the eye to the near-clipping plane; must be strictly positive.
//   - maxDepth: the maximum depth the insertion engine's descent stack is allowed to reach; must be at least 1.
//   - opts: functional options from the options package (WithEpsilon, WithTieBreakPrecision, WithDebugTrace).
//
// Returns an error if any parameter is out of range. Callers in a hot
// path that has already validated these parameters may ignore the error;
// debug builds additionally assert the same preconditions (see
// log_debug.go), so a misuse during development fails loudly rather than
// quietly returning a zero-value *Buffer.
func Init[ID any](size int, zNear float64, maxDepth int, opts ...options.BufferOptionsFunc) (*Buffer[ID], error) {
	assertf(size > 0, "sbuffer: Init: size must be positive, got %d", size)
	assertf(zNear > 0, "sbuffer: Init: zNear must be positive, got %v", zNear)
	assertf(maxDepth >= 1, "sbuffer: Init: maxDepth must be at least 1, got %d", maxDepth)

	if size <= 0 {
		return nil, fmt.Errorf("sbuffer: size must be positive, got %d", size)
	}
	if zNear <= 0 {
		return nil, fmt.Errorf("sbuffer: zNear must be positive, got %v", zNear)
	}
	if maxDepth < 1 {
		return nil, fmt.Errorf("sbuffer: maxDepth must be at least 1, got %d", maxDepth)
	}

	return &Buffer[ID]{
		size:     size,
		zNear:    zNear,
		maxDepth: maxDepth,
		opts:     options.Apply(options.Default(), opts...),
	}, nil
}

// Size returns the raster width the buffer was initialized with.
func (b *Buffer[ID]) Size() int { return b.size }

// ZNear returns the near-plane distance the buffer was initialized with.
func (b *Buffer[ID]) ZNear() float64 { return b.zNear }

// MaxDepth returns the configured maximum descent-stack depth.
func (b *Buffer[ID]) MaxDepth() int { return b.maxDepth }

// IsEmpty reports whether the buffer holds no spans.
func (b *Buffer[ID]) IsEmpty() bool { return b.root == nil }
