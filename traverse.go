package sbuffer

import (
	"fmt"
	"math"
	"strings"
)

// visitState tracks, for one level of an explicit-stack in-order walk, what
// has already been visited at that level: before descending into prev,
// between prev and next (i.e. visiting the node itself), or after next —
// mirroring the reference renderer's depth-first walk over the buffer.
type visitState int

const (
	beforePrev visitState = iota
	beforeNext
	done
)

type walkFrame[ID any] struct {
	span  *Span[ID]
	state visitState
}

// Iterate walks every span in the buffer in ascending x0 order, calling fn
// once per span. The walk uses an explicit stack rather than recursion, so
// it is safe on a buffer built up to MaxDepth.
func (b *Buffer[ID]) Iterate(fn func(s *Span[ID])) {
	if b.root == nil {
		return
	}

	stack := make([]walkFrame[ID], 0, b.maxDepth)
	stack = append(stack, walkFrame[ID]{b.root, beforePrev})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		switch top.state {
		case beforePrev:
			top.state = beforeNext
			if top.span.prev != nil {
				stack = append(stack, walkFrame[ID]{top.span.prev, beforePrev})
			}
		case beforeNext:
			top.state = done
			fn(top.span)
			if top.span.next != nil {
				stack = append(stack, walkFrame[ID]{top.span.next, beforePrev})
			}
		case done:
			stack = stack[:len(stack)-1]
		}
	}
}

// spanDepth reports the nesting depth of s within the tree rooted at root,
// or -1 if s is not found. Used only by Dump for indentation.
func spanDepth[ID any](root, target *Span[ID]) int {
	depth := 0
	curr := root
	for curr != nil {
		if curr == target {
			return depth
		}
		if target.x0 < curr.x0 {
			curr = curr.prev
		} else {
			curr = curr.next
		}
		depth++
	}
	return -1
}

// Dump renders the tree structure as indented text, one line per span, in
// ascending x0 order with indentation proportional to tree depth. Intended
// for debugging and tests, not for production diagnostics.
func (b *Buffer[ID]) Dump() string {
	var sb strings.Builder
	b.Iterate(func(s *Span[ID]) {
		depth := spanDepth(b.root, s)
		sb.WriteString(strings.Repeat("    ", depth))
		fmt.Fprintf(&sb, "[%v] [%g, %g) w=[%g, %g] h=%d\n", s.id, s.x0, s.x1, s.w0, s.w1, s.height)
	})
	return sb.String()
}

// Print renders the buffer as a size-wide string, one character per column,
// using the leading byte of each span's id (formatted with %v) at every
// column it covers and '_' for any column not covered by a span. A span's
// right edge rounds via ceil(x - 0.5), matching the reference renderer's
// column-center sampling rule: column c is covered when c+0.5 falls inside
// [x0, x1).
func (b *Buffer[ID]) Print() string {
	cols := make([]byte, b.size)
	for i := range cols {
		cols[i] = '_'
	}

	b.Iterate(func(s *Span[ID]) {
		label := fmt.Sprintf("%v", s.id)
		ch := byte('?')
		if len(label) > 0 {
			ch = label[0]
		}

		start := int(math.Ceil(s.x0 - 0.5))
		end := int(math.Ceil(s.x1 - 0.5))
		if start < 0 {
			start = 0
		}
		if end > b.size {
			end = b.size
		}
		for c := start; c < end; c++ {
			cols[c] = ch
		}
	})

	return string(cols)
}

// Destroy detaches the buffer's root, making it immediately empty. Unlike
// the reference implementation, there is no manual free walk to perform:
// Go's garbage collector reclaims every unreferenced span once nothing
// else points into the tree. Destroy is still provided so callers porting
// from or mirroring that lifecycle have an explicit, idempotent teardown
// step.
func (b *Buffer[ID]) Destroy() {
	b.root = nil
}
