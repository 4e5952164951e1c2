package sbuffer

import "github.com/mikenye/sbuffer/numeric"

// descentFrame records, for one level of the insertion engine's explicit
// descent stack, the span visited at that level and the (left, right)
// bounds inherited from its ancestors — the window within which any new
// fragment created at or below this level may be created.
type descentFrame[ID any] struct {
	span        *Span[ID]
	left, right float64
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Push pushes a candidate span onto the buffer with screen-space endpoints
// (x0, w0) and (x1, w1), where w0/w1 are reciprocal view-space depths
// (x0 < x1, w0 and w1 strictly positive and finite — the caller is
// contractually required to pre-sort and pre-clamp these; debug builds
// assert them). id identifies the span for later Dump/Print output.
//
// Returns nil on success. Returns ErrOccluded if the candidate ended up
// entirely behind existing geometry or clipped to empty width; the buffer
// is unchanged. Returns ErrMaxDepthExceeded if the descent stack would
// need to exceed MaxDepth; the buffer remains well-formed up to whatever
// partial work had already been committed.
func (b *Buffer[ID]) Push(x0, x1, w0, w1 float64, id ID) error {
	assertf(x0 < x1, "sbuffer: Push: x0 (%v) must be less than x1 (%v)", x0, x1)
	assertf(w0 > 0, "sbuffer: Push: w0 must be positive, got %v", w0)
	assertf(w1 > 0, "sbuffer: Push: w1 must be positive, got %v", w1)

	size := x1 - x0

	if b.root == nil {
		clipLeft := maxf(-x0, 0)
		clipRight := maxf(x1-float64(b.size), 0)
		clippedSize := size - clipRight - clipLeft

		if clippedSize > 0 {
			newX0 := x0 + clipLeft
			newX1 := newX0 + clippedSize
			newW0 := lerpW(w0, w1, newX0-x0, size)
			newW1 := lerpW(w0, w1, newX1-x0, size)
			b.root = newSpan(newX0, newX1, newW0, newW1, id)
			return nil
		}
		return ErrOccluded
	}

	eps := b.opts.Epsilon
	precision := b.opts.TieBreakPrecision

	left, right := 0.0, float64(b.size)
	x, remaining := x0, size
	pushed := false

	stack := make([]descentFrame[ID], b.maxDepth)
	depth := 0
	curr := b.root
	var parent *Span[ID]

	for remaining > 0 {
		for curr != nil {
			if depth == b.maxDepth {
				logDebugf("[Push] Maximum buffer depth reached!")
				return ErrMaxDepthExceeded
			}

			parent = curr
			stack[depth] = descentFrame[ID]{parent, left, right}
			depth++

			parentSize := parent.x1 - parent.x0
			w := lerpW(w0, w1, x-x0, size)

			status, intersection, leftness := spanIntersect(
				x, w, x1, w1,
				parent.x0, parent.w0, parent.x1, parent.w1,
				float64(b.size), b.zNear, eps,
			)
			notIntersecting := status != statusIntersecting

			if x < parent.x0 {
				if x1 > parent.x0 {
					if !notIntersecting {
						if leftness > 0 {
							if x1 < parent.x1 {
								// CASE L1: bisecting
								bisectParent(parent, x0, x1, w0, w1, intersection, x1, id)
								pushed = true
							} else {
								// CASE L2: obscures from the right
								parent.w1 = lerpW(parent.w0, parent.w1, intersection-parent.x0, parentSize)
								parent.x1 = intersection
							}
						} else {
							// CASE L3: obscures from the left
							parent.w0 = lerpW(parent.w0, parent.w1, intersection-parent.x0, parentSize)
							parent.x0 = intersection
						}
					} else {
						wAtParentX0 := lerpW(w0, w1, parent.x0-x0, size)
						wAtParentX0Cmp := numeric.RoundFixed(wAtParentX0, precision)
						parentW0Cmp := numeric.RoundFixed(parent.w0, precision)

						if parentW0Cmp < wAtParentX0Cmp || (parentW0Cmp == wAtParentX0Cmp && leftness > 0) {
							if x1 < parent.x1 {
								// CASE L4: obscures from the left
								parent.w0 = lerpW(parent.w0, parent.w1, x1-parent.x0, parentSize)
								parent.x0 = x1
							} else {
								// CASE L5: completely obscures
								parent.w0 = wAtParentX0
								parent.w1 = lerpW(w0, w1, parent.x1-x0, size)
								parent.id = id
								pushed = true
							}
						}
					}
				}

				right = parent.x0
				curr = parent.prev
			} else {
				if x < parent.x1 {
					if !notIntersecting {
						if leftness > 0 {
							if x1 < parent.x1 {
								// CASE R1: bisecting
								bisectParent(parent, x0, x1, w0, w1, intersection, x1, id)
								pushed = true
							} else {
								// CASE R2: obscures from the right
								parent.w1 = lerpW(parent.w0, parent.w1, intersection-parent.x0, parentSize)
								parent.x1 = intersection
							}
						} else {
							if x > parent.x0 {
								// CASE R3: bisecting
								bisectParent(parent, x0, x1, w0, w1, x, intersection, id)
								pushed = true
							} else {
								// CASE R4: obscures from the left; must
								// redescend leftward since we just
								// changed what the left neighbourhood is
								parent.w0 = lerpW(parent.w0, parent.w1, intersection-parent.x0, parentSize)
								parent.x0 = intersection
								right = parent.x0
								curr = parent.prev
								continue
							}
						}
					} else {
						parentWAtX := lerpW(parent.w0, parent.w1, x-parent.x0, parentSize)
						parentWAtXCmp := numeric.RoundFixed(parentWAtX, precision)
						wCmp := numeric.RoundFixed(w, precision)

						if parentWAtXCmp < wCmp || (parentWAtXCmp == wCmp && leftness > 0) {
							if x > parent.x0 {
								if x1 < parent.x1 {
									// CASE R5: bisecting
									bisectParent(parent, x0, x1, w0, w1, x, x1, id)
									pushed = true
								} else {
									// CASE R6: obscures from the right
									parent.w1 = lerpW(parent.w0, parent.w1, x-parent.x0, parentSize)
									parent.x1 = x
								}
							} else {
								if x1 < parent.x1 {
									// CASE R7: obscures from the left;
									// redescend leftward
									parent.w0 = lerpW(parent.w0, parent.w1, x1-parent.x0, parentSize)
									parent.x0 = x1
									right = parent.x0
									curr = parent.prev
									continue
								}
								// CASE R8: completely obscures
								parent.w0 = w
								parent.w1 = lerpW(w0, w1, parent.x1-x0, size)
								parent.id = id
								pushed = true
							}
						}
					}
				}

				left = parent.x1
				curr = parent.next
			}
		}
		// an appropriate spot to insert should have been found by now

		clipLeft := maxf(left-x, 0)
		clipRight := maxf(x+remaining-right, 0)
		clippedSize := remaining - clipLeft - clipRight

		if clippedSize > 0 {
			newX0 := x + clipLeft
			newX1 := newX0 + clippedSize
			newW0 := lerpW(w0, w1, newX0-x0, size)
			newW1 := lerpW(w0, w1, newX1-x0, size)
			leaf := newSpan(newX0, newX1, newW0, newW1, id)
			if x < parent.x0 {
				parent.prev = leaf
			} else {
				parent.next = leaf
			}
			curr = leaf
			pushed = true
		}

		insertionBookmark := -1
		imbalanceBookmark := -1
		stackDepth := depth - 1
		tmpX := x

		for i := 0; i < depth; i++ {
			if insertionBookmark >= 0 && imbalanceBookmark >= 0 {
				break
			}

			parentSpan := stack[stackDepth].span

			if insertionBookmark < 0 && tmpX < parentSpan.x0 {
				insertionBookmark = stackDepth
			}
			tmpX = parentSpan.x0

			if imbalanceBookmark < 0 {
				bf := balanceFactor(parentSpan)
				if numeric.Abs(bf) > 1 {
					imbalanceBookmark = stackDepth
				} else if curr != nil {
					parentSpan.height = max(parentSpan.height, depth-stackDepth)
				}
			}

			stackDepth--
		}

		if insertionBookmark >= 0 {
			scope := stack[insertionBookmark]
			curr = scope.span
			left = scope.left
			right = scope.right
			x = curr.x0
			remaining = clipRight
			depth = insertionBookmark
		} else {
			remaining = 0
		}

		if imbalanceBookmark >= 0 {
			var imbalanceParent *Span[ID]
			if imbalanceBookmark > 0 {
				imbalanceParent = stack[imbalanceBookmark-1].span
			}

			oldParent := stack[imbalanceBookmark].span
			var newParent, child *Span[ID]

			if balanceFactor(oldParent) < 0 {
				newParent = oldParent.prev
				child = newParent.prev

				if balanceFactor(newParent) > 0 { // double rotation
					child = newParent
					newParent = child.next
					child.next = newParent.prev
					newParent.prev = child
				}

				oldParent.prev = newParent.next
				newParent.next = oldParent
			} else {
				newParent = oldParent.next
				child = newParent.next

				if balanceFactor(newParent) < 0 { // double rotation
					child = newParent
					newParent = child.prev
					child.prev = newParent.next
					newParent.next = child
				}

				oldParent.next = newParent.prev
				newParent.prev = oldParent
			}

			updateHeight(oldParent)
			updateHeight(child)
			updateHeight(newParent)

			if imbalanceParent != nil {
				if newParent.x0 < imbalanceParent.x0 {
					imbalanceParent.prev = newParent
				} else {
					imbalanceParent.next = newParent
				}
			} else {
				b.root = newParent
			}

			if imbalanceBookmark <= insertionBookmark {
				i := imbalanceBookmark
				newLeft, newRight := 0.0, float64(b.size)

				if i > 0 {
					parentScope := stack[i-1]
					parentSpanAtI := parentScope.span
					newLeft, newRight = parentScope.left, parentScope.right

					if newParent.x0 < parentSpanAtI.x0 {
						newRight = parentSpanAtI.x0
					} else {
						newLeft = parentSpanAtI.x1
					}
				}

				for stackSpan := newParent; stackSpan != nil; {
					stack[i] = descentFrame[ID]{stackSpan, newLeft, newRight}

					if stackSpan == curr {
						break
					}

					if x < stackSpan.x0 {
						newRight = stackSpan.x0
						stackSpan = stackSpan.prev
					} else {
						newLeft = stackSpan.x1
						stackSpan = stackSpan.next
					}
					i++
				}

				left = newLeft
				right = newRight
				depth = i
			}
		}
	}

	if !pushed {
		logDebugf("[Push] Cannot add more segments, spot fully occluded!")
		return ErrOccluded
	}

	return nil
}
