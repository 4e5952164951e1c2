package sbuffer

import (
	"math"
	"testing"

	"github.com/mikenye/sbuffer/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants walks the tree rooted at s and asserts I1-I6 hold,
// returning the observed height so callers can cross-check I3 at the
// parent level.
func checkInvariants(t *testing.T, s *Span[string], size int, lo, hi float64) int {
	t.Helper()
	if s == nil {
		return -1
	}

	assert.True(t, s.x1 > s.x0, "I5: span [%v,%v) must have positive width", s.x0, s.x1)
	assert.True(t, s.w0 > 0 && !math.IsInf(s.w0, 0) && !math.IsNaN(s.w0), "I6: w0 must be finite and positive")
	assert.True(t, s.w1 > 0 && !math.IsInf(s.w1, 0) && !math.IsNaN(s.w1), "I6: w1 must be finite and positive")
	assert.True(t, s.x0 >= 0 && s.x1 <= float64(size), "I2: span [%v,%v) must lie within [0,%d)", s.x0, s.x1, size)
	assert.True(t, s.x0 >= lo && s.x1 <= hi, "I1: span [%v,%v) must lie within ancestor bound [%v,%v)", s.x0, s.x1, lo, hi)

	prevHeight := checkInvariants(t, s.prev, size, lo, s.x0)
	nextHeight := checkInvariants(t, s.next, size, s.x1, hi)

	bf := nextHeight - prevHeight
	assert.True(t, bf >= -1 && bf <= 1, "I4: balance factor out of range for span [%v,%v): %d", s.x0, s.x1, bf)

	expectedHeight := 1 + max(prevHeight, nextHeight)
	assert.Equal(t, expectedHeight, s.height, "I3: height mismatch for span [%v,%v)", s.x0, s.x1)

	return expectedHeight
}

func TestProperty_InvariantsHoldAfterEveryPush(t *testing.T) {
	buf, err := Init[string](32, 2.0, 32)
	require.NoError(t, err)

	pushes := []struct {
		x0, x1, w0, w1 float64
		id             string
	}{
		{3, 9, 0.2, 0.3, "A"},
		{5, 12, 0.25, 0.15, "B"},
		{0, 32, 0.05, 0.05, "C"},
		{20, 28, 0.4, 0.1, "D"},
		{1, 2, 0.9, 0.9, "E"},
		{30, 31, 0.9, 0.9, "F"},
		{15, 16, 0.5, 0.5, "G"},
		{10, 11, 0.6, 0.6, "H"},
	}

	for _, p := range pushes {
		_ = buf.Push(p.x0, p.x1, p.w0, p.w1, p.id)
		checkInvariants(t, buf.root, buf.size, 0, float64(buf.size))
	}
}

func TestProperty_FrontMostMatchesOracle(t *testing.T) {
	buf, err := Init[string](16, 2.0, 32)
	require.NoError(t, err)

	pushes := []visibility.Segment[string]{
		{X0: 2, X1: 10, W0: 0.1, W1: 0.2, ID: "A"},
		{X0: 6, X1: 14, W0: 0.3, W1: 0.1, ID: "B"},
		{X0: 0, X1: 16, W0: 0.05, W1: 0.05, ID: "C"},
		{X0: 8, X1: 9, W0: 0.9, W1: 0.9, ID: "D"},
	}

	for i, p := range pushes {
		pushes[i].Priority = i
		_ = buf.Push(p.X0, p.X1, p.W0, p.W1, p.ID)
	}

	oracle := visibility.FrontMost(pushes, buf.size)

	actual := make([]string, buf.size)
	buf.Iterate(func(s *Span[string]) {
		start := int(math.Ceil(s.x0 - 0.5))
		end := int(math.Ceil(s.x1 - 0.5))
		if start < 0 {
			start = 0
		}
		if end > buf.size {
			end = buf.size
		}
		for c := start; c < end; c++ {
			actual[c] = s.id
		}
	})

	for c := 0; c < buf.size; c++ {
		if oracle[c] == nil {
			continue
		}
		assert.Equal(t, *oracle[c], actual[c], "column %d front-most mismatch", c)
	}
}
