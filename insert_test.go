package sbuffer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mikenye/sbuffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPush_Scenario1 is spec scenario 1: five overlapping spans resolve to
// a buffer where only D and E are wide enough to leave a visible,
// column-rounded footprint; A, B, and C contribute sub-pixel slivers that
// round away under the column-center sampling rule.
func TestPush_Scenario1(t *testing.T) {
	buf, err := sbuffer.Init[string](16, 4, 32)
	require.NoError(t, err)

	require.NoError(t, buf.Push(88.0/15, 20.0/3, 1.0/15, 1.0/6, "A"))
	require.NoError(t, buf.Push(28.0/3, 152.0/15, 1.0/6, 1.0/15, "B"))
	require.NoError(t, buf.Push(20.0/3, 28.0/3, 1.0/6, 1.0/6, "C"))
	require.NoError(t, buf.Push(17.0/3, 8, 1.0/12, 1.0/5, "D"))
	require.NoError(t, buf.Push(8, 31.0/3, 1.0/5, 1.0/12, "E"))

	assert.Equal(t, "_____DDD_EEE____", buf.Print())
}

// TestPush_Scenario2 is spec scenario 2: a single push on an empty buffer
// installs one unsplit leaf span.
func TestPush_Scenario2(t *testing.T) {
	buf, err := sbuffer.Init[string](8, 1.0, 8)
	require.NoError(t, err)

	require.NoError(t, buf.Push(0, 8, 1.0, 1.0, "X"))
	assert.Equal(t, "XXXXXXXX", buf.Print())
}

// TestPush_Scenario3 is spec scenario 3: B is nearer than A and
// intersects A's right half entirely in front, leaving two spans.
func TestPush_Scenario3(t *testing.T) {
	buf, err := sbuffer.Init[string](6, 1.0, 8)
	require.NoError(t, err)

	require.NoError(t, buf.Push(0, 4, 1.0, 1.0, "A"))
	require.NoError(t, buf.Push(2, 6, 2.0, 2.0, "B"))

	assert.Equal(t, "AABBBB", buf.Print())
}

// TestPush_Scenario4 is spec scenario 4: B punches a hole in the middle
// of A, triggering a bisection into three spans.
func TestPush_Scenario4(t *testing.T) {
	buf, err := sbuffer.Init[string](4, 1.0, 8)
	require.NoError(t, err)

	require.NoError(t, buf.Push(0, 4, 1.0, 1.0, "A"))
	require.NoError(t, buf.Push(1, 3, 2.0, 2.0, "B"))

	assert.Equal(t, "ABBA", buf.Print())
}

// TestPush_Scenario5 is spec scenario 5: B is entirely behind A within
// A's interval, so the push is fully occluded and the buffer is
// unchanged.
func TestPush_Scenario5(t *testing.T) {
	buf, err := sbuffer.Init[string](6, 1.0, 8)
	require.NoError(t, err)

	require.NoError(t, buf.Push(0, 6, 2.0, 2.0, "A"))

	err = buf.Push(1, 4, 1.0, 1.0, "B")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sbuffer.ErrOccluded))

	assert.Equal(t, "AAAAAA", buf.Print())
}

// TestPush_Scenario6 is spec scenario 6: a left-to-right chain of seven
// disjoint, equal-depth spans forces repeated rebalancing; the tree must
// never exceed height 3.
func TestPush_Scenario6(t *testing.T) {
	buf, err := sbuffer.Init[string](7, 1.0, 16)
	require.NoError(t, err)

	labels := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, label := range labels {
		require.NoError(t, buf.Push(float64(i), float64(i+1), 1.0, 1.0, label))

		// Dump indents each span four spaces per tree level, so a height
		// above 3 would show up as a line indented four levels or more.
		for _, line := range strings.Split(buf.Dump(), "\n") {
			assert.False(t, strings.HasPrefix(line, strings.Repeat("    ", 4)), "tree height exceeds 3:\n%s", buf.Dump())
		}
	}

	assert.Equal(t, "ABCDEFG", buf.Print())
}

func TestPush_MaxDepthExceeded(t *testing.T) {
	buf, err := sbuffer.Init[string](64, 1.0, 1)
	require.NoError(t, err)

	require.NoError(t, buf.Push(0, 64, 1.0, 1.0, "A"))

	err = buf.Push(10, 20, 2.0, 2.0, "B")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sbuffer.ErrMaxDepthExceeded))
}
