package visibility_test

import (
	"testing"

	"github.com/mikenye/sbuffer/visibility"
	"github.com/stretchr/testify/assert"
)

func TestFrontMost_SingleSegmentCoversEverything(t *testing.T) {
	segments := []visibility.Segment[string]{
		{X0: 0, X1: 8, W0: 1, W1: 1, ID: "A", Priority: 0},
	}
	result := visibility.FrontMost(segments, 8)
	require := assert.New(t)
	for c := 0; c < 8; c++ {
		if require.NotNil(result[c]) {
			require.Equal("A", *result[c])
		}
	}
}

func TestFrontMost_NearerSegmentWins(t *testing.T) {
	segments := []visibility.Segment[string]{
		{X0: 0, X1: 10, W0: 0.1, W1: 0.1, ID: "far", Priority: 0},
		{X0: 3, X1: 6, W0: 0.9, W1: 0.9, ID: "near", Priority: 1},
	}
	result := visibility.FrontMost(segments, 10)

	for c := 0; c < 3; c++ {
		if assert.NotNil(t, result[c]) {
			assert.Equal(t, "far", *result[c])
		}
	}
	for c := 3; c < 6; c++ {
		if assert.NotNil(t, result[c]) {
			assert.Equal(t, "near", *result[c])
		}
	}
	for c := 6; c < 10; c++ {
		if assert.NotNil(t, result[c]) {
			assert.Equal(t, "far", *result[c])
		}
	}
}

func TestFrontMost_NoSegmentsLeavesAllNil(t *testing.T) {
	result := visibility.FrontMost[string](nil, 5)
	for _, r := range result {
		assert.Nil(t, r)
	}
}

func TestFrontMost_LaterPriorityWinsExactTie(t *testing.T) {
	segments := []visibility.Segment[string]{
		{X0: 0, X1: 5, W0: 1, W1: 1, ID: "first", Priority: 0},
		{X0: 0, X1: 5, W0: 1, W1: 1, ID: "second", Priority: 1},
	}
	result := visibility.FrontMost(segments, 5)
	for c := 0; c < 5; c++ {
		if assert.NotNil(t, result[c]) {
			assert.Equal(t, "second", *result[c])
		}
	}
}
