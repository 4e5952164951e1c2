package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundFixed(t *testing.T) {
	tests := map[string]struct {
		value     float64
		precision int
		expected  int64
	}{
		"exact sixth decimal":  {value: 0.166666, precision: 6, expected: 166666},
		"truncates, not rounds": {value: 0.1666669, precision: 6, expected: 166666},
		"zero precision":       {value: 3.7, precision: 0, expected: 3},
		"negative value":       {value: -0.166666, precision: 6, expected: -166666},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RoundFixed(tc.value, tc.precision))
		})
	}
}
