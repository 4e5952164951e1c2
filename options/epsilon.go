package options

// WithEpsilon returns a [BufferOptionsFunc] that sets the Epsilon value
// used by the geometry kernel's segment-intersection test.
//
// Parameters:
//   - epsilon: a small positive value specifying the tolerance range. Values within
//     [-epsilon, epsilon] of 0 or 1 are treated as "not intersecting" crossing parameters.
//
// Behavior:
//   - If a negative epsilon is provided, it defaults to 0 (no adjustment).
//   - If not set, Epsilon defaults to 1e-6 (see Default).
//
// Returns:
//   - A [BufferOptionsFunc] that modifies the Epsilon field in the BufferOptions struct.
func WithEpsilon(epsilon float64) BufferOptionsFunc {
	return func(opts *BufferOptions) {
		if epsilon < 0 {
			epsilon = 0 // Default to no adjustment
		}
		opts.Epsilon = epsilon
	}
}

// WithTieBreakPrecision returns a [BufferOptionsFunc] that sets the number
// of fractional decimal digits used when comparing two reciprocal depths
// for equality during insertion (see numeric.RoundFixed).
//
// A non-positive precision defaults to 0 (whole-number comparison).
func WithTieBreakPrecision(precision int) BufferOptionsFunc {
	return func(opts *BufferOptions) {
		if precision < 0 {
			precision = 0
		}
		opts.TieBreakPrecision = precision
	}
}

// WithDebugTrace returns a [BufferOptionsFunc] that sets the DebugTrace
// field. The insertion engine does not read that field, so this option
// does not change what the buffer logs.
func WithDebugTrace(enabled bool) BufferOptionsFunc {
	return func(opts *BufferOptions) {
		opts.DebugTrace = enabled
	}
}
