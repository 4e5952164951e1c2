package options

// BufferOptionsFunc is a functional option type used to configure a
// [sbuffer.Buffer] at construction time. Functions that accept a
// BufferOptionsFunc parameter allow callers to customize behavior without
// modifying the primary function signature.
//
// BufferOptionsFunc functions take a pointer to a BufferOptions struct and
// modify its fields to apply specific configurations.
type BufferOptionsFunc func(*BufferOptions)

// BufferOptions defines a set of configurable parameters for the S-Buffer.
// These options allow callers to customize the numerical behavior of the
// insertion engine without widening Init's signature.
type BufferOptions struct {
	// Epsilon is a small positive value used by the geometry kernel's
	// segment-intersection test to decide whether a computed crossing
	// parameter lies strictly inside (0, 1). Values within [-Epsilon,
	// Epsilon] of 0 or 1 are treated as "not intersecting".
	//
	// Default: 1e-6, matching the reference implementation.
	Epsilon float64

	// TieBreakPrecision is the number of fractional decimal digits two
	// reciprocal depths must agree on (after truncation) before the
	// insertion engine considers them equal and falls back to the
	// leftness tie-break.
	//
	// Default: 6, matching the reference implementation's "multiply by
	// 1e6 and cast to integer" rule.
	TieBreakPrecision int

	// DebugTrace is stored with the other options, but the insertion
	// engine does not read it: no rotation or bisection tracing is
	// emitted whether it is true or false. Debug-build logging (see
	// log_debug.go / log_release.go) does not depend on it.
	DebugTrace bool
}

// Default returns the BufferOptions in effect when Init is called with no
// BufferOptionsFunc arguments.
func Default() BufferOptions {
	return BufferOptions{
		Epsilon:           1e-6,
		TieBreakPrecision: 6,
		DebugTrace:        false,
	}
}

// Apply applies a set of functional options to a given options struct,
// starting with a set of default values.
//
// Parameters:
//   - defaults (BufferOptions): the initial BufferOptions struct containing default values.
//   - opts: a variadic slice of BufferOptionsFunc functions that modify the BufferOptions struct.
//
// Behavior:
//   - Each BufferOptionsFunc in opts is applied in the order it is provided.
//   - defaults serves as a base configuration, which can be overridden by
//     the provided options.
//
// Returns:
//
// A new BufferOptions struct that reflects the default values combined
// with any modifications made by the BufferOptionsFunc functions.
func Apply(defaults BufferOptions, opts ...BufferOptionsFunc) BufferOptions {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}
