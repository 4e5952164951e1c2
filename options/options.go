// Package options provides configurable settings for the S-Buffer in the
// sbuffer library.
//
// This package defines a functional options pattern, allowing callers to
// modify the behavior of [sbuffer.Init] without changing its signature.
// Options are applied using functional parameters that modify a
// BufferOptions struct.
//
// # Key Features
//
//   - Floating-Point Precision Control: the Epsilon option sets the
//     tolerance used by the geometry kernel's intersection test.
//   - Tie-Break Precision Control: the TieBreakPrecision option sets how
//     many fractional decimal digits two reciprocal depths must agree on
//     before the insertion engine falls back to the leftness tie-break.
//   - Functional Options Pattern: the BufferOptionsFunc type provides a
//     way to apply optional configuration without requiring additional
//     parameters in function signatures.
//
// This approach ensures a clean API while allowing flexible configuration
// for the numerical stability of the insertion engine.
package options
