// Package numeric provides utility functions for numerical computations,
// particularly focused on handling floating-point precision issues that
// arise throughout the S-Buffer's geometry kernel and insertion engine.
//
// # Overview
//
// The numeric package contains a set of helper functions designed for
// common numerical operations that arise in computational geometry and
// other domains where precision is important. This includes absolute
// value computation, floating-point comparisons with epsilon tolerance,
// and fixed-point rounding for deterministic tie-breaking.
//
// # Features
//
//   - Absolute Value Calculation: the Abs function computes the
//     absolute value of any signed number.
//
//   - Floating-Point Comparisons: FloatEquals, FloatGreaterThanOrEqualTo,
//     and FloatLessThanOrEqualTo compare floating-point numbers using an
//     epsilon threshold to mitigate precision errors, used by the
//     geometry kernel's crossing-parameter boundary checks.
//
//   - Fixed-Point Rounding: RoundFixed snaps a float to a fixed number of
//     fractional decimal digits and returns an integer, which is how the
//     S-Buffer breaks ties between two reciprocal depths that are "close
//     enough" to call equal (see the insertion engine's w-equality case).
package numeric
