package numeric

import "math"

// RoundFixed scales value by 10^precision and truncates it toward zero,
// returning a fixed-point integer, e.g. RoundFixed(0.16666, 6) == 166660.
//
// This generalizes the reference S-Buffer's hardcoded "multiply by 1e6,
// truncate to int" trick used to decide whether two reciprocal depths are
// equal enough to fall back to the leftness tie-break. The truncation
// (not round-to-nearest) is intentional: it matches the C reference's
// `(int) (w * 1000000)` cast precisely, which is load-bearing for which
// surface wins at exact-tie inputs (see scenario 1 in the S-Buffer's
// testable properties).
func RoundFixed(value float64, precision int) int64 {
	scale := math.Pow(10, float64(precision))
	return int64(value * scale)
}
