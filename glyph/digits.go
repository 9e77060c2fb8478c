package glyph

import "math"

const firstPlace = 1e7

// Digits splits scale into n glyph indices, most significant place first.
// Places run from 1e7 down. A scale below 0.99 shows the point glyph in the
// first slot and continues from the tenths place. Places above 9 show 9.
func Digits(scale float64, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, 0, n)
	place := firstPlace
	rem := scale
	if math.IsNaN(rem) || rem < 0 {
		rem = 0
	}
	for i := 0; i < n; i++ {
		if i == 0 && rem < 0.99 {
			place = 0.1
			out = append(out, Point)
			continue
		}
		// The nudge keeps 0.3/0.1 from truncating to 2.
		q := math.Max(math.Floor(rem/place+1e-9), 0)
		rem -= q * place
		place /= 10
		out = append(out, int(math.Min(q, 9)))
	}
	return out
}
