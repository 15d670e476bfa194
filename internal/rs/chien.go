package rs

import "github.com/serialrsfec/rsfec19/internal/gf"

// MaxLocatorDegree is the highest degree sigma(x) can have while still
// possibly being correctable (deg sigma <= t).
const MaxLocatorDegree = ErrorCapacity

// chienSearch finds the roots of sigma(x) among {alpha^0..alpha^126}
// using four parallel registers seeded with sigma_0..sigma_3 and
// constant per-cycle multipliers (1, alpha^-1, alpha^-2, alpha^-3).
// Returns the 0-based error degrees j for which sigma(alpha^-j) = 0.
func chienSearch(f *gf.Field, sigma gf.Poly) []int {
	var r [MaxLocatorDegree + 1]uint8
	var mult [MaxLocatorDegree + 1]uint8
	for i := 0; i <= MaxLocatorDegree; i++ {
		r[i] = sigma.At(i)
		mult[i] = f.Exp(-i)
	}

	var roots []int
	for j := 0; j < gf.FieldSize; j++ {
		var sum uint8
		for i := range r {
			sum ^= r[i]
		}
		if sum == 0 {
			roots = append(roots, j)
		}
		for i := range r {
			r[i] = f.Mul(r[i], mult[i])
		}
	}
	return roots
}
