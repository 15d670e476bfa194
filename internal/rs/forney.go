package rs

import "github.com/serialrsfec/rsfec19/internal/gf"

// forneyMagnitude computes the error magnitude e_j = omega(X_j^-1) /
// sigma'(X_j^-1) for a single error at degree j. ok is false if the
// denominator is zero (an uncorrectable condition the caller must
// surface).
func forneyMagnitude(f *gf.Field, sigma, omega gf.Poly, j int) (magnitude uint8, ok bool) {
	xinv := f.Exp(-j)
	sigmaDeriv := gf.Derivative(sigma)
	den := gf.Eval(f, sigmaDeriv, xinv)
	if den == 0 {
		return 0, false
	}
	num := gf.Eval(f, omega, xinv)
	return f.Div(num, den), true
}
