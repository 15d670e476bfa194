package rs

import "github.com/serialrsfec/rsfec19/internal/gf"

// berlekampMassey runs the inversionless Berlekamp-Massey recursion over
// six syndromes (s[1..6], s[0] unused) and returns the error-locator
// polynomial sigma(x). No GF divisions are performed; gamma tracks the
// running discrepancy scale in their place.
func berlekampMassey(f *gf.Field, s [ParitySymbols + 1]uint8) (sigma gf.Poly) {
	c := gf.Poly{1}
	b := gf.Poly{1}
	l := 0
	gamma := uint8(1)

	for k := 0; k < 2*ErrorCapacity; k++ {
		var delta uint8
		for j := 0; j <= l && j < len(c); j++ {
			idx := k + 1 - j
			if idx < 1 || idx > ParitySymbols {
				continue
			}
			delta ^= f.Mul(c[j], s[idx])
		}

		cNext := gf.Add(gf.Scale(f, c, gamma), gf.Scale(f, gf.ShiftUp(b, 1), delta))

		if delta == 0 || 2*l > k {
			b = gf.ShiftUp(b, 1)
		} else {
			newL := (k + 1) - l
			b = c.Clone()
			l = newL
			gamma = delta
		}
		c = cNext
	}

	return c
}

// errorEvaluator computes omega(x) = [sigma(x) * S(x)] mod x^(2t) from
// the key equation, where S(x) = s[1] + s[2]x + ... + s[6]x^5. sigma and
// omega are related this way rather than tracked through a parallel BM
// recursion, since the two satisfy no common discrepancy-driven update.
func errorEvaluator(f *gf.Field, sigma gf.Poly, s [ParitySymbols + 1]uint8) gf.Poly {
	var syndromePoly gf.Poly
	for i := 1; i <= ParitySymbols; i++ {
		syndromePoly = append(syndromePoly, s[i])
	}
	product := gf.Convolve(f, sigma, syndromePoly)
	if len(product) > ParitySymbols {
		product = product[:ParitySymbols]
	}
	return product
}
