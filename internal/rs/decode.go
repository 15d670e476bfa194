package rs

import "github.com/serialrsfec/rsfec19/internal/gf"

// DecodeResult is the outcome of decoding a single RS(127,121) slice.
type DecodeResult struct {
	Codeword     [CodewordSymbols]uint8 // corrected (or unchanged, if uncorrectable) codeword
	Corrected    int                    // number of symbols actually corrected
	Uncorrectable bool
}

// DecodeSlice runs the full syndrome -> Berlekamp-Massey -> Chien
// search -> Forney -> correction pipeline over one received RS(127,121)
// codeword. On any uncorrectable condition (locator degree > t,
// root count mismatch, or a zero Forney denominator) the codeword is
// returned unmodified and Uncorrectable is set; the caller must not
// otherwise treat that slice's data as trustworthy.
func DecodeSlice(f *gf.Field, codeword [CodewordSymbols]uint8) DecodeResult {
	s := Syndromes(f, codeword)
	if AllZero(s) {
		return DecodeResult{Codeword: codeword}
	}

	sigma := berlekampMassey(f, s)
	degree := sigma.Degree()
	if degree < 0 || degree > MaxLocatorDegree {
		return DecodeResult{Codeword: codeword, Uncorrectable: true}
	}

	roots := chienSearch(f, sigma)
	if len(roots) != degree || len(roots) > MaxLocatorDegree {
		return DecodeResult{Codeword: codeword, Uncorrectable: true}
	}

	omega := errorEvaluator(f, sigma, s)
	corrected := codeword
	for _, j := range roots {
		magnitude, ok := forneyMagnitude(f, sigma, omega, j)
		if !ok {
			return DecodeResult{Codeword: codeword, Uncorrectable: true}
		}
		idx := mapDegreeToIndex(j)
		corrected[idx] ^= magnitude
	}

	return DecodeResult{Codeword: corrected, Corrected: len(roots)}
}
