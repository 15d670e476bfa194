package rs

import "github.com/serialrsfec/rsfec19/internal/gf"

// Syndromes evaluates the received codeword at alpha^1..alpha^6, one
// Horner accumulator per power, run in lockstep over the
// descending-order symbol stream r_126..r_0 (d_0 first, p_0 last).
// Returns S indexed 1..6 (S[0] is unused and always zero).
func Syndromes(f *gf.Field, codeword [CodewordSymbols]uint8) [ParitySymbols + 1]uint8 {
	descending := toDescending(codeword)

	var alpha [ParitySymbols + 1]uint8
	for j := 1; j <= ParitySymbols; j++ {
		alpha[j] = f.Exp(j)
	}

	var s [ParitySymbols + 1]uint8
	for _, v := range descending {
		for j := 1; j <= ParitySymbols; j++ {
			s[j] = f.Mul(s[j], alpha[j]) ^ v
		}
	}
	return s
}

// AllZero reports whether every syndrome is zero, i.e. the codeword is
// already a valid RS codeword requiring no correction.
func AllZero(s [ParitySymbols + 1]uint8) bool {
	for j := 1; j <= ParitySymbols; j++ {
		if s[j] != 0 {
			return false
		}
	}
	return true
}
