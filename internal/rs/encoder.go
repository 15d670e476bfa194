package rs

import "github.com/serialrsfec/rsfec19/internal/gf"

// EncodeSlice performs systematic RS(127,121) encoding of data (121
// symbols) against generator coefficients g (g_0..g_5, g_6=1 implicit)
// via the standard Galois LFSR division by g(x), and returns the
// 127-symbol codeword [d_0..d_120, p_0..p_5].
func EncodeSlice(f *gf.Field, g [ParitySymbols]uint8, data [DataSymbols]uint8) [CodewordSymbols]uint8 {
	var s [ParitySymbols]uint8 // s[5] is the highest register
	for _, d := range data {
		fb := d ^ s[ParitySymbols-1]
		for j := ParitySymbols - 1; j >= 1; j-- {
			s[j] = s[j-1] ^ f.Mul(fb, g[j])
		}
		s[0] = f.Mul(fb, g[0])
	}

	var out [CodewordSymbols]uint8
	copy(out[:DataSymbols], data[:])
	copy(out[DataSymbols:], s[:])
	return out
}
