package blockcodec

import "github.com/serialrsfec/rsfec19/internal/rs"

// slices holds the three 121-symbol lanes split out of a block's 121
// tagged data words, one per RS(127,121) codeword.
type slices struct {
	a, b, c [rs.DataSymbols]uint8
}

// splitDataWords splits the 121 tagged words into their three RS data
// lanes.
func splitDataWords(words [DataWords]uint32) slices {
	var s slices
	for n, w := range words {
		s.a[n], s.b[n], s.c[n] = splitWord(w)
	}
	return s
}

// packParityWords packs the six parity symbols of each of the three
// lanes into the block's parity words (indices 121..126) and the
// parity-MSB expansion word (index 127).
func packParityWords(a, b, c [rs.ParitySymbols]uint8) (parity [rs.ParitySymbols]uint32, expansion uint32) {
	for i := 0; i < rs.ParitySymbols; i++ {
		parity[i] = (uint32(a[i]&0x3F) << 12) | (uint32(b[i]&0x3F) << 6) | uint32(c[i]&0x3F)

		expansion |= uint32((a[i]>>6)&1) << (3*i + 0)
		expansion |= uint32((b[i]>>6)&1) << (3*i + 1)
		expansion |= uint32((c[i]>>6)&1) << (3*i + 2)
	}
	return
}

// unpackParityWords reverses packParityWords: given the six parity
// words and the expansion word, it reconstructs each lane's six
// 7-bit parity symbols (restoring the is_k-derived bit 6 from the
// expansion word).
func unpackParityWords(parity [rs.ParitySymbols]uint32, expansion uint32) (a, b, c [rs.ParitySymbols]uint8) {
	for i := 0; i < rs.ParitySymbols; i++ {
		pw := parity[i]
		aLow := uint8((pw >> 12) & 0x3F)
		bLow := uint8((pw >> 6) & 0x3F)
		cLow := uint8(pw & 0x3F)

		aMsb := uint8((expansion >> (3*i + 0)) & 1)
		bMsb := uint8((expansion >> (3*i + 1)) & 1)
		cMsb := uint8((expansion >> (3*i + 2)) & 1)

		a[i] = aLow | (aMsb << 6)
		b[i] = bLow | (bMsb << 6)
		c[i] = cLow | (cMsb << 6)
	}
	return
}
