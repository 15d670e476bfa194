package blockcodec

import (
	"sync"

	"github.com/serialrsfec/rsfec19/internal/crc18"
	"github.com/serialrsfec/rsfec19/internal/gf"
	"github.com/serialrsfec/rsfec19/internal/rs"
)

// Block is a full 128-word protected block: indices 0..120 are the
// tagged data/CRC words, 121..126 the parity words, 127 the
// parity-MSB expansion word.
type Block [BlockWords]uint32

// Status reports the outcome of decoding one block.
type Status struct {
	CorrectedErrors uint8 // sum of corrected symbols across the three slices
	Uncorrectable   bool  // true if any slice could not be corrected
	CRCPass         bool  // meaningless (always false) when CRC was not enabled
}

// Codec is the core RS(127,121) block encoder/decoder. It holds only
// references to the immutable, process-wide GF tables and generator
// polynomial, so a single Codec may be shared by any number of
// concurrent callers.
type Codec struct {
	field     *gf.Field
	generator [rs.ParitySymbols]uint8
}

// New returns a Codec built on the shared, verified field tables and
// generator polynomial.
func New() *Codec {
	return &Codec{field: gf.Shared(), generator: rs.Shared}
}

// crcWordIndex is the index of the word whose din carries the CRC-18
// residue when CRC is enabled.
const crcWordIndex = DataWords - 1

// Encode protects 121 tagged words into a 128-word block. When
// crcEnable is true, only words[0:120] are treated as user data;
// words[120]'s din is overwritten with the computed CRC-18 residue and
// its is_k is forced to 0.
func (c *Codec) Encode(words [DataWords]uint32, crcEnable bool) Block {
	if crcEnable {
		dins := make([]uint32, crcWordIndex)
		for i := 0; i < crcWordIndex; i++ {
			dins[i] = words[i] & dinMask
		}
		words[crcWordIndex] = crc18.ComputeWords(dins) & dinMask
	}

	lanes := splitDataWords(words)

	codeA := rs.EncodeSlice(c.field, c.generator, lanes.a)
	codeB := rs.EncodeSlice(c.field, c.generator, lanes.b)
	codeC := rs.EncodeSlice(c.field, c.generator, lanes.c)

	var parityA, parityB, parityC [rs.ParitySymbols]uint8
	copy(parityA[:], codeA[rs.DataSymbols:])
	copy(parityB[:], codeB[rs.DataSymbols:])
	copy(parityC[:], codeC[rs.DataSymbols:])

	parityWords, expansion := packParityWords(parityA, parityB, parityC)

	var block Block
	copy(block[:DataWords], words[:])
	copy(block[DataWords:DataWords+rs.ParitySymbols], parityWords[:])
	block[BlockWords-1] = expansion
	return block
}

// Decode recovers the original 121 tagged words from a (possibly
// corrupted) 128-word block, correcting up to three symbol errors per
// RS slice and optionally verifying the CRC-18 layered in word 120.
func (c *Codec) Decode(block Block, crcEnable bool) ([]uint32, Status) {
	var codeA, codeB, codeC [rs.CodewordSymbols]uint8
	for n := 0; n < DataWords; n++ {
		codeA[n], codeB[n], codeC[n] = splitWord(block[n])
	}

	var parityWords [rs.ParitySymbols]uint32
	copy(parityWords[:], block[DataWords:DataWords+rs.ParitySymbols])
	expansion := block[BlockWords-1]
	pA, pB, pC := unpackParityWords(parityWords, expansion)
	copy(codeA[rs.DataSymbols:], pA[:])
	copy(codeB[rs.DataSymbols:], pB[:])
	copy(codeC[rs.DataSymbols:], pC[:])

	var resA, resB, resC rs.DecodeResult
	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); resA = rs.DecodeSlice(c.field, codeA) }()
	go func() { defer wg.Done(); resB = rs.DecodeSlice(c.field, codeB) }()
	go func() { defer wg.Done(); resC = rs.DecodeSlice(c.field, codeC) }()
	wg.Wait()

	status := Status{
		CorrectedErrors: uint8(resA.Corrected + resB.Corrected + resC.Corrected),
		Uncorrectable:   resA.Uncorrectable || resB.Uncorrectable || resC.Uncorrectable,
	}

	outLen := DataWords
	if crcEnable {
		outLen = crcWordIndex
	}
	words := make([]uint32, outLen)
	decoded := make([]uint32, DataWords)
	for n := 0; n < DataWords; n++ {
		decoded[n] = joinLanes(resA.Codeword[n], resB.Codeword[n], resC.Codeword[n])
	}

	if crcEnable {
		dins := make([]uint32, crcWordIndex)
		for i := 0; i < crcWordIndex; i++ {
			dins[i] = decoded[i] & dinMask
		}
		want := crc18.ComputeWords(dins) & dinMask
		got := decoded[crcWordIndex] & dinMask
		status.CRCPass = want == got
		copy(words, decoded[:crcWordIndex])
	} else {
		copy(words, decoded)
	}

	return words, status
}

// FlattenBits packs words LSB-first within each 19-bit word into a
// tightly-packed bit vector, matching the external interface's "a bit
// vector, LSB-first within each word" decoder output.
func FlattenBits(words []uint32) []byte {
	const wordBits = 19
	totalBits := len(words) * wordBits
	out := make([]byte, (totalBits+7)/8)
	bitPos := 0
	for _, w := range words {
		for b := 0; b < wordBits; b++ {
			if (w>>b)&1 != 0 {
				out[bitPos/8] |= 1 << uint(bitPos%8)
			}
			bitPos++
		}
	}
	return out
}
