package rs

import (
	"fmt"

	"github.com/serialrsfec/rsfec19/internal/gf"
)

// ParitySymbols is the number of RS parity symbols per slice (2t, t=3).
const ParitySymbols = 6

// DataSymbols is the number of RS data symbols per slice.
const DataSymbols = 121

// CodewordSymbols is the total symbols per RS(127,121) slice.
const CodewordSymbols = DataSymbols + ParitySymbols

// ErrorCapacity is the maximum number of symbol errors correctable per slice.
const ErrorCapacity = ParitySymbols / 2

// expectedGeneratorCoefficients are the spec-mandated g_0..g_5 coefficients
// of g(x) = prod_{i=1..6}(x + alpha^i). Any mismatch between these and the
// coefficients actually computed from the field tables is a fatal
// configuration error caught at init.
var expectedGeneratorCoefficients = [ParitySymbols]uint8{0x6D, 0x22, 0x64, 0x44, 0x40, 0x7E}

// BuildGenerator computes g(x) = prod_{i=1..6}(x - alpha^i) (addition and
// subtraction coincide in GF(2^n)) over f, verifies it against the spec
// constants, and returns its six low coefficients g_0..g_5 (g_6 = 1 is
// implicit and never stored).
//
// BuildGenerator panics on mismatch: this is the build-time configuration
// assertion of DATA MODEL / Generator polynomial, not a recoverable
// runtime condition.
func BuildGenerator(f *gf.Field) [ParitySymbols]uint8 {
	g := gf.Poly{1}
	for i := 1; i <= ParitySymbols; i++ {
		root := f.Exp(i)
		// multiply g by (x + alpha^i): (x + r) has coefficients [r, 1]
		g = gf.Convolve(f, g, gf.Poly{root, 1})
	}
	if g.Degree() != ParitySymbols {
		panic(fmt.Sprintf("rs: generator polynomial has wrong degree %d, want %d", g.Degree(), ParitySymbols))
	}
	var out [ParitySymbols]uint8
	for i := 0; i < ParitySymbols; i++ {
		out[i] = g.At(i)
	}
	if out != expectedGeneratorCoefficients {
		panic(fmt.Sprintf("rs: generator polynomial coefficients %02X do not match spec constants %02X", out, expectedGeneratorCoefficients))
	}
	return out
}

// Shared holds the process-wide, verified generator polynomial
// coefficients built against gf.Shared(). Computed once at package init.
var Shared = BuildGenerator(gf.Shared())
