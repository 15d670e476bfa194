package rs

import "testing"

func TestGeneratorCoefficients(t *testing.T) {
	want := [ParitySymbols]uint8{0x6D, 0x22, 0x64, 0x44, 0x40, 0x7E}
	if Shared != want {
		t.Errorf("generator coefficients = %02X, want %02X", Shared, want)
	}
}
