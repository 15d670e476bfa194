package blockcodec

import "testing"

func TestSplitJoinWordRoundTrip(t *testing.T) {
	words := []uint32{0, 1, 0x3FFFF, 0x20000, 0x15555, 0x2AAAA}
	for _, w := range words {
		a, b, c := splitWord(w)
		got := joinLanes(a, b, c)
		if got != w {
			t.Errorf("splitWord/joinLanes round trip: word %#x -> %#x", w, got)
		}
	}
}

func TestSplitWordIsKBit(t *testing.T) {
	a, b, c := splitWord(0x40000)
	if a>>6 != 1 || b>>6 != 1 || c>>6 != 1 {
		t.Errorf("is_k not folded into bit 6 of all three lanes: a=%#x b=%#x c=%#x", a, b, c)
	}

	a, b, c = splitWord(0x00001)
	if a>>6 != 0 || b>>6 != 0 || c>>6 != 0 {
		t.Errorf("is_k unexpectedly set: a=%#x b=%#x c=%#x", a, b, c)
	}
}

func TestSplitWordLaneValues(t *testing.T) {
	// din = 0b 111111 000000 000001 (A=0x3F, B=0, C=1), is_k=0
	word := uint32(0x3F<<12 | 0<<6 | 1)
	a, b, c := splitWord(word)
	if a&0x3F != 0x3F || b&0x3F != 0 || c&0x3F != 1 {
		t.Errorf("lane split wrong: a=%#x b=%#x c=%#x", a&0x3F, b&0x3F, c&0x3F)
	}
}
