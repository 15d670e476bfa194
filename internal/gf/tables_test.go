package gf

import "testing"

func TestExpLogInverse(t *testing.T) {
	f := Shared()
	for v := 1; v <= 127; v++ {
		i := f.Log(uint8(v))
		if got := f.Exp(i); int(got) != v {
			t.Errorf("exp[log[%d]] = %d, want %d", v, got, v)
		}
	}
	for i := 0; i <= 126; i++ {
		v := f.Exp(i)
		if got := f.Log(v); got != i {
			t.Errorf("log[exp[%d]] = %d, want %d", i, got, i)
		}
	}
}

func TestMulClosureAndCommutativity(t *testing.T) {
	f := Shared()
	for a := 0; a < 128; a++ {
		for b := 0; b < 128; b++ {
			p := f.Mul(uint8(a), uint8(b))
			if p > 127 {
				t.Fatalf("mul(%d,%d) = %d out of range", a, b, p)
			}
			if q := f.Mul(uint8(b), uint8(a)); q != p {
				t.Errorf("mul not commutative: mul(%d,%d)=%d mul(%d,%d)=%d", a, b, p, b, a, q)
			}
		}
	}
}

func TestMulAssociativity(t *testing.T) {
	f := Shared()
	samples := []uint8{0, 1, 2, 3, 7, 42, 65, 100, 126, 127}
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				lhs := f.Mul(f.Mul(a, b), c)
				rhs := f.Mul(a, f.Mul(b, c))
				if lhs != rhs {
					t.Errorf("mul not associative for (%d,%d,%d): %d != %d", a, b, c, lhs, rhs)
				}
			}
		}
	}
}

func TestAddSelfInverse(t *testing.T) {
	f := Shared()
	for a := 0; a < 128; a++ {
		for b := 0; b < 128; b++ {
			if f.Add(f.Add(uint8(a), uint8(b)), uint8(b)) != uint8(a) {
				t.Errorf("add not self-inverse for (%d,%d)", a, b)
			}
		}
	}
}

func TestInvDiv(t *testing.T) {
	f := Shared()
	for a := 1; a < 128; a++ {
		inv := f.Inv(uint8(a))
		if f.Mul(uint8(a), inv) != 1 {
			t.Errorf("mul(%d, inv(%d)) != 1", a, a)
		}
		if f.Div(uint8(a), uint8(a)) != 1 {
			t.Errorf("div(%d,%d) != 1", a, a)
		}
	}
	if f.Div(0, 5) != 0 {
		t.Errorf("div(0,x) should be 0")
	}
}

func TestInvZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Inv(0) should panic")
		}
	}()
	Shared().Inv(0)
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Div(x,0) should panic")
		}
	}()
	Shared().Div(5, 0)
}
