package gf

// Poly is a polynomial over GF(2^7) in coefficient-ascending order:
// Poly[0] is the constant term. This is the single internal
// representation used by the generator builder, Berlekamp-Massey,
// Chien search and Forney; the descending order needed for the
// 127-symbol Horner syndrome stream is produced only at that
// interface (see rs.Syndromes) and never stored as a Poly.
type Poly []uint8

// degree returns the highest index of a nonzero coefficient, or -1 for
// the zero polynomial.
func (p Poly) degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Degree returns the formal degree of p, i.e. the highest index with a
// nonzero coefficient, or -1 if p is the zero polynomial.
func (p Poly) Degree() int { return p.degree() }

// At returns coefficient i, or 0 if i is out of range.
func (p Poly) At(i int) uint8 {
	if i < 0 || i >= len(p) {
		return 0
	}
	return p[i]
}

// Add returns p+q (= p XOR q, zero-padded to the longer length).
func Add(p, q Poly) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Poly, n)
	for i := 0; i < n; i++ {
		out[i] = p.At(i) ^ q.At(i)
	}
	return out
}

// Convolve returns the schoolbook convolution p*q over GF(2^7).
func Convolve(f *Field, p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{}
	}
	out := make(Poly, len(p)+len(q)-1)
	for i, pc := range p {
		if pc == 0 {
			continue
		}
		for j, qc := range q {
			if qc == 0 {
				continue
			}
			out[i+j] ^= f.Mul(pc, qc)
		}
	}
	return out
}

// Eval evaluates p(x) at x via Horner's method, ascending-to-descending:
// p(x) = (...(p[k]*x + p[k-1])*x + ...) + p[0].
func Eval(f *Field, p Poly, x uint8) uint8 {
	var acc uint8
	for i := len(p) - 1; i >= 0; i-- {
		acc = f.Mul(acc, x) ^ p[i]
	}
	return acc
}

// Derivative returns the formal derivative of p in characteristic 2:
// d(x^n)/dx = 0 for even n, x^(n-1) for odd n. Equivalently,
// deriv[i] = p[i+1] for even i, 0 for odd i.
func Derivative(p Poly) Poly {
	if len(p) <= 1 {
		return Poly{}
	}
	out := make(Poly, len(p)-1)
	for i := 0; i < len(out); i++ {
		if i%2 == 0 {
			out[i] = p.At(i + 1)
		}
	}
	return out
}

// Scale returns p scaled by the scalar c (every coefficient multiplied
// by c).
func Scale(f *Field, p Poly, c uint8) Poly {
	out := make(Poly, len(p))
	for i, v := range p {
		out[i] = f.Mul(v, c)
	}
	return out
}

// ShiftUp returns p multiplied by x^m, i.e. p prepended with m zero
// coefficients.
func ShiftUp(p Poly, m int) Poly {
	out := make(Poly, len(p)+m)
	copy(out[m:], p)
	return out
}

// Clone returns an independent copy of p.
func (p Poly) Clone() Poly {
	out := make(Poly, len(p))
	copy(out, p)
	return out
}
