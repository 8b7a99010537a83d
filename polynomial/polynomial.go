// Package polynomial implements dense polynomials with GF(256) coefficients,
// indexed low-degree-last (index 0 is the highest-degree nonzero term after
// leading-zero trimming). This is the algebra layer Reed-Solomon generator
// construction and remainder computation are built on.
package polynomial

import "github.com/barcodeforge/symcode/gf256"

// Polynomial is an immutable, length-bounded sequence of GF(256) coefficients.
type Polynomial struct {
	coeffs []uint8
}

// New constructs a Polynomial from coeffs (highest degree first), trimming
// any leading zero coefficients, then conceptually multiplying by x^shift —
// which appends shift zero coefficients to the low-degree end.
func New(coeffs []uint8, shift int) Polynomial {
	if shift < 0 {
		panic("polynomial: negative shift")
	}
	start := 0
	for start < len(coeffs) && coeffs[start] == 0 {
		start++
	}
	trimmed := coeffs[start:]
	out := make([]uint8, len(trimmed)+shift)
	copy(out, trimmed)
	return Polynomial{coeffs: out}
}

// Length returns the count of stored coefficients.
func (p Polynomial) Length() int {
	return len(p.coeffs)
}

// Index returns coefficient i. Indexing past Length is caller error.
func (p Polynomial) Index(i int) uint8 {
	return p.coeffs[i]
}

// PadTo returns the polynomial's coefficients as an n-byte slice, zero-padded
// on the left (the high-degree side) so the returned bytes end in the same
// low-degree order the data codeword stream uses. Panics if n < Length().
func (p Polynomial) PadTo(n int) []uint8 {
	if n < len(p.coeffs) {
		panic("polynomial: PadTo target shorter than polynomial")
	}
	out := make([]uint8, n)
	copy(out[n-len(p.coeffs):], p.coeffs)
	return out
}

// Multiply returns the product of p and q. The result has length
// p.Length()+q.Length()-1; coefficient k is the XOR over all i+j=k of the
// GF(256) product p[i]*q[j].
func (p Polynomial) Multiply(q Polynomial) Polynomial {
	if p.Length() == 0 || q.Length() == 0 {
		return Polynomial{}
	}
	result := make([]uint8, p.Length()+q.Length()-1)
	for i, a := range p.coeffs {
		if a == 0 {
			continue
		}
		la := gf256.Log(a)
		for j, b := range q.coeffs {
			if b == 0 {
				continue
			}
			result[i+j] ^= gf256.Exp(la + gf256.Log(b))
		}
	}
	return Polynomial{coeffs: result}
}

// Mod performs polynomial long division of p by divisor and returns the
// remainder. If p.Length() < divisor.Length(), p is returned unchanged.
// Implemented iteratively: each step's leading term is eliminated exactly,
// so the remainder's length strictly decreases and the loop terminates.
func (p Polynomial) Mod(divisor Polynomial) Polynomial {
	if divisor.Length() == 0 {
		panic("polynomial: mod by zero polynomial")
	}
	cur := p
	for cur.Length() >= divisor.Length() && cur.Length() > 0 {
		ratio := mod255(gf256.Log(cur.Index(0)) - gf256.Log(divisor.Index(0)))
		next := make([]uint8, cur.Length())
		copy(next, cur.coeffs)
		for i, d := range divisor.coeffs {
			if d == 0 {
				continue
			}
			next[i] ^= gf256.Exp(gf256.Log(d) + ratio)
		}
		cur = New(next, 0)
	}
	return cur
}

func mod255(x int) int {
	x %= 255
	if x < 0 {
		x += 255
	}
	return x
}
