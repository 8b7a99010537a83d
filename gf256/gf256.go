// Package gf256 precomputes the exp/log tables of GF(256) with primitive
// polynomial 0x11D (x^8 + x^4 + x^3 + x^2 + 1), the field used throughout QR
// Reed-Solomon error correction.
package gf256

// Primitive is the generator field element, alpha.
const Primitive = 0x02

// PrimitivePoly is the field's reduction polynomial, x^8+x^4+x^3+x^2+1.
const PrimitivePoly = 0x11D

var expTable [256]uint8
var logTable [256]int

func init() {
	val := 1
	for i := 0; i < 255; i++ {
		expTable[i] = uint8(val)
		logTable[val] = i
		val <<= 1
		if val >= 256 {
			val ^= PrimitivePoly
		}
	}
	// exp[] repeats with period 255; fill the duplicate slot so Exp(255)
	// needs no special-casing beyond the mod-255 fold below.
	expTable[255] = expTable[0]
	// log[0] is undefined in a field: 0 has no discrete logarithm.
}

// Exp returns alpha^i, with i normalized modulo 255 (folding negative
// remainders back into range). gexp(i) in spec terms.
func Exp(i int) uint8 {
	i %= 255
	if i < 0 {
		i += 255
	}
	return expTable[i]
}

// Log returns the discrete logarithm of x, i.e. the i such that Exp(i) == x.
// Panics if x is 0: the logarithm of the additive identity is undefined.
// glog(x) in spec terms.
func Log(x uint8) int {
	if x == 0 {
		panic("gf256: log of zero is undefined")
	}
	return logTable[x]
}

// Mul returns the product of x and y in GF(256).
func Mul(x, y uint8) uint8 {
	if x == 0 || y == 0 {
		return 0
	}
	return Exp(Log(x) + Log(y))
}

// Div returns x/y in GF(256). Panics if y is 0.
func Div(x, y uint8) uint8 {
	if y == 0 {
		panic("gf256: division by zero")
	}
	if x == 0 {
		return 0
	}
	return Exp(Log(x) - Log(y))
}
