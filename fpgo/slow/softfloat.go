package slow

import "github.com/floatproc/floatproc/fpgo/wire"

// Binary32 arithmetic on raw bit patterns, using integer operations only.
// Results are correctly rounded (nearest, ties to even) and must match the
// fast package bit for bit, including the canonical NaN.

// U32 is a binary32 bit pattern.
type U32 = uint32

const (
	signMask32 = U32(1) << 31
	absMask32  = ^signMask32
	inf32      = U32(0x7f800000)
	fracMask32 = U32(1)<<23 - 1

	// exponent of one unit in the last place of a subnormal
	minQuantum32 = -149
	maxExp32     = 127
	precision32  = 24
)

func isNaN32(x U32) bool  { return x&absMask32 > inf32 }
func isInf32(x U32) bool  { return x&absMask32 == inf32 }
func isZero32(x U32) bool { return x&absMask32 == 0 }

// unpack32 splits a finite x into sign, integer significand m and exponent e,
// with |x| = m * 2^e.
func unpack32(x U32) (sign U32, m U256, e int) {
	sign = x >> 31
	exp := int(x>>23) & 0xff
	frac := uint64(x & fracMask32)
	if exp == 0 {
		return sign, toU256(frac), minQuantum32
	}
	return sign, toU256(frac | 1<<23), exp - 150
}

// round32 rounds (m + sticky) * 2^e to binary32. sticky marks nonzero bits below 2^e;
// callers that set it keep m wide enough that those bits always sit below the rounding point.
func round32(sign U32, m U256, e int, sticky bool) U32 {
	signBits := sign << 31
	n := m.BitLen()
	if n == 0 {
		return signBits
	}
	top := e + n - 1
	if top > maxExp32 {
		return signBits | inf32
	}
	q := top - (precision32 - 1)
	if q < minQuantum32 {
		q = minQuantum32
	}
	shift := q - e
	var mant uint64
	if shift <= 0 {
		mant = u64(shl(toU256(uint64(-shift)), m))
	} else {
		if shift > n {
			// below half of the smallest subnormal
			return signBits
		}
		s := uint64(shift)
		mant = u64(shr(toU256(s), m))
		rem := and(m, lowMask(s))
		half := shl(toU256(s-1), toU256(1))
		if gt(rem, half) || (eq(rem, half) && (sticky || mant&1 == 1)) {
			mant++
		}
	}
	// a carry out of the significand lands in the exponent field
	bits := uint64(q-minQuantum32)<<23 + mant
	if bits >= uint64(inf32) {
		return signBits | inf32
	}
	return signBits | U32(bits)
}

func Add(x, y U32) U32 {
	if isNaN32(x) || isNaN32(y) {
		return wire.CanonicalNaN32
	}
	if isInf32(x) {
		if isInf32(y) && x != y {
			return wire.CanonicalNaN32
		}
		return x
	}
	if isInf32(y) {
		return y
	}
	if isZero32(x) {
		if isZero32(y) {
			// -0 only when both are -0
			return x & y
		}
		return y
	}
	if isZero32(y) {
		return x
	}
	sx, mx, ex := unpack32(x)
	sy, my, ey := unpack32(y)
	if ex < ey {
		sx, mx, ex, sy, my, ey = sy, my, ey, sx, mx, ex
	}
	var e int
	if d := ex - ey; d > 64 {
		// y is far below the rounding point of x, a single unit stands in for it
		mx = shl(toU256(64), mx)
		my = toU256(1)
		e = ex - 64
	} else {
		mx = shl(toU256(uint64(d)), mx)
		e = ey
	}
	if sx == sy {
		return round32(sx, add(mx, my), e, false)
	}
	switch {
	case gt(mx, my):
		return round32(sx, sub(mx, my), e, false)
	case lt(mx, my):
		return round32(sy, sub(my, mx), e, false)
	default:
		return 0
	}
}

func Mul(x, y U32) U32 {
	if isNaN32(x) || isNaN32(y) {
		return wire.CanonicalNaN32
	}
	sign := (x ^ y) >> 31
	if isInf32(x) || isInf32(y) {
		if isZero32(x) || isZero32(y) {
			return wire.CanonicalNaN32
		}
		return sign<<31 | inf32
	}
	if isZero32(x) || isZero32(y) {
		return sign << 31
	}
	_, mx, ex := unpack32(x)
	_, my, ey := unpack32(y)
	return round32(sign, mul(mx, my), ex+ey, false)
}

// Div is the full IEEE-754 quotient, zero divisors included.
// Rejecting zero divisors is left to Process.
func Div(x, y U32) U32 {
	if isNaN32(x) || isNaN32(y) {
		return wire.CanonicalNaN32
	}
	sign := (x ^ y) >> 31
	if isInf32(x) {
		if isInf32(y) {
			return wire.CanonicalNaN32
		}
		return sign<<31 | inf32
	}
	if isInf32(y) {
		return sign << 31
	}
	if isZero32(y) {
		if isZero32(x) {
			return wire.CanonicalNaN32
		}
		return sign<<31 | inf32
	}
	if isZero32(x) {
		return sign << 31
	}
	_, mx, ex := unpack32(x)
	_, my, ey := unpack32(y)
	// 64 extra bits keep at least 41 quotient bits, even for a subnormal dividend
	num := shl(toU256(64), mx)
	quo := div(num, my)
	rem := mod(num, my)
	return round32(sign, quo, ex-ey-64, !iszero(rem))
}

func Sqrt(x U32) U32 {
	if isNaN32(x) {
		return wire.CanonicalNaN32
	}
	if isZero32(x) {
		return x
	}
	if x&signMask32 != 0 {
		return wire.CanonicalNaN32
	}
	if isInf32(x) {
		return x
	}
	_, m, e := unpack32(x)
	if e&1 != 0 {
		m = shl(toU256(1), m)
		e--
	}
	m = shl(toU256(64), m)
	root := sqrt(m)
	exact := eq(mul(root, root), m)
	return round32(0, root, (e-64)/2, !exact)
}
