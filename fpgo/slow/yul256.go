package slow

import "github.com/holiman/uint256"

// Word helpers styled after the EVM opcodes, so the reference kernel reads like
// the on-chain translation it is meant to match. Shift arguments follow the EVM
// order: the shift amount comes first.

type U256 = uint256.Int

func toU256(v uint64) (out U256) {
	out.SetUint64(v)
	return
}

func add(x, y U256) (out U256) {
	out.Add(&x, &y)
	return
}

func sub(x, y U256) (out U256) {
	out.Sub(&x, &y)
	return
}

func mul(x, y U256) (out U256) {
	out.Mul(&x, &y)
	return
}

func div(x, y U256) (out U256) {
	out.Div(&x, &y)
	return
}

func mod(x, y U256) (out U256) {
	out.Mod(&x, &y)
	return
}

// floor of the square root
func sqrt(x U256) (out U256) {
	out.Sqrt(&x)
	return
}

func lt(x, y U256) bool {
	return x.Lt(&y)
}

func gt(x, y U256) bool {
	return x.Gt(&y)
}

func eq(x, y U256) bool {
	return x.Eq(&y)
}

func iszero(x U256) bool {
	return x.IsZero()
}

func and(x, y U256) (out U256) {
	out.And(&x, &y)
	return
}

// returns y << x
func shl(x, y U256) (out U256) {
	if !x.IsUint64() || x.Uint64() >= 256 {
		return
	}
	out.Lsh(&y, uint(x.Uint64()))
	return
}

// returns y >> x
func shr(x, y U256) (out U256) {
	if !x.IsUint64() || x.Uint64() >= 256 {
		return
	}
	out.Rsh(&y, uint(x.Uint64()))
	return
}

// u64 reads the low 64 bits. x is a parameter, so Uint64's pointer receiver is addressable.
func u64(x U256) uint64 {
	return x.Uint64()
}

// (1 << n) - 1
func lowMask(n uint64) U256 {
	return sub(shl(toU256(n), toU256(1)), toU256(1))
}
