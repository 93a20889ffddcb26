package bigint

import "github.com/oisee/bigint/pkg/limb"

// Shl returns a << b (b must be non-negative). The shift is decomposed
// into a whole-limb stride k = b/32 and a sub-limb bit shift r = b%32,
// applied in a single pass: this is the one unified algorithm spec.md
// calls for, rather than the original's separate branches for multiple-
// of-32 and non-multiple-of-32 shifts — a plain bit shift by r=0 is a
// no-op, so the r-branch already degenerates correctly and no special
// case is needed.
func Shl(a BigInt, b int) BigInt {
	if b < 0 {
		panic("bigint: negative shift amount")
	}
	if b == 0 || a.isZero() {
		return a
	}
	k := b / 32
	r := uint(b % 32)
	n := effectiveSize(a)
	result := limb.NewZeroed(n + k + 1)
	for i := 0; i < n; i++ {
		v := uint64(a.digitAbs(i)) << r
		result.Set(i+k, result.Get(i+k)|Limb(v))
		if r > 0 {
			result.Set(i+k+1, result.Get(i+k+1)|Limb(v>>32))
		}
	}
	return normalize(result, a.neg, false)
}

// Shr returns a >> b (b must be non-negative), arithmetic (sign-
// preserving, floor-toward-negative-infinity) for negative a.
//
// Unlike big_integer.cpp's operator>>=, which shifts the magnitude and
// then unconditionally subtracts 1 whenever the operand is negative, this
// shifts a's own infinite-two's-complement digit view (digitTwos), which
// already sign-extends correctly on its own. The C++ approach only
// subtracts 1 correctly when a bit actually gets shifted out of the
// magnitude; when the discarded low b bits of the magnitude are all zero
// (e.g. Shr(-2, 1), where magnitude 2 shifts evenly to 1) it still
// subtracts, turning -1 into the wrong -2. Building the result straight
// from the two's-complement view and letting normalize convert it back to
// sign-magnitude (the same pattern And/Or/Xor already use) needs no such
// correction and is correct in both cases.
func Shr(a BigInt, b int) BigInt {
	if b < 0 {
		panic("bigint: negative shift amount")
	}
	if b == 0 {
		return a
	}
	k := b / 32
	r := uint(b % 32)
	n := effectiveSize(a)
	resultSize := n + 2 // headroom for sign-extension limbs; trimmed by normalize
	result := limb.NewZeroed(resultSize)
	for i := 0; i < resultSize; i++ {
		lo := uint64(a.digitTwos(i+k)) >> r
		var hi uint64
		if r > 0 {
			hi = uint64(a.digitTwos(i+k+1)) << (32 - r)
		}
		result.Set(i, Limb(lo|hi))
	}
	return normalize(result, a.neg, true)
}
