package bigint

import "github.com/oisee/bigint/pkg/limb"

// Add returns a + b. Mixed-sign operands are reduced to a magnitude
// subtraction, matching the original's own same-sign/mixed-sign case
// split; same-sign operands go through addMagnitudes, a schoolbook
// limb-by-limb add with a 64-bit accumulator — wide enough that two
// 32-bit limbs plus a carry bit can never overflow it, so (unlike the
// original C++) there is no need for a per-limb overflow branch.
func Add(a, b BigInt) BigInt {
	if a.neg != b.neg {
		if a.neg {
			return Sub(b, Abs(a))
		}
		return Sub(a, Abs(b))
	}
	return addMagnitudes(a, b, a.neg)
}

func addMagnitudes(a, b BigInt, sign bool) BigInt {
	n := maxInt(effectiveSize(a), effectiveSize(b))
	result := limb.NewZeroed(n + 1)
	var carry uint64
	for i := 0; i < n; i++ {
		sum := uint64(a.digitAbs(i)) + uint64(b.digitAbs(i)) + carry
		result.Set(i, Limb(sum))
		carry = sum >> 32
	}
	result.Set(n, Limb(carry))
	return normalize(result, sign, false)
}

// Sub returns a - b. Same-sign non-negative operands are the only case
// that reaches the literal limb-by-limb subtraction at the bottom; every
// other sign combination reduces to that case via Add/Neg/Abs, mirroring
// big_integer.cpp's operator- dispatch.
func Sub(a, b BigInt) BigInt {
	if !a.neg && b.neg {
		return Add(a, Abs(b))
	}
	if a.neg && !b.neg {
		return Neg(Add(Abs(a), b))
	}
	if a.neg && b.neg {
		return Sub(Abs(b), Abs(a))
	}
	if Less(a, b) {
		return Neg(Sub(b, a))
	}
	n := maxInt(effectiveSize(a), effectiveSize(b))
	result := limb.NewZeroed(n)
	var borrow uint64
	for i := 0; i < n; i++ {
		av, bv := uint64(a.digitAbs(i)), uint64(b.digitAbs(i))
		// Truncating to the low 32 bits of a uint64 difference already
		// gives the correct wrapped result regardless of how far it
		// underflowed, so no explicit 2^32 correction term is needed.
		diff := av - bv - borrow
		if av < bv+borrow {
			borrow = 1
		} else {
			borrow = 0
		}
		result.Set(i, Limb(diff))
	}
	return normalize(result, false, false)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
