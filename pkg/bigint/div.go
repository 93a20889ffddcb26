package bigint

import "github.com/oisee/bigint/pkg/limb"

// Div returns the truncating quotient a / b. Panics on division by zero,
// matching the library-wide convention (see SPEC_FULL.md) of treating
// contract violations as programmer errors rather than recoverable ones.
func Div(a, b BigInt) BigInt {
	if b.isZero() {
		panic("bigint: division by zero")
	}
	aAbs, bAbs := Abs(a), Abs(b)
	sign := a.neg != b.neg
	switch {
	case Less(aAbs, bAbs):
		return Zero()
	case Equal(aAbs, bAbs):
		return signedOne(sign)
	case effectiveSize(bAbs) == 1:
		q, _ := divideByShort(aAbs, bAbs.digitAbs(0))
		return normalize(q.limbs, sign, false)
	default:
		return knuthDiv(aAbs, bAbs, sign)
	}
}

// Mod returns a % b, defined as a - b*(a/b) (spec.md's own definition,
// not whatever remainder Knuth division happens to produce internally) so
// its sign always matches a's, independent of how the quotient is
// computed.
func Mod(a, b BigInt) BigInt {
	if b.isZero() {
		panic("bigint: division by zero")
	}
	return Sub(a, Mul(b, Div(a, b)))
}

func signedOne(neg bool) BigInt {
	one := FromInt32(1)
	if neg {
		return Neg(one)
	}
	return one
}

// divideByShort divides the non-negative magnitude x by the single limb
// d, most-significant limb first, carrying the running remainder into the
// next limb's 64-bit dividend — the single-limb-divisor fast path spec.md
// calls out separately from the general Knuth case.
func divideByShort(x BigInt, d Limb) (BigInt, Limb) {
	n := effectiveSize(x)
	result := limb.NewZeroed(n)
	var rem uint64
	for i := n - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(x.digitAbs(i))
		result.Set(i, Limb(cur/uint64(d)))
		rem = cur % uint64(d)
	}
	return normalize(result, false, false), Limb(rem)
}

// knuthDiv divides two non-negative magnitudes, a >= b, with b occupying
// at least two limbs, using Knuth's Algorithm D: scale both operands by a
// factor that forces the divisor's top limb past 2^31 (so each quotient
// digit guess is off by at most a small, boundable amount), then produce
// one quotient limb per step by guessing from the remainder's leading two
// limbs and correcting downward until the trial product fits.
func knuthDiv(a, b BigInt, sign bool) BigInt {
	bTop := b.digitAbs(effectiveSize(b) - 1)
	f := Limb(uint64(1) << 32 / (uint64(bTop) + 1))
	aa := Mul(a, fromUint32(f))
	bb := Mul(b, fromUint32(f))

	n := effectiveSize(aa)
	m := effectiveSize(bb)
	quotient := limb.NewZeroed(n - m + 1)
	remainder := Zero()

	for i := n - 1; i > n-m; i-- {
		remainder = Add(Shl(remainder, 32), fromUint32(aa.digitAbs(i)))
	}

	bTopDigit := uint64(bb.digitAbs(m - 1))

	for i := n - m; i >= 0; i-- {
		remainder = Add(Shl(remainder, 32), fromUint32(aa.digitAbs(i)))

		remSize := effectiveSize(remainder)
		remHigh := uint64(remainder.digitAbs(remSize - 1))
		if remSize > m {
			remHigh = remHigh<<32 | uint64(remainder.digitAbs(remSize-2))
		}

		qGuess := remHigh / bTopDigit
		if qGuess > 0xFFFFFFFF {
			qGuess = 0xFFFFFFFF
		}

		trial := Mul(bb, fromUint32(Limb(qGuess)))
		for Less(remainder, trial) {
			qGuess--
			trial = Sub(trial, bb)
		}

		quotient.Set(i, Limb(qGuess))
		remainder = Sub(remainder, trial)
	}

	return normalize(quotient, sign, false)
}
