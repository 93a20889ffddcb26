// Package bigint implements an arbitrary-precision signed integer built on
// a base-2^32 limb array (package limb). It provides the full arithmetic,
// comparison, bitwise, and shift surface of a sign-magnitude big integer
// with value semantics: every operator constructs a fresh BigInt from its
// operands rather than mutating them, so copies (including those made by
// plain Go assignment) observe each other's state consistently.
//
// Go has no operator overloading, so the external C++-style operator
// surface this type's design is drawn from is expressed as package-level
// functions (Add, Sub, Mul, ...) for the pure binary/unary operators and
// pointer-receiver methods (AddAssign, Inc, ...) for the compound-
// assignment forms, matching how the teacher repo's Instruction/OpCode
// types expose behavior as plain functions rather than methods wherever
// the underlying data is a small value type.
package bigint

import (
	"math/bits"

	"github.com/oisee/bigint/pkg/limb"
)

const signBit Limb = 1 << 31

// Limb is one base-2^32 digit, matching package limb's digit type.
type Limb = limb.Limb

// BigInt is a sign-magnitude arbitrary-precision integer. The zero value
// represents 0 and is ready to use directly (no constructor required),
// the same way math/big.Int's zero value is usable: it simply has zero
// limbs rather than the canonical single zero limb a constructed BigInt
// carries, but every operation treats the two encodings identically.
type BigInt struct {
	neg             bool
	limbs           limb.Store
	firstNonZero    int
	hasFirstNonZero bool
}

// Zero returns the canonical representation of 0.
func Zero() BigInt {
	return BigInt{limbs: limb.NewZeroed(1)}
}

// FromInt32 constructs a BigInt from a signed 32-bit machine integer.
func FromInt32(x int32) BigInt {
	neg := x < 0
	var mag Limb
	if neg {
		mag = ^uint32(x) + 1
	} else {
		mag = uint32(x)
	}
	return normalize(limb.FromSlice([]Limb{mag}), neg, false)
}

// fromUint32 builds a single-limb non-negative BigInt from a raw 32-bit
// value too large to express as an int32 — used internally by division's
// quotient-digit guesses and scale factors, which routinely exceed
// math.MaxInt32.
func fromUint32(v Limb) BigInt {
	return normalize(limb.FromSlice([]Limb{v}), false, false)
}

// normalize is the internal constructor described in spec as taking a raw
// limb vector, a sign, and a transient two's-complement flag. It performs,
// in order: two's-complement-to-magnitude conversion (if flagged and
// negative), trailing-zero-limb trimming, first-nonzero-limb recomputation
// with canonical-zero collapsing, and flag clearing.
func normalize(raw limb.Store, neg bool, twosComplement bool) BigInt {
	if twosComplement && neg {
		raw = twosComplementToAbs(raw)
	}
	for raw.Size() > 1 && raw.Get(raw.Size()-1) == 0 {
		raw.PopBack()
	}
	fnz := -1
	hasFNZ := false
	for i := 0; i < raw.Size(); i++ {
		if raw.Get(i) != 0 {
			fnz = i
			hasFNZ = true
			break
		}
	}
	if !hasFNZ {
		return BigInt{limbs: limb.NewZeroed(1)}
	}
	return BigInt{neg: neg, limbs: raw, firstNonZero: fnz, hasFirstNonZero: true}
}

// twosComplementToAbs converts a two's-complement bit pattern (known to
// encode a negative value) into its absolute magnitude in place, per the
// mask construction in original_source/big_integer.cpp's normalize: find
// the lowest set bit j of the lowest non-zero limb, leave bits <= j alone,
// and invert every bit above it (within that limb and in every higher
// limb).
func twosComplementToAbs(raw limb.Store) limb.Store {
	n := raw.Size()
	i := 0
	for i < n && raw.Get(i) == 0 {
		i++
	}
	if i == n {
		return raw // all-zero pattern; normalize's zero-collapse handles it
	}
	j := bits.TrailingZeros32(raw.Get(i))
	mask := invertAboveMask(j)
	raw.Set(i, raw.Get(i)^mask)
	for k := i + 1; k < n; k++ {
		raw.Set(k, ^raw.Get(k))
	}
	return raw
}

// invertAboveMask returns a mask whose bits above position j are 1 and
// whose bits at or below j are 0 — XORing a limb with this mask leaves
// bit j and below untouched and inverts everything above.
func invertAboveMask(j int) Limb {
	return ^((Limb(1) << uint(j+1)) - 1)
}

// isZero reports whether x represents the value 0.
func (x BigInt) isZero() bool {
	return !x.hasFirstNonZero
}

// effectiveSize is the magnitude's limb count, treating any zero-valued
// BigInt (including the raw Go zero value, which has zero limbs rather
// than the canonical single zero limb) as having exactly one limb — this
// keeps size comparisons meaningful regardless of which zero encoding a
// particular BigInt happens to hold.
func effectiveSize(x BigInt) int {
	if !x.hasFirstNonZero {
		return 1
	}
	return x.limbs.Size()
}

// digitAbs returns the nth limb of x's magnitude, or 0 beyond its length.
func (x BigInt) digitAbs(n int) Limb {
	if n < x.limbs.Size() {
		return x.limbs.Get(n)
	}
	return 0
}

// digitTwos returns the nth limb of x as if x were stored in infinite-
// precision two's complement, per spec's digit_twos specification.
func (x BigInt) digitTwos(n int) Limb {
	if !x.hasFirstNonZero {
		return 0
	}
	if n < x.firstNonZero {
		return 0
	}
	if n >= x.limbs.Size() {
		if x.neg {
			return 0xFFFFFFFF
		}
		return 0
	}
	v := x.limbs.Get(n)
	if n > x.firstNonZero {
		if x.neg {
			return ^v
		}
		return v
	}
	// n == firstNonZero
	if !x.neg {
		return v
	}
	j := bits.TrailingZeros32(v)
	mask := invertAboveMask(j)
	return v ^ mask
}
