package bigint

import "github.com/oisee/bigint/pkg/limb"

// bitwiseOp implements &, |, ^ by combining a and b's infinite-two's-
// complement digit views limb by limb, through one limb past the longer
// operand's length (the extra limb is where a carried-out sign shows up,
// e.g. two negative operands ORed together), then deciding the result's
// sign from that highest emitted limb's top bit — standard infinite-2's-
// complement sign detection, and the same rule And/Or/Xor already share
// with each other.
func bitwiseOp(a, b BigInt, op func(x, y Limb) Limb) BigInt {
	n := maxInt(effectiveSize(a), effectiveSize(b))
	result := limb.NewZeroed(n + 1)
	for i := 0; i <= n; i++ {
		result.Set(i, op(a.digitTwos(i), b.digitTwos(i)))
	}
	neg := result.Get(n)&signBit != 0
	return normalize(result, neg, true)
}

// And returns a & b.
func And(a, b BigInt) BigInt { return bitwiseOp(a, b, func(x, y Limb) Limb { return x & y }) }

// Or returns a | b.
func Or(a, b BigInt) BigInt { return bitwiseOp(a, b, func(x, y Limb) Limb { return x | y }) }

// Xor returns a ^ b.
func Xor(a, b BigInt) BigInt { return bitwiseOp(a, b, func(x, y Limb) Limb { return x ^ y }) }

// Not returns ~a, equal to -(a+1). It emits one limb past a's length, as
// bitwiseOp does, and derives the sign from the top bit of that highest
// emitted limb, the same rule bitwiseOp uses — not from the
// top bit of a's own magnitude's top limb, which big_integer.cpp's
// operator~ uses and which misclassifies negative operands whose
// lowest-nonzero and highest limb coincide (e.g. ~(-5) under that rule
// resolves to a corrupted magnitude instead of 4). Using the emitted
// limb's own sign bit keeps Not consistent with And/Or/Xor and satisfies
// ~a == -(a+1) for every a.
func Not(a BigInt) BigInt {
	n := effectiveSize(a)
	result := limb.NewZeroed(n + 1)
	for i := 0; i <= n; i++ {
		result.Set(i, ^a.digitTwos(i))
	}
	neg := result.Get(n)&signBit != 0
	return normalize(result, neg, true)
}
