package bigint

import "github.com/oisee/bigint/pkg/limb"

// Mul returns a * b via schoolbook long multiplication: each limb of b is
// multiplied across all of a's limbs with a 64-bit partial product plus
// carry, accumulated directly into the shared result buffer rather than
// the original's allocate-a-temporary-per-row-then-add approach — the
// accumulate-in-place version is the one math/big's own multiply-by-word
// step uses, and avoids an O(n) temporary per row.
func Mul(a, b BigInt) BigInt {
	if a.isZero() || b.isZero() {
		return Zero()
	}
	an, bn := effectiveSize(a), effectiveSize(b)
	result := limb.NewZeroed(an + bn + 1)
	for i := 0; i < bn; i++ {
		bi := uint64(b.digitAbs(i))
		if bi == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < an; j++ {
			prod := uint64(a.digitAbs(j))*bi + uint64(result.Get(i+j)) + carry
			result.Set(i+j, Limb(prod))
			carry = prod >> 32
		}
		k := i + an
		for carry > 0 {
			sum := uint64(result.Get(k)) + carry
			result.Set(k, Limb(sum))
			carry = sum >> 32
			k++
		}
	}
	return normalize(result, a.neg != b.neg, false)
}
