package bigint

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than
// b, following the teacher repo's cmp-style convention (like
// strings.Compare) rather than returning a bool per comparator — it lets
// Less/Greater/Equal all derive from one sign-magnitude walk instead of
// repeating it.
func Compare(a, b BigInt) int {
	if a.neg != b.neg {
		if a.neg {
			return -1
		}
		return 1
	}
	an, bn := effectiveSize(a), effectiveSize(b)
	if an != bn {
		if an < bn {
			if a.neg {
				return 1
			}
			return -1
		}
		if a.neg {
			return -1
		}
		return 1
	}
	for i := an - 1; i >= 0; i-- {
		av, bv := a.digitAbs(i), b.digitAbs(i)
		if av == bv {
			continue
		}
		if av > bv {
			if a.neg {
				return -1
			}
			return 1
		}
		if a.neg {
			return 1
		}
		return -1
	}
	return 0
}

// Equal reports whether a and b represent the same value. Both zero
// encodings (the canonical single-limb zero and the bare Go zero value)
// compare equal to each other and to every other zero.
func Equal(a, b BigInt) bool {
	if a.isZero() && b.isZero() {
		return true
	}
	return Compare(a, b) == 0
}

// Less reports whether a < b.
func Less(a, b BigInt) bool { return Compare(a, b) < 0 }

// Greater reports whether a > b.
func Greater(a, b BigInt) bool { return Compare(a, b) > 0 }

// LessOrEqual reports whether a <= b.
func LessOrEqual(a, b BigInt) bool { return Compare(a, b) <= 0 }

// GreaterOrEqual reports whether a >= b.
func GreaterOrEqual(a, b BigInt) bool { return Compare(a, b) >= 0 }
