package bigint

// Neg returns -a.
func Neg(a BigInt) BigInt {
	if a.isZero() {
		return a
	}
	return normalize(a.limbs.Clone(), !a.neg, false)
}

// Pos returns a unchanged — the identity form of unary +, kept for
// symmetry with Neg the way big_integer.cpp keeps a no-op operator+().
func Pos(a BigInt) BigInt { return a }

// Abs returns |a|.
func Abs(a BigInt) BigInt {
	if a.isZero() || !a.neg {
		return a
	}
	return normalize(a.limbs.Clone(), false, false)
}

// Swap exchanges the values held by a and b.
func Swap(a, b *BigInt) { *a, *b = *b, *a }

// AddAssign sets z to z + x.
func (z *BigInt) AddAssign(x BigInt) { *z = Add(*z, x) }

// SubAssign sets z to z - x.
func (z *BigInt) SubAssign(x BigInt) { *z = Sub(*z, x) }

// MulAssign sets z to z * x.
func (z *BigInt) MulAssign(x BigInt) { *z = Mul(*z, x) }

// DivAssign sets z to z / x.
func (z *BigInt) DivAssign(x BigInt) { *z = Div(*z, x) }

// ModAssign sets z to z % x.
func (z *BigInt) ModAssign(x BigInt) { *z = Mod(*z, x) }

// AndAssign sets z to z & x.
func (z *BigInt) AndAssign(x BigInt) { *z = And(*z, x) }

// OrAssign sets z to z | x.
func (z *BigInt) OrAssign(x BigInt) { *z = Or(*z, x) }

// XorAssign sets z to z ^ x.
func (z *BigInt) XorAssign(x BigInt) { *z = Xor(*z, x) }

// ShlAssign sets z to z << n.
func (z *BigInt) ShlAssign(n int) { *z = Shl(*z, n) }

// ShrAssign sets z to z >> n.
func (z *BigInt) ShrAssign(n int) { *z = Shr(*z, n) }

// Inc is prefix ++: increments z and returns its new value.
func (z *BigInt) Inc() BigInt {
	z.AddAssign(FromInt32(1))
	return *z
}

// IncPost is postfix ++: returns z's value before incrementing it.
func (z *BigInt) IncPost() BigInt {
	old := *z
	z.AddAssign(FromInt32(1))
	return old
}

// Dec is prefix --: decrements z and returns its new value.
func (z *BigInt) Dec() BigInt {
	z.SubAssign(FromInt32(1))
	return *z
}

// DecPost is postfix --: returns z's value before decrementing it.
func (z *BigInt) DecPost() BigInt {
	old := *z
	z.SubAssign(FromInt32(1))
	return old
}
