package bigint

import (
	"fmt"
	"regexp"
)

var decimalPattern = regexp.MustCompile(`^-?[0-9]+$`)

// ParseString parses a decimal string matching -?[0-9]+ into a BigInt. A
// string that doesn't match the grammar is a malformed-input error,
// returned rather than panicked on — unlike most of this package's
// contract violations, parsing untrusted input is exactly the boundary
// idiomatic Go reports with an error (strconv.Atoi, math/big's SetString),
// not a panic.
func ParseString(s string) (BigInt, error) {
	if !decimalPattern.MatchString(s) {
		return BigInt{}, fmt.Errorf("bigint: malformed decimal string %q", s)
	}
	neg := false
	digits := s
	if s[0] == '-' {
		neg = true
		digits = s[1:]
	}
	acc := Zero()
	ten := FromInt32(10)
	for i := 0; i < len(digits); i++ {
		acc = Add(Mul(acc, ten), FromInt32(int32(digits[i]-'0')))
	}
	if neg {
		acc = Neg(acc)
	}
	return acc, nil
}

// MustParseString is ParseString for string literals known at compile
// time to be well-formed, panicking otherwise — the regexp.MustCompile
// pattern applied to decimal literals.
func MustParseString(s string) BigInt {
	v, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders x in decimal, repeatedly dividing the magnitude by 10
// and appending one digit at a time (least significant first), then
// reversing; this is the same
// approach big_integer.cpp's to_string takes rather than reserving space
// for an upper bound on digit count up front.
func (x BigInt) String() string {
	if x.isZero() {
		return "0"
	}
	mag := Abs(x)
	var digitsRev []byte
	for !mag.isZero() {
		q, r := divideByShort(mag, 10)
		digitsRev = append(digitsRev, byte('0')+byte(r))
		mag = q
	}
	for i, j := 0, len(digitsRev)-1; i < j; i, j = i+1, j-1 {
		digitsRev[i], digitsRev[j] = digitsRev[j], digitsRev[i]
	}
	if x.neg {
		return "-" + string(digitsRev)
	}
	return string(digitsRev)
}
