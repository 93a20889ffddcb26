package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestZeroIsZero(t *testing.T) {
	assert.True(t, Zero().isZero())
	assert.Equal(t, "0", Zero().String())
}

func TestBareZeroValueBehavesAsZero(t *testing.T) {
	var z BigInt
	assert.True(t, z.isZero())
	assert.Equal(t, "0", z.String())
	assert.True(t, Equal(z, Zero()))
	assert.Equal(t, 0, Compare(z, Zero()))
}

func TestFromInt32Roundtrip(t *testing.T) {
	cases := []int32{0, 1, -1, 42, -42, 2147483647, -2147483648}
	for _, c := range cases {
		v := FromInt32(c)
		require.Equal(t, int32ToString(c), v.String())
	}
}

func int32ToString(x int32) string {
	if x == 0 {
		return "0"
	}
	neg := x < 0
	var digits []byte
	var mag int64 = int64(x)
	if neg {
		mag = -mag
	}
	for mag > 0 {
		digits = append([]byte{byte('0') + byte(mag%10)}, digits...)
		mag /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func TestNormalizeStripsTrailingZeroLimbs(t *testing.T) {
	big := MustParseString("123456789012345678901234567890")
	doubled := Add(big, big)
	assert.Equal(t, "246913578024691357802469135780", doubled.String())
	assert.Equal(t, 4, doubled.limbs.Size(), "Add's spare carry limb must be trimmed")
}

func TestPropertyFromInt32ThenCompareMatchesNativeOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int32().Draw(t, "x")
		y := rapid.Int32().Draw(t, "y")
		got := Compare(FromInt32(x), FromInt32(y))
		want := 0
		if x < y {
			want = -1
		} else if x > y {
			want = 1
		}
		if got != want {
			t.Fatalf("Compare(%d,%d) = %d, want %d", x, y, got, want)
		}
	})
}

func TestNegThenAbs(t *testing.T) {
	a := FromInt32(7)
	n := Neg(a)
	assert.Equal(t, "-7", n.String())
	assert.Equal(t, "7", Abs(n).String())
	assert.True(t, Equal(Neg(Zero()), Zero()))
}

func TestSwap(t *testing.T) {
	a := FromInt32(1)
	b := FromInt32(2)
	Swap(&a, &b)
	assert.Equal(t, "2", a.String())
	assert.Equal(t, "1", b.String())
}
