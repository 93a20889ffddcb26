package bigint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseStringTable(t *testing.T) {
	valid := []string{"0", "1", "-1", "42", "-42", "123456789012345678901234567890"}
	for _, s := range valid {
		v, err := ParseString(s)
		require.NoError(t, err)
		assert.Equal(t, s, v.String())
	}
}

func TestParseStringRejectsMalformed(t *testing.T) {
	invalid := []string{"", "abc", "1.5", "--1", "1-", "+1", " 1", "1 "}
	for _, s := range invalid {
		_, err := ParseString(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestMustParseStringPanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() { MustParseString("not a number") })
}

func TestNegativeZeroStringIsZero(t *testing.T) {
	z := Neg(MustParseString("0"))
	assert.Equal(t, "0", z.String())
}

func TestPropertyParseStringRoundtrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int64().Draw(t, "x")
		s := int64ToString(x)
		v, err := ParseString(s)
		if err != nil {
			t.Fatalf("ParseString(%q) failed: %v", s, err)
		}
		if v.String() != s {
			t.Fatalf("to_string(from_string(%q)) = %q", s, v.String())
		}
	})
}

func TestPropertyToStringFromStringRoundtrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int32().Draw(t, "x")
		a := FromInt32(x)
		v, err := ParseString(a.String())
		if err != nil {
			t.Fatalf("ParseString(%q) failed: %v", a.String(), err)
		}
		if !Equal(v, a) {
			t.Fatalf("from_string(to_string(a)) != a for a=%s", a)
		}
	})
}
