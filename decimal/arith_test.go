package decimal

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrim(t *testing.T) {
	type TC struct {
		input    string
		expected string
	}

	tcs := []TC{
		{"1000", "1000"},
		{"1324546674576580", "1324546674576580"},
		{"13245466745765801324546674576580", "13245466745765801324546674576580"},
		{
			"13245466745765801324546674576580.000000000000000000000010000000000000000000000000000000",
			"13245466745765801324546674576580.00000000000000000000001",
		},
		{"2." + strings.Repeat("0", 86), "2"},
		{
			"2.00000000000000000000000000000000000000000010000000000000000000000000000000000000000000",
			"2.0000000000000000000000000000000000000000001",
		},
		{"1000.0000", "1000"},
		{"1000.1000", "1000.1"},
		{"1000.01000", "1000.01"},
		{"1000.0001", "1000.0001"},
		{"0.0000120000000000000", "0.000012"},
		{"1.2500000000", "1.25"},
		{"100.0000", "100"},
		{"1230.00000000", "1230"},
		{"-0.000", "-0"},
		{"10.", "10"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			require.Equal(t, tc.expected, trim(tc.input))
		})
	}
}

func TestFilter(t *testing.T) {
	type TC struct {
		name     string
		input    Operand
		expected string
	}

	tcs := []TC{
		{"int", Int(1234), "1234"},
		{"negative int", Int(-1234), "-1234"},
		{"fraction", String("1234567890.1234"), "1234567890.1234"},
		{"grouped", String("9,223,372,036,854,775,808"), "9223372036854775808"},
		{"grouped fraction", String("9,223,372,036,854,775,808.432"), "9223372036854775808.432"},
		{"number", NewWithScale(Int(2147483647), 0), "2147483647"},
		{"nil", nil, "0"},
		{"float", Float(6.43), "6.43"},
		{"small float", Float(12e-6), "0.000012" + strings.Repeat("0", 94)},
		{"large float", Float(12e16), "120000000000000000." + strings.Repeat("0", 100)},
		{"upper exponent", String("1.5E+3"), "1500." + strings.Repeat("0", 100)},
		{"zero exponent", String("-0e5"), "0." + strings.Repeat("0", 100)},
		{"missing exponent", String("7e"), "7." + strings.Repeat("0", 100)},
		{"huge exponent", String("1e99999999999999999999"), "0"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			require.Equal(t, tc.expected, filter(tc.input))
		})
	}
}

func TestParse(t *testing.T) {
	type TC struct {
		input    string
		coeff    string
		exponent int32
		negative bool
	}

	tcs := []TC{
		{"", "0", 0, false},
		{".", "0", 0, false},
		{"-", "0", 0, false},
		{"1-2", "0", 0, false},
		{"+-5", "0", 0, false},
		{"-0", "0", 0, false},
		{"-0.0", "0", 0, true},
		{"-00.", "0", 0, true},
		{"+5", "5", 0, false},
		{"-5.", "5", 0, true},
		{".5", "5", -1, false},
		{"0012.3400", "1234", -2, false},
		{"-0.0000005", "5", -7, true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%q", i, tc.input), func(t *testing.T) {
			d := parse(tc.input)

			require.Equal(t, tc.coeff, d.Coeff.String())
			require.Equal(t, tc.negative, d.Negative)

			if d.Coeff.Sign() != 0 {
				require.Equal(t, tc.exponent, d.Exponent)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	type TC struct {
		input    string
		scale    int
		expected string
	}

	tcs := []TC{
		{"1.999", 0, "1"},
		{"-1.999", 0, "-1"},
		{"-1.999", 2, "-1.99"},
		{"1.5", 3, "1.500"},
		{"-0.0000005", 3, "-0.000"},
		{"123456789", 0, "123456789"},
		{"0.000000000000000000000000000001", 2, "0.00"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s@%d", i, tc.input, tc.scale), func(t *testing.T) {
			require.Equal(t, tc.expected, format(truncate(parse(tc.input), tc.scale)))
		})
	}
}

func TestSignRules(t *testing.T) {
	// Opposite operands that cancel give positive zero.
	require.Equal(t, "0.00", add("-1.5", "1.5", 2))
	require.Equal(t, "0.00", sub("1.5", "1.5", 2))

	// Truncation to zero keeps the sign of the exact sum.
	require.Equal(t, "-0.00", add("-0.001", "0", 2))
	require.Equal(t, "-0.00", sub("0", "0.001", 2))

	// Two negative zeros stay negative.
	require.Equal(t, "-0.0", add("-0.0", "-0.0", 1))
	require.Equal(t, "-0.0", sub("-0.0", "0", 1))
	require.Equal(t, "0.0", sub("-0", "0", 1))

	// Products, quotients and remainders that are zero are positive.
	require.Equal(t, "0.00", mul("-0.001", "1", 2))
	require.Equal(t, "0.0", mul("-0.0", "5", 1))

	v, err := div("-1", "1000", 2)
	require.NoError(t, err)
	require.Equal(t, "0.00", v)

	v, err = mod("-6", "3")
	require.NoError(t, err)
	require.Equal(t, "0", v)

	v, err = mod("-7", "3")
	require.NoError(t, err)
	require.Equal(t, "-1", v)

	v, err = mod("7.9", "-3.9")
	require.NoError(t, err)
	require.Equal(t, "1", v)
}

func TestCompareSigns(t *testing.T) {
	require.Equal(t, -1, cmp("-0.000", "0", 3))
	require.Equal(t, 1, cmp("0", "-0.000", 3))
	require.Equal(t, 0, cmp("-0", "0", 3))
	require.Equal(t, -1, cmp("-0.0000005", "0", 3))
	require.Equal(t, 0, cmp("1.0001", "1.0002", 3))
	require.Equal(t, -1, cmp("1.0001", "1.0002", 4))
	require.Equal(t, 1, cmp("-1", "-2", 0))
	require.Equal(t, -1, cmp("-2", "-1", 0))
}

func TestPowEdges(t *testing.T) {
	type TC struct {
		base     string
		exponent string
		scale    int
		expected string
	}

	tcs := []TC{
		{"2", "-3", 5, "0.12500"},
		{"-2.5", "3", 2, "-15.62"},
		{"-2.5", "2", 2, "6.25"},
		{"0.1", "-2", 4, "100.0000"},
		{"7", "0", 2, "1.00"},
		{"0", "0", 0, "1"},
		{"2", "3.9", 0, "8"},
		{"-0.01", "3", 3, "0.000"},
		{"1", "100000000", 0, "1"},
		{"1.000", "100000000", 2, "1.00"},
		{"-1", "100000001", 0, "-1"},
		{"-1", "100000000", 0, "1"},
		{"0", "100000000", 0, "0"},
		{"-0.0", "100000001", 1, "0.0"},
		{"1", "-100000000", 3, "1.000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s^%s", i, tc.base, tc.exponent), func(t *testing.T) {
			v, err := pow(tc.base, tc.exponent, tc.scale)
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
		})
	}

	_, err := pow("0", "-1", 2)
	require.True(t, DivisionByZero.Has(err))

	_, err = pow("2", "100000000000000000000", 2)
	require.True(t, InvalidOperation.Has(err))

	_, err = pow("2", "100000000000", 2)
	require.True(t, InvalidOperation.Has(err))

	_, err = pow("0", "-100000000", 2)
	require.True(t, DivisionByZero.Has(err))

	_, err = pow("10", "67108864", 0)
	require.True(t, InvalidOperation.Has(err))
}

func TestPowTooLarge(t *testing.T) {
	type TC struct {
		base     string
		exponent int64
		expected bool
	}

	tcs := []TC{
		{"2", 30000000, false},
		{"9", maxDigits, false},
		{"9", maxDigits + 1, true},
		{"10", maxDigits / 2, false},
		{"10", maxDigits/2 + 1, true},
		{"0.001", maxDigits / 3, false},
		{"0.001", maxDigits/3 + 1, true},
		{"1", math.MaxInt64, false},
		{"-1", math.MaxInt64, false},
		{"0", math.MaxInt64, false},
		{"1.1", math.MaxInt64, true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s^%d", i, tc.base, tc.exponent), func(t *testing.T) {
			require.Equal(t, tc.expected, powTooLarge(parse(tc.base), tc.exponent))
		})
	}
}

func TestRoundHalf(t *testing.T) {
	type TC struct {
		input     string
		precision int
		mode      RoundMode
		expected  string
	}

	tcs := []TC{
		{"0.5", 0, RoundHalfUp, "1"},
		{"0.5", 0, RoundHalfDown, "0"},
		{"0.45", 1, RoundHalfDown, "0.4"},
		{"0.45", 1, RoundHalfUp, "0.5"},
		{"0.451", 1, RoundHalfDown, "0.5"},
		{"0.999", 2, RoundHalfUp, "1.00"},
		{"-0.5", 0, RoundHalfUp, "-1"},
		{"-0.5", 0, RoundHalfDown, "-0"},
		{"0.1666666666666665", 13, RoundHalfUp, "0.1666666666667"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s/%s", i, tc.input, tc.mode), func(t *testing.T) {
			v, err := roundHalf(tc.input, tc.precision, tc.mode)
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
		})
	}
}
