package decimal

import (
	"math/big"
	"strings"

	"github.com/calebcase/bignum/numeral"
)

// RoundMode selects how Round treats the discarded digits.
type RoundMode int

// Round modes.
const (
	RoundHalfUp   RoundMode = 1
	RoundHalfDown RoundMode = 2
	RoundCut      RoundMode = 8
)

func (m RoundMode) String() string {
	switch m {
	case RoundHalfUp:
		return "half_up"
	case RoundHalfDown:
		return "half_down"
	case RoundCut:
		return "cut"
	}

	return "unknown"
}

// Number is an arbitrary precision base 10 number. Arithmetic methods modify
// the number in place and return it so calls can be chained. Results are
// truncated toward zero to the calculation scale.
//
// A Number must not be modified concurrently.
type Number struct {
	ctx   *Context
	value string
	scale int
}

func (n *Number) context() *Context {
	if n.ctx == nil {
		return Background()
	}

	return n.ctx
}

func (n *Number) operand() string {
	return n.Value()
}

// Clone returns a copy of n.
func (n *Number) Clone() *Number {
	c := *n

	return &c
}

// Value returns the number without trailing fractional zeros.
func (n *Number) Value() string {
	if n.value == "" {
		return "0"
	}

	return trim(n.value)
}

// String implements fmt.Stringer.
func (n *Number) String() string {
	return n.Value()
}

// Scale returns the number of fractional digits in Value, or -1 when the
// value is an integer.
func (n *Number) Scale() int {
	v := n.Value()

	pos := strings.IndexByte(v, '.')
	if pos < 0 {
		return -1
	}

	return len(v) - pos - 1
}

// CalcScale returns the number of fractional digits kept by operations.
func (n *Number) CalcScale() int {
	return n.scale
}

// SetCalcScale changes the calculation scale. Negative values are stored as
// zero. The current value is not changed.
func (n *Number) SetCalcScale(scale int) *Number {
	n.scale = max(scale, 0)

	return n
}

// SetValue replaces the value. Input that is not a number becomes zero.
func (n *Number) SetValue(o Operand) *Number {
	n.value = sub(filter(o), "0", n.scale)

	return n
}

// Abs removes the sign.
func (n *Number) Abs() *Number {
	n.value = strings.TrimPrefix(n.value, "-")

	return n
}

// Add adds o.
func (n *Number) Add(o Operand) *Number {
	n.value = add(n.value, filter(o), n.scale)

	return n
}

// Sub subtracts o.
func (n *Number) Sub(o Operand) *Number {
	n.value = sub(n.value, filter(o), n.scale)

	return n
}

// Mul multiplies by o.
func (n *Number) Mul(o Operand) *Number {
	n.value = mul(n.value, filter(o), n.scale)

	return n
}

// Div divides by o. It fails with DivisionByZero when o is zero and leaves
// the number unchanged.
func (n *Number) Div(o Operand) (_ *Number, err error) {
	defer n.failed("div", &err)

	v, err := div(n.value, filter(o), n.scale)
	if err != nil {
		return n, err
	}

	n.value = v

	return n, nil
}

// Mod replaces the number with the remainder of dividing its integer part by
// the integer part of o. The remainder has the sign of the dividend.
func (n *Number) Mod(o Operand) (_ *Number, err error) {
	defer n.failed("mod", &err)

	v, err := mod(n.value, filter(o))
	if err != nil {
		return n, err
	}

	n.value = v

	return n, nil
}

// Pow raises the number to the integer part of o. A negative exponent
// divides one by the power.
func (n *Number) Pow(o Operand) (_ *Number, err error) {
	defer n.failed("pow", &err)

	v, err := pow(n.value, filter(o), n.scale)
	if err != nil {
		return n, err
	}

	n.value = v

	return n, nil
}

// PowMod raises the integer part of the number to exp and reduces it modulo
// m. It matches Pow followed by Mod but stays small while computing.
func (n *Number) PowMod(exp, m Operand) (_ *Number, err error) {
	defer n.failed("powmod", &err)

	v, err := powmod(n.Value(), filter(exp), filter(m))
	if err != nil {
		return n, err
	}

	n.value = v

	return n, nil
}

// Sqrt replaces the number with its square root.
func (n *Number) Sqrt() (_ *Number, err error) {
	defer n.failed("sqrt", &err)

	v, err := sqrt(n.value, n.scale)
	if err != nil {
		return n, err
	}

	n.value = v

	return n, nil
}

func (n *Number) failed(op string, err *error) {
	if *err == nil {
		return
	}

	*err = Error.Wrap(*err)

	n.context().log.Debug("decimal operation failed",
		"op", op,
		"value", n.Value(),
		"error", *err,
	)
}

// MustDiv is like Div but panics on error.
func (n *Number) MustDiv(o Operand) *Number {
	return must(n.Div(o))
}

// MustMod is like Mod but panics on error.
func (n *Number) MustMod(o Operand) *Number {
	return must(n.Mod(o))
}

// MustPow is like Pow but panics on error.
func (n *Number) MustPow(o Operand) *Number {
	return must(n.Pow(o))
}

// MustPowMod is like PowMod but panics on error.
func (n *Number) MustPowMod(exp, m Operand) *Number {
	return must(n.PowMod(exp, m))
}

// MustSqrt is like Sqrt but panics on error.
func (n *Number) MustSqrt() *Number {
	return must(n.Sqrt())
}

func must(n *Number, err error) *Number {
	if err != nil {
		panic(err)
	}

	return n
}

// ShiftLeft multiplies by 2^bits. A negative count shifts right.
func (n *Number) ShiftLeft(bits int) *Number {
	if bits < 0 {
		return n.ShiftRight(-bits)
	}

	n.value = mul(n.value, powerOfTwo(bits), n.scale)

	return n
}

// ShiftRight divides by 2^bits. A negative count shifts left.
func (n *Number) ShiftRight(bits int) *Number {
	if bits < 0 {
		return n.ShiftLeft(-bits)
	}

	// 2^bits is never zero.
	n.value, _ = div(n.value, powerOfTwo(bits), n.scale)

	return n
}

func powerOfTwo(bits int) string {
	return new(big.Int).Lsh(big.NewInt(1), uint(bits)).String()
}

// Inc adds one.
func (n *Number) Inc() *Number {
	return n.Add(Int(1))
}

// Dec subtracts one.
func (n *Number) Dec() *Number {
	return n.Sub(Int(1))
}

// Neg multiplies by -1.
func (n *Number) Neg() *Number {
	return n.Mul(Int(-1))
}

// Floor rounds toward negative infinity. Digits past the floor probe are
// ignored when deciding whether a negative number has a fractional part.
func (n *Number) Floor() *Number {
	n.value = n.floor()

	return n
}

func (n *Number) floor() string {
	v := n.value

	if n.IsNegative() {
		v = add(v, "0", n.context().FloorProbe())
		if fraction(v) {
			v = sub(v, "1", 0)
		}
	}

	return add(v, "0", 0)
}

// Ceil rounds toward positive infinity. Digits past the floor probe are
// ignored when deciding whether a positive number has a fractional part.
func (n *Number) Ceil() *Number {
	v := n.value

	if n.IsPositive() {
		v = add(v, "0", n.context().FloorProbe())
		if fraction(v) {
			v = add(v, "1", 0)
		}
	}

	n.value = add(v, "0", 0)

	return n
}

// Round rounds to precision fractional digits. Nothing changes when the
// value already has no more than precision fractional digits. A negative
// precision is treated as zero.
//
// For the half modes only the fractional part is rounded and then added back
// to the floor of the number, so large magnitudes do not lose digits.
func (n *Number) Round(precision int, mode RoundMode) *Number {
	precision = max(precision, 0)

	scale := n.Scale()
	if precision >= scale {
		return n
	}

	if mode == RoundCut {
		n.value = add(n.value, "0", precision)

		return n
	}

	floored := n.floor()
	diff := sub(n.value, floored, scale)

	rounded, err := roundHalf(diff, precision, mode)
	if err != nil {
		n.context().log.Warn("decimal round failed",
			"value", n.Value(),
			"precision", precision,
			"mode", mode.String(),
			"error", err,
		)

		return n
	}

	n.value = add(floored, rounded, precision)

	return n
}

// Cmp returns -1, 0 or 1 as the number is less than, equal to or greater
// than o. Both sides are compared at the calculation scale of n.
func (n *Number) Cmp(o Operand) int {
	return cmp(n.value, filter(o), n.scale)
}

// Equal reports whether n equals o at the calculation scale of n.
func (n *Number) Equal(o Operand) bool {
	return n.Cmp(o) == 0
}

// Greater reports whether n is greater than o.
func (n *Number) Greater(o Operand) bool {
	return n.Cmp(o) > 0
}

// GreaterOrEqual reports whether n is greater than or equal to o.
func (n *Number) GreaterOrEqual(o Operand) bool {
	return n.Cmp(o) >= 0
}

// Less reports whether n is less than o.
func (n *Number) Less(o Operand) bool {
	return n.Cmp(o) < 0
}

// LessOrEqual reports whether n is less than or equal to o.
func (n *Number) LessOrEqual(o Operand) bool {
	return n.Cmp(o) <= 0
}

// Sign returns -1, 0 or 1 by comparing n with zero. A negative zero with a
// fractional part compares below zero.
func (n *Number) Sign() int {
	return n.Cmp(Int(0))
}

// IsNegative reports whether the value is written with a minus sign. This
// includes negative zero.
func (n *Number) IsNegative() bool {
	return strings.HasPrefix(n.value, "-")
}

// IsPositive reports whether the value is written without a minus sign.
func (n *Number) IsPositive() bool {
	return !n.IsNegative()
}

// ConvertToBase returns the value in another numeral system. Only integers
// can be converted.
func (n *Number) ConvertToBase(base numeral.Base) (s string, err error) {
	defer Error.WrapP(&err)

	return n.context().Converter().Convert(n.Value(), numeral.Radix(10), base)
}
