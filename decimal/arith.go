package decimal

import (
	"math"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// maxDigits bounds the size of a power before it is computed.
const maxDigits = 1 << 26

var (
	bigOne = apd.NewBigInt(1)
	bigTen = apd.NewBigInt(10)
)

func pow10(n int64) *apd.BigInt {
	return new(apd.BigInt).Exp(bigTen, apd.NewBigInt(n), nil)
}

func newDecimal(c *apd.BigInt, exp int32, negative bool) *apd.Decimal {
	d := &apd.Decimal{
		Exponent: exp,
		Negative: negative,
	}
	d.Coeff.Set(c)

	return d
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// parse reads a sanitized number. Malformed input is zero. A zero keeps its
// minus sign only when it is written with a decimal point.
func parse(s string) *apd.Decimal {
	d := &apd.Decimal{}

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	whole, frac, dot := strings.Cut(s, ".")
	if whole+frac == "" || !isDigits(whole) || !isDigits(frac) {
		return d
	}

	frac = strings.TrimRight(frac, "0")

	digits := strings.TrimLeft(whole+frac, "0")
	if digits == "" {
		d.Negative = negative && dot

		return d
	}

	d.Coeff.SetString(digits, 10)
	d.Exponent = -int32(len(frac))
	d.Negative = negative

	return d
}

// truncate cuts d toward zero to scale fractional digits. The sign of d is
// kept even when the result is zero.
func truncate(d *apd.Decimal, scale int) *apd.Decimal {
	exp := -int32(scale)
	delta := int64(exp) - int64(d.Exponent)

	c := new(apd.BigInt).Set(&d.Coeff)

	switch {
	case delta < 0:
		c.Mul(c, pow10(-delta))
	case delta > int64(c.BitLen()/3+1):
		c.SetInt64(0)
	case delta > 0:
		c.Quo(c, pow10(delta))
	}

	return newDecimal(c, exp, d.Negative)
}

// positiveZero clears the sign of a zero result.
func positiveZero(d *apd.Decimal) *apd.Decimal {
	if d.Coeff.Sign() == 0 {
		d.Negative = false
	}

	return d
}

func format(d *apd.Decimal) string {
	return d.Text('f')
}

// signed returns d as a signed integer scaled to exp, which must not be
// larger than d.Exponent.
func signed(d *apd.Decimal, exp int32) *apd.BigInt {
	c := new(apd.BigInt).Set(&d.Coeff)
	if d.Exponent > exp {
		c.Mul(c, pow10(int64(d.Exponent)-int64(exp)))
	}

	if d.Negative {
		c.Neg(c)
	}

	return c
}

// sum adds exactly. Operands of opposite sign that cancel give positive
// zero; two negative zeros give negative zero.
func sum(x, y *apd.Decimal) *apd.Decimal {
	exp := min(x.Exponent, y.Exponent)

	c := signed(x, exp)
	c.Add(c, signed(y, exp))

	negative := c.Sign() < 0
	if c.Sign() == 0 {
		negative = x.Negative && y.Negative
	}

	return newDecimal(c.Abs(c), exp, negative)
}

func product(x, y *apd.Decimal) *apd.Decimal {
	c := new(apd.BigInt).Mul(&x.Coeff, &y.Coeff)

	return newDecimal(c, x.Exponent+y.Exponent, x.Negative != y.Negative)
}

// quotient divides x by y, truncating to scale fractional digits. y must not
// be zero.
func quotient(x, y *apd.Decimal, scale int) *apd.Decimal {
	k := int64(x.Exponent) - int64(y.Exponent) + int64(scale)

	num := new(apd.BigInt).Set(&x.Coeff)
	den := new(apd.BigInt).Set(&y.Coeff)

	switch {
	case k >= 0:
		num.Mul(num, pow10(k))
	case -k > int64(num.BitLen()/3+1):
		num.SetInt64(0)
	default:
		den.Mul(den, pow10(-k))
	}

	q := new(apd.BigInt).Quo(num, den)

	return positiveZero(newDecimal(q, -int32(scale), x.Negative != y.Negative))
}

func add(l, r string, scale int) string {
	return format(truncate(sum(parse(l), parse(r)), scale))
}

func sub(l, r string, scale int) string {
	y := parse(r)
	y.Negative = !y.Negative

	return format(truncate(sum(parse(l), y), scale))
}

func mul(l, r string, scale int) string {
	return format(positiveZero(truncate(product(parse(l), parse(r)), scale)))
}

func div(l, r string, scale int) (string, error) {
	y := parse(r)
	if y.Coeff.Sign() == 0 {
		return "", DivisionByZero.New("division by zero")
	}

	return format(quotient(parse(l), y, scale)), nil
}

// mod returns the remainder of the integer parts. It takes the sign of the
// dividend.
func mod(l, r string) (string, error) {
	x := truncate(parse(l), 0)
	y := truncate(parse(r), 0)

	if y.Coeff.Sign() == 0 {
		return "", DivisionByZero.New("division by zero")
	}

	c := new(apd.BigInt).Rem(&x.Coeff, &y.Coeff)

	return format(positiveZero(newDecimal(c, 0, x.Negative))), nil
}

// integral returns the integer part of s as an int64.
func integral(s string) (n int64, ok bool) {
	d := truncate(parse(s), 0)
	if !d.Coeff.IsInt64() {
		return 0, false
	}

	n = d.Coeff.Int64()
	if d.Negative {
		n = -n
	}

	return n, true
}

// powTooLarge reports whether x^n would have more than maxDigits digits. Zero
// and one keep their size under any power.
func powTooLarge(x *apd.Decimal, n int64) bool {
	if x.Coeff.Sign() == 0 || (x.Exponent == 0 && x.Coeff.Cmp(bigOne) == 0) {
		return false
	}

	size := max(apd.NumDigits(&x.Coeff), -int64(x.Exponent), 1)

	return n > maxDigits/size
}

// pow raises l to the integer part of r.
func pow(l, r string, scale int) (string, error) {
	x := parse(l)

	n, ok := integral(r)
	if !ok || n == math.MinInt64 {
		return "", InvalidOperation.New("exponent out of range [%s]", r)
	}

	if n == 0 {
		return format(truncate(newDecimal(bigOne, 0, false), scale)), nil
	}

	inverse := n < 0
	if inverse {
		n = -n
	}

	if powTooLarge(x, n) {
		return "", InvalidOperation.New("power too large [%s^%d]", l, n)
	}

	c := new(apd.BigInt).Exp(&x.Coeff, apd.NewBigInt(n), nil)
	p := newDecimal(c, int32(int64(x.Exponent)*n), x.Negative && n%2 == 1)

	if !inverse {
		return format(positiveZero(truncate(p, scale))), nil
	}

	if p.Coeff.Sign() == 0 {
		return "", DivisionByZero.New("division by zero")
	}

	return format(quotient(newDecimal(bigOne, 0, false), p, scale)), nil
}

// powmod raises the integer part of l to the integer part of e modulo the
// integer part of m.
func powmod(l, e, m string) (string, error) {
	x := truncate(parse(l), 0)
	y := truncate(parse(e), 0)
	z := truncate(parse(m), 0)

	if z.Coeff.Sign() == 0 {
		return "", DivisionByZero.New("division by zero")
	}

	if y.Negative && y.Coeff.Sign() != 0 {
		return "", InvalidOperation.New("negative exponent [%s]", e)
	}

	c := new(apd.BigInt).Exp(&x.Coeff, &y.Coeff, &z.Coeff)
	negative := x.Negative && y.Coeff.Bit(0) == 1

	return format(positiveZero(newDecimal(c, 0, negative))), nil
}

// sqrt truncates the square root of s to scale fractional digits.
func sqrt(s string, scale int) (string, error) {
	x := parse(s)
	if x.Negative && x.Coeff.Sign() != 0 {
		return "", InvalidOperation.New("square root of negative number [%s]", s)
	}

	y := truncate(x, 2*scale)

	root := new(big.Int).Sqrt(y.Coeff.MathBigInt())

	c := new(apd.BigInt).SetMathBigInt(root)

	return format(newDecimal(c, -int32(scale), false)), nil
}

// cmp compares l and r truncated to scale. The sign is compared first, so a
// negative zero is less than zero.
func cmp(l, r string, scale int) int {
	x := truncate(parse(l), scale)
	y := truncate(parse(r), scale)

	switch {
	case x.Negative && !y.Negative:
		return -1
	case !x.Negative && y.Negative:
		return 1
	}

	c := x.Coeff.Cmp(&y.Coeff)
	if x.Negative {
		return -c
	}

	return c
}

// roundHalf rounds s to precision fractional digits. Ties go away from zero
// for RoundHalfUp and toward zero for RoundHalfDown.
func roundHalf(s string, precision int, mode RoundMode) (string, error) {
	x := parse(s)

	ctx := apd.BaseContext.WithPrecision(uint32(x.NumDigits() + int64(precision) + 2))
	ctx.Rounding = apd.RoundHalfUp
	if mode == RoundHalfDown {
		ctx.Rounding = apd.RoundHalfDown
	}

	d := new(apd.Decimal)

	_, err := ctx.Quantize(d, x, -int32(precision))
	if err != nil {
		return "", InvalidOperation.Wrap(err)
	}

	return format(d), nil
}

// fraction reports whether s has a non-zero digit after the decimal point.
func fraction(s string) bool {
	_, frac, _ := strings.Cut(s, ".")

	return strings.TrimRight(frac, "0") != ""
}

// trim drops trailing fractional zeros and a trailing decimal point.
func trim(s string) string {
	pos := strings.IndexByte(s, '.')
	if pos < 0 {
		return s
	}

	return s[:pos] + strings.TrimRight(s[pos:], ".0")
}
