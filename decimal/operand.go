package decimal

import (
	"strconv"
	"strings"
)

// Operand is a value a Number can be built from or combined with. It is
// implemented by String, Int, Float and *Number.
type Operand interface {
	operand() string
}

// String is a base 10 number in text form. Grouping separators and other
// punctuation are ignored; an exponent (e or E) is expanded.
type String string

// Int is a machine integer.
type Int int64

// Float is a machine float. It is formatted with 16 significant digits
// before use.
type Float float64

func (s String) operand() string {
	return string(s)
}

func (i Int) operand() string {
	return strconv.FormatInt(int64(i), 10)
}

func (f Float) operand() string {
	return strconv.FormatFloat(float64(f), 'g', 16, 64)
}

// exponentScale is the scale used to expand exponent notation.
const exponentScale = 100

// filter turns an operand into a plain base 10 number without exponent.
func filter(o Operand) string {
	if o == nil {
		return "0"
	}

	s := o.operand()

	pos := strings.IndexByte(s, 'E')
	if pos < 0 {
		pos = strings.IndexByte(s, 'e')
	}

	if pos < 0 {
		return sanitize(s)
	}

	mantissa := parse(sanitize(s[:pos]))
	exp := sanitize(s[pos+1:])

	n, ok := integral(exp)
	if !ok || n > maxDigits || n < -maxDigits {
		return "0"
	}

	shifted := newDecimal(&mantissa.Coeff, 0, mantissa.Negative)
	shifted.Exponent = mantissa.Exponent + int32(n)

	return format(positiveZero(truncate(shifted, exponentScale)))
}

// sanitize keeps digits, signs and decimal points.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case '0' <= r && r <= '9', r == '+', r == '-', r == '.':
			return r
		}

		return -1
	}, s)
}
