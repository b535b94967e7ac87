package bigmath

import (
	"github.com/calebcase/bignum/integer"
	"github.com/calebcase/bignum/numeral"
)

// pureMath works on the binary representation produced by the numeral
// converter. Magnitudes are added with a base 256 ripple carry and subtracted
// by adding the 255's complement with an end around carry.
type pureMath struct {
	c *numeral.Converter
}

func (m *pureMath) Add(left, right string) (string, error) {
	l, r, err := operands(left, right)
	if err != nil {
		return "", err
	}

	return m.add(l, r)
}

func (m *pureMath) Subtract(left, right string) (string, error) {
	l, r, err := operands(left, right)
	if err != nil {
		return "", err
	}

	return m.add(l, negate(r))
}

func (m *pureMath) add(left, right string) (string, error) {
	l, err := integer.Parse(m.c, left)
	if err != nil {
		return "", Error.Wrap(err)
	}

	r, err := integer.Parse(m.c, right)
	if err != nil {
		return "", Error.Wrap(err)
	}

	sum := &integer.Block{Negative: l.Negative}

	if l.Negative == r.Negative {
		sum.Value = addBinary(l.Value, r.Value)
	} else {
		var negative bool

		sum.Value, negative = subtractBinary(l.Value, r.Value)
		sum.Negative = l.Negative != negative
	}

	sum.Value = trimBinary(sum.Value)

	s, err := sum.Text(m.c)
	if err != nil {
		return "", Error.Wrap(err)
	}

	return s, nil
}

// pad left pads a and b with zero bytes to the same length.
func pad(a, b []byte) ([]byte, []byte) {
	n := max(len(a), len(b))

	return padTo(a, n), padTo(b, n)
}

func padTo(a []byte, n int) []byte {
	if len(a) == n {
		return a
	}

	out := make([]byte, n)
	copy(out[n-len(a):], a)

	return out
}

// addBinary adds two big endian magnitudes.
func addBinary(a, b []byte) []byte {
	a, b = pad(a, b)

	out := make([]byte, len(a)+1)
	carry := 0

	for i := len(a) - 1; i >= 0; i-- {
		sum := int(a[i]) + int(b[i]) + carry
		out[i+1] = byte(sum)
		carry = sum >> 8
	}

	if carry == 0 {
		return out[1:]
	}

	out[0] = byte(carry)

	return out
}

// subtractBinary returns |a - b| and whether a < b.
func subtractBinary(a, b []byte) (diff []byte, negative bool) {
	a, b = pad(a, b)
	n := len(a)

	sum := addBinary(a, complement(b))
	if len(sum) > n {
		carry := sum[:len(sum)-n]

		return addBinary(sum[len(sum)-n:], carry), false
	}

	return complement(sum), true
}

// complement returns the 255's complement of a.
func complement(a []byte) []byte {
	out := make([]byte, len(a))
	for i, v := range a {
		out[i] = 255 - v
	}

	return out
}

// trimBinary drops leading zero bytes, keeping at least one.
func trimBinary(a []byte) []byte {
	for len(a) > 1 && a[0] == 0 {
		a = a[1:]
	}

	return a
}
