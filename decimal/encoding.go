package decimal

import (
	"bytes"
	"math/big"
	"strings"

	"github.com/calebcase/bignum/control"
	"github.com/calebcase/bignum/integer"
)

var (
	valueSchema = integer.Schema{Signed: true}
	scaleSchema = integer.Schema{}
)

// MarshalText implements encoding.TextMarshaler.
func (n *Number) MarshalText() ([]byte, error) {
	return []byte(n.Value()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The number keeps its
// context; a number without a context uses the default scale of the
// background context.
func (n *Number) UnmarshalText(text []byte) (err error) {
	p, err := n.context().Parse(string(text))
	if err != nil {
		return err
	}

	*n = *p

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The number is written
// as three control blocks: the unscaled value with its sign, the count of
// fractional digits in the value and the calculation scale.
func (n *Number) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	v := n.value
	if v == "" {
		v = "0"
	}

	whole, frac, _ := strings.Cut(strings.TrimPrefix(v, "-"), ".")

	value, err := integer.Parse(n.context().Converter(), whole+frac)
	if err != nil {
		return nil, err
	}

	value.Negative = strings.HasPrefix(v, "-")

	buf := bytes.NewBuffer(nil)
	ce := control.NewEncoder(buf)

	err = integer.NewEncoder(valueSchema, ce).Encode(value)
	if err != nil {
		return nil, err
	}

	enc := integer.NewEncoder(scaleSchema, ce)

	for _, s := range []int64{int64(len(frac)), int64(n.scale)} {
		err = enc.Encode(integer.FromInt(big.NewInt(s)))
		if err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *Number) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	cd := control.NewDecoder(bytes.NewReader(data))

	value, err := integer.NewDecoder(valueSchema, cd).Decode()
	if err != nil {
		return err
	}

	dec := integer.NewDecoder(scaleSchema, cd)

	var scales [2]int

	for i := range scales {
		b, err := dec.Decode()
		if err != nil {
			return err
		}

		s := b.Int()
		if !s.IsInt64() || s.Int64() > maxDigits {
			return Error.New("scale out of range: %s", s)
		}

		scales[i] = int(s.Int64())
	}

	digits, err := value.Text(n.context().Converter())
	if err != nil {
		return err
	}

	digits = strings.TrimPrefix(digits, "-")
	if pad := scales[0] + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	v := digits
	if frac := scales[0]; frac > 0 {
		v = digits[:len(digits)-frac] + "." + digits[len(digits)-frac:]
	}

	if value.Negative {
		v = "-" + v
	}

	n.value = v
	n.scale = scales[1]

	return nil
}
