package integer

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/bignum/control"
	"github.com/calebcase/bignum/numeral"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number. Value holds the big endian magnitude.
type Block struct {
	Value    []byte
	Negative bool
}

// Parse reads a base 10 integer into a block. The magnitude is produced by
// converting into the binary numeral system.
func Parse(c *numeral.Converter, s string) (b *Block, err error) {
	defer Error.WrapP(&err)

	b = &Block{}

	if strings.HasPrefix(s, "-") {
		b.Negative = true
		s = s[1:]
	}

	s = strings.TrimLeft(s, "0")
	if s == "" {
		return &Block{Value: []byte{0}}, nil
	}

	raw, err := c.Convert(s, numeral.Radix(10), numeral.Binary)
	if err != nil {
		return nil, err
	}

	b.Value = []byte(raw)

	return b, nil
}

// Text returns the block as a base 10 integer. Negative zero is written as
// "0".
func (b *Block) Text(c *numeral.Converter) (s string, err error) {
	defer Error.WrapP(&err)

	s, err = c.Convert(string(b.Value), numeral.Binary, numeral.Radix(10))
	if err != nil {
		return "", err
	}

	if s == "" {
		s = "0"
	}

	if b.Negative && s != "0" {
		s = "-" + s
	}

	return s, nil
}

// IsZero reports whether the magnitude is zero.
func (b *Block) IsZero() bool {
	for _, v := range b.Value {
		if v != 0 {
			return false
		}
	}

	return true
}

// Int returns the block as a big.Int.
func (b *Block) Int() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// FromInt returns a block holding i.
func FromInt(i *big.Int) *Block {
	return &Block{
		Value:    nonEmpty(new(big.Int).Abs(i).Bytes()),
		Negative: i.Sign() < 0,
	}
}

// nonEmpty maps the empty encoding big.Int uses for zero to a zero byte.
func nonEmpty(data []byte) []byte {
	if len(data) == 0 {
		return []byte{0}
	}

	return data
}

// MarshalBinary implements encoding.BinaryMarshaler. The magnitude is shifted
// left one bit and the sign is stored in the low bit.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	return nonEmpty(i.Bytes()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("invalid: size=0")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	b.Value = nonEmpty(i.Bytes())

	return nil
}

// Schema for an integer.
type Schema struct {
	Signed   bool
	Nullable bool
}

// Encoder writes integer blocks as control blocks.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes a block. A nil block or a block without a value is written
// as null when the schema allows it.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if b == nil || b.Value == nil {
		if !e.schema.Nullable {
			return Error.New("invalid: null value for non nullable schema")
		}

		return e.ce.Null()
	}

	if b.Negative && !e.schema.Signed {
		return Error.New("invalid: negative value for unsigned schema")
	}

	data := nonEmpty(new(big.Int).SetBytes(b.Value).Bytes())
	if e.schema.Signed {
		data, err = b.MarshalBinary()
		if err != nil {
			return err
		}
	}

	return e.ce.Data(data)
}

// Decoder reads integer blocks from control blocks.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode reads the next block. It returns nil for a null value.
func (d *Decoder) Decode() (b *Block, err error) {
	defer Error.WrapP(&err)

	if !d.cd.Next() {
		if err = d.cd.Err(); err != nil {
			return nil, err
		}

		return nil, Error.New("unexpected end of input")
	}

	switch d.cd.Type() {
	case control.Null:
		if !d.schema.Nullable {
			return nil, Error.New("invalid: null value for non nullable schema")
		}

		return nil, nil
	case control.Empty:
		return nil, Error.New("invalid: empty integer")
	}

	b = &Block{}

	if d.schema.Signed {
		err = b.UnmarshalBinary(d.cd.Data())
		if err != nil {
			return nil, err
		}

		return b, nil
	}

	b.Value = nonEmpty(new(big.Int).SetBytes(d.cd.Data()).Bytes())

	return b, nil
}
