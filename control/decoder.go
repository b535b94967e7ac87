package control

import (
	"encoding/binary"
	"errors"
	"io"
)

// Decoder reads control blocks.
type Decoder interface {
	// Next advances to the next block. It returns false at the end of the
	// input or on error; check Err to tell them apart.
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Size() uint64
	Data() []byte
}

type decoder struct {
	r io.Reader

	consumed uint64

	value [1]byte
	t     Type
	data  []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

func (d *decoder) read(n uint64) (b []byte, err error) {
	b = make([]byte, n)

	_, err = io.ReadFull(d.r, b)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, Error.Wrap(err)
	}

	d.consumed += n

	return b, nil
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	d.t = Unknown
	d.data = nil

	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.err = Error.Wrap(err)
		}

		return false
	}

	d.consumed++

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	d.err = d.payload(t)
	if d.err != nil {
		return false
	}

	d.t = t

	return true
}

func (d *decoder) payload(t Type) (err error) {
	head := t.Payload(d.value[0])

	switch t {
	case Data:
		d.data = []byte{head}
	case Data1, Data2:
		extra := uint64(1)
		if t == Data2 {
			extra = 2
		}

		rest, err := d.read(extra)
		if err != nil {
			return err
		}

		d.data = append([]byte{head}, rest...)
	case DataSize:
		d.data, err = d.read(uint64(head) + 1)
		if err != nil {
			return err
		}
	case DataSizeSize:
		sizeBytes, err := d.read(uint64(head) + 1)
		if err != nil {
			return err
		}

		var sb [8]byte
		copy(sb[8-len(sizeBytes):], sizeBytes)

		size := binary.BigEndian.Uint64(sb[:])
		if size == ^uint64(0) {
			return Error.New("unimplemented: size >= 2^64")
		}

		d.data, err = d.read(size + 1)
		if err != nil {
			return err
		}
	case Empty:
		d.data = []byte{}
	case Null:
		d.data = nil
	}

	return nil
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

func (d *decoder) Size() uint64 {
	return uint64(len(d.data))
}

func (d *decoder) Data() []byte {
	return d.data
}
