package control

import (
	"encoding/binary"
	"io"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("control")

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(bs ...[]byte) (err error) {
	for _, b := range bs {
		_, err = e.w.Write(b)
		if err != nil {
			return Error.Wrap(err)
		}
	}

	return nil
}

// Data writes data using the shortest block type that can hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && Data.Payload(data[0]) == data[0]:
		return e.write([]byte{Data.Prefix | data[0]})
	case size == 2 && Data1.Payload(data[0]) == data[0]:
		return e.write([]byte{Data1.Prefix | data[0]}, data[1:])
	case size == 3 && Data2.Payload(data[0]) == data[0]:
		return e.write([]byte{Data2.Prefix | data[0]}, data[1:])
	case size <= 64:
		return e.write([]byte{DataSize.Prefix | byte(size-1)}, data)
	}

	var sb [8]byte
	binary.BigEndian.PutUint64(sb[:], uint64(size-1))

	sizeBytes := sb[:]
	for len(sizeBytes) > 1 && sizeBytes[0] == 0 {
		sizeBytes = sizeBytes[1:]
	}

	return e.write(
		[]byte{DataSizeSize.Prefix | byte(len(sizeBytes)-1)},
		sizeBytes,
		data,
	)
}

// Empty writes a zero length value.
func (e *encoder) Empty() (err error) {
	return e.write([]byte{Empty.Prefix})
}

// Null writes an absent value.
func (e *encoder) Null() (err error) {
	return e.write([]byte{Null.Prefix})
}
