package numeral

import (
	"strconv"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("numeral")

// Error classes for the individual failure modes.
var (
	UnknownSystem        = errs.Class("unknown system")
	InvalidAlphabet      = errs.Class("invalid alphabet")
	NegativeNotSupported = errs.Class("negative not supported")
	FractionNotSupported = errs.Class("fraction not supported")
	InvalidDigit         = errs.Class("invalid digit")
)

// Base identifies a numeral system. It is either the decimal form of a radix
// in the range [MinRadix, MaxRadix] or the name of a registered alphabet.
type Base string

// Radix bounds of the built in positional systems.
const (
	MinRadix = 2
	MaxRadix = 62

	// maxNativeRadix is the largest radix handled by the native path.
	maxNativeRadix = 36
)

// Named systems available in every Registry.
const (
	Base32RFC Base = "base32rfc"
	Base64RFC Base = "base64rfc"
	Base64URL Base = "base64url"
	Binary    Base = "binary"
)

// Radix returns the Base for the positional system with radix n.
func Radix(n int) Base {
	return Base(strconv.Itoa(n))
}

// Radix reports the radix of a built in positional base.
func (b Base) Radix() (n int, ok bool) {
	if len(b) == 0 || len(b) > 2 || b[0] == '0' {
		return 0, false
	}

	for i := 0; i < len(b); i++ {
		if b[i] < '0' || b[i] > '9' {
			return 0, false
		}

		n = n*10 + int(b[i]-'0')
	}

	if n < MinRadix || n > MaxRadix {
		return 0, false
	}

	return n, true
}

// String implements fmt.Stringer.
func (b Base) String() string {
	return string(b)
}
