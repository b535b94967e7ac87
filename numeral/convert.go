package numeral

import (
	"log/slog"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// Path names a conversion strategy.
type Path string

// Conversion paths in the order they are tried.
const (
	PathNone        Path = "none"
	PathNative      Path = "native"
	PathAccelerated Path = "accelerated"
	PathRaw         Path = "raw"
)

// Native path digit limits by radix. An input no longer than the limit
// cannot overflow a signed machine word.
var (
	maxNativeLength32 = [maxNativeRadix + 1]int{
		2: 30, 3: 19, 4: 15, 5: 13, 6: 11, 7: 11, 8: 10, 9: 9, 10: 9,
		11: 8, 12: 8, 13: 8, 14: 8, 15: 7, 16: 7, 17: 7, 18: 7, 19: 7,
		20: 7, 21: 7, 22: 6, 23: 6, 24: 6, 25: 6, 26: 6, 27: 6, 28: 6,
		29: 6, 30: 6, 31: 6, 32: 6, 33: 6, 34: 6, 35: 6, 36: 5,
	}
	maxNativeLength64 = [maxNativeRadix + 1]int{
		2: 62, 3: 39, 4: 31, 5: 27, 6: 24, 7: 22, 8: 20, 9: 19, 10: 18,
		11: 18, 12: 17, 13: 17, 14: 16, 15: 16, 16: 15, 17: 15, 18: 15,
		19: 14, 20: 14, 21: 14, 22: 14, 23: 13, 24: 13, 25: 13, 26: 13,
		27: 13, 28: 13, 29: 12, 30: 12, 31: 12, 32: 12, 33: 12, 34: 12,
		35: 12, 36: 12,
	}
)

// MaxNativeLength returns the longest input in the given radix that the
// native path accepts on this platform. It is zero for radixes outside 2..36.
func MaxNativeLength(radix int) int {
	if radix < MinRadix || radix > maxNativeRadix {
		return 0
	}

	if bits.UintSize == 32 {
		return maxNativeLength32[radix]
	}

	return maxNativeLength64[radix]
}

// Option configures a Converter.
type Option func(c *Converter)

// WithRegistry sets the registry used to resolve named systems.
func WithRegistry(r *Registry) Option {
	return func(c *Converter) {
		c.registry = r
	}
}

// WithNative enables or disables the native path.
func WithNative(enabled bool) Option {
	return func(c *Converter) {
		c.native = enabled
	}
}

// WithAccelerated enables or disables the math/big path.
func WithAccelerated(enabled bool) Option {
	return func(c *Converter) {
		c.accelerated = enabled
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

// Converter converts numbers between numeral systems.
type Converter struct {
	registry    *Registry
	native      bool
	accelerated bool

	log *slog.Logger
}

// NewConverter returns a converter with every path enabled.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		native:      true,
		accelerated: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = slog.Default()
	}

	if c.registry == nil {
		c.registry = NewRegistry(c.log)
	}

	return c
}

// Registry returns the registry used by the converter.
func (c *Converter) Registry() *Registry {
	return c.registry
}

// ConvertTo converts a decimal number to base.
func (c *Converter) ConvertTo(number string, to Base) (string, error) {
	return c.Convert(number, Radix(10), to)
}

// ConvertFrom converts a number in base to decimal.
func (c *Converter) ConvertFrom(number string, from Base) (string, error) {
	return c.Convert(number, from, Radix(10))
}

// Convert converts number from one numeral system to another.
func (c *Converter) Convert(number string, from, to Base) (result string, err error) {
	defer Error.WrapP(&err)

	result, path, err := c.convert(number, from, to)
	if err != nil {
		return "", err
	}

	c.log.Debug("numeral converted",
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.String("path", string(path)),
		slog.Int("digits", len(number)),
	)

	return result, nil
}

func (c *Converter) convert(number string, from, to Base) (_ string, _ Path, err error) {
	if from == to || number == "" {
		return number, PathNone, nil
	}

	fromRadix, fromPositional := from.Radix()
	toRadix, toPositional := to.Radix()

	src, err := c.registry.Lookup(from)
	if err != nil {
		return "", PathNone, UnknownSystem.New("source numeral system [%s]", from)
	}

	dst, err := c.registry.Lookup(to)
	if err != nil {
		return "", PathNone, UnknownSystem.New("target numeral system [%s]", to)
	}

	trimmed := number
	if fromPositional {
		trimmed = strings.TrimSpace(number)
	}

	switch {
	case trimmed == "-0":
		return "0", PathNone, nil
	case trimmed == "0" && fromPositional && toPositional:
		return "0", PathNone, nil
	}

	number = trimmed

	prefix := ""
	if strings.HasPrefix(number, "-") && !src.NoNegative {
		if dst.NoNegative {
			return "", PathNone, NegativeNotSupported.New(
				"target numeral system [%s] does not support negative numbers", to)
		}

		prefix = "-"
		number = number[1:]
	}

	if number == "" {
		return "0", PathNone, nil
	}

	if strings.IndexByte(number, '.') >= 0 && !src.NoFraction {
		if dst.NoFraction {
			return "", PathNone, FractionNotSupported.New(
				"target numeral system [%s] does not support fractions", to)
		}

		return "", PathNone, FractionNotSupported.New("fractions conversion is not supported")
	}

	if fromPositional && toPositional {
		if c.native &&
			fromRadix <= maxNativeRadix &&
			toRadix <= maxNativeRadix &&
			len(number) <= MaxNativeLength(fromRadix) {

			return prefix + convertNative(number, fromRadix, toRadix), PathNative, nil
		}

		if c.accelerated {
			out, err := convertAccelerated(number, fromRadix, toRadix)
			if err != nil {
				return "", PathAccelerated, err
			}

			return prefix + out, PathAccelerated, nil
		}
	}

	return prefix + convertRaw(number, src, dst), PathRaw, nil
}

// convertNative converts within a machine word. Characters that are not
// digits of the source radix are skipped.
func convertNative(number string, from, to int) string {
	var v uint

	for i := 0; i < len(number); i++ {
		d := int(lower36Digits[number[i]])
		if d < 0 || d >= from {
			continue
		}

		v = v*uint(from) + uint(d)
	}

	return strconv.FormatUint(uint64(v), to)
}

// convertAccelerated converts with math/big. Input must be made of digits of
// the source radix only.
func convertAccelerated(number string, from, to int) (string, error) {
	number = strings.TrimLeft(number, "0")
	if number == "" {
		return "0", nil
	}

	if number[0] == '+' || number[0] == '-' {
		return "", InvalidDigit.New("unexpected sign in %q", number)
	}

	if from > maxNativeRadix {
		number = swapCase(number)
	}

	i, ok := new(big.Int).SetString(number, from)
	if !ok {
		return "", InvalidDigit.New("%q is not a base %d number", number, from)
	}

	out := i.Text(to)
	if to > maxNativeRadix {
		out = swapCase(out)
	}

	return out, nil
}

// swapCase maps between the math/big digit order for radixes above 36
// (lower case first) and the one used here (upper case first).
func swapCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case 'a' <= c && c <= 'z':
			b[i] = c - 'a' + 'A'
		case 'A' <= c && c <= 'Z':
			b[i] = c - 'A' + 'a'
		}
	}

	return string(b)
}

// convertRaw converts by repeated division of the source digits by the
// target radix. Characters missing from the source alphabet are skipped.
func convertRaw(number string, src, dst *Alphabet) string {
	from, to := src.Len(), dst.Len()

	nibbles := make([]int, 0, len(number))
	for i := 0; i < len(number); i++ {
		if d, ok := src.Digit(number[i]); ok {
			nibbles = append(nibbles, d)
		}
	}

	var out []byte

	length := len(nibbles)
	for {
		value, newlen := 0, 0

		for i := 0; i < length; i++ {
			value = value*from + nibbles[i]

			if value >= to {
				nibbles[newlen] = value / to
				newlen++
				value %= to
			} else if newlen > 0 {
				nibbles[newlen] = 0
				newlen++
			}
		}

		length = newlen
		out = append(out, dst.Char(value))

		if newlen == 0 {
			break
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}
