// Package bigmath adds and subtracts base 10 integers of any size.
//
// Three tiers implement the same contract:
//
//	decimal  github.com/shopspring/decimal
//	bigint   math/big
//	pure     base 256 ripple carry over integer blocks
//
// The tier is chosen once by Select and does not change afterwards. Every tier
// returns identical results for identical input.
package bigmath

import (
	"log/slog"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/bignum/numeral"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("bigmath")

// Math is integer addition and subtraction on base 10 strings.
type Math interface {
	Add(left, right string) (string, error)
	Subtract(left, right string) (string, error)
}

// Strategy names a tier.
type Strategy string

// Known strategies. Auto picks the first tier in preference order.
const (
	Auto    Strategy = "auto"
	Decimal Strategy = "decimal"
	BigInt  Strategy = "bigint"
	Pure    Strategy = "pure"
)

// Strategies lists the concrete tiers in preference order.
var Strategies = []Strategy{Decimal, BigInt, Pure}

// Option configures Select.
type Option func(o *options)

type options struct {
	log       *slog.Logger
	converter *numeral.Converter
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithConverter sets the numeral converter used by the pure tier.
func WithConverter(c *numeral.Converter) Option {
	return func(o *options) {
		o.converter = c
	}
}

// Select returns the implementation for strategy.
func Select(strategy Strategy, opts ...Option) (m Math, err error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.log == nil {
		o.log = slog.Default()
	}

	if strategy == "" || strategy == Auto {
		strategy = Strategies[0]
	}

	switch strategy {
	case Decimal:
		m = decimalMath{}
	case BigInt:
		m = bigIntMath{}
	case Pure:
		if o.converter == nil {
			o.converter = numeral.NewConverter(numeral.WithLogger(o.log))
		}

		m = &pureMath{c: o.converter}
	default:
		return nil, Error.New("unknown strategy [%s]", strategy)
	}

	o.log.Debug("bigmath backend selected", "strategy", string(strategy))

	return m, nil
}

// canonical validates an integer operand and returns it without a plus sign
// or leading zeros. The empty string is zero.
func canonical(s string) (string, error) {
	neg := false

	digits := s
	switch {
	case strings.HasPrefix(digits, "-"):
		neg = true
		digits = digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}

	if s != "" && digits == "" {
		return "", Error.New("invalid integer [%s]", s)
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", Error.New("invalid integer [%s]", s)
		}
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return "0", nil
	}

	if neg {
		return "-" + digits, nil
	}

	return digits, nil
}

// operands canonicalizes both sides of a binary operation.
func operands(left, right string) (l, r string, err error) {
	l, err = canonical(left)
	if err != nil {
		return "", "", err
	}

	r, err = canonical(right)
	if err != nil {
		return "", "", err
	}

	return l, r, nil
}

// negate flips the sign of a canonical operand.
func negate(s string) string {
	switch {
	case s == "0":
		return s
	case strings.HasPrefix(s, "-"):
		return s[1:]
	}

	return "-" + s
}
