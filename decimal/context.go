package decimal

import (
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/zeebo/errs"

	"github.com/calebcase/bignum/numeral"
)

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("decimal")

	// DivisionByZero is returned when dividing by zero or reducing modulo
	// zero.
	DivisionByZero = errs.Class("division by zero")

	// ConstructError is returned when text cannot be read as a number.
	ConstructError = errs.Class("construct")

	// InvalidOperation is returned for operations without a finite result,
	// such as the square root of a negative number.
	InvalidOperation = errs.Class("invalid operation")
)

// Defaults for a new context.
const (
	DefaultScale      = 100
	DefaultFloorProbe = 14
)

// Option configures a Context.
type Option func(c *Context)

// WithScale sets the default scale.
func WithScale(scale int) Option {
	return func(c *Context) {
		c.SetDefaultScale(scale)
	}
}

// WithFloorProbe sets the number of fractional digits Floor and Ceil inspect
// before adjusting a value by one.
func WithFloorProbe(digits int) Option {
	return func(c *Context) {
		c.SetFloorProbe(digits)
	}
}

// WithConverter sets the numeral converter used by ConvertToBase.
func WithConverter(conv *numeral.Converter) Option {
	return func(c *Context) {
		c.converter = conv
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Context) {
		c.log = log
	}
}

// Context holds the settings shared by numbers created from it. It is safe
// for concurrent use.
type Context struct {
	scale atomic.Int64
	probe atomic.Int64

	converter *numeral.Converter
	log       *slog.Logger
}

// NewContext returns a context with the default scale and floor probe.
func NewContext(opts ...Option) *Context {
	c := &Context{}
	c.scale.Store(DefaultScale)
	c.probe.Store(DefaultFloorProbe)

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		c.log = slog.Default()
	}

	if c.converter == nil {
		c.converter = numeral.NewConverter(numeral.WithLogger(c.log))
	}

	return c
}

var background = sync.OnceValue(func() *Context {
	return NewContext()
})

// Background returns the process wide context used by New and by numbers
// without a context.
func Background() *Context {
	return background()
}

// DefaultScale returns the scale given to new numbers.
func (c *Context) DefaultScale() int {
	return int(c.scale.Load())
}

// SetDefaultScale changes the scale given to new numbers. Negative values are
// stored as zero. Existing numbers keep their scale.
func (c *Context) SetDefaultScale(scale int) {
	c.scale.Store(int64(max(scale, 0)))
}

// FloorProbe returns the number of fractional digits inspected by Floor and
// Ceil.
func (c *Context) FloorProbe() int {
	return int(c.probe.Load())
}

// SetFloorProbe changes the floor probe. Values below one are stored as one.
func (c *Context) SetFloorProbe(digits int) {
	c.probe.Store(int64(max(digits, 1)))
}

// Converter returns the numeral converter.
func (c *Context) Converter() *numeral.Converter {
	return c.converter
}

// New returns a number with the default scale.
func (c *Context) New(o Operand) *Number {
	return c.NewWithScale(o, c.DefaultScale())
}

// NewWithScale returns a number with the given scale.
func (c *Context) NewWithScale(o Operand, scale int) *Number {
	n := &Number{ctx: c}
	n.SetCalcScale(scale)
	n.SetValue(o)

	return n
}

// Parse reads text strictly. Unlike New it fails with ConstructError when s
// is not a plain base 10 number.
func (c *Context) Parse(s string) (n *Number, err error) {
	defer Error.WrapP(&err)

	if !valid(s) {
		return nil, ConstructError.New("invalid number %q", s)
	}

	return c.New(String(s)), nil
}

// valid reports whether s is an optionally signed base 10 number.
func valid(s string) bool {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	return whole+frac != "" && isDigits(whole) && isDigits(frac)
}

// New returns a number with the default scale of the background context.
func New(o Operand) *Number {
	return Background().New(o)
}

// NewWithScale returns a number with the given scale in the background
// context.
func NewWithScale(o Operand, scale int) *Number {
	return Background().NewWithScale(o, scale)
}

// Parse reads text strictly in the background context.
func Parse(s string) (*Number, error) {
	return Background().Parse(s)
}
