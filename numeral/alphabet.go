package numeral

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
)

const (
	lower36 = "0123456789abcdefghijklmnopqrstuvwxyz"
	mixed62 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	base32RFC = "abcdefghijklmnopqrstuvwxyz234567"
	base64RFC = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64URL = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// digitTable maps a byte to its ordinal or -1.
type digitTable [256]int16

func newDigitTable(chars string) *digitTable {
	t := &digitTable{}
	for i := range t {
		t[i] = -1
	}

	for i := 0; i < len(chars); i++ {
		t[chars[i]] = int16(i)
	}

	return t
}

var (
	lower36Digits = func() *digitTable {
		t := newDigitTable(lower36)
		for c := 'A'; c <= 'Z'; c++ {
			t[c] = t[c-'A'+'a']
		}

		return t
	}()
	mixed62Digits = newDigitTable(mixed62)

	// positional holds the alphabets of the built in radixes. They share
	// the two tables above and only differ in length.
	positional = func() (as [MaxRadix + 1]*Alphabet) {
		for n := MinRadix; n <= MaxRadix; n++ {
			if n <= maxNativeRadix {
				as[n] = &Alphabet{chars: lower36[:n], digits: lower36Digits}
			} else {
				as[n] = &Alphabet{chars: mixed62[:n], digits: mixed62Digits}
			}
		}

		return as
	}()

	binaryChars = func() string {
		var sb strings.Builder
		for i := 0; i < 256; i++ {
			sb.WriteByte(byte(i))
		}

		return sb.String()
	}()
)

// Alphabet is the ordered set of digit characters of a numeral system.
type Alphabet struct {
	chars  string
	digits *digitTable

	// NoNegative is set when '-' is a digit.
	NoNegative bool

	// NoFraction is set when '.' is a digit.
	NoFraction bool
}

// NewAlphabet returns an alphabet for the given characters. Each byte is one
// digit and the position of the byte is its value.
func NewAlphabet(chars string) (a *Alphabet, err error) {
	defer Error.WrapP(&err)

	if len(chars) < 2 {
		return nil, InvalidAlphabet.New("need at least 2 symbols: len=%d", len(chars))
	}

	digits := newDigitTable(chars)
	for i := 0; i < len(chars); i++ {
		if int(digits[chars[i]]) != i {
			return nil, InvalidAlphabet.New("repeated symbol %q at %d", chars[i], i)
		}
	}

	return &Alphabet{
		chars:      chars,
		digits:     digits,
		NoNegative: strings.IndexByte(chars, '-') >= 0,
		NoFraction: strings.IndexByte(chars, '.') >= 0,
	}, nil
}

// Len returns the radix of the alphabet.
func (a *Alphabet) Len() int {
	return len(a.chars)
}

// Chars returns the digit characters in order.
func (a *Alphabet) Chars() string {
	return a.chars
}

// Digit returns the value of c.
func (a *Alphabet) Digit(c byte) (d int, ok bool) {
	d = int(a.digits[c])
	if d < 0 || d >= len(a.chars) {
		return 0, false
	}

	return d, true
}

// Char returns the character for digit d.
func (a *Alphabet) Char(d int) byte {
	return a.chars[d]
}

// Registry maps bases to alphabets. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	systems map[Base]*Alphabet

	log *slog.Logger
}

// NewRegistry returns a registry holding the built in named systems.
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}

	r := &Registry{
		systems: map[Base]*Alphabet{},
		log:     log,
	}

	for name, chars := range map[Base]string{
		Base32RFC: base32RFC,
		Base64RFC: base64RFC,
		Base64URL: base64URL,
		Binary:    binaryChars,
	} {
		a, err := NewAlphabet(chars)
		if err != nil {
			panic(err)
		}

		r.systems[name] = a
	}

	return r
}

// Register adds or replaces the named system.
func (r *Registry) Register(name Base, chars string) (err error) {
	defer Error.WrapP(&err)

	if name == "" {
		return InvalidAlphabet.New("empty system name")
	}

	if _, ok := name.Radix(); ok {
		return InvalidAlphabet.New("name %q is reserved for a positional radix", name)
	}

	a, err := NewAlphabet(chars)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.systems[name] = a
	r.mu.Unlock()

	r.log.Debug("numeral system registered",
		slog.String("name", string(name)),
		slog.Int("radix", a.Len()),
		slog.Bool("no_negative", a.NoNegative),
		slog.Bool("no_fraction", a.NoFraction),
	)

	return nil
}

// Lookup returns the alphabet of base.
func (r *Registry) Lookup(base Base) (a *Alphabet, err error) {
	defer Error.WrapP(&err)

	if n, ok := base.Radix(); ok {
		return positional[n], nil
	}

	r.mu.RLock()
	a, ok := r.systems[base]
	r.mu.RUnlock()

	if !ok {
		return nil, UnknownSystem.New("[%s]", base)
	}

	return a, nil
}

// Systems returns the registered names in sorted order.
func (r *Registry) Systems() (names []Base) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for name := range r.systems {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})

	return names
}
