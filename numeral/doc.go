// Package numeral converts digit strings between positional numeral systems.
//
// # Numeral Systems
//
// A numeral system is identified by a Base. Integer bases 2 through 62 are
// built in and share two character tables:
//
//	| Bases  | Alphabet                                                         |
//	|--------|------------------------------------------------------------------|
//	| 2..36  | 0123456789abcdefghijklmnopqrstuvwxyz (input is case insensitive) |
//	| 37..62 | 0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz   |
//
// The tables are sliced to the radix so base 16 and base 36 agree on the
// meaning of the digits they share. The layout matches GMP so results are
// interchangeable with it.
//
// Named systems are registered with an arbitrary alphabet of at least two
// unique bytes. Built in names are base32rfc, base64rfc, base64url and binary
// (every byte value 0..255 is a digit). An alphabet containing '-' cannot hold
// negative numbers and an alphabet containing '.' cannot hold fractions; in
// both cases the character is treated as an ordinary digit.
//
// # Conversion Paths
//
// A Converter picks one of three paths:
//
//  1. native: both bases are 2..36 and the input is short enough to fit a
//     machine word (see MaxNativeLength). Unknown characters are skipped.
//  2. accelerated: both bases are 2..62; math/big does the work. Input is
//     strict and unknown characters are an InvalidDigit error.
//  3. raw: repeated division over the source digits. Works for any pair of
//     registered systems. Unknown characters are skipped.
//
// The tolerance of each path is part of its contract and is not unified.
//
// Fractional input is rejected with FractionNotSupported.
package numeral
