// Package decimal provides arbitrary precision base 10 numbers.
//
// A Number holds a base 10 value and a calculation scale. The scale is the
// number of fractional digits kept by every operation; digits beyond it are
// cut off (truncated toward zero), never rounded:
//
//	n := decimal.NewWithScale(decimal.String("1180591620717411303425"), 10)
//	n.MustDiv(decimal.String("12345678910"))
//	n.String() // 95627922070.8657895449
//
// Value returns the number without trailing fractional zeros. Scale reports
// how many fractional digits remain after trimming, and CalcScale reports the
// configured scale.
//
// # Operands
//
// Every operation accepts an Operand: String, Int, Float or another *Number.
// Text is filtered before use. Only digits, signs and decimal points are kept,
// so "9,223,372,036,854,775,808" reads as 9223372036854775808. An exponent is
// expanded at a scale of 100, and floats are formatted with 16 significant
// digits first, so Float(12e-100) keeps all of its digits. Text that is not a
// number after filtering is zero; Parse is the strict alternative.
//
// # Signs
//
// A value whose text starts with a minus sign is negative, even when it is
// zero:
//
//	| Operation          | Zero result                                   |
//	|--------------------|-----------------------------------------------|
//	| Add, Sub           | keeps the sign of the exact result            |
//	|                    | (opposite operands that cancel give +0)       |
//	| Mul, Div, Mod, Pow | always positive                               |
//	| PowMod, Sqrt       | always positive                               |
//
// When reading text, a zero keeps its minus sign only when it is written with
// a decimal point: "-0.0" is negative zero and "-0" is zero. Comparisons look
// at the sign first, so "-0.000" is less than zero.
//
// # Context
//
// A Context carries the default scale (100), the floor probe (14) and the
// numeral converter used by ConvertToBase. New and NewWithScale use the
// Background context.
//
// Floor and Ceil only look at the first floor probe fractional digits when
// deciding whether a number already is an integer. This absorbs noise left
// behind by float input such as 23.00000000000000999999.
//
// # Encoding
//
// MarshalBinary writes three control blocks: the unscaled value as a signed
// integer block (sign in the lowest bit, so negative zero survives), the number
// of fractional digits in the value and the calculation scale, both as
// unsigned integer blocks.
package decimal
