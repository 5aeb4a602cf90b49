package frac32

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scale is the denominator used when quantizing floating-point values: they
// keep three decimal digits after the point.
const Scale = 1000

// maxWhole bounds the integer part accepted by quantize so that
// whole*Scale+Scale stays exact in an int64.
const maxWhole = math.MaxInt64/Scale - 1

// TryFromFloat converts v to a fraction by quantizing it to three decimal
// digits: the fractional part of |v| is scaled by 1000 and rounded to the
// nearest integer, with ties away from zero, and the result is reduced.
// The arithmetic happens in the precision of T, so a float32 is rounded as a
// float32 and not as its float64 widening.
//
// The conversion is lossy on purpose. TryFromFloat(0.125) is 1/8, but
// TryFromFloat(0.1234) is 123/1000 and TryFromFloat(1e-4) is 0.
//
// TryFromFloat returns ErrNaN for NaN and ErrOverflow for infinities and for
// values whose quantized fraction does not fit in 32 bits.
func TryFromFloat[T constraints.Float](v T) (Fraction, error) {
	num, den, err := quantize(v)
	if err != nil {
		return Fraction{}, err
	}
	return try64(num, den)
}

// FromFloat is like TryFromFloat but panics on error.
func FromFloat[T constraints.Float](v T) Fraction {
	x, err := TryFromFloat(v)
	if err != nil {
		panic(err)
	}
	return x
}

// quantize returns v rounded to three decimal digits as a reduced num/den
// pair in 64-bit integers.
func quantize[T constraints.Float](v T) (num, den int64, err error) {
	f := float64(v)
	if math.IsNaN(f) {
		return 0, 0, ErrNaN
	}
	if math.IsInf(f, 0) {
		return 0, 0, ErrOverflow
	}
	sgn := int64(1)
	if v < 0 {
		sgn = -1
		v = -v
	}
	whole := T(math.Floor(float64(v)))
	if float64(whole) > maxWhole {
		return 0, 0, ErrOverflow
	}
	decimal := int64(math.Round(float64(T((v - whole) * Scale))))
	num, den = reduce64(sgn*(int64(whole)*Scale+decimal), Scale)
	return num, den, nil
}
