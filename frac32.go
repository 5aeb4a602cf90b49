// Package frac32 provides rational numbers with 32-bit numerator and
// denominator and explicit overflow detection.
// See the Fraction type and the Try function for details.
package frac32

import (
	"errors"
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// Common errors returned by functions in this package.
var (
	ErrDenZero      = errors.New("denominator cannot be zero")
	ErrOverflow     = errors.New("overflow")
	ErrDivByZero    = errors.New("division by zero")
	ErrInvalidInput = errors.New("invalid input")
	ErrZeroDenInput = errors.New("zero denominator is not allowed")
	ErrFmtInvalid   = errors.New("invalid number format")
	ErrNaN          = errors.New("not a number")
)

// Fraction is a rational number with 32-bit numerator and denominator.
//
// The denominator is always positive and the fraction is always in lowest
// terms. Internally, the denominator is biased by 1, which means the zero
// value is equivalent to 0/1 and thus valid and equal to 0.
//
// Valid values are obtained in the following ways:
//   - the zero value of the type Fraction
//   - returned by the Try, New, Int, or TryFromFloat functions
//   - returned by arithmetic on any valid values
//   - parsed from text
//   - copied from a valid value
//
// Fraction has proper value semantics and its values can be freely copied.
// Note that == on two values compares them exactly, whereas the Eq method
// compares them with the three-digit tolerance described there.
type Fraction struct {
	m int32
	n int32
}

// Try creates a new fraction with the given numerator and denominator.
// Try returns ErrDenZero if the denominator is zero and ErrOverflow if moving
// the sign into the numerator is not representable.
func Try(num, den int32) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDenZero
	}
	return try64(int64(num), int64(den))
}

// New is like Try but panics on error.
func New(num, den int32) Fraction {
	x, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return x
}

// Int returns the whole number num as a fraction, num/1.
func Int(num int32) Fraction {
	return Fraction{m: num}
}

// FromBigRat converts a big.Rat to Fraction, if it is possible to do so.
func FromBigRat(r *big.Rat) (Fraction, error) {
	num, den := r.Num(), r.Denom()
	if !num.IsInt64() || !den.IsInt64() {
		return Fraction{}, ErrOverflow
	}
	return try64(num.Int64(), den.Int64())
}

// Num returns the numerator of x.
func (x Fraction) Num() int32 {
	return x.m
}

// Den returns the denominator of x.
func (x Fraction) Den() int32 {
	return x.n + 1
}

// IsValid returns true if x is a valid fraction.
// Invalid values do not arise under normal circumstances, but may occur if
// a value is constructed or manipulated using unsafe operations.
func (x Fraction) IsValid() bool {
	if x.n < 0 || x.n == math.MaxInt32 {
		return false
	}
	if x.m == 0 {
		return x.n == 0
	}
	return GCD(int64(x.m), int64(x.Den())) == 1
}

// IsZero returns true if x is equal to 0.
func (x Fraction) IsZero() bool {
	return x.m == 0
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x Fraction) Sign() int {
	switch {
	case x.m < 0:
		return -1
	case x.m > 0:
		return 1
	}
	return 0
}

// Neg returns the negation of x, -x.
// Neg panics with ErrOverflow if the numerator of x is math.MinInt32.
func (x Fraction) Neg() Fraction {
	if x.m == math.MinInt32 {
		panic(ErrOverflow)
	}
	return Fraction{-x.m, x.n}
}

// Abs returns the absolute value of x, |x|.
// Abs panics with ErrOverflow under the same condition as Neg.
func (x Fraction) Abs() Fraction {
	if x.m < 0 {
		return x.Neg()
	}
	return x
}

// Inv returns the inverse of x, 1/x.
// Inv panics with ErrDivByZero if x is zero and with ErrOverflow if the
// numerator of x is math.MinInt32.
func (x Fraction) Inv() Fraction {
	if x.m == 0 {
		panic(ErrDivByZero)
	}
	y, err := try64(int64(x.Den()), int64(x.m))
	if err != nil {
		panic(err)
	}
	return y
}

// Take returns x and resets it to 0/1.
func (x *Fraction) Take() Fraction {
	y := *x
	*x = Fraction{}
	return y
}

// DecimalString formats x with prec digits after the decimal point, rounding
// half away from zero. A negative prec is treated as 0, which also drops the
// point. A negative x keeps its sign even when it rounds to zero, so the
// result always matches x.BigRat().FloatString(prec).
func (x Fraction) DecimalString(prec int) string {
	if prec < 0 {
		prec = 0
	}
	m, n := int64(x.Num()), int64(x.Den())
	neg := m < 0
	if neg {
		m = -m
	}
	whole, rem := m/n, m%n
	frac := make([]byte, prec)
	for i := range frac {
		// rem < n <= MaxInt32
		rem *= 10
		frac[i] = byte(rem/n) + '0'
		rem %= n
	}
	if 2*rem >= n {
		i := prec - 1
		for ; i >= 0 && frac[i] == '9'; i-- {
			frac[i] = '0'
		}
		if i >= 0 {
			frac[i]++
		} else {
			whole++
		}
	}
	var buf strings.Builder
	if neg {
		buf.WriteByte('-')
	}
	buf.WriteString(strconv.FormatInt(whole, 10))
	if prec > 0 {
		buf.WriteByte('.')
		buf.Write(frac)
	}
	return buf.String()
}

// Float64 returns the floating-point equivalent of x. If exact is true, then
// v is exactly equal to x; otherwise, it is the closest approximation.
func (x Fraction) Float64() (v float64, exact bool) {
	m, n := x.Num(), x.Den()
	if m == 0 {
		return 0, true
	}
	// any int32 fits in the mantissa, so only the denominator matters
	nIsPow2 := bits.OnesCount32(uint32(n)) == 1
	return float64(m) / float64(n), nIsPow2
}

// BigRat converts x to a new big.Rat.
func (x Fraction) BigRat() *big.Rat {
	return big.NewRat(int64(x.Num()), int64(x.Den()))
}

// try64 normalizes num/den into a Fraction. The sign is moved into the
// numerator and ErrOverflow is returned unless both parts then fit in an
// int32; only after that is the result reduced. den must not be zero.
func try64(num, den int64) (Fraction, error) {
	if den < 0 {
		num, den = -num, -den
	}
	if !fits32(num) || !fits32(den) {
		return Fraction{}, ErrOverflow
	}
	num, den = reduce64(num, den)
	return Fraction{int32(num), int32(den - 1)}, nil
}

// reduce64 returns num/den in lowest terms, with 0 as 0/1.
// den must be positive.
func reduce64(num, den int64) (int64, int64) {
	if num == 0 {
		return 0, 1
	}
	if d := GCD(num, den); d != 1 {
		num, den = num/d, den/d
	}
	return num, den
}

// fits32 returns true if v is in the range of int32.
func fits32(v int64) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}
