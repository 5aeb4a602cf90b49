package frac32

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String returns a string representation of x, as m/n.
func (x Fraction) String() string {
	return fmt.Sprintf("%d/%d", x.Num(), x.Den())
}

// WriteTo writes x to w in the same form as String.
func (x Fraction) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, x.String())
	return int64(n), err
}

// Parse parses a string representation of a fraction.
// The string must be in the form "m/n", where m and n are integers in base 10
// that fit in 32 bits and n is not zero. Either may be negative. It is not
// necessary for m/n to be in lowest terms, but the result will be.
func Parse(s string) (Fraction, error) {
	parts := strings.SplitN(s, "/", 3)
	if len(parts) != 2 {
		return Fraction{}, ErrFmtInvalid
	}
	num, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing numerator: %w", err)
	}
	den, err := strconv.ParseInt(parts[1], 10, 32)
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing denominator: %w", err)
	}
	return Try(int32(num), int32(den))
}

// MarshalText implements encoding.TextMarshaler using the form of String.
func (x Fraction) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (x *Fraction) UnmarshalText(text []byte) error {
	y, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = y
	return nil
}

// Read reads a fraction from r as two whitespace-separated base 10
// integers, the numerator and then the denominator. Note that this is not
// the form written by String.
//
// Read returns ErrInvalidInput if either integer is missing or malformed,
// and ErrZeroDenInput if the denominator is zero. A negative denominator
// negates both values and a zero numerator ignores the denominator
// otherwise. If r is not an io.RuneScanner, Read may consume one rune past
// the denominator.
func Read(r io.Reader) (Fraction, error) {
	var x Fraction
	if _, err := fmt.Fscan(r, &x); err != nil {
		return Fraction{}, err
	}
	return x, nil
}

// Scan implements fmt.Scanner for the verbs %v and %d, reading the same
// input as Read. x is only modified on success.
func (x *Fraction) Scan(state fmt.ScanState, verb rune) error {
	if verb != 'v' && verb != 'd' {
		return fmt.Errorf("%w: unsupported verb %%%c", ErrInvalidInput, verb)
	}
	num, err := scanInt32(state)
	if err != nil {
		return fmt.Errorf("%w: numerator: %v", ErrInvalidInput, err)
	}
	den, err := scanInt32(state)
	if err != nil {
		return fmt.Errorf("%w: denominator: %v", ErrInvalidInput, err)
	}
	if den < 0 {
		num, den = -num, -den
	} else if den == 0 {
		return ErrZeroDenInput
	}
	if num == 0 {
		den = 1
	}
	y, err := try64(num, den)
	if err != nil {
		return err
	}
	*x = y
	return nil
}

func scanInt32(state fmt.ScanState) (int64, error) {
	tok, err := state.Token(true, nil)
	if err != nil {
		return 0, err
	}
	if len(tok) == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseInt(string(tok), 10, 32)
}
