package frac32

// Comparisons do not look at the stored fields directly. Each side is first
// converted to a float32 and quantized to three decimal digits, exactly as
// TryFromFloat would, and the quantized values are compared. Fractions that
// agree to three decimal places are therefore equal: New(1, 3).Eq(New(333,
// 1000)) is true. Eq itself is an equivalence on the quantized values, but a
// decimal near a rounding boundary can quantize differently as a float32 than
// as a float64, so Equal(v, float32(v)) may be false.

// Eq returns true if x and y are equal to three decimal digits.
func (x Fraction) Eq(y Fraction) bool {
	xm, xn := x.quantized()
	ym, yn := y.quantized()
	return xm == ym && xn == yn
}

// Ne returns true if x and y are not equal, i.e. !x.Eq(y).
func (x Fraction) Ne(y Fraction) bool {
	return !x.Eq(y)
}

// Lt returns true if x is less than y after both are quantized.
func (x Fraction) Lt(y Fraction) bool {
	xm, xn := x.quantized()
	ym, yn := y.quantized()
	// quantized numerators are below 2^41 and denominators at most 1000
	return xm*yn < ym*xn
}

// Le returns true if x.Lt(y) or x.Eq(y).
func (x Fraction) Le(y Fraction) bool {
	return x.Lt(y) || x.Eq(y)
}

// Gt returns true if x is greater than y, i.e. !x.Le(y).
func (x Fraction) Gt(y Fraction) bool {
	return !x.Le(y)
}

// Ge returns true if x is greater than or equal to y, i.e. !x.Lt(y).
func (x Fraction) Ge(y Fraction) bool {
	return !x.Lt(y)
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y, using the same
// quantized comparison as Eq and Lt.
func (x Fraction) Cmp(y Fraction) int {
	switch {
	case x.Eq(y):
		return 0
	case x.Lt(y):
		return -1
	}
	return 1
}

// quantized returns x rounded through float32 and then to three decimal
// digits, as a reduced pair.
func (x Fraction) quantized() (num, den int64) {
	f := float32(x.Num()) / float32(x.Den())
	// |f| <= 2^31, which is always finite and within range for quantize
	num, den, _ = quantize(f)
	return num, den
}
