package frac32

// TryAdd adds x and y and returns the result.
// TryAdd returns 0 and ErrOverflow if the unreduced numerator or denominator
// of the sum does not fit in 32 bits. For example, 1/65536 + 1/65536
// overflows even though the reduced sum 1/32768 would not.
func (x Fraction) TryAdd(y Fraction) (Fraction, error) {
	return addWide(x, y, 1)
}

// Add adds x and y and returns the result.
// Add panics if the result would overflow.
func (x Fraction) Add(y Fraction) Fraction {
	z, err := x.TryAdd(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TrySub subtracts y from x and returns the result.
// TrySub returns 0 and ErrOverflow under the same conditions as TryAdd.
func (x Fraction) TrySub(y Fraction) (Fraction, error) {
	return addWide(x, y, -1)
}

// Sub subtracts y from x and returns the result.
// Sub panics if the result would overflow.
func (x Fraction) Sub(y Fraction) Fraction {
	z, err := x.TrySub(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TryMul multiplies x and y and returns the result.
// TryMul returns 0 and ErrOverflow if the unreduced product of the numerators
// or of the denominators does not fit in 32 bits.
func (x Fraction) TryMul(y Fraction) (Fraction, error) {
	m, ok := mul32(x.Num(), y.Num())
	if !ok {
		return Fraction{}, ErrOverflow
	}
	n, ok := mul32(x.Den(), y.Den())
	if !ok {
		return Fraction{}, ErrOverflow
	}
	return try64(int64(m), int64(n))
}

// Mul multiplies x and y and returns the result.
// Mul panics if the result would overflow.
func (x Fraction) Mul(y Fraction) Fraction {
	z, err := x.TryMul(y)
	if err != nil {
		panic(err)
	}
	return z
}

// TryDiv divides x by y and returns the result.
// TryDiv returns 0 and ErrDivByZero if y is zero, or 0 and ErrOverflow if
// x.Num()*y.Den() or x.Den()*y.Num() does not fit in 32 bits.
func (x Fraction) TryDiv(y Fraction) (Fraction, error) {
	if y.m == 0 {
		return Fraction{}, ErrDivByZero
	}
	m, ok := mul32(x.Num(), y.Den())
	if !ok {
		return Fraction{}, ErrOverflow
	}
	n, ok := mul32(x.Den(), y.Num())
	if !ok {
		return Fraction{}, ErrOverflow
	}
	return try64(int64(m), int64(n))
}

// Div divides x by y and returns the result.
// Div panics if y is zero or the result would overflow.
func (x Fraction) Div(y Fraction) Fraction {
	z, err := x.TryDiv(y)
	if err != nil {
		panic(err)
	}
	return z
}

// addWide computes x + sgn*y with 64-bit intermediates and rejects any
// numerator or denominator outside int32 before reducing.
func addWide(x, y Fraction, sgn int64) (Fraction, error) {
	mx, nx := int64(x.Num()), int64(x.Den())
	my, ny := int64(y.Num()), int64(y.Den())
	// |m| <= 2^31 and n < 2^31, so neither term nor their sum overflows int64
	m := mx*ny + sgn*my*nx
	n := nx * ny
	if !fits32(m) || !fits32(n) {
		return Fraction{}, ErrOverflow
	}
	return try64(m, n)
}

// mul32 returns a*b computed in 32 bits, and whether it did not overflow.
// Overflow is detected by dividing the product back by a and comparing with
// b. That check misses a single case, a product that wraps to math.MinInt32
// (e.g. -1 * math.MinInt32), so the sign of the product is checked as well.
func mul32(a, b int32) (int32, bool) {
	p := a * b
	if a == 0 {
		return p, true
	}
	if p/a != b {
		return 0, false
	}
	if p != 0 && (p < 0) != ((a < 0) != (b < 0)) {
		return 0, false
	}
	return p, true
}
