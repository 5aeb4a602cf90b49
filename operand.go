package frac32

// Operand is any value the package-level arithmetic and comparison functions
// accept on either side. Floating-point operands are converted with
// TryFromFloat before use, so they are quantized to three decimal digits.
type Operand interface {
	Fraction | float32 | float64
}

// Of converts v to a Fraction. Fractions are returned unchanged and floats
// go through TryFromFloat.
func Of[T Operand](v T) (Fraction, error) {
	switch v := any(v).(type) {
	case Fraction:
		return v, nil
	case float32:
		return TryFromFloat(v)
	case float64:
		return TryFromFloat(v)
	}
	panic("unreachable")
}

// of2 converts both operands, left first.
func of2[X, Y Operand](x X, y Y) (Fraction, Fraction, error) {
	fx, err := Of(x)
	if err != nil {
		return Fraction{}, Fraction{}, err
	}
	fy, err := Of(y)
	if err != nil {
		return Fraction{}, Fraction{}, err
	}
	return fx, fy, nil
}

// Add returns x + y. See Fraction.TryAdd.
func Add[X, Y Operand](x X, y Y) (Fraction, error) {
	fx, fy, err := of2(x, y)
	if err != nil {
		return Fraction{}, err
	}
	return fx.TryAdd(fy)
}

// Sub returns x - y. See Fraction.TrySub.
func Sub[X, Y Operand](x X, y Y) (Fraction, error) {
	fx, fy, err := of2(x, y)
	if err != nil {
		return Fraction{}, err
	}
	return fx.TrySub(fy)
}

// Mul returns x * y. See Fraction.TryMul.
func Mul[X, Y Operand](x X, y Y) (Fraction, error) {
	fx, fy, err := of2(x, y)
	if err != nil {
		return Fraction{}, err
	}
	return fx.TryMul(fy)
}

// Div returns x / y. See Fraction.TryDiv.
// The divisor is converted first, and a zero divisor is reported as
// ErrDivByZero whatever x holds.
func Div[X, Y Operand](x X, y Y) (Fraction, error) {
	fy, err := Of(y)
	if err != nil {
		return Fraction{}, err
	}
	if fy.IsZero() {
		return Fraction{}, ErrDivByZero
	}
	fx, err := Of(x)
	if err != nil {
		return Fraction{}, err
	}
	return fx.TryDiv(fy)
}

// AddAssign sets *dst to *dst + y and returns the new value.
// On error, *dst is left unchanged.
func AddAssign[T Operand](dst *Fraction, y T) (Fraction, error) {
	return assign(dst, y, Add[Fraction, T])
}

// SubAssign sets *dst to *dst - y and returns the new value.
// On error, *dst is left unchanged.
func SubAssign[T Operand](dst *Fraction, y T) (Fraction, error) {
	return assign(dst, y, Sub[Fraction, T])
}

// MulAssign sets *dst to *dst * y and returns the new value.
// On error, *dst is left unchanged.
func MulAssign[T Operand](dst *Fraction, y T) (Fraction, error) {
	return assign(dst, y, Mul[Fraction, T])
}

// DivAssign sets *dst to *dst / y and returns the new value.
// On error, *dst is left unchanged.
func DivAssign[T Operand](dst *Fraction, y T) (Fraction, error) {
	return assign(dst, y, Div[Fraction, T])
}

func assign[T Operand](dst *Fraction, y T, op func(Fraction, T) (Fraction, error)) (Fraction, error) {
	z, err := op(*dst, y)
	if err != nil {
		return *dst, err
	}
	*dst = z
	return z, nil
}

// Increment adds 1 to x in place and returns x.
// On overflow, x is left unchanged and ErrOverflow is returned.
func (x *Fraction) Increment() (*Fraction, error) {
	if err := x.step(1); err != nil {
		return x, err
	}
	return x, nil
}

// PostIncrement adds 1 to x in place and returns the value x had before.
// On overflow, x is left unchanged and ErrOverflow is returned.
func (x *Fraction) PostIncrement() (Fraction, error) {
	old := *x
	return old, x.step(1)
}

// Decrement subtracts 1 from x in place and returns x.
// On overflow, x is left unchanged and ErrOverflow is returned.
func (x *Fraction) Decrement() (*Fraction, error) {
	if err := x.step(-1); err != nil {
		return x, err
	}
	return x, nil
}

// PostDecrement subtracts 1 from x in place and returns the value x had
// before. On overflow, x is left unchanged and ErrOverflow is returned.
func (x *Fraction) PostDecrement() (Fraction, error) {
	old := *x
	return old, x.step(-1)
}

// step adds sgn whole units to x. Since gcd(m±n, n) == gcd(m, n), the result
// needs no further reduction.
func (x *Fraction) step(sgn int64) error {
	m := int64(x.m) + sgn*int64(x.Den())
	if !fits32(m) {
		return ErrOverflow
	}
	x.m = int32(m)
	return nil
}

// Equal returns true if x and y are equal to three decimal digits.
// See Fraction.Eq. The error is a conversion error from a float operand.
func Equal[X, Y Operand](x X, y Y) (bool, error) {
	fx, fy, err := of2(x, y)
	if err != nil {
		return false, err
	}
	return fx.Eq(fy), nil
}

// NotEqual is the negation of Equal.
func NotEqual[X, Y Operand](x X, y Y) (bool, error) {
	eq, err := Equal(x, y)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Less returns true if x < y. See Fraction.Lt.
func Less[X, Y Operand](x X, y Y) (bool, error) {
	fx, fy, err := of2(x, y)
	if err != nil {
		return false, err
	}
	return fx.Lt(fy), nil
}

// LessEqual returns true if x <= y. See Fraction.Le.
func LessEqual[X, Y Operand](x X, y Y) (bool, error) {
	fx, fy, err := of2(x, y)
	if err != nil {
		return false, err
	}
	return fx.Le(fy), nil
}

// Greater returns true if x > y. See Fraction.Gt.
func Greater[X, Y Operand](x X, y Y) (bool, error) {
	fx, fy, err := of2(x, y)
	if err != nil {
		return false, err
	}
	return fx.Gt(fy), nil
}

// GreaterEqual returns true if x >= y. See Fraction.Ge.
func GreaterEqual[X, Y Operand](x X, y Y) (bool, error) {
	fx, fy, err := of2(x, y)
	if err != nil {
		return false, err
	}
	return fx.Ge(fy), nil
}

// Compare returns -1, 0, or 1 as x is less than, equal to, or greater than y.
// See Fraction.Cmp.
func Compare[X, Y Operand](x X, y Y) (int, error) {
	fx, fy, err := of2(x, y)
	if err != nil {
		return 0, err
	}
	return fx.Cmp(fy), nil
}
