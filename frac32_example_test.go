package frac32_test

import (
	"fmt"
	"strings"

	"github.com/kbolino/frac32"
)

func ExampleNew() {
	x := frac32.New(2, 4)
	fmt.Println(x)
	// Output: 1/2
}

func ExampleTry() {
	x, err := frac32.Try(3, -6)
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: -1/2
}

func ExampleTry_denomZero() {
	_, err := frac32.Try(1, 0)
	fmt.Println(err)
	// Output: denominator cannot be zero
}

func ExampleTryFromFloat() {
	x, err := frac32.TryFromFloat(0.125)
	if err != nil {
		panic(err)
	}
	y, err := frac32.TryFromFloat(3.14159)
	if err != nil {
		panic(err)
	}
	fmt.Println(x, y)
	// Output: 1/8 1571/500
}

func ExampleFraction_Add() {
	x := frac32.New(1, 2)
	y := frac32.New(1, 3)
	fmt.Println(x.Add(y))
	// Output: 5/6
}

func ExampleFraction_TryAdd_overflow() {
	x := frac32.Int(2147483647)
	_, err := x.TryAdd(x)
	fmt.Println(err)
	// Output: overflow
}

func ExampleFraction_Div() {
	x := frac32.New(1, 2)
	y := frac32.New(2, 3)
	fmt.Println(x.Div(y))
	// Output: 3/4
}

func ExampleFraction_Eq() {
	third := frac32.New(1, 3)
	fmt.Println(third.Eq(frac32.New(333, 1000)))
	fmt.Println(third.Eq(frac32.New(334, 1000)))
	// Output:
	// true
	// false
}

func ExampleEqual() {
	eq, err := frac32.Equal(frac32.New(1, 2), float32(0.5))
	if err != nil {
		panic(err)
	}
	fmt.Println(eq)
	// Output: true
}

func ExampleAdd() {
	x, err := frac32.Add(0.25, frac32.New(1, 2))
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: 3/4
}

func ExampleFraction_PostIncrement() {
	x := frac32.New(1, 2)
	old, err := x.PostIncrement()
	if err != nil {
		panic(err)
	}
	fmt.Println(old, x)
	// Output: 1/2 3/2
}

func ExampleRead() {
	x, err := frac32.Read(strings.NewReader("6 -8"))
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	_, err = frac32.Read(strings.NewReader("3 0"))
	fmt.Println(err)
	// Output:
	// -3/4
	// zero denominator is not allowed
}

func ExampleFraction_DecimalString() {
	x := frac32.New(2, 3)
	fmt.Println(x.DecimalString(3))
	// Output: 0.667
}
