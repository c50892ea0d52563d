// Package numeric defines the number types measurements are computed in.
//
// Every other package is generic over Number, so a caller picks exact
// decimal arithmetic (Decimal) or IEEE-754 doubles (Float) once, when the
// catalog of dimensions is built, instead of branching on a flag per value.
package numeric

import (
	"fmt"

	"github.com/teranos/measure/errors"
)

// Number is the arithmetic a measurement backend has to provide.
// Implementations are immutable values: every operation returns a new T.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) (T, error)
	Neg() T
	Abs() T
	Pow(n int) T
	Cmp(T) int
	Sign() int
	IsZero() bool
	// IsFinite is false once an operation overflowed the backend's range.
	IsFinite() bool
	Float64() float64

	// Parse, FromInt and FromFloat ignore their receiver. They let generic
	// code construct values through the zero value of T.
	Parse(s string) (T, error)
	FromInt(i int64) T
	FromFloat(f float64) (T, error)

	fmt.Stringer
	fmt.Formatter
}

// ErrDivisionByZero is returned by Quo when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Finite returns v, or an ErrInvalidValue error when v is not finite.
func Finite[T Number[T]](v T) (T, error) {
	if !v.IsFinite() {
		return v, errors.NewInvalidValueError("result %s is out of range", v)
	}
	return v, nil
}

// Parse parses s as a T.
func Parse[T Number[T]](s string) (T, error) {
	var zero T
	return zero.Parse(s)
}

// MustParse is like Parse but panics on malformed input.
// It is meant for unit tables declared in source code.
func MustParse[T Number[T]](s string) T {
	v, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// Int returns i as a T.
func Int[T Number[T]](i int64) T {
	var zero T
	return zero.FromInt(i)
}

// One returns the multiplicative identity.
func One[T Number[T]]() T {
	return Int[T](1)
}

// Ratio returns num/den parsed from decimal strings, e.g. Ratio("1", "3.6").
func Ratio[T Number[T]](num, den string) (T, error) {
	n, err := Parse[T](num)
	if err != nil {
		return n, err
	}
	d, err := Parse[T](den)
	if err != nil {
		return d, err
	}
	return n.Quo(d)
}

// MustRatio is like Ratio but panics on error.
func MustRatio[T Number[T]](num, den string) T {
	v, err := Ratio[T](num, den)
	if err != nil {
		panic(err)
	}
	return v
}

// IsNumeric reports whether Of would accept v.
func IsNumeric[T Number[T]](v any) bool {
	switch v.(type) {
	case T, int, int32, int64, uint, uint32, uint64, float32, float64:
		return true
	}
	return false
}

// Of converts v to a T. It accepts T itself, Go integer and float kinds and
// decimal strings. Anything else is rejected with ErrInvalidValue.
func Of[T Number[T]](v any) (T, error) {
	var zero T
	switch x := v.(type) {
	case T:
		return x, nil
	case int:
		return zero.FromInt(int64(x)), nil
	case int32:
		return zero.FromInt(int64(x)), nil
	case int64:
		return zero.FromInt(x), nil
	case uint:
		return zero.Parse(fmt.Sprint(x))
	case uint32:
		return zero.FromInt(int64(x)), nil
	case uint64:
		return zero.Parse(fmt.Sprint(x))
	case float32:
		return zero.FromFloat(float64(x))
	case float64:
		return zero.FromFloat(x)
	case string:
		return zero.Parse(x)
	case fmt.Stringer:
		return zero.Parse(x.String())
	}
	return zero, errors.NewInvalidValueError("unsupported value type %T", v)
}
