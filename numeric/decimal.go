package numeric

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/teranos/measure/errors"
)

// DecimalPrecision is the number of significant digits Decimal arithmetic keeps.
const DecimalPrecision = 34

// ctx is shared read-only by every Decimal operation. apd contexts carry no
// mutable state, so concurrent use is safe.
var ctx = func() *apd.Context {
	c := apd.BaseContext.WithPrecision(DecimalPrecision)
	c.Rounding = apd.RoundHalfEven
	return c
}()

// Decimal is an immutable arbitrary-precision decimal. The zero value is 0.
type Decimal struct {
	v *apd.Decimal
}

var decimalZero = apd.New(0, 0)

// NewDecimal parses s into a Decimal.
func NewDecimal(s string) (Decimal, error) {
	return Decimal{}.Parse(s)
}

// MustDecimal is like NewDecimal but panics on error.
func MustDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Decimal) raw() *apd.Decimal {
	if d.v == nil {
		return decimalZero
	}
	return d.v
}

// Apd returns a copy of the underlying apd value.
func (d Decimal) Apd() *apd.Decimal {
	return new(apd.Decimal).Set(d.raw())
}

// Parse implements Number.
func (Decimal) Parse(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	v, _, err := ctx.NewFromString(s)
	if err != nil {
		return Decimal{}, errors.NewInvalidValueError("invalid decimal literal %q", s)
	}
	if v.Form != apd.Finite {
		return Decimal{}, errors.NewInvalidValueError("decimal literal %q is not finite", s)
	}
	return Decimal{v: v}, nil
}

// FromInt implements Number.
func (Decimal) FromInt(i int64) Decimal {
	return Decimal{v: apd.New(i, 0)}
}

// FromFloat implements Number. The shortest decimal that round-trips to f
// is used, so 0.1 becomes exactly 0.1.
func (Decimal) FromFloat(f float64) (Decimal, error) {
	v, err := new(apd.Decimal).SetFloat64(f)
	if err != nil || v.Form != apd.Finite {
		return Decimal{}, errors.NewInvalidValueError("float %v is not finite", f)
	}
	return Decimal{v: v}, nil
}

// binary applies op. A result past apd's exponent limits comes back as NaN.
func (d Decimal) binary(op func(z, x, y *apd.Decimal) (apd.Condition, error), o Decimal) Decimal {
	z := new(apd.Decimal)
	if _, err := op(z, d.raw(), o.raw()); err != nil {
		return Decimal{v: &apd.Decimal{Form: apd.NaN}}
	}
	return Decimal{v: z}
}

// Add implements Number.
func (d Decimal) Add(o Decimal) Decimal { return d.binary(ctx.Add, o) }

// Sub implements Number.
func (d Decimal) Sub(o Decimal) Decimal { return d.binary(ctx.Sub, o) }

// Mul implements Number.
func (d Decimal) Mul(o Decimal) Decimal { return d.binary(ctx.Mul, o) }

// Quo implements Number. Exact quotients are reduced to the ideal exponent
// (exponent of d minus exponent of o), so 1E+3 / 1E+3 is 1, not
// 1.000000000000000000000000000000000.
func (d Decimal) Quo(o Decimal) (Decimal, error) {
	if o.IsZero() {
		return Decimal{}, errors.Wrapf(ErrDivisionByZero, "%s / %s", d, o)
	}
	x, y := d.raw(), o.raw()
	z := new(apd.Decimal)
	cond, err := ctx.Quo(z, x, y)
	if err != nil || z.Form != apd.Finite {
		return Decimal{}, errors.NewInvalidValueError("%s / %s is out of range", d, o)
	}
	if !cond.Inexact() {
		ideal := x.Exponent - y.Exponent
		z.Reduce(z)
		if z.Exponent > ideal {
			q := new(apd.Decimal)
			if _, err := ctx.Quantize(q, z, ideal); err == nil {
				z = q
			}
		}
	}
	return Decimal{v: z}, nil
}

// Neg implements Number.
func (d Decimal) Neg() Decimal {
	return Decimal{v: new(apd.Decimal).Neg(d.raw())}
}

// Abs implements Number.
func (d Decimal) Abs() Decimal {
	return Decimal{v: new(apd.Decimal).Abs(d.raw())}
}

// Pow implements Number for non-negative integer exponents by repeated
// multiplication, which keeps products of exact factors exact.
func (d Decimal) Pow(n int) Decimal {
	if n < 0 {
		panic(fmt.Sprintf("numeric: negative exponent %d", n))
	}
	r := Decimal{}.FromInt(1)
	for i := 0; i < n; i++ {
		r = r.Mul(d)
	}
	return r
}

// Cmp implements Number.
func (d Decimal) Cmp(o Decimal) int { return d.raw().Cmp(o.raw()) }

// Sign implements Number.
func (d Decimal) Sign() int { return d.raw().Sign() }

// IsZero implements Number.
func (d Decimal) IsZero() bool { return d.raw().IsZero() }

// IsFinite implements Number.
func (d Decimal) IsFinite() bool { return d.raw().Form == apd.Finite }

// Float64 implements Number. Values outside the float64 range saturate.
func (d Decimal) Float64() float64 {
	f, _ := d.raw().Float64()
	return f
}

// String returns the decimal in scientific-string form ("1E+3", "0.25").
func (d Decimal) String() string { return d.raw().String() }

// Text formats d with one of apd's formats ('e', 'E', 'f', 'g', 'G').
func (d Decimal) Text(format byte) string { return d.raw().Text(format) }

// Format implements fmt.Formatter. Unlike apd it honours precision:
// %.3f rounds half-even to three fractional digits, %.3e and %.3g round to
// significant digits.
func (d Decimal) Format(s fmt.State, verb rune) {
	v := d.raw()
	prec, hasPrec := s.Precision()
	switch verb {
	case 'f', 'F':
		if hasPrec {
			v = d.quantize(-int32(prec))
		}
	case 'e', 'E':
		if hasPrec {
			v = d.significant(prec + 1)
		}
	case 'g', 'G':
		if hasPrec {
			if prec == 0 {
				prec = 1
			}
			v = d.significant(prec)
		}
	case 'v', 's':
	default:
		fmt.Fprintf(s, "%%!%c(numeric.Decimal=%s)", verb, d.String())
		return
	}
	v.Format(s, verb)
}

func (d Decimal) quantize(exp int32) *apd.Decimal {
	x := d.raw()
	c := ctx.WithPrecision(uint32(x.NumDigits()) + uint32(abs32(exp-x.Exponent)) + 1)
	c.Rounding = apd.RoundHalfEven
	q := new(apd.Decimal)
	if _, err := c.Quantize(q, x, exp); err != nil {
		return x
	}
	return q
}

func (d Decimal) significant(digits int) *apd.Decimal {
	c := ctx.WithPrecision(uint32(digits))
	c.Rounding = apd.RoundHalfEven
	r := new(apd.Decimal)
	if _, err := c.Round(r, d.raw()); err != nil {
		return d.raw()
	}
	return r
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(b []byte) error {
	v, err := Decimal{}.Parse(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
