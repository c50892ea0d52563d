package unit

import (
	"iter"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/numeric"
)

// Affine is a unit with a zero point that differs from the reference
// unit's: reference = (value + offset) × num / den.
//
// Keeping the scale as a fraction lets Fahrenheit (5/9) round-trip exactly
// through Decimal arithmetic where the fraction's digits would not.
type Affine[N numeric.Number[N]] struct {
	offset   N
	num, den N
	symbols  []string
}

// NewAffine parses offset and the scale fraction num/den.
func NewAffine[N numeric.Number[N]](offset, num, den string, symbols ...string) (Affine[N], error) {
	o, err := numeric.Parse[N](offset)
	if err != nil {
		return Affine[N]{}, errors.Wrapf(err, "affine offset %q", offset)
	}
	n, err := numeric.Parse[N](num)
	if err != nil {
		return Affine[N]{}, errors.Wrapf(err, "affine scale %q", num)
	}
	d, err := numeric.Parse[N](den)
	if err != nil {
		return Affine[N]{}, errors.Wrapf(err, "affine scale %q", den)
	}
	if n.Sign() <= 0 || d.Sign() <= 0 {
		return Affine[N]{}, errors.NewInvalidValueError("affine scale %s/%s must be positive", num, den)
	}
	return Affine[N]{offset: o, num: n, den: d, symbols: append([]string(nil), symbols...)}, nil
}

// MustAffine is like NewAffine but panics on error.
func MustAffine[N numeric.Number[N]](offset, num, den string, symbols ...string) Affine[N] {
	a, err := NewAffine[N](offset, num, den, symbols...)
	if err != nil {
		panic(err)
	}
	return a
}

// Offset returns the value added before scaling.
func (a Affine[N]) Offset() N { return a.offset }

// ToReference implements Converter.
func (a Affine[N]) ToReference(v N) (N, error) {
	return v.Add(a.offset).Mul(a.num).Quo(a.den)
}

// FromReference implements Converter.
func (a Affine[N]) FromReference(v N) (N, error) {
	r, err := v.Mul(a.den).Quo(a.num)
	if err != nil {
		return r, err
	}
	return numeric.Finite(r.Sub(a.offset))
}

// Factor implements Converter. Affine units have no single factor.
func (a Affine[N]) Factor() (N, bool) {
	var zero N
	return zero, false
}

// Equal implements Converter.
func (a Affine[N]) Equal(o Converter[N]) bool {
	b, ok := o.(Affine[N])
	return ok &&
		a.offset.Cmp(b.offset) == 0 &&
		a.num.Mul(b.den).Cmp(b.num.Mul(a.den)) == 0
}

// Symbols implements Converter. Affine units never take prefixes.
func (a Affine[N]) Symbols(name string) iter.Seq2[string, Converter[N]] {
	return func(yield func(string, Converter[N]) bool) {
		bare := Affine[N]{offset: a.offset, num: a.num, den: a.den}
		if !yield(DisplayName(name), bare) {
			return
		}
		for _, s := range a.symbols {
			if !yield(s, bare) {
				return
			}
		}
	}
}
