package unit

import (
	"iter"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/numeric"
)

// Fraction is a linear unit whose factor num/den is kept unreduced.
// Converting through it multiplies before dividing, so 36 kph is exactly
// 10 m/s even though 1/3.6 has no finite decimal expansion.
type Fraction[N numeric.Number[N]] struct {
	num, den N
	symbols  []string
}

// NewFraction parses num and den into a Fraction.
func NewFraction[N numeric.Number[N]](num, den string, symbols ...string) (Fraction[N], error) {
	n, err := numeric.Parse[N](num)
	if err != nil {
		return Fraction[N]{}, errors.Wrapf(err, "unit factor numerator %q", num)
	}
	d, err := numeric.Parse[N](den)
	if err != nil {
		return Fraction[N]{}, errors.Wrapf(err, "unit factor denominator %q", den)
	}
	return FractionOf(n, d, symbols...)
}

// FractionOf builds a Fraction from computed parts.
func FractionOf[N numeric.Number[N]](num, den N, symbols ...string) (Fraction[N], error) {
	if num.Sign() <= 0 || den.Sign() <= 0 {
		return Fraction[N]{}, errors.NewInvalidValueError("unit factor %s/%s must be positive", num, den)
	}
	return Fraction[N]{num: num, den: den, symbols: append([]string(nil), symbols...)}, nil
}

// MustFraction is like NewFraction but panics on error.
func MustFraction[N numeric.Number[N]](num, den string, symbols ...string) Fraction[N] {
	f, err := NewFraction[N](num, den, symbols...)
	if err != nil {
		panic(err)
	}
	return f
}

// Parts returns the numerator and denominator of the factor.
func (f Fraction[N]) Parts() (num, den N) { return f.num, f.den }

// ToReference implements Converter.
func (f Fraction[N]) ToReference(v N) (N, error) {
	return v.Mul(f.num).Quo(f.den)
}

// FromReference implements Converter.
func (f Fraction[N]) FromReference(v N) (N, error) {
	return v.Mul(f.den).Quo(f.num)
}

// Factor implements Converter. The quotient may be rounded.
func (f Fraction[N]) Factor() (N, bool) {
	q, err := f.num.Quo(f.den)
	return q, err == nil
}

// Equal implements Converter by cross-multiplication.
func (f Fraction[N]) Equal(o Converter[N]) bool {
	n, d, ok := Parts(o)
	return ok && f.num.Mul(d).Cmp(n.Mul(f.den)) == 0
}

// Symbols implements Converter.
func (f Fraction[N]) Symbols(name string) iter.Seq2[string, Converter[N]] {
	return func(yield func(string, Converter[N]) bool) {
		bare := Fraction[N]{num: f.num, den: f.den}
		if !yield(DisplayName(name), bare) {
			return
		}
		for _, s := range f.symbols {
			if !yield(s, bare) {
				return
			}
		}
	}
}

// Parts returns the factor of a linear converter as an unreduced fraction.
// It reports false for affine converters.
func Parts[N numeric.Number[N]](c Converter[N]) (num, den N, ok bool) {
	switch u := c.(type) {
	case Fraction[N]:
		return u.num, u.den, true
	case Unit[N]:
		return u.factor, numeric.One[N](), true
	case Metric[N]:
		return u.factor, numeric.One[N](), true
	}
	f, ok := c.Factor()
	return f, numeric.One[N](), ok
}

// Product returns the linear unit whose factor is a's times b's.
func Product[N numeric.Number[N]](a, b Converter[N]) (Fraction[N], bool) {
	an, ad, ok := Parts(a)
	if !ok {
		return Fraction[N]{}, false
	}
	bn, bd, ok := Parts(b)
	if !ok {
		return Fraction[N]{}, false
	}
	return Fraction[N]{num: an.Mul(bn), den: ad.Mul(bd)}, true
}

// Quotient returns the linear unit whose factor is a's divided by b's.
func Quotient[N numeric.Number[N]](a, b Converter[N]) (Fraction[N], bool) {
	an, ad, ok := Parts(a)
	if !ok {
		return Fraction[N]{}, false
	}
	bn, bd, ok := Parts(b)
	if !ok {
		return Fraction[N]{}, false
	}
	return Fraction[N]{num: an.Mul(bd), den: ad.Mul(bn)}, true
}

// Power returns the linear unit whose factor is c's raised to exp.
func Power[N numeric.Number[N]](c Converter[N], exp int) (Fraction[N], bool) {
	n, d, ok := Parts(c)
	if !ok || exp < 1 {
		return Fraction[N]{}, false
	}
	return Fraction[N]{num: n.Pow(exp), den: d.Pow(exp)}, true
}
