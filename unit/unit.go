// Package unit describes how a single named unit relates to the reference
// unit of its dimension.
//
// A Unit is a plain scale factor (reference = factor × value). A Metric unit
// additionally expands into SI-prefixed symbols (km, kilometre, Kilometre).
// An Affine unit adds an offset, for temperature scales.
package unit

import (
	"iter"
	"strings"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/numeric"
)

// Converter converts values between one unit and its dimension's reference unit.
type Converter[N numeric.Number[N]] interface {
	// ToReference converts a value expressed in this unit to the reference unit.
	// Results outside the backend's range are an ErrInvalidValue error.
	ToReference(v N) (N, error)
	// FromReference converts a reference-unit value to this unit.
	FromReference(v N) (N, error)
	// Factor returns the linear scale factor, or false for affine units.
	Factor() (N, bool)
	// Symbols lists every spelling of the unit declared under name, each
	// paired with the converter that spelling stands for.
	Symbols(name string) iter.Seq2[string, Converter[N]]
	// Equal reports whether o converts exactly like the receiver.
	Equal(o Converter[N]) bool
}

// Unit is a linear unit: reference = factor × value.
type Unit[N numeric.Number[N]] struct {
	factor  N
	symbols []string
}

// New parses factor and returns a Unit answering to the given symbols in
// addition to its declared name.
func New[N numeric.Number[N]](factor string, symbols ...string) (Unit[N], error) {
	f, err := numeric.Parse[N](factor)
	if err != nil {
		return Unit[N]{}, errors.Wrapf(err, "unit factor %q", factor)
	}
	return FromFactor(f, symbols...)
}

// FromFactor is like New for a factor that was computed rather than written down.
func FromFactor[N numeric.Number[N]](factor N, symbols ...string) (Unit[N], error) {
	if factor.Sign() <= 0 {
		return Unit[N]{}, errors.NewInvalidValueError("unit factor must be positive, got %s", factor)
	}
	return Unit[N]{factor: factor, symbols: append([]string(nil), symbols...)}, nil
}

// MustNew is like New but panics on error. Unit tables declared in source
// use it so a typo fails at package initialisation.
func MustNew[N numeric.Number[N]](factor string, symbols ...string) Unit[N] {
	u, err := New[N](factor, symbols...)
	if err != nil {
		panic(err)
	}
	return u
}

// MustFromFactor is like FromFactor but panics on error.
func MustFromFactor[N numeric.Number[N]](factor N, symbols ...string) Unit[N] {
	u, err := FromFactor(factor, symbols...)
	if err != nil {
		panic(err)
	}
	return u
}

// Aliases returns the declared aliases, not including the unit's name.
func (u Unit[N]) Aliases() []string {
	return append([]string(nil), u.symbols...)
}

// ToReference implements Converter.
func (u Unit[N]) ToReference(v N) (N, error) {
	return numeric.Finite(v.Mul(u.factor))
}

// FromReference implements Converter.
func (u Unit[N]) FromReference(v N) (N, error) {
	return v.Quo(u.factor)
}

// Factor implements Converter.
func (u Unit[N]) Factor() (N, bool) {
	return u.factor, true
}

// Equal implements Converter.
func (u Unit[N]) Equal(o Converter[N]) bool {
	n, d, ok := Parts(o)
	return ok && u.factor.Mul(d).Cmp(n) == 0
}

// Symbols implements Converter. It yields the name with underscores turned
// into spaces, then every alias, all mapped to a bare Unit with the same factor.
func (u Unit[N]) Symbols(name string) iter.Seq2[string, Converter[N]] {
	return func(yield func(string, Converter[N]) bool) {
		bare := Unit[N]{factor: u.factor}
		if !yield(DisplayName(name), bare) {
			return
		}
		for _, s := range u.symbols {
			if !yield(s, bare) {
				return
			}
		}
	}
}

// scaled returns a bare Unit whose factor is u's multiplied by m.
func (u Unit[N]) scaled(m N) Unit[N] {
	return Unit[N]{factor: u.factor.Mul(m)}
}

// DisplayName turns a declared unit name into its primary symbol.
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
