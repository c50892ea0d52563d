// Package measure implements measurement values tagged with a dimension.
//
// A Dimension wraps a registry with the rules for turning user input into a
// symbol. A Measure is an immutable value stored in the dimension's
// reference unit together with the unit it was written in.
package measure

import (
	"strings"
	"unicode"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/numeric"
	"github.com/teranos/measure/registry"
)

// Dimension is a kind of physical quantity and the units it accepts.
type Dimension[N numeric.Number[N]] struct {
	reg       *registry.Registry[N]
	translate Translator
	display   string
	algebra   *Algebra[N]
}

// DimensionOption configures NewDimension.
type DimensionOption[N numeric.Number[N]] func(*Dimension[N])

// WithTranslator replaces the default Underscores translator.
func WithTranslator[N numeric.Number[N]](t Translator) DimensionOption[N] {
	return func(d *Dimension[N]) { d.translate = t }
}

// WithDisplayUnit sets the unit results of cross-dimension arithmetic are
// written in. It defaults to the reference unit.
func WithDisplayUnit[N numeric.Number[N]](symbol string) DimensionOption[N] {
	return func(d *Dimension[N]) { d.display = symbol }
}

// WithAlgebra attaches the table of declared products, quotients and powers.
func WithAlgebra[N numeric.Number[N]](a *Algebra[N]) DimensionOption[N] {
	return func(d *Dimension[N]) { d.algebra = a }
}

// NewDimension wraps reg.
func NewDimension[N numeric.Number[N]](reg *registry.Registry[N], opts ...DimensionOption[N]) (*Dimension[N], error) {
	d := &Dimension[N]{
		reg:       reg,
		translate: Underscores,
		display:   reg.ReferenceSymbol(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if _, ok := reg.Lookup(d.display); !ok {
		return nil, errors.Newf("%s: display unit %q is not a symbol of the dimension", reg.Name(), d.display)
	}
	return d, nil
}

// MustDimension is like NewDimension but panics on error.
func MustDimension[N numeric.Number[N]](reg *registry.Registry[N], opts ...DimensionOption[N]) *Dimension[N] {
	d, err := NewDimension(reg, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the dimension name, e.g. "Distance".
func (d *Dimension[N]) Name() string { return d.reg.Name() }

// Registry returns the dimension's symbol table.
func (d *Dimension[N]) Registry() *registry.Registry[N] { return d.reg }

// DisplayUnit returns the symbol cross-dimension results are written in.
func (d *Dimension[N]) DisplayUnit() string { return d.display }

// Resolve finds the unit a name refers to. It tries the name as written,
// then the translated name, then both through the registry's lower-case
// index when it has one. The second result is the symbol that matched.
func (d *Dimension[N]) Resolve(name string) (registry.Resolved[N], string, error) {
	if res, ok := d.reg.Lookup(name); ok {
		return res, name, nil
	}
	translated := d.translate(name)
	if translated != name {
		if res, ok := d.reg.Lookup(translated); ok {
			return res, translated, nil
		}
	}
	if d.reg.CaseFold() {
		if res, ok := d.reg.LookupFold(name); ok {
			return res, name, nil
		}
		if res, ok := d.reg.LookupFold(translated); ok {
			return res, translated, nil
		}
	}
	return registry.Resolved[N]{}, "", &LookupError{Dimension: d.Name(), Unit: name, Kind: LookupUnit}
}

// Accepts reports whether name resolves in d.
func (d *Dimension[N]) Accepts(name string) bool {
	_, _, err := d.Resolve(name)
	return err == nil
}

// New returns value expressed in the named unit.
func (d *Dimension[N]) New(value N, unitName string) (Measure[N], error) {
	res, symbol, err := d.Resolve(unitName)
	if err != nil {
		return Measure[N]{}, err
	}
	ref, err := res.Unit.ToReference(value)
	if err != nil {
		return Measure[N]{}, errors.Wrapf(err, "%s %s %s", d.Name(), value, unitName)
	}
	return Measure[N]{dim: d, ref: ref, unit: symbol, res: res}, nil
}

// Of is like New for a value of any numeric Go type or a decimal string.
func (d *Dimension[N]) Of(unitName string, value any) (Measure[N], error) {
	v, err := numeric.Of[N](value)
	if err != nil {
		return Measure[N]{}, errors.Wrapf(err, "%s %s", d.Name(), unitName)
	}
	return d.New(v, unitName)
}

// Parse reads "<number> <unit>". The unit is everything after the first run
// of whitespace, so "14.7 pounds per square inch" is accepted.
func (d *Dimension[N]) Parse(s string) (Measure[N], error) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return Measure[N]{}, errors.NewInvalidValueError("%s: expected \"<number> <unit>\", got %q", d.Name(), s)
	}
	v, err := numeric.Parse[N](s[:i])
	if err != nil {
		return Measure[N]{}, err
	}
	return d.New(v, strings.TrimLeftFunc(s[i:], unicode.IsSpace))
}

// FromKeyword reads a single unit: value pair, the form unit files and
// keyword-style callers use.
func (d *Dimension[N]) FromKeyword(kw map[string]any) (Measure[N], error) {
	if len(kw) != 1 {
		return Measure[N]{}, errors.NewInvalidValueError("%s: expected exactly one unit, got %d", d.Name(), len(kw))
	}
	var (
		unitName string
		value    any
	)
	for k, v := range kw {
		unitName, value = k, v
	}
	return d.Of(unitName, value)
}

// Reference returns value in the reference unit.
func (d *Dimension[N]) Reference(value N) (Measure[N], error) {
	return d.New(value, d.reg.ReferenceSymbol())
}

// fromReference returns a measure of d holding ref, written in d's display unit.
func (d *Dimension[N]) fromReference(ref N) (Measure[N], error) {
	if _, err := numeric.Finite(ref); err != nil {
		return Measure[N]{}, errors.Wrap(err, d.Name())
	}
	res, _ := d.reg.Lookup(d.display)
	return Measure[N]{dim: d, ref: ref, unit: d.display, res: res}, nil
}

// Must panics if err is non-nil.
func Must[N numeric.Number[N]](m Measure[N], err error) Measure[N] {
	if err != nil {
		panic(err)
	}
	return m
}
