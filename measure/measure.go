package measure

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/numeric"
	"github.com/teranos/measure/registry"
	"github.com/teranos/measure/unit"
)

// Measure is an amount of some dimension. It stores the amount in the
// dimension's reference unit and remembers the unit it was written in,
// which it uses for rendering and as the unit of same-dimension results.
//
// Measures are values: every operation returns a new one. The zero Measure
// belongs to no dimension and is only useful as an error return.
type Measure[N numeric.Number[N]] struct {
	dim  *Dimension[N]
	ref  N
	unit string
	res  registry.Resolved[N]
}

// Dimension returns the measure's dimension.
func (m Measure[N]) Dimension() *Dimension[N] { return m.dim }

// Reference returns the amount in the reference unit.
func (m Measure[N]) Reference() N { return m.ref }

// Unit returns the symbol the measure was written in.
func (m Measure[N]) Unit() string { return m.unit }

// UnitName returns the declared name of the unit the measure was written in.
// For km that is metre.
func (m Measure[N]) UnitName() string { return m.res.Name }

// Value returns the amount in the unit the measure was written in.
func (m Measure[N]) Value() N {
	if m.res.Unit == nil {
		return m.ref
	}
	v, err := m.res.Unit.FromReference(m.ref)
	if err != nil {
		// Unit factors are positive, so this cannot divide by zero.
		panic(err)
	}
	return v
}

// In returns the amount in the named unit. An unknown name is reported as
// a *LookupError matching errors.ErrAttributeNotFound.
func (m Measure[N]) In(unitName string) (N, error) {
	return m.lookup(unitName, LookupAttribute)
}

// Get is In for callers that treat a measure as a map from unit to amount.
// An unknown name is reported as a *LookupError matching errors.ErrKeyNotFound.
func (m Measure[N]) Get(key string) (N, error) {
	return m.lookup(key, LookupKey)
}

func (m Measure[N]) lookup(name string, kind LookupKind) (N, error) {
	var zero N
	if m.dim == nil {
		return zero, &LookupError{Dimension: "Measure", Unit: name, Kind: kind}
	}
	res, _, err := m.dim.Resolve(name)
	if err != nil {
		return zero, &LookupError{Dimension: m.dim.Name(), Unit: name, Kind: kind}
	}
	return res.Unit.FromReference(m.ref)
}

// Convert returns the same amount written in another unit.
func (m Measure[N]) Convert(unitName string) (Measure[N], error) {
	if m.dim == nil {
		return Measure[N]{}, &LookupError{Dimension: "Measure", Unit: unitName, Kind: LookupUnit}
	}
	res, symbol, err := m.dim.Resolve(unitName)
	if err != nil {
		return Measure[N]{}, err
	}
	return Measure[N]{dim: m.dim, ref: m.ref, unit: symbol, res: res}, nil
}

// IsZero reports whether the amount is exactly zero in the reference unit.
func (m Measure[N]) IsZero() bool { return m.ref.IsZero() }

// String renders "<amount> <unit>" in the unit the measure was written in.
func (m Measure[N]) String() string {
	if m.dim == nil {
		return "<nil>"
	}
	if m.unit == "" {
		return m.Value().String()
	}
	return m.Value().String() + " " + m.unit
}

// GoString renders the declared unit name and the amount in that unit,
// e.g. Distance(metre="1E+3") for one kilometre.
func (m Measure[N]) GoString() string {
	if m.dim == nil {
		return "Measure(nil)"
	}
	v := m.ref
	if e, ok := m.dim.reg.Unit(m.res.Name); ok {
		v, _ = e.Unit.FromReference(m.ref)
	}
	return fmt.Sprintf("%s(%s=%q)", m.dim.Name(), m.res.Name, v.String())
}

// Format implements fmt.Formatter. The verb, width and precision apply to
// the amount; the unit symbol is appended after a space. %#v prints GoString.
func (m Measure[N]) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('#') {
		_, _ = io.WriteString(s, m.GoString())
		return
	}
	if m.dim == nil {
		_, _ = io.WriteString(s, "<nil>")
		return
	}
	fmt.Fprintf(s, fmt.FormatString(s, verb), m.Value())
	if m.unit != "" {
		_, _ = io.WriteString(s, " "+m.unit)
	}
}

type measureJSON struct {
	Dimension string `json:"dimension"`
	Value     string `json:"value"`
	Unit      string `json:"unit"`
	Reference string `json:"reference"`
}

// MarshalJSON writes the dimension, the amount as a decimal string, the
// unit it is written in and the amount in the reference unit.
func (m Measure[N]) MarshalJSON() ([]byte, error) {
	if m.dim == nil {
		return []byte("null"), nil
	}
	return json.Marshal(measureJSON{
		Dimension: m.dim.Name(),
		Value:     m.Value().String(),
		Unit:      m.unit,
		Reference: m.ref.String() + " " + m.dim.reg.ReferenceSymbol(),
	})
}

// Compare orders m against o by reference amount. The second result is
// false when the two belong to different dimensions and cannot be ordered.
func (m Measure[N]) Compare(o Measure[N]) (int, bool) {
	if m.dim == nil || m.dim != o.dim {
		return 0, false
	}
	return m.ref.Cmp(o.ref), true
}

// Equal reports whether m and o are the same amount of the same dimension.
func (m Measure[N]) Equal(o Measure[N]) bool {
	c, ok := m.Compare(o)
	return ok && c == 0
}

// Less reports whether m is smaller than o. It is false for measures of
// different dimensions.
func (m Measure[N]) Less(o Measure[N]) bool {
	c, ok := m.Compare(o)
	return ok && c < 0
}

// Greater reports whether m is larger than o. It is false for measures of
// different dimensions.
func (m Measure[N]) Greater(o Measure[N]) bool {
	c, ok := m.Compare(o)
	return ok && c > 0
}

// linear reports whether the measure's unit is a pure scale factor.
// Arithmetic on affine units happens in the unit itself, so 20 °C × 2 is
// 40 °C rather than twice the absolute temperature.
func (m Measure[N]) linear() bool {
	_, _, ok := unit.Parts(m.res.Unit)
	return ok
}

// withValue returns a measure in m's unit holding v expressed in that unit.
func (m Measure[N]) withValue(v N) (Measure[N], error) {
	ref, err := m.res.Unit.ToReference(v)
	if err != nil {
		return Measure[N]{}, errors.Wrap(err, m.dim.Name())
	}
	return Measure[N]{dim: m.dim, ref: ref, unit: m.unit, res: m.res}, nil
}

// withRef returns a measure in m's unit holding ref in the reference unit.
func (m Measure[N]) withRef(ref N) (Measure[N], error) {
	if _, err := numeric.Finite(ref); err != nil {
		return Measure[N]{}, errors.Wrap(err, m.dim.Name())
	}
	return Measure[N]{dim: m.dim, ref: ref, unit: m.unit, res: m.res}, nil
}
