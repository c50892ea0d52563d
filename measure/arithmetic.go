package measure

import (
	"fmt"
	"strconv"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/numeric"
)

// Add returns m + o in m's unit. o must have m's dimension.
func (m Measure[N]) Add(o Measure[N]) (Measure[N], error) {
	if m.dim == nil || m.dim != o.dim {
		return Measure[N]{}, &TypeMismatchError{Op: "add", Left: typeName[N](m), Right: typeName[N](o)}
	}
	if m.linear() {
		return m.withRef(m.ref.Add(o.ref))
	}
	ov, err := m.res.Unit.FromReference(o.ref)
	if err != nil {
		return Measure[N]{}, err
	}
	return m.withValue(m.Value().Add(ov))
}

// Sub returns m - o in m's unit. o must have m's dimension.
func (m Measure[N]) Sub(o Measure[N]) (Measure[N], error) {
	if m.dim == nil || m.dim != o.dim {
		return Measure[N]{}, &TypeMismatchError{Op: "subtract", Left: typeName[N](m), Right: typeName[N](o)}
	}
	if m.linear() {
		return m.withRef(m.ref.Sub(o.ref))
	}
	ov, err := m.res.Unit.FromReference(o.ref)
	if err != nil {
		return Measure[N]{}, err
	}
	return m.withValue(m.Value().Sub(ov))
}

// Scale returns m multiplied by a plain number, in m's unit. A product
// outside the backend's range is an ErrInvalidValue error.
func (m Measure[N]) Scale(k N) (Measure[N], error) {
	if m.dim == nil {
		return Measure[N]{}, &TypeMismatchError{Op: "multiply", Left: typeName[N](m), Right: typeName[N](k)}
	}
	if m.linear() {
		return m.withRef(m.ref.Mul(k))
	}
	return m.withValue(m.Value().Mul(k))
}

// Neg returns -m in m's unit.
func (m Measure[N]) Neg() (Measure[N], error) {
	return m.Scale(numeric.Int[N](-1))
}

// Abs returns m with a non-negative amount in m's unit.
func (m Measure[N]) Abs() (Measure[N], error) {
	if m.dim == nil {
		return Measure[N]{}, &UnsupportedError{Dimension: typeName[N](m), Op: "abs"}
	}
	if m.linear() {
		return m.withRef(m.ref.Abs())
	}
	return m.withValue(m.Value().Abs())
}

// Mul multiplies m by o. o may be a plain number (any Go numeric type or N),
// which scales m, or a Measure whose product with m's dimension is declared,
// which yields a measure of the product dimension in its display unit.
// Anything else is a *TypeMismatchError.
func (m Measure[N]) Mul(o any) (Measure[N], error) {
	mismatch := &TypeMismatchError{Op: "multiply", Left: typeName[N](m), Right: typeName[N](o)}
	if m.dim == nil {
		return Measure[N]{}, mismatch
	}
	if om, ok := asMeasure[N](o); ok {
		if result, ok := m.dim.algebra.ProductOf(m.dim, om.dim); ok {
			return result.fromReference(m.ref.Mul(om.ref))
		}
		if om.dim != nil && om.dim == m.dim.algebra.Unitless() {
			return m.Scale(om.ref)
		}
		return Measure[N]{}, mismatch
	}
	if !numeric.IsNumeric[N](o) {
		return Measure[N]{}, mismatch
	}
	k, err := numeric.Of[N](o)
	if err != nil {
		return Measure[N]{}, err
	}
	return m.Scale(k)
}

// Quo divides m by o. A plain number scales m down. A Measure of the same
// dimension yields their ratio as a dimensionless measure; use Ratio to get
// that ratio as a plain number. A Measure whose quotient with m's dimension
// is declared yields that dimension. Anything else is a *TypeMismatchError.
func (m Measure[N]) Quo(o any) (Measure[N], error) {
	mismatch := &TypeMismatchError{Op: "divide", Left: typeName[N](m), Right: typeName[N](o)}
	if m.dim == nil {
		return Measure[N]{}, mismatch
	}
	if om, ok := asMeasure[N](o); ok {
		if result, ok := m.dim.algebra.QuotientOf(m.dim, om.dim); ok {
			ref, err := m.ref.Quo(om.ref)
			if err != nil {
				return Measure[N]{}, errors.Wrapf(err, "%s / %s", m, om)
			}
			return result.fromReference(ref)
		}
		if om.dim == m.dim {
			unitless := m.dim.algebra.Unitless()
			if unitless == nil {
				return Measure[N]{}, &UnsupportedError{Dimension: m.dim.Name(), Op: "/ " + om.dim.Name() + " without a dimensionless dimension"}
			}
			r, err := m.Ratio(om)
			if err != nil {
				return Measure[N]{}, err
			}
			return unitless.fromReference(r)
		}
		if om.dim != nil && om.dim == m.dim.algebra.Unitless() {
			return m.quoScalar(om.ref)
		}
		return Measure[N]{}, mismatch
	}
	if !numeric.IsNumeric[N](o) {
		return Measure[N]{}, mismatch
	}
	k, err := numeric.Of[N](o)
	if err != nil {
		return Measure[N]{}, err
	}
	return m.quoScalar(k)
}

func (m Measure[N]) quoScalar(k N) (Measure[N], error) {
	if m.linear() {
		ref, err := m.ref.Quo(k)
		if err != nil {
			return Measure[N]{}, errors.Wrapf(err, "%s / %s", m, k)
		}
		return m.withRef(ref)
	}
	v, err := m.Value().Quo(k)
	if err != nil {
		return Measure[N]{}, errors.Wrapf(err, "%s / %s", m, k)
	}
	return m.withValue(v)
}

// Ratio returns m ÷ o as a plain number. o must have m's dimension.
func (m Measure[N]) Ratio(o Measure[N]) (N, error) {
	var zero N
	if m.dim == nil || m.dim != o.dim {
		return zero, &TypeMismatchError{Op: "divide", Left: typeName[N](m), Right: typeName[N](o)}
	}
	r, err := m.ref.Quo(o.ref)
	if err != nil {
		return zero, errors.Wrapf(err, "%s / %s", m, o)
	}
	return r, nil
}

// Pow raises m to an integer power. Only declared powers exist, such as
// Distance² (Area) and Distance³ (Volume); every other exponent is an
// *UnsupportedError.
func (m Measure[N]) Pow(exp int) (Measure[N], error) {
	if m.dim != nil {
		if result, ok := m.dim.algebra.PowerOf(m.dim, exp); ok {
			return result.fromReference(m.ref.Pow(exp))
		}
	}
	return Measure[N]{}, &UnsupportedError{Dimension: typeName[N](m), Op: "** " + strconv.Itoa(exp)}
}

func asMeasure[N numeric.Number[N]](v any) (Measure[N], bool) {
	switch x := v.(type) {
	case Measure[N]:
		return x, true
	case *Measure[N]:
		if x != nil {
			return *x, true
		}
	}
	return Measure[N]{}, false
}

// typeName names an operand the way arithmetic errors report it: the
// dimension for measures, the Go type for everything else.
func typeName[N numeric.Number[N]](v any) string {
	if m, ok := asMeasure[N](v); ok {
		if m.dim == nil {
			return "Measure"
		}
		return m.dim.Name()
	}
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
