package measure

import (
	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/numeric"
)

type pair[N numeric.Number[N]] struct {
	a, b *Dimension[N]
}

type power[N numeric.Number[N]] struct {
	base *Dimension[N]
	exp  int
}

// Algebra is the table of cross-dimension relationships: which products,
// quotients and powers are defined and which dimension each one yields.
// Only declared relationships exist; there is no general dimensional
// analysis. An Algebra is filled in once while a catalog is built and only
// read afterwards.
type Algebra[N numeric.Number[N]] struct {
	products  map[pair[N]]*Dimension[N]
	quotients map[pair[N]]*Dimension[N]
	powers    map[power[N]]*Dimension[N]
	unitless  *Dimension[N]
}

// NewAlgebra returns an empty table.
func NewAlgebra[N numeric.Number[N]]() *Algebra[N] {
	return &Algebra[N]{
		products:  make(map[pair[N]]*Dimension[N]),
		quotients: make(map[pair[N]]*Dimension[N]),
		powers:    make(map[power[N]]*Dimension[N]),
	}
}

// Product declares a × b = result.
func (al *Algebra[N]) Product(a, b, result *Dimension[N]) error {
	return declare(al.products, pair[N]{a, b}, result, "×")
}

// Quotient declares a ÷ b = result.
func (al *Algebra[N]) Quotient(a, b, result *Dimension[N]) error {
	return declare(al.quotients, pair[N]{a, b}, result, "÷")
}

// Power declares base^exp = result.
func (al *Algebra[N]) Power(base *Dimension[N], exp int, result *Dimension[N]) error {
	k := power[N]{base, exp}
	if prev, ok := al.powers[k]; ok && prev != result {
		return errors.Newf("%s^%d already yields %s", base.Name(), exp, prev.Name())
	}
	al.powers[k] = result
	return nil
}

// Dimensionless declares the dimension that same-dimension quotients yield.
func (al *Algebra[N]) Dimensionless(d *Dimension[N]) {
	al.unitless = d
}

// Unitless returns the dimension declared with Dimensionless, or nil.
func (al *Algebra[N]) Unitless() *Dimension[N] {
	if al == nil {
		return nil
	}
	return al.unitless
}

// ProductOf returns the dimension a × b yields.
func (al *Algebra[N]) ProductOf(a, b *Dimension[N]) (*Dimension[N], bool) {
	if al == nil {
		return nil, false
	}
	d, ok := al.products[pair[N]{a, b}]
	return d, ok
}

// QuotientOf returns the dimension a ÷ b yields.
func (al *Algebra[N]) QuotientOf(a, b *Dimension[N]) (*Dimension[N], bool) {
	if al == nil {
		return nil, false
	}
	d, ok := al.quotients[pair[N]{a, b}]
	return d, ok
}

// PowerOf returns the dimension base^exp yields.
func (al *Algebra[N]) PowerOf(base *Dimension[N], exp int) (*Dimension[N], bool) {
	if al == nil {
		return nil, false
	}
	d, ok := al.powers[power[N]{base, exp}]
	return d, ok
}

// Relation is one declared relationship, for documentation.
type Relation struct {
	Left     string
	Op       string
	Right    string
	Result   string
	Exponent int
}

// Relations lists what the table declares, products first. Order within
// each group is unspecified.
func (al *Algebra[N]) Relations() []Relation {
	var out []Relation
	for k, r := range al.products {
		out = append(out, Relation{Left: k.a.Name(), Op: "×", Right: k.b.Name(), Result: r.Name()})
	}
	for k, r := range al.quotients {
		out = append(out, Relation{Left: k.a.Name(), Op: "÷", Right: k.b.Name(), Result: r.Name()})
	}
	for k, r := range al.powers {
		out = append(out, Relation{Left: k.base.Name(), Op: "^", Result: r.Name(), Exponent: k.exp})
	}
	return out
}

func declare[N numeric.Number[N]](m map[pair[N]]*Dimension[N], k pair[N], result *Dimension[N], op string) error {
	if prev, ok := m[k]; ok && prev != result {
		return errors.Newf("%s %s %s already yields %s", k.a.Name(), op, k.b.Name(), prev.Name())
	}
	m[k] = result
	return nil
}
