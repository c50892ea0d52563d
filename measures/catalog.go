// Package measures declares the dimensions the module ships with and the
// algebra that relates them.
//
// A Catalog is built once and is read-only afterwards. Two ready-made
// catalogs are provided: Exact, over numeric.Decimal, and Approx, over
// numeric.Float. Both are built on first use.
//
//	d := measures.Exact().Distance
//	m, err := d.Parse("26.2 mi")
//	km, err := m.In("km")
package measures

import (
	"fmt"
	"sort"
	"sync"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/logger"
	"github.com/teranos/measure/measure"
	"github.com/teranos/measure/numeric"
	"github.com/teranos/measure/registry"
)

// Catalog holds every declared dimension and the algebra between them.
type Catalog[N numeric.Number[N]] struct {
	Distance           *measure.Dimension[N]
	Area               *measure.Dimension[N]
	Volume             *measure.Dimension[N]
	Mass               *measure.Dimension[N]
	Time               *measure.Dimension[N]
	Speed              *measure.Dimension[N]
	VolumetricFlowRate *measure.Dimension[N]
	Pressure           *measure.Dimension[N]
	Temperature        *measure.Dimension[N]
	Energy             *measure.Dimension[N]
	ElectricPower      *measure.Dimension[N]
	Frequency          *measure.Dimension[N]
	Capacitance        *measure.Dimension[N]
	Current            *measure.Dimension[N]
	Resistance         *measure.Dimension[N]
	Voltage            *measure.Dimension[N]
	Inductance         *measure.Dimension[N]
	Radioactivity      *measure.Dimension[N]
	Dimensionless      *measure.Dimension[N]

	algebra  *measure.Algebra[N]
	dims     []*measure.Dimension[N]
	composed map[string]string
}

// Exact is the catalog over exact decimals.
var Exact = sync.OnceValue(func() *Catalog[numeric.Decimal] {
	return Must(NewCatalog[numeric.Decimal]())
})

// Approx is the catalog over float64.
var Approx = sync.OnceValue(func() *Catalog[numeric.Float] {
	return Must(NewCatalog[numeric.Float]())
})

type settings[N numeric.Number[N]] struct {
	extras map[string][]registry.Entry[N]
}

// Option configures NewCatalog.
type Option[N numeric.Number[N]] func(*settings[N])

// WithExtraUnits declares additional units on the named dimension. They are
// added after the built-in units under the same collision rules, so a clash
// makes NewCatalog fail with errors.ErrDuplicateSymbol.
func WithExtraUnits[N numeric.Number[N]](dimension string, entries ...registry.Entry[N]) Option[N] {
	return func(s *settings[N]) {
		s.extras[dimension] = append(s.extras[dimension], entries...)
	}
}

// NewCatalog declares every dimension, in dependency order, and their algebra.
func NewCatalog[N numeric.Number[N]](opts ...Option[N]) (*Catalog[N], error) {
	s := settings[N]{extras: make(map[string][]registry.Entry[N])}
	for _, opt := range opts {
		opt(&s)
	}

	b := &builder[N]{al: measure.NewAlgebra[N](), extras: s.extras, composed: make(map[string]string)}
	c := &Catalog[N]{algebra: b.al}

	ratio := measure.WithTranslator[N](measure.Chain(measure.RatioShorthand, measure.Underscores))

	c.Distance = b.base("Distance", "metre", distanceUnits[N]())
	c.Area = b.power("Area", c.Distance, 2, areaExtras[N](),
		measure.WithTranslator[N](measure.Chain(
			measure.PowerPrefix(2, "sq_", "sq ", "square_", "square "), measure.Underscores)))
	c.Volume = b.power("Volume", c.Distance, 3, volumeExtras[N](),
		measure.WithTranslator[N](measure.Chain(
			measure.PowerPrefix(3, "cubic_", "cubic "), measure.Underscores)))
	c.Mass = b.base("Mass", "gram", massUnits[N]())
	c.Time = b.base("Time", "second", timeUnits[N]())
	c.Speed = b.ratio("Speed", c.Distance, c.Time, speedExtras[N](), ratio)
	c.VolumetricFlowRate = b.ratio("VolumetricFlowRate", c.Volume, c.Time, flowExtras[N](), ratio)
	c.Pressure = b.base("Pressure", "pascal", pressureUnits[N](), registry.WithCaseFold())
	c.Temperature = b.base("Temperature", "kelvin", temperatureUnits[N](), registry.WithCaseFold())
	c.Energy = b.base("Energy", "joule", energyUnits[N]())
	c.ElectricPower = b.base("ElectricPower", "watt", electricPowerUnits[N]())
	c.Frequency = b.base("Frequency", "hertz", frequencyUnits[N](), registry.WithCaseFold())
	c.Capacitance = b.base("Capacitance", "farad", si[N]("farad", "F", "Farad"))
	c.Current = b.base("Current", "ampere", currentUnits[N]())
	c.Resistance = b.base("Resistance", "ohm", si[N]("ohm", "Ω", "Ohm"))
	c.Voltage = b.base("Voltage", "volt", si[N]("volt", "V", "Volt"))
	c.Inductance = b.base("Inductance", "henry", si[N]("henry", "H", "Henry"))
	c.Radioactivity = b.base("Radioactivity", "becquerel", radioactivityUnits[N](), registry.WithCaseFold())
	c.Dimensionless = b.base("Dimensionless", "one", dimensionlessUnits[N](), measure.WithDisplayUnit[N](""))

	if b.err != nil {
		return nil, b.err
	}
	if len(b.extras) > 0 {
		names := make([]string, 0, len(b.extras))
		for name := range b.extras {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, errors.Newf("extra units for unknown dimensions: %v", names)
	}
	if err := c.relate(); err != nil {
		return nil, err
	}
	c.dims = b.dims
	c.composed = b.composed

	var zero N
	logger.ComponentLogger("catalog").Debugw("catalog built",
		logger.FieldBackend, fmt.Sprintf("%T", zero),
		logger.FieldCount, len(c.dims))
	return c, nil
}

// Must panics if err is non-nil.
func Must[N numeric.Number[N]](c *Catalog[N], err error) *Catalog[N] {
	if err != nil {
		panic(err)
	}
	return c
}

// relate declares the algebra between the catalog's dimensions.
func (c *Catalog[N]) relate() error {
	al := c.algebra
	al.Dimensionless(c.Dimensionless)

	both := func(a, b, result *measure.Dimension[N]) error {
		if err := al.Product(a, b, result); err != nil {
			return err
		}
		return al.Product(b, a, result)
	}

	steps := []func() error{
		func() error { return al.Product(c.Distance, c.Distance, c.Area) },
		func() error { return both(c.Distance, c.Area, c.Volume) },
		func() error { return both(c.Current, c.Voltage, c.ElectricPower) },
		func() error { return both(c.Frequency, c.Time, c.Dimensionless) },
		func() error { return both(c.Speed, c.Time, c.Distance) },
		func() error { return both(c.VolumetricFlowRate, c.Time, c.Volume) },
		func() error { return both(c.ElectricPower, c.Time, c.Energy) },

		func() error { return al.Quotient(c.Area, c.Distance, c.Distance) },
		func() error { return al.Quotient(c.Volume, c.Distance, c.Area) },
		func() error { return al.Quotient(c.Volume, c.Area, c.Distance) },
		func() error { return al.Quotient(c.ElectricPower, c.Voltage, c.Current) },
		func() error { return al.Quotient(c.ElectricPower, c.Current, c.Voltage) },
		func() error { return al.Quotient(c.Distance, c.Time, c.Speed) },
		func() error { return al.Quotient(c.Distance, c.Speed, c.Time) },
		func() error { return al.Quotient(c.Volume, c.Time, c.VolumetricFlowRate) },
		func() error { return al.Quotient(c.Volume, c.VolumetricFlowRate, c.Time) },
		func() error { return al.Quotient(c.Energy, c.Time, c.ElectricPower) },
		func() error { return al.Quotient(c.Energy, c.ElectricPower, c.Time) },
		func() error { return al.Quotient(c.Voltage, c.Current, c.Resistance) },
		func() error { return al.Quotient(c.Voltage, c.Resistance, c.Current) },

		func() error { return al.Power(c.Distance, 2, c.Area) },
		func() error { return al.Power(c.Distance, 3, c.Volume) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return errors.Wrap(err, "declaring dimension algebra")
		}
	}
	return nil
}

// Dimensions returns every dimension in declaration order.
func (c *Catalog[N]) Dimensions() []*measure.Dimension[N] {
	return append([]*measure.Dimension[N](nil), c.dims...)
}

// Dimension returns the dimension with the given name.
func (c *Catalog[N]) Dimension(name string) (*measure.Dimension[N], bool) {
	for _, d := range c.dims {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}

// Algebra returns the table of declared products, quotients and powers.
func (c *Catalog[N]) Algebra() *measure.Algebra[N] { return c.algebra }

// ComposedOf describes how a derived dimension's units are built, e.g.
// "Distance/Time" for Speed or "Distance²" for Area. Base dimensions
// report false.
func (c *Catalog[N]) ComposedOf(name string) (string, bool) {
	s, ok := c.composed[name]
	return s, ok
}

// builder declares dimensions one after another and keeps the first error,
// after which every call is a no-op returning nil.
type builder[N numeric.Number[N]] struct {
	al       *measure.Algebra[N]
	extras   map[string][]registry.Entry[N]
	dims     []*measure.Dimension[N]
	composed map[string]string
	err      error
}

// take returns and forgets the extra units declared for a dimension.
func (b *builder[N]) take(name string) []registry.Entry[N] {
	e := b.extras[name]
	delete(b.extras, name)
	return e
}

// base declares a dimension from its own unit table. opts may mix registry
// options and dimension options.
func (b *builder[N]) base(name, reference string, entries []registry.Entry[N], opts ...any) *measure.Dimension[N] {
	if b.err != nil {
		return nil
	}
	regOpts, dimOpts := split[N](opts)
	entries = append(entries, b.take(name)...)
	reg, err := registry.Build(name, reference, entries, regOpts...)
	return b.declare(reg, err, dimOpts)
}

func (b *builder[N]) ratio(name string, num, den *measure.Dimension[N], extras []registry.Entry[N], opts ...any) *measure.Dimension[N] {
	if b.err != nil {
		return nil
	}
	regOpts, dimOpts := split[N](opts)
	extras = append(extras, b.take(name)...)
	reg, err := registry.Ratio(name, num.Registry(), den.Registry(), extras, regOpts...)
	b.composed[name] = num.Name() + "/" + den.Name()
	return b.declare(reg, err, dimOpts)
}

func (b *builder[N]) power(name string, base *measure.Dimension[N], exp int, extras []registry.Entry[N], opts ...any) *measure.Dimension[N] {
	if b.err != nil {
		return nil
	}
	regOpts, dimOpts := split[N](opts)
	extras = append(extras, b.take(name)...)
	reg, err := registry.Power(name, base.Registry(), exp, extras, regOpts...)
	b.composed[name] = base.Name() + registry.Superscript(exp)
	return b.declare(reg, err, dimOpts)
}

func (b *builder[N]) declare(reg *registry.Registry[N], err error, opts []measure.DimensionOption[N]) *measure.Dimension[N] {
	if err != nil {
		b.err = err
		return nil
	}
	d, err := measure.NewDimension(reg, append(opts, measure.WithAlgebra(b.al))...)
	if err != nil {
		b.err = err
		return nil
	}
	b.dims = append(b.dims, d)
	return d
}

func split[N numeric.Number[N]](opts []any) ([]registry.Option, []measure.DimensionOption[N]) {
	var (
		regOpts []registry.Option
		dimOpts []measure.DimensionOption[N]
	)
	for _, o := range opts {
		switch o := o.(type) {
		case registry.Option:
			regOpts = append(regOpts, o)
		case measure.DimensionOption[N]:
			dimOpts = append(dimOpts, o)
		default:
			panic(fmt.Sprintf("measures: unexpected option %T", o))
		}
	}
	return regOpts, dimOpts
}
