package measures

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/measure"
	"github.com/teranos/measure/numeric"
	"github.com/teranos/measure/registry"
	"github.com/teranos/measure/unit"
)

type D = numeric.Decimal

func dec(s string) D { return numeric.MustDecimal(s) }

func near(t *testing.T, want, got D, tolerance string) {
	t.Helper()
	assert.True(t, got.Sub(want).Abs().Cmp(dec(tolerance)) <= 0, "want %s, got %s", want, got)
}

func TestDistanceMileInKilometres(t *testing.T) {
	c := Exact()
	mile := measure.Must(c.Distance.Of("mi", 1))
	km := measure.Must(c.Distance.Of("km", "1.609344"))

	a, err := mile.In("km")
	require.NoError(t, err)
	b, err := km.In("km")
	require.NoError(t, err)
	assert.Equal(t, 0, a.Cmp(b))
	assert.True(t, mile.Equal(km))
}

func TestDietaryCalories(t *testing.T) {
	c := Exact()
	calories := measure.Must(c.Energy.FromKeyword(map[string]any{"Calorie": 2000}))
	kilojoules := measure.Must(c.Energy.FromKeyword(map[string]any{"kJ": 8368}))
	assert.Equal(t, 0, calories.Reference().Cmp(kilojoules.Reference()))

	kcal := measure.Must(c.Energy.Of("kcal", 1))
	assert.True(t, kcal.Equal(measure.Must(c.Energy.Of("Calorie", 1))))
}

func TestSpeedSpellings(t *testing.T) {
	c := Exact()

	mph := measure.Must(c.Speed.Of("mile_per_hour", 10))
	mih := measure.Must(c.Speed.Of("mi__h", 10))
	assert.True(t, mph.Equal(mih), "%v != %v", mph, mih)

	ms := measure.Must(c.Speed.Parse("10 m/s"))
	kmh := measure.Must(c.Speed.Parse("36 km/h"))
	assert.True(t, ms.Equal(kmh))
	assert.True(t, kmh.Equal(measure.Must(c.Speed.Of("kph", 36))))

	knot := measure.Must(c.Speed.Of("kn", 1))
	nmh := measure.Must(c.Speed.Of("nautical_mile__hour", 1))
	assert.True(t, knot.Equal(nmh))
}

func TestTemperatureScales(t *testing.T) {
	c := Exact()
	fahrenheit := measure.Must(c.Temperature.FromKeyword(map[string]any{"fahrenheit": 70}))
	celsius := measure.Must(c.Temperature.FromKeyword(map[string]any{"celsius": "21.1111111"}))

	fk, err := fahrenheit.In("kelvin")
	require.NoError(t, err)
	ck, err := celsius.In("K")
	require.NoError(t, err)
	near(t, fk, ck, "1e-6")

	f, err := celsius.In("fahrenheit")
	require.NoError(t, err)
	near(t, dec("70"), f, "1e-6")

	boiling := measure.Must(c.Temperature.Parse("100 CELSIUS"))
	r, err := boiling.In("°R")
	require.NoError(t, err)
	near(t, dec("671.67"), r, "1e-28")
}

func TestDistanceFourthPowerIsNotSupported(t *testing.T) {
	c := Exact()
	_, err := measure.Must(c.Distance.Of("m", 1)).Pow(4)
	require.Error(t, err)
	assert.True(t, errors.IsNotSupportedError(err))
	assert.False(t, errors.IsTypeMismatchError(err))
}

func TestMissingKeyNamesDimension(t *testing.T) {
	c := Exact()
	_, err := measure.Must(c.Distance.Of("m", 1)).Get("does not exist")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrKeyNotFound))
	assert.Contains(t, err.Error(), "Distance")
	assert.Contains(t, err.Error(), "does not exist")
}

func TestFrequencyTimesTime(t *testing.T) {
	c := Exact()
	hz := measure.Must(c.Frequency.Parse("60 Hz"))
	s := measure.Must(c.Time.Parse("2 s"))

	for _, got := range []measure.Measure[D]{
		measure.Must(hz.Mul(s)),
		measure.Must(s.Mul(hz)),
	} {
		assert.Same(t, c.Dimensionless, got.Dimension())
		assert.Equal(t, 0, got.Value().Cmp(dec("120")))
		assert.Equal(t, "120", got.String())
	}

	doubled := measure.Must(hz.Mul(2))
	assert.True(t, doubled.Equal(measure.Must(c.Frequency.Parse("120 Hz"))))
}

func TestDeclaredAlgebra(t *testing.T) {
	c := Exact()
	p := func(d *measure.Dimension[D], s string) measure.Measure[D] {
		return measure.Must(d.Parse(s))
	}

	tests := []struct {
		name string
		got  func() (measure.Measure[D], error)
		want string
	}{
		{"distance squared by product", func() (measure.Measure[D], error) {
			return p(c.Distance, "2 m").Mul(p(c.Distance, "3 m"))
		}, `Area(metre²="6")`},
		{"distance times area", func() (measure.Measure[D], error) {
			return p(c.Distance, "2 m").Mul(p(c.Area, "6 m²"))
		}, `Volume(metre³="12")`},
		{"area times distance", func() (measure.Measure[D], error) {
			return p(c.Area, "6 m²").Mul(p(c.Distance, "2 m"))
		}, `Volume(metre³="12")`},
		{"area over distance", func() (measure.Measure[D], error) {
			return p(c.Area, "6 m²").Quo(p(c.Distance, "2 m"))
		}, `Distance(metre="3")`},
		{"volume over area", func() (measure.Measure[D], error) {
			return p(c.Volume, "12 m³").Quo(p(c.Area, "6 m²"))
		}, `Distance(metre="2")`},
		{"volume over distance", func() (measure.Measure[D], error) {
			return p(c.Volume, "12 m³").Quo(p(c.Distance, "6 m"))
		}, `Area(metre²="2")`},
		{"distance squared", func() (measure.Measure[D], error) {
			return p(c.Distance, "2 m").Pow(2)
		}, `Area(metre²="4")`},
		{"distance cubed", func() (measure.Measure[D], error) {
			return p(c.Distance, "2 m").Pow(3)
		}, `Volume(metre³="8")`},
		{"power over voltage", func() (measure.Measure[D], error) {
			return p(c.ElectricPower, "24 W").Quo(p(c.Voltage, "12 V"))
		}, `Current(ampere="2")`},
		{"power over current", func() (measure.Measure[D], error) {
			return p(c.ElectricPower, "24 W").Quo(p(c.Current, "4 A"))
		}, `Voltage(volt="6")`},
		{"current times voltage", func() (measure.Measure[D], error) {
			return p(c.Current, "2 A").Mul(p(c.Voltage, "12 V"))
		}, `ElectricPower(watt="24")`},
		{"voltage times current", func() (measure.Measure[D], error) {
			return p(c.Voltage, "12 V").Mul(p(c.Current, "2 A"))
		}, `ElectricPower(watt="24")`},
		{"ohm's law", func() (measure.Measure[D], error) {
			return p(c.Voltage, "12 V").Quo(p(c.Current, "4 A"))
		}, `Resistance(ohm="3")`},
		{"voltage over resistance", func() (measure.Measure[D], error) {
			return p(c.Voltage, "12 V").Quo(p(c.Resistance, "3 Ω"))
		}, `Current(ampere="4")`},
		{"speed times time", func() (measure.Measure[D], error) {
			return p(c.Speed, "10 m/s").Mul(p(c.Time, "3 s"))
		}, `Distance(metre="30")`},
		{"distance over speed", func() (measure.Measure[D], error) {
			return p(c.Distance, "30 m").Quo(p(c.Speed, "10 m/s"))
		}, `Time(second="3")`},
		{"volume over time", func() (measure.Measure[D], error) {
			return p(c.Volume, "6 m³").Quo(p(c.Time, "2 s"))
		}, `VolumetricFlowRate(metre³/second="3")`},
		{"energy over time", func() (measure.Measure[D], error) {
			return p(c.Energy, "60 J").Quo(p(c.Time, "1 min"))
		}, `ElectricPower(watt="1")`},
		{"power times time", func() (measure.Measure[D], error) {
			return p(c.ElectricPower, "2 W").Mul(p(c.Time, "3 s"))
		}, `Energy(joule="6")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.GoString())
		})
	}
}

func TestKilowattHour(t *testing.T) {
	c := Exact()
	e := measure.Must(measure.Must(c.ElectricPower.Parse("1 kW")).Mul(measure.Must(c.Time.Parse("1 h"))))
	kwh, err := e.In("kWh")
	require.NoError(t, err)
	assert.Equal(t, 0, kwh.Cmp(dec("1")))
}

func TestUndeclaredProductIsTypeMismatch(t *testing.T) {
	c := Exact()
	_, err := measure.Must(c.Mass.Parse("1 kg")).Mul(measure.Must(c.Mass.Parse("1 kg")))
	require.Error(t, err)
	assert.True(t, errors.IsTypeMismatchError(err))
	assert.Equal(t, "can't multiply type 'Mass' and 'Mass'", err.Error())
}

func TestPressureAndRadioactivity(t *testing.T) {
	c := Exact()

	bar := measure.Must(c.Pressure.FromKeyword(map[string]any{"bar": 2}))
	atm := measure.Must(c.Pressure.FromKeyword(map[string]any{"atm": "1.973846533432"}))
	bp, err := bar.In("Pa")
	require.NoError(t, err)
	ap, err := atm.In("pa")
	require.NoError(t, err)
	near(t, bp, ap, "1e-6")

	torr, err := bar.In("torr")
	require.NoError(t, err)
	near(t, dec("1500.1275108384"), torr, "1e-9")

	kpa, err := bar.In("kPa")
	require.NoError(t, err)
	assert.Equal(t, 0, kpa.Cmp(dec("200")))

	bq := measure.Must(c.Radioactivity.FromKeyword(map[string]any{"Bq": 2}))
	ci, err := bq.In("Ci")
	require.NoError(t, err)
	near(t, dec("5.4054054054054E-11"), ci, "1e-23")
}

func TestMetricPrefixFactors(t *testing.T) {
	c := Exact()
	tests := []struct {
		dim    *measure.Dimension[D]
		symbol string
		ref    string
	}{
		{c.Distance, "km", "1000"},
		{c.Distance, "kilometre", "1000"},
		{c.Distance, "Kilometer", "1000"},
		{c.Distance, "mm", "0.001"},
		{c.Distance, "μm", "0.000001"},
		{c.Distance, "um", "0.000001"},
		{c.Mass, "kg", "1000"},
		{c.Volume, "mL", "0.000001"},
		{c.Energy, "kcal", "4184"},
		{c.Energy, "MeV", "1.602176634E-13"},
		{c.Time, "ms", "0.001"},
		{c.ElectricPower, "kVA", "1000"},
		{c.Frequency, "GHz", "1000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			m := measure.Must(tt.dim.Of(tt.symbol, 1))
			assert.Equal(t, 0, m.Reference().Cmp(dec(tt.ref)), "got %s", m.Reference())
		})
	}
}

func TestAliasesAgree(t *testing.T) {
	c := Exact()
	groups := []struct {
		dim     *measure.Dimension[D]
		symbols []string
	}{
		{c.Distance, []string{"m", "metre", "meter", "Metre"}},
		{c.Distance, []string{"ft", "foot", "feet"}},
		{c.Area, []string{"hectare", "ha", "sq_hm", "square hectometre"}},
		{c.Volume, []string{"L", "l", "litre", "liter", "cubic_dm"}},
		{c.Mass, []string{"lb", "pound", "lbs"}},
		{c.VolumetricFlowRate, []string{"cfs", "CFS", "cubic_foot__s", "cu ft/s"}},
		{c.Temperature, []string{"°C", "celsius", "Celsius", "CELSIUS"}},
	}
	for _, g := range groups {
		first := measure.Must(g.dim.Of(g.symbols[0], 7))
		for _, s := range g.symbols[1:] {
			m, err := g.dim.Of(s, 7)
			require.NoError(t, err, s)
			assert.True(t, first.Equal(m), "%s: %v != %v", s, first, m)
		}
	}
}

func TestEverySymbolRoundTrips(t *testing.T) {
	c := Exact()
	x := dec("12.5")
	for _, d := range c.Dimensions() {
		t.Run(d.Name(), func(t *testing.T) {
			for _, s := range d.Registry().Symbols() {
				m, err := d.New(x, s)
				require.NoError(t, err, s)
				got, err := m.In(s)
				require.NoError(t, err, s)
				if got.Sub(x).Abs().Cmp(dec("1e-25")) > 0 {
					t.Fatalf("%s: 12.5 came back as %s", s, got)
				}
			}
		})
	}
}

func TestDimensions(t *testing.T) {
	c := Exact()
	var names []string
	for _, d := range c.Dimensions() {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{
		"Distance", "Area", "Volume", "Mass", "Time", "Speed", "VolumetricFlowRate",
		"Pressure", "Temperature", "Energy", "ElectricPower", "Frequency",
		"Capacitance", "Current", "Resistance", "Voltage", "Inductance",
		"Radioactivity", "Dimensionless",
	}, names)

	d, ok := c.Dimension("Speed")
	require.True(t, ok)
	assert.Same(t, c.Speed, d)
	_, ok = c.Dimension("Luminosity")
	assert.False(t, ok)

	assert.Len(t, c.Algebra().Relations(), 29)
	assert.Same(t, c, Exact())
}

func TestExtraUnits(t *testing.T) {
	furlong := registry.Entry[D]{Name: "furlong", Unit: unit.MustNew[D]("201.168", "fur")}
	c, err := NewCatalog(WithExtraUnits("Distance", furlong))
	require.NoError(t, err)

	m := measure.Must(c.Distance.Of("fur", 1))
	assert.Equal(t, 0, m.Reference().Cmp(dec("201.168")))
	assert.True(t, c.Speed.Accepts("fur/h"))
	assert.True(t, c.Area.Accepts("sq_fur"))

	clash := registry.Entry[D]{Name: "kilofoot", Unit: unit.MustNew[D]("304.8", "km")}
	_, err = NewCatalog(WithExtraUnits("Distance", clash))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDuplicateSymbol))

	_, err = NewCatalog(WithExtraUnits("Luminosity", furlong))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Luminosity")
}

func TestApproxCatalog(t *testing.T) {
	c := Approx()
	mile := measure.Must(c.Distance.Of("mi", 1))
	km, err := mile.In("km")
	require.NoError(t, err)
	assert.InDelta(t, 1.609344, km.Float64(), 1e-12)

	f := measure.Must(c.Temperature.Of("fahrenheit", 70))
	k, err := f.In("K")
	require.NoError(t, err)
	assert.InDelta(t, 294.261111, k.Float64(), 1e-5)
}

func TestHugeValuesAreInvalid(t *testing.T) {
	_, err := Exact().Distance.Parse("9E+99990 Ym")
	assert.True(t, errors.Is(err, errors.ErrInvalidValue), "got %v", err)

	_, err = Approx().Distance.Parse("1e300 Ym")
	assert.True(t, errors.Is(err, errors.ErrInvalidValue), "got %v", err)

	_, err = Approx().Energy.Of("kWh", 1e305)
	assert.True(t, errors.Is(err, errors.ErrInvalidValue), "got %v", err)
}

func TestConcurrentReaders(t *testing.T) {
	c := Exact()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := c.Speed.Parse("36 km/h")
			assert.NoError(t, err)
			v, err := m.In("m/s")
			assert.NoError(t, err)
			assert.Equal(t, 0, v.Cmp(dec("10")))
		}()
	}
	wg.Wait()
}

func TestComposedOf(t *testing.T) {
	c := Exact()
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"Speed", "Distance/Time", true},
		{"VolumetricFlowRate", "Volume/Time", true},
		{"Area", "Distance²", true},
		{"Volume", "Distance³", true},
		{"Mass", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.ComposedOf(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
