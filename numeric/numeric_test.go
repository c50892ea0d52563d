package numeric

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/measure/errors"
)

func TestDecimalParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "10", want: "10"},
		{name: "fraction", input: "0.0254", want: "0.0254"},
		{name: "exponent", input: "1E+3", want: "1E+3"},
		{name: "negative exponent", input: "1e-24", want: "1E-24"},
		{name: "surrounding space", input: " 2.5 ", want: "2.5"},
		{name: "garbage", input: "ten", wantErr: true},
		{name: "nan", input: "NaN", wantErr: true},
		{name: "infinity", input: "Infinity", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDecimal(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, errors.ErrInvalidValue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDecimalArithmetic(t *testing.T) {
	a := MustDecimal("10")
	b := MustDecimal("0.0254")

	assert.Equal(t, "0.2540", a.Mul(b).String())
	assert.Equal(t, "10.0254", a.Add(b).String())
	assert.Equal(t, "9.9746", a.Sub(b).String())
	assert.Equal(t, "-10", a.Neg().String())
	assert.Equal(t, "10", a.Neg().Abs().String())
	assert.Equal(t, "1000", a.Pow(3).String())
	assert.Equal(t, "1", a.Pow(0).String())
}

func TestDecimalQuoReducesExactResults(t *testing.T) {
	tests := []struct {
		x, y string
		want string
	}{
		{"10", "10", "1"},
		{"1E+3", "1E+3", "1"},
		{"1E+4", "10", "1E+3"},
		{"100", "1E-3", "1.00E+5"},
		{"1000", "1", "1000"},
		{"1", "4", "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.x+"/"+tt.y, func(t *testing.T) {
			got, err := MustDecimal(tt.x).Quo(MustDecimal(tt.y))
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(MustDecimal(tt.want)), "got %s", got)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDecimalQuoInexact(t *testing.T) {
	got, err := MustDecimal("1").Quo(MustDecimal("3"))
	require.NoError(t, err)
	assert.Equal(t, "0.3333333333333333333333333333333333", got.String())
}

func TestDecimalQuoByZero(t *testing.T) {
	_, err := MustDecimal("1").Quo(Decimal{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestDecimalZeroValue(t *testing.T) {
	var d Decimal
	assert.True(t, d.IsZero())
	assert.Equal(t, 0, d.Sign())
	assert.Equal(t, "0", d.String())
	assert.Equal(t, "2", d.Add(MustDecimal("2")).String())
}

func TestDecimalFormat(t *testing.T) {
	third, err := MustDecimal("1").Quo(MustDecimal("3"))
	require.NoError(t, err)

	assert.Equal(t, "0.333", fmt.Sprintf("%5.3f", third))
	assert.Equal(t, "0.667", fmt.Sprintf("%.3f", third.Add(third)))
	assert.Equal(t, "  2.50", fmt.Sprintf("%6.2f", MustDecimal("2.5")))
	assert.Equal(t, "1E+3", fmt.Sprintf("%v", MustDecimal("1E+3")))
	assert.Equal(t, "1000", fmt.Sprintf("%f", MustDecimal("1E+3")))
	assert.Equal(t, "%!x(numeric.Decimal=1)", fmt.Sprintf("%x", MustDecimal("1")))
}

func TestDecimalFromFloat(t *testing.T) {
	d, err := Decimal{}.FromFloat(0.1)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Cmp(MustDecimal("0.1")))

	d, err = Decimal{}.FromFloat(1e6)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Cmp(MustDecimal("1000000")))
}

func TestDecimalTextRoundTrip(t *testing.T) {
	want := MustDecimal("3.0857E+16")
	b, err := want.MarshalText()
	require.NoError(t, err)

	var got Decimal
	require.NoError(t, got.UnmarshalText(b))
	assert.Equal(t, 0, want.Cmp(got))
}

func TestFloat(t *testing.T) {
	f, err := Parse[Float]("0.5")
	require.NoError(t, err)
	assert.Equal(t, Float(0.5), f)

	q, err := Float(1).Quo(Float(4))
	require.NoError(t, err)
	assert.Equal(t, Float(0.25), q)

	_, err = Float(1).Quo(0)
	assert.True(t, errors.Is(err, ErrDivisionByZero))

	_, err = Parse[Float]("Inf")
	assert.Error(t, err)

	assert.Equal(t, "0.333", fmt.Sprintf("%.3f", Float(1.0/3)))
	assert.Equal(t, "2.5", fmt.Sprint(Float(2.5)))
	assert.Equal(t, Float(8), Float(2).Pow(3))
}

func TestOf(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{name: "int", input: 2000, want: "2000"},
		{name: "int64", input: int64(-7), want: "-7"},
		{name: "float", input: 1.5, want: "1.5"},
		{name: "string", input: "1.609344", want: "1.609344"},
		{name: "decimal", input: MustDecimal("8368"), want: "8368"},
		{name: "bool", input: true, wantErr: true},
		{name: "nil", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Of[Decimal](tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(MustDecimal(tt.want)), "got %s", got)
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric[Decimal](2))
	assert.True(t, IsNumeric[Decimal](MustDecimal("2")))
	assert.True(t, IsNumeric[Float](Float(2)))
	assert.False(t, IsNumeric[Decimal]("2"))
	assert.False(t, IsNumeric[Decimal](struct{}{}))
}

func TestRatio(t *testing.T) {
	kph := MustRatio[Decimal]("1", "3.6")
	assert.True(t, kph.Mul(MustDecimal("3.6")).Sub(One[Decimal]()).Abs().Cmp(MustDecimal("1E-30")) < 0)

	_, err := Ratio[Decimal]("1", "0")
	assert.Error(t, err)
}

func TestOverflowIsNotFinite(t *testing.T) {
	huge := MustDecimal("9E+99990")

	var product Decimal
	assert.NotPanics(t, func() { product = huge.Mul(MustDecimal("1E+24")) })
	assert.False(t, product.IsFinite())
	assert.False(t, product.Add(MustDecimal("1")).IsFinite())
	assert.False(t, huge.Pow(2).IsFinite())
	assert.True(t, huge.IsFinite())
	assert.True(t, Decimal{}.IsFinite())

	_, err := Finite(product)
	assert.True(t, errors.Is(err, errors.ErrInvalidValue))

	_, err = huge.Quo(MustDecimal("1E-20"))
	assert.True(t, errors.Is(err, errors.ErrInvalidValue))

	_, err = product.Quo(MustDecimal("2"))
	assert.True(t, errors.Is(err, errors.ErrInvalidValue))

	f := Float(1e300)
	assert.False(t, f.Mul(1e10).IsFinite())
	assert.True(t, f.IsFinite())

	_, err = Finite(f.Mul(1e10))
	assert.True(t, errors.Is(err, errors.ErrInvalidValue))

	_, err = f.Quo(1e-10)
	assert.True(t, errors.Is(err, errors.ErrInvalidValue))

	v, err := Finite(f)
	require.NoError(t, err)
	assert.Equal(t, f, v)
}
