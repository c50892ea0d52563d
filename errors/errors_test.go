package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/measure"
	"github.com/teranos/measure/measures"
	"github.com/teranos/measure/numeric"
	"github.com/teranos/measure/registry"
	"github.com/teranos/measure/unit"
)

func TestLookupSentinelsWrapUnknownUnit(t *testing.T) {
	assert.True(t, errors.Is(errors.ErrAttributeNotFound, errors.ErrUnknownUnit))
	assert.True(t, errors.Is(errors.ErrKeyNotFound, errors.ErrUnknownUnit))
	assert.False(t, errors.Is(errors.ErrKeyNotFound, errors.ErrAttributeNotFound))
	assert.False(t, errors.Is(errors.ErrUnknownUnit, errors.ErrKeyNotFound))
}

func TestLookupErrorThroughWrap(t *testing.T) {
	tests := []struct {
		name     string
		kind     measure.LookupKind
		sentinel error
		other    error
	}{
		{name: "unit", kind: measure.LookupUnit, sentinel: errors.ErrUnknownUnit, other: errors.ErrKeyNotFound},
		{name: "attribute", kind: measure.LookupAttribute, sentinel: errors.ErrAttributeNotFound, other: errors.ErrKeyNotFound},
		{name: "key", kind: measure.LookupKey, sentinel: errors.ErrKeyNotFound, other: errors.ErrAttributeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Wrapf(&measure.LookupError{Dimension: "Distance", Unit: "parsnip", Kind: tt.kind},
				"reading %q", "3 parsnip")

			assert.True(t, errors.Is(err, tt.sentinel))
			assert.True(t, errors.IsUnknownUnitError(err))
			assert.False(t, errors.Is(err, tt.other))
			assert.False(t, errors.IsTypeMismatchError(err))

			var lookup *measure.LookupError
			require.True(t, errors.As(err, &lookup))
			assert.Equal(t, "parsnip", lookup.Unit)
			assert.Equal(t, tt.kind, lookup.Kind)

			assert.Equal(t, "unknown unit", errors.UnwrapAll(err).Error())
		})
	}
}

func TestDuplicateSymbolFromBuild(t *testing.T) {
	_, err := registry.Build("Distance", "metre", []registry.Entry[numeric.Decimal]{
		{Name: "metre", Unit: unit.MustNew[numeric.Decimal]("1", "m")},
		{Name: "foot", Unit: unit.MustNew[numeric.Decimal]("0.3048", "ft")},
		{Name: "fathom", Unit: unit.MustNew[numeric.Decimal]("1.8288", "ft")},
	})
	require.Error(t, err)

	wrapped := errors.Wrap(err, "building catalog")
	assert.True(t, errors.Is(wrapped, errors.ErrDuplicateSymbol))
	assert.False(t, errors.IsUnknownUnitError(wrapped))

	var dup *registry.DuplicateSymbolError
	require.True(t, errors.As(wrapped, &dup))
	assert.Equal(t, "ft", dup.Symbol)
	assert.Equal(t, "foot", dup.Existing)
	assert.Equal(t, "fathom", dup.Incoming)
	assert.Contains(t, wrapped.Error(), "building catalog")
}

func TestCatalogErrorsMatchSentinels(t *testing.T) {
	c := measures.Exact()
	metre := measure.Must(c.Distance.Of("m", 1))
	gram := measure.Must(c.Mass.Of("g", 1))

	_, parseErr := c.Distance.Parse("3 parsnips")
	_, inErr := metre.In("parsec")
	_, getErr := metre.Get("parsec")
	_, addErr := metre.Add(gram)
	_, powErr := metre.Pow(4)
	_, guessErr := c.Guess(1, "parsnip")
	_, valueErr := c.Distance.Parse("abc m")
	_, rangeErr := c.Distance.Parse("9E+99990 Ym")

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"unknown unit", parseErr, errors.ErrUnknownUnit},
		{"attribute", inErr, errors.ErrAttributeNotFound},
		{"key", getErr, errors.ErrKeyNotFound},
		{"mismatch", addErr, errors.ErrTypeMismatch},
		{"power", powErr, errors.ErrNotSupported},
		{"guess", guessErr, errors.ErrUnguessable},
		{"literal", valueErr, errors.ErrInvalidValue},
		{"overflow", rangeErr, errors.ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.True(t, errors.Is(tt.err, tt.sentinel), "got %v", tt.err)
		})
	}

	assert.True(t, errors.IsTypeMismatchError(addErr))
	assert.True(t, errors.IsNotSupportedError(powErr))
	assert.False(t, errors.IsUnknownUnitError(guessErr))
	assert.False(t, errors.IsUnknownUnitError(nil))
}

func TestHintOnUnknownUnit(t *testing.T) {
	_, err := measures.Exact().Speed.Parse("10 furlongs/fortnight")
	require.True(t, errors.IsUnknownUnitError(err))

	err = errors.WithHint(err, "run 'measure units Speed' to list accepted spellings")
	err = errors.Wrap(err, "line 3")

	assert.True(t, errors.IsUnknownUnitError(err))
	assert.Equal(t, []string{"run 'measure units Speed' to list accepted spellings"}, errors.GetAllHints(err))
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "furlongs/fortnight")
}

func TestNewInvalidValueError(t *testing.T) {
	err := errors.NewInvalidValueError("cannot parse %q", "1,5")
	assert.True(t, errors.Is(err, errors.ErrInvalidValue))
	assert.False(t, errors.IsUnknownUnitError(err))
	assert.Equal(t, `cannot parse "1,5": invalid value`, err.Error())
}

func ExampleIsUnknownUnitError() {
	_, err := measures.Exact().Distance.Parse("3 parsnips")
	fmt.Println(errors.IsUnknownUnitError(err))
	fmt.Println(err)
	// Output:
	// true
	// unknown unit 'parsnips' for Distance
}

func ExampleWithHint() {
	err := errors.Wrap(errors.ErrUnknownUnit, "failed to resolve 'parsnip'")
	err = errors.WithHint(err, "run 'measure units' to list accepted spellings")

	fmt.Println(err)
	fmt.Println(errors.GetAllHints(err)[0])
	// Output:
	// failed to resolve 'parsnip': unknown unit
	// run 'measure units' to list accepted spellings
}
