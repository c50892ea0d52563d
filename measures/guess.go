package measures

import (
	"fmt"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/logger"
	"github.com/teranos/measure/measure"
	"github.com/teranos/measure/numeric"
)

// GuessError reports a unit no candidate dimension accepted.
type GuessError struct {
	Value any
	Unit  string
}

func (e *GuessError) Error() string {
	return fmt.Sprintf("can't guess measure for '%v %s'", e.Value, e.Unit)
}

// Unwrap returns ErrUnguessable.
func (e *GuessError) Unwrap() error { return errors.ErrUnguessable }

// Guess builds a measure from a value and a unit of unknown dimension by
// trying every dimension of the catalog in declaration order.
func (c *Catalog[N]) Guess(value any, unitName string) (measure.Measure[N], error) {
	return GuessIn(value, unitName, c.dims...)
}

// GuessIn is Guess restricted to the given dimensions, tried in order.
// Only unit-resolution failures move on to the next candidate; any other
// error, such as a value that is not a number, is returned as is.
func GuessIn[N numeric.Number[N]](value any, unitName string, dims ...*measure.Dimension[N]) (measure.Measure[N], error) {
	for _, d := range dims {
		m, err := d.Of(unitName, value)
		if err == nil {
			logger.ComponentLogger("guess").Debugw("unit classified",
				logger.FieldUnit, unitName,
				logger.FieldDimension, d.Name())
			return m, nil
		}
		if !errors.IsUnknownUnitError(err) {
			return measure.Measure[N]{}, err
		}
	}
	return measure.Measure[N]{}, &GuessError{Value: value, Unit: unitName}
}
