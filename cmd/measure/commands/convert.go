package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/measure/display"
	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/logger"
	"github.com/teranos/measure/measure"
	"github.com/teranos/measure/measures"
	"github.com/teranos/measure/numeric"
)

func newConvertCmd(st *state) *cobra.Command {
	var dimension string

	cmd := &cobra.Command{
		Use:   "convert <value> <unit> [target]",
		Short: "Convert a value from one unit to another",
		Long: `Convert a value between units of the same dimension.

Without --dimension the dimension is guessed from the unit. Without a
target the value is written in the dimension's reference unit.

Examples:
  measure convert 1 mi km
  measure convert 36 km/h m/s
  measure convert 14.7 psi --dimension Pressure
  measure convert 1 acre "sq ft" --precision 2`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 3 {
				target = args[2]
			}
			return st.withCatalog(
				func(c *measures.Catalog[numeric.Decimal]) error {
					return runConvert(cmd, st, c, dimension, args[0], args[1], target)
				},
				func(c *measures.Catalog[numeric.Float]) error {
					return runConvert(cmd, st, c, dimension, args[0], args[1], target)
				},
			)
		},
	}
	cmd.Flags().StringVarP(&dimension, "dimension", "d", "", "Dimension the unit belongs to (default: guessed)")
	return cmd
}

func runConvert[N numeric.Number[N]](cmd *cobra.Command, st *state, c *measures.Catalog[N], dimension, value, from, to string) error {
	r, err := convert(c, dimension, value, from, to, st.cfg.Output.Precision)
	if err != nil {
		return err
	}
	return st.print(cmd, r)
}

// convert reads value in unit from and rewrites it in unit to.
func convert[N numeric.Number[N]](c *measures.Catalog[N], dimension, value, from, to string, precision int) (result, error) {
	m, err := lookup(c, dimension, value, from)
	if err != nil {
		return result{}, err
	}
	if to == "" {
		to = m.Dimension().DisplayUnit()
	}
	out, err := m.Convert(to)
	if err != nil {
		return result{}, errors.Wrapf(err, "cannot convert %s to %q", m, to)
	}

	logger.Debugw("Converted",
		logger.FieldDimension, m.Dimension().Name(),
		logger.FieldUnit, from,
		logger.FieldValue, value)
	return newResult(out, precision), nil
}

func lookup[N numeric.Number[N]](c *measures.Catalog[N], dimension, value, unitName string) (measure.Measure[N], error) {
	if dimension == "" {
		return c.Guess(value, unitName)
	}
	d, ok := c.Dimension(dimension)
	if !ok {
		names := make([]string, 0, len(c.Dimensions()))
		for _, d := range c.Dimensions() {
			names = append(names, d.Name())
		}
		return measure.Measure[N]{}, errors.WithHintf(
			errors.Newf("unknown dimension %q", dimension),
			"known dimensions: %v", names)
	}
	return d.Of(unitName, value)
}

// print writes v in the selected format; text uses v's String method.
func (st *state) print(cmd *cobra.Command, v fmt.Stringer) error {
	format := display.OutputFormat(cmd, st.cfg.Output.Format)
	if format == display.FormatText {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), v.String())
		return err
	}
	return display.Output(cmd.OutOrStdout(), v, format)
}
