package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/measure/measure"
	"github.com/teranos/measure/measures"
	"github.com/teranos/measure/numeric"
)

func newGuessCmd(st *state) *cobra.Command {
	var among []string

	cmd := &cobra.Command{
		Use:   "guess <value> <unit>",
		Short: "Find the dimension a unit belongs to",
		Long: `Guess tries every dimension in declaration order and reports the first
that accepts the unit.

Examples:
  measure guess 55 mph
  measure guess 1 Hz
  measure guess 3 m --among Speed,Distance`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.withCatalog(
				func(c *measures.Catalog[numeric.Decimal]) error {
					return runGuess(cmd, st, c, among, args[0], args[1])
				},
				func(c *measures.Catalog[numeric.Float]) error {
					return runGuess(cmd, st, c, among, args[0], args[1])
				},
			)
		},
	}
	cmd.Flags().StringSliceVar(&among, "among", nil, "Only consider these dimensions, in this order")
	return cmd
}

type guessed struct {
	Dimension string `json:"dimension" yaml:"dimension" toml:"dimension"`
	Unit      string `json:"unit" yaml:"unit" toml:"unit"`
	Repr      string `json:"repr" yaml:"repr" toml:"repr"`
	Reference string `json:"reference" yaml:"reference" toml:"reference"`
}

func (g guessed) String() string {
	return g.Dimension + ": " + g.Repr
}

func runGuess[N numeric.Number[N]](cmd *cobra.Command, st *state, c *measures.Catalog[N], among []string, value, unitName string) error {
	g, err := guess(c, among, value, unitName, st.cfg.Output.Precision)
	if err != nil {
		return err
	}
	return st.print(cmd, g)
}

func guess[N numeric.Number[N]](c *measures.Catalog[N], among []string, value, unitName string, precision int) (guessed, error) {
	var (
		m   measure.Measure[N]
		err error
	)
	if len(among) == 0 {
		m, err = c.Guess(value, unitName)
	} else {
		dims := make([]*measure.Dimension[N], 0, len(among))
		for _, name := range among {
			if d, ok := c.Dimension(strings.TrimSpace(name)); ok {
				dims = append(dims, d)
			}
		}
		m, err = measures.GuessIn(value, unitName, dims...)
	}
	if err != nil {
		return guessed{}, err
	}

	r := newResult(m, precision)
	return guessed{
		Dimension: r.Dimension,
		Unit:      m.UnitName(),
		Repr:      m.GoString(),
		Reference: r.Reference,
	}, nil
}
