package commands

import (
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/measure/display"
	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/measure"
	"github.com/teranos/measure/measures"
	"github.com/teranos/measure/numeric"
	"github.com/teranos/measure/registry"
)

func newUnitsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "units [dimension]",
		Short: "Document the dimensions and the units they accept",
		Long: `Without arguments, list every dimension with its reference unit, how
many units and spellings it accepts, and the dimensions its units are
composed of, followed by the declared products, quotients and powers.

With a dimension name, list each of its units and every accepted spelling.

Examples:
  measure units
  measure units Temperature
  measure units Speed --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.withCatalog(
				func(c *measures.Catalog[numeric.Decimal]) error { return runUnits(cmd, st, c, args) },
				func(c *measures.Catalog[numeric.Float]) error { return runUnits(cmd, st, c, args) },
			)
		},
	}
}

type unitDoc struct {
	Name      string   `json:"name" yaml:"name" toml:"name"`
	Spellings []string `json:"spellings" yaml:"spellings" toml:"spellings"`
}

type dimensionDoc struct {
	Name       string    `json:"name" yaml:"name" toml:"name"`
	Reference  string    `json:"reference" yaml:"reference" toml:"reference"`
	UnitCount  int       `json:"unit_count" yaml:"unit_count" toml:"unit_count"`
	Spellings  int       `json:"spellings" yaml:"spellings" toml:"spellings"`
	ComposedOf string    `json:"composed_of,omitempty" yaml:"composed_of,omitempty" toml:"composed_of,omitempty"`
	Units      []unitDoc `json:"units,omitempty" yaml:"units,omitempty" toml:"units,omitempty"`
}

type catalogDoc struct {
	Dimensions []dimensionDoc `json:"dimensions" yaml:"dimensions" toml:"dimensions"`
	Relations  []string       `json:"relations" yaml:"relations" toml:"relations"`
}

func runUnits[N numeric.Number[N]](cmd *cobra.Command, st *state, c *measures.Catalog[N], args []string) error {
	format := display.OutputFormat(cmd, st.cfg.Output.Format)
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		d, ok := c.Dimension(args[0])
		if !ok {
			return errors.Newf("unknown dimension %q", args[0])
		}
		doc := describe(c, d, true)
		if format != display.FormatText {
			return display.Output(out, doc, format)
		}
		rows := make([][]string, 0, len(doc.Units))
		for _, u := range doc.Units {
			rows = append(rows, []string{u.Name, strings.Join(u.Spellings, ", ")})
		}
		return display.Table(out, []string{"Unit", "Spellings"}, rows)
	}

	doc := document(c)
	if format != display.FormatText {
		return display.Output(out, doc, format)
	}

	rows := make([][]string, 0, len(doc.Dimensions))
	for _, d := range doc.Dimensions {
		rows = append(rows, []string{
			d.Name,
			d.Reference,
			strconv.Itoa(d.UnitCount),
			strconv.Itoa(d.Spellings),
			d.ComposedOf,
		})
	}
	if err := display.Table(out, []string{"Dimension", "Reference", "Units", "Spellings", "Composed of"}, rows); err != nil {
		return err
	}

	relations := make([][]string, 0, len(doc.Relations))
	for _, r := range doc.Relations {
		relations = append(relations, []string{r})
	}
	return display.Table(out, []string{"Relation"}, relations)
}

// document describes every dimension and the declared algebra.
func document[N numeric.Number[N]](c *measures.Catalog[N]) catalogDoc {
	doc := catalogDoc{}
	for _, d := range c.Dimensions() {
		doc.Dimensions = append(doc.Dimensions, describe(c, d, false))
	}
	for _, r := range c.Algebra().Relations() {
		doc.Relations = append(doc.Relations, relation(r))
	}
	sort.Strings(doc.Relations)
	return doc
}

func describe[N numeric.Number[N]](c *measures.Catalog[N], d *measure.Dimension[N], withUnits bool) dimensionDoc {
	reg := d.Registry()
	units := reg.Units()
	doc := dimensionDoc{
		Name:      d.Name(),
		Reference: reg.ReferenceSymbol(),
		UnitCount: len(units),
		Spellings: reg.Len(),
	}
	doc.ComposedOf, _ = c.ComposedOf(d.Name())

	if withUnits {
		for _, u := range units {
			doc.Units = append(doc.Units, unitDoc{Name: u.Name, Spellings: reg.SymbolsOf(u.Name)})
		}
	}
	return doc
}

func relation(r measure.Relation) string {
	if r.Op == "^" {
		return r.Left + registry.Superscript(r.Exponent) + " → " + r.Result
	}
	return r.Left + " " + r.Op + " " + r.Right + " → " + r.Result
}
