package commands

import (
	"fmt"

	"github.com/teranos/measure/config"
	"github.com/teranos/measure/logger"
	"github.com/teranos/measure/measure"
	"github.com/teranos/measure/measures"
	"github.com/teranos/measure/numeric"
)

// withCatalog runs the instantiation of a command that matches the
// configured backend. The built-in catalogs are shared; extra unit files
// get a catalog of their own.
func (st *state) withCatalog(
	exact func(*measures.Catalog[numeric.Decimal]) error,
	approx func(*measures.Catalog[numeric.Float]) error,
) error {
	defs, err := config.LoadUnitFiles(st.cfg.Units.Files)
	if err != nil {
		return err
	}

	logger.Debugw("Selecting catalog",
		logger.FieldBackend, st.cfg.Numeric.Backend,
		logger.FieldUnits, len(defs))

	if st.cfg.Numeric.Backend == config.BackendFloat {
		c, err := catalog(defs, measures.Approx)
		if err != nil {
			return err
		}
		return approx(c)
	}
	c, err := catalog(defs, measures.Exact)
	if err != nil {
		return err
	}
	return exact(c)
}

func catalog[N numeric.Number[N]](defs []config.UnitDef, builtin func() *measures.Catalog[N]) (*measures.Catalog[N], error) {
	if len(defs) == 0 {
		return builtin(), nil
	}
	opts, err := config.CatalogOptions[N](defs)
	if err != nil {
		return nil, err
	}
	return measures.NewCatalog(opts...)
}

// formatValue renders v with precision fractional digits, or exactly
// when precision is config.ExactPrecision.
func formatValue[N numeric.Number[N]](v N, precision int) string {
	if precision == config.ExactPrecision {
		if t, ok := any(v).(interface{ Text(byte) string }); ok {
			return t.Text('f')
		}
		return v.String()
	}
	return fmt.Sprintf("%.*f", precision, v)
}

// result is the structured form of a measure.
type result struct {
	Dimension string `json:"dimension" yaml:"dimension" toml:"dimension"`
	Value     string `json:"value" yaml:"value" toml:"value"`
	Unit      string `json:"unit" yaml:"unit" toml:"unit"`
	Reference string `json:"reference" yaml:"reference" toml:"reference"`
}

func newResult[N numeric.Number[N]](m measure.Measure[N], precision int) result {
	reg := m.Dimension().Registry()
	return result{
		Dimension: m.Dimension().Name(),
		Value:     formatValue(m.Value(), precision),
		Unit:      m.Unit(),
		Reference: formatValue(m.Reference(), precision) + " " + reg.ReferenceSymbol(),
	}
}

// String renders "<value> <unit>".
func (r result) String() string {
	if r.Unit == "" {
		return r.Value
	}
	return r.Value + " " + r.Unit
}
