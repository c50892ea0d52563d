package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/logger"
	"github.com/teranos/measure/measures"
	"github.com/teranos/measure/numeric"
	"github.com/teranos/measure/registry"
	"github.com/teranos/measure/unit"
)

// UnitFile is the document a units file holds:
//
//	[[unit]]
//	dimension = "Distance"
//	name = "furlong"
//	factor = "201.168"
//	symbols = ["fur"]
type UnitFile struct {
	Units []UnitDef `toml:"unit" yaml:"unit"`
}

// UnitDef declares one extra unit. Exactly one of Factor or
// Numerator/Denominator gives the scale. Offset makes the unit affine,
// like a temperature scale. Short and Long enable metric prefixes.
type UnitDef struct {
	Dimension   string   `toml:"dimension" yaml:"dimension"`
	Name        string   `toml:"name" yaml:"name"`
	Factor      string   `toml:"factor" yaml:"factor"`
	Numerator   string   `toml:"numerator" yaml:"numerator"`
	Denominator string   `toml:"denominator" yaml:"denominator"`
	Offset      string   `toml:"offset" yaml:"offset"`
	Symbols     []string `toml:"symbols" yaml:"symbols"`
	Short       []string `toml:"short" yaml:"short"`
	Long        []string `toml:"long" yaml:"long"`
}

type fileKind int

const (
	kindTOML fileKind = iota
	kindYAML
)

func unitFileKind(path string) (fileKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return kindTOML, nil
	case ".yaml", ".yml":
		return kindYAML, nil
	}
	return 0, errors.Newf("unsupported units file %q (want .toml, .yaml or .yml)", path)
}

// LoadUnitFile reads the unit declarations in a TOML or YAML file. Keys the
// format does not define are an error, so a typo never silently drops a field.
func LoadUnitFile(path string) ([]UnitDef, error) {
	kind, err := unitFileKind(path)
	if err != nil {
		return nil, err
	}

	var doc UnitFile
	switch kind {
	case kindTOML:
		md, err := toml.DecodeFile(path, &doc)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse units file %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.Newf("units file %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	case kindYAML:
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open units file %s", path)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, errors.Wrapf(err, "failed to parse units file %s", path)
		}
	}

	for i, def := range doc.Units {
		if err := def.validate(); err != nil {
			return nil, errors.Wrapf(err, "units file %s: unit %d", path, i+1)
		}
	}

	logger.Debugw("Loaded units file",
		logger.FieldFile, path,
		logger.FieldCount, len(doc.Units))
	return doc.Units, nil
}

// LoadUnitFiles reads every file in order and concatenates the declarations
func LoadUnitFiles(paths []string) ([]UnitDef, error) {
	var all []UnitDef
	for _, p := range paths {
		defs, err := LoadUnitFile(p)
		if err != nil {
			return nil, err
		}
		all = append(all, defs...)
	}
	return all, nil
}

func (d UnitDef) validate() error {
	if d.Dimension == "" {
		return errors.New("dimension cannot be empty")
	}
	if d.Name == "" {
		return errors.New("name cannot be empty")
	}
	ratio := d.Numerator != "" || d.Denominator != ""
	if d.Factor != "" && ratio {
		return errors.Newf("%s: factor and numerator/denominator are mutually exclusive", d.Name)
	}
	if d.Factor == "" && !ratio {
		return errors.Newf("%s: needs a factor or a numerator/denominator", d.Name)
	}
	if d.Offset != "" && (len(d.Short) > 0 || len(d.Long) > 0) {
		return errors.Newf("%s: affine units take no metric prefixes", d.Name)
	}
	return nil
}

// scale returns the unit's scale as numerator and denominator strings
func (d UnitDef) scale() (string, string) {
	if d.Factor != "" {
		return d.Factor, "1"
	}
	num, den := d.Numerator, d.Denominator
	if num == "" {
		num = "1"
	}
	if den == "" {
		den = "1"
	}
	return num, den
}

// Entry builds the registry entry a definition declares.
func Entry[N numeric.Number[N]](d UnitDef) (registry.Entry[N], error) {
	if err := d.validate(); err != nil {
		return registry.Entry[N]{}, err
	}
	num, den := d.scale()

	var (
		c   unit.Converter[N]
		err error
	)
	switch {
	case d.Offset != "":
		c, err = unit.NewAffine[N](d.Offset, num, den, d.Symbols...)
	case len(d.Short) > 0 || len(d.Long) > 0:
		factor := num
		if den != "1" {
			return registry.Entry[N]{}, errors.Newf("%s: metric units need a plain factor", d.Name)
		}
		c, err = unit.NewMetric[N](factor, d.Symbols, d.Short, d.Long)
	case d.Factor != "":
		c, err = unit.New[N](d.Factor, d.Symbols...)
	default:
		c, err = unit.NewFraction[N](num, den, d.Symbols...)
	}
	if err != nil {
		return registry.Entry[N]{}, errors.Wrapf(err, "unit %q", d.Name)
	}
	return registry.Entry[N]{Name: d.Name, Unit: c}, nil
}

// CatalogOptions turns unit definitions into options for measures.NewCatalog.
func CatalogOptions[N numeric.Number[N]](defs []UnitDef) ([]measures.Option[N], error) {
	opts := make([]measures.Option[N], 0, len(defs))
	for _, d := range defs {
		e, err := Entry[N](d)
		if err != nil {
			return nil, err
		}
		opts = append(opts, measures.WithExtraUnits(d.Dimension, e))
	}
	return opts, nil
}
