package config

import (
	"slices"

	"github.com/teranos/measure/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if !slices.Contains([]string{BackendDecimal, BackendFloat}, c.Numeric.Backend) {
		return errors.Newf("numeric.backend must be %q or %q, got %q", BackendDecimal, BackendFloat, c.Numeric.Backend)
	}

	formats := []string{FormatText, FormatJSON, FormatYAML, FormatTOML}
	if !slices.Contains(formats, c.Output.Format) {
		return errors.Newf("output.format must be one of %v, got %q", formats, c.Output.Format)
	}

	// -1 = exact, anything below is meaningless
	if c.Output.Precision < ExactPrecision {
		return errors.Newf("output.precision must be >= -1, got %d", c.Output.Precision)
	}

	for i, f := range c.Units.Files {
		if f == "" {
			return errors.Newf("units.files[%d] cannot be empty", i)
		}
		if _, err := unitFileKind(f); err != nil {
			return errors.Wrapf(err, "units.files[%d]", i)
		}
	}

	return nil
}
