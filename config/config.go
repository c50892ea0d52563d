// Package config loads the settings of the measure command.
//
// Settings come from, in increasing precedence: built-in defaults,
// /etc/measure/measure.toml, ~/.measure/measure.toml, the nearest
// measure.toml found walking up from the working directory, and MEASURE_*
// environment variables.
package config

// Config represents the measure CLI configuration
type Config struct {
	Numeric NumericConfig `mapstructure:"numeric" json:"numeric" yaml:"numeric" toml:"numeric"`
	Output  OutputConfig  `mapstructure:"output" json:"output" yaml:"output" toml:"output"`
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	Units   UnitsConfig   `mapstructure:"units" json:"units" yaml:"units" toml:"units"`
}

// NumericConfig selects the arithmetic backend
type NumericConfig struct {
	Backend string `mapstructure:"backend" json:"backend" yaml:"backend" toml:"backend"` // decimal or float
}

// OutputConfig configures how results are printed
type OutputConfig struct {
	Format    string `mapstructure:"format" json:"format" yaml:"format" toml:"format"`             // text, json, yaml or toml
	Precision int    `mapstructure:"precision" json:"precision" yaml:"precision" toml:"precision"` // fractional digits, -1 = exact
}

// LogConfig configures the zap logger
type LogConfig struct {
	JSON bool `mapstructure:"json" json:"json" yaml:"json" toml:"json"`
}

// UnitsConfig lists files declaring extra units
type UnitsConfig struct {
	Files []string `mapstructure:"files" json:"files" yaml:"files" toml:"files"`
}

// Numeric backends
const (
	BackendDecimal = "decimal"
	BackendFloat   = "float"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// ExactPrecision prints every digit the backend holds.
const ExactPrecision = -1

// FileName is the name of configuration files in the cascade.
const FileName = "measure.toml"

// EnvPrefix prefixes environment variable overrides, e.g. MEASURE_OUTPUT_FORMAT.
const EnvPrefix = "MEASURE"
