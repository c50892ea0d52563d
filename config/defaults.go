package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("numeric.backend", BackendDecimal)

	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.precision", ExactPrecision)

	v.SetDefault("log.json", false)

	v.SetDefault("units.files", []string{})
}
