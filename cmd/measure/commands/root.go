// Package commands implements the measure command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/measure/config"
	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/logger"
)

// NewRootCmd builds the measure command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:   "measure",
		Short: "Convert physical measurements between units",
		Long: `measure converts physical quantities between units.

Every dimension (Distance, Speed, Temperature, ...) accepts its units by
name, symbol, metric prefix and, for derived dimensions, by combining the
units of its components: "km/h", "mile_per_hour", "sq_ft", "cubic metre".

Configuration sources (later overrides earlier):
  /etc/measure/measure.toml, ~/.measure/measure.toml,
  the nearest ./measure.toml, then MEASURE_* environment variables.

Examples:
  measure convert 10 km mi            # 6.2137... mi
  measure convert 100 celsius °F      # 212 °F
  measure guess 55 mph                # Speed
  measure units Speed                 # units and spellings of Speed
  echo '10 "mile per hour" kph' | measure batch`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	flags.Bool("json", false, "Output JSON")
	flags.String("format", "", "Output format: text, json, yaml, toml (default from output.format)")
	flags.String("backend", "", "Numeric backend: decimal or float (default from numeric.backend)")
	flags.Int("precision", config.ExactPrecision, "Fractional digits in results, -1 for exact")
	flags.StringSlice("units", nil, "Extra unit definition files (TOML or YAML)")

	root.AddCommand(
		newConvertCmd(st),
		newGuessCmd(st),
		newBatchCmd(st),
		newUnitsCmd(st),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// state is the configuration every command runs with, after flags are applied.
type state struct {
	cfg config.Config
}

func (st *state) load(cmd *cobra.Command) error {
	flags := cmd.Flags()
	verbosity, _ := flags.GetCount("verbose")
	level := logger.VerbosityToLevel(verbosity)

	// config.Load logs through a console logger; log.json applies after it.
	if err := logger.InitializeWithLevel(false, level); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	st.cfg = *cfg
	st.cfg.Units.Files = append([]string(nil), cfg.Units.Files...)

	if f := flags.Lookup("backend"); f != nil && f.Changed {
		st.cfg.Numeric.Backend = f.Value.String()
	}
	if f := flags.Lookup("precision"); f != nil && f.Changed {
		st.cfg.Output.Precision, _ = flags.GetInt("precision")
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		st.cfg.Output.Format, _ = flags.GetString("format")
	}
	if files, _ := flags.GetStringSlice("units"); len(files) > 0 {
		st.cfg.Units.Files = append(st.cfg.Units.Files, files...)
	}

	// config subcommands report on the configuration even when it is invalid
	inspecting := cmd.HasParent() && cmd.Parent().Name() == "config"
	if err := st.cfg.Validate(); err != nil && !inspecting {
		return errors.Wrap(err, "invalid configuration")
	}

	if st.cfg.Log.JSON != logger.JSONOutput {
		if err := logger.InitializeWithLevel(st.cfg.Log.JSON, level); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
	}
	logger.Infow("Configuration loaded",
		logger.FieldCommand, cmd.CommandPath(),
		logger.FieldVerbosity, logger.LevelName(verbosity),
		logger.FieldBackend, st.cfg.Numeric.Backend,
		logger.FieldCount, len(st.cfg.Units.Files))
	return nil
}
