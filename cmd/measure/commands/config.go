package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/measure/config"
	"github.com/teranos/measure/display"
	"github.com/teranos/measure/errors"
	"github.com/teranos/measure/numeric"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and check the measure configuration",
		Long: `Display and check configuration settings.

Configuration sources (later overrides earlier):
  1. Built-in defaults
  2. /etc/measure/measure.toml
  3. ~/.measure/measure.toml
  4. ./measure.toml (searches up directories)
  5. MEASURE_* environment variables

Examples:
  measure config show                 # Effective configuration as TOML
  measure config show --format json
  measure config get output.precision
  measure config validate
  measure config where                # Where each setting came from`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show current configuration",
			Args:  cobra.NoArgs,
			RunE:  runConfigShow,
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Get a specific configuration value",
			Long:  "Get a specific configuration value using dot notation (e.g., numeric.backend, output.precision)",
			Args:  cobra.ExactArgs(1),
			RunE:  runConfigGet,
		},
		&cobra.Command{
			Use:   "validate",
			Short: "Validate the configuration files and unit files",
			Args:  cobra.NoArgs,
			RunE:  runConfigValidate,
		},
		&cobra.Command{
			Use:   "where",
			Short: "Show where configuration is loaded from",
			Args:  cobra.NoArgs,
			RunE:  runConfigWhere,
		},
	)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	format := display.OutputFormat(cmd, display.FormatTOML)
	if format == display.FormatText {
		format = display.FormatTOML
	}
	out := cmd.OutOrStdout()
	if format != display.FormatJSON {
		fmt.Fprintln(out, "# measure configuration")
	}
	return display.Output(out, cfg, format)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	v := config.GetViper()
	if !v.IsSet(key) {
		return errors.Newf("configuration key %q not found", key)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return err
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	defs, err := config.LoadUnitFiles(cfg.Units.Files)
	if err != nil {
		return err
	}
	if len(defs) > 0 {
		// Building the catalog surfaces symbol collisions.
		if _, err := catalog[numeric.Decimal](defs, nil); err != nil {
			return errors.Wrap(err, "unit files do not fit the decimal catalog")
		}
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration is valid (%d extra units)\n", len(defs))
	return err
}

type whereReport struct {
	Files    []config.FileStatus `json:"files" yaml:"files" toml:"files"`
	Settings []config.Setting    `json:"settings" yaml:"settings" toml:"settings"`
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	settings, err := config.Introspect()
	if err != nil {
		return err
	}
	report := whereReport{Files: config.Cascade(), Settings: settings}

	out := cmd.OutOrStdout()
	format := display.OutputFormat(cmd, display.FormatText)
	if format != display.FormatText {
		return display.Output(out, report, format)
	}

	fileRows := make([][]string, 0, len(report.Files))
	for _, f := range report.Files {
		status := "missing"
		if f.Exists {
			status = "loaded"
		}
		fileRows = append(fileRows, []string{string(f.Source), f.Path, status})
	}
	if err := display.Table(out, []string{"Source", "File", "Status"}, fileRows); err != nil {
		return err
	}

	rows := make([][]string, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.Path})
	}
	return display.Table(out, []string{"Key", "Value", "Source", "From"}, rows)
}
