// Package display renders command results as text, JSON, YAML or TOML.
package display

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Output formats understood by Marshal.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// CallerEnv names the environment variable a script or agent sets to ask
// for machine-readable output without passing --json on every call.
const CallerEnv = "MEASURE_CALLER"

// IsMachineCaller reports whether the process was started by a program
// rather than a person at a terminal.
func IsMachineCaller() bool {
	switch strings.ToLower(os.Getenv(CallerEnv)) {
	case "llm", "script", "machine":
		return true
	}
	return false
}

// ShouldOutputJSON determines if a command should output JSON based on flags and caller detection
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return IsMachineCaller()
	}

	// Check if --json flag was explicitly set
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	if globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json"); globalFlag {
		return true
	}

	return IsMachineCaller()
}

// OutputFormat picks the format for cmd. --json wins, then an explicit
// --format, then a machine caller, then the configured fallback.
func OutputFormat(cmd *cobra.Command, fallback string) string {
	if cmd != nil {
		if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
			if on, _ := cmd.Flags().GetBool("json"); on {
				return FormatJSON
			}
			return FormatText
		}
		if on, _ := cmd.Root().PersistentFlags().GetBool("json"); on {
			return FormatJSON
		}
		if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
			return strings.ToLower(f.Value.String())
		}
	}
	if IsMachineCaller() {
		return FormatJSON
	}
	if fallback == "" {
		return FormatText
	}
	return fallback
}
