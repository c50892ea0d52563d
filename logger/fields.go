package logger

import "go.uber.org/zap"

// Standard field names for structured logging.
// Use these constants instead of raw strings to keep keys consistent.
const (
	// Components
	FieldComponent = "component"
	FieldCommand   = "command"
	FieldVerbosity = "verbosity"

	// Units and dimensions
	FieldDimension = "dimension"
	FieldUnit      = "unit"
	FieldReference = "reference"
	FieldSymbols   = "symbols"
	FieldUnits     = "units"
	FieldValue     = "value"
	FieldBackend   = "backend"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount = "count"

	// Files and paths
	FieldFile = "file"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	log := logger.ComponentLogger("registry")
//	log.Debugw("built", logger.FieldDimension, "Distance")
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
