package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
		wantErr    bool
	}{
		{
			name:       "JSON output mode",
			jsonOutput: true,
			wantErr:    false,
		},
		{
			name:       "Console output mode",
			jsonOutput: false,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global logger
			Logger = nil
			JSONOutput = false

			err := InitializeWithLevel(tt.jsonOutput, zapcore.InfoLevel)
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeWithLevel() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if Logger == nil {
					t.Error("InitializeWithLevel() did not set global Logger")
				}
				if JSONOutput != tt.jsonOutput {
					t.Errorf("InitializeWithLevel() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
				}
			}

			Cleanup()
			Logger = zap.NewNop().Sugar()
		})
	}
}

func TestInitializeWithLevel(t *testing.T) {
	defer func() { Logger = zap.NewNop().Sugar() }()

	if err := InitializeWithLevel(false, zapcore.DebugLevel); err != nil {
		t.Fatalf("InitializeWithLevel() error = %v", err)
	}
	if !Logger.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled")
	}

	if err := InitializeWithLevel(true, zapcore.WarnLevel); err != nil {
		t.Fatalf("InitializeWithLevel() error = %v", err)
	}
	if Logger.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info level should be disabled at warn")
	}
}

func TestDefaultLoggerIsNop(t *testing.T) {
	// The package init installs a no-op logger; calls before InitializeWithLevel must be safe.
	Debugw("before initialize", FieldDimension, "Distance")
	Infow("before initialize")
}

func TestCleanup(t *testing.T) {
	tests := []struct {
		name        string
		setupLogger bool
	}{
		{name: "Cleanup with initialized logger", setupLogger: true},
		{name: "Cleanup with nil logger (should not panic)", setupLogger: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupLogger {
				Logger = zap.NewNop().Sugar()
			} else {
				Logger = nil
			}

			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Cleanup() panicked unexpectedly: %v", r)
				}
			}()

			Cleanup()

			if tt.setupLogger && Logger == nil {
				t.Error("Cleanup() should not nil out the logger")
			}
			Logger = zap.NewNop().Sugar()
		})
	}
}

// TestLoggingFunctions tests the package-level logging functions
func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Logger = zap.New(core).Sugar()
	defer func() { Logger = zap.NewNop().Sugar() }()

	Infow("info", FieldUnit, "km")
	Warnw("warn", FieldCount, 2)
	Debugw("debug", FieldDimension, "Distance")

	if got := logs.Len(); got != 3 {
		t.Fatalf("expected 3 entries, got %d", got)
	}
	entry := logs.FilterMessage("debug").All()[0]
	if entry.ContextMap()[FieldDimension] != "Distance" {
		t.Errorf("unexpected fields %v", entry.ContextMap())
	}

	t.Run("With nil logger (should not panic)", func(t *testing.T) {
		Logger = nil
		Infow("test", "key", "value")
		Warnw("test", "key", "value")
		Debugw("test", "key", "value")
	})
}

func TestComponentLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Logger = zap.New(core).Sugar()
	defer func() { Logger = zap.NewNop().Sugar() }()

	log := ComponentLogger("registry")
	log.Debugw("built", FieldDimension, "Speed", FieldSymbols, 10)

	all := logs.All()
	if len(all) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(all))
	}
	if all[0].LoggerName != "registry" {
		t.Errorf("logger name = %q", all[0].LoggerName)
	}
	if all[0].ContextMap()[FieldDimension] != "Speed" {
		t.Errorf("missing dimension field: %v", all[0].ContextMap())
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
		name      string
	}{
		{verbosity: -1, want: zapcore.WarnLevel, name: "Unknown"},
		{verbosity: 0, want: zapcore.WarnLevel, name: "User"},
		{verbosity: 1, want: zapcore.InfoLevel, name: "Info (-v)"},
		{verbosity: 2, want: zapcore.DebugLevel, name: "Debug (-vv)"},
		{verbosity: 5, want: zapcore.DebugLevel, name: "Debug (-vv+)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerbosityToLevel(tt.verbosity); got != tt.want {
				t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
			}
			if got := LevelName(tt.verbosity); got != tt.name {
				t.Errorf("LevelName(%d) = %q, want %q", tt.verbosity, got, tt.name)
			}
		})
	}
}

// BenchmarkInfow benchmarks structured logging against a discarded core
func BenchmarkInfow(b *testing.B) {
	Logger = zap.NewNop().Sugar()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Infow("converted", FieldUnit, "km", FieldValue, "1.609344")
	}
}
