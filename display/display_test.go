package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/measure/errors"
)

// newCommand builds a root with the global --json flag and a child with --format.
func newCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	root := &cobra.Command{Use: "measure"}
	root.PersistentFlags().Bool("json", false, "")
	child := &cobra.Command{Use: "convert", Run: func(*cobra.Command, []string) {}}
	child.Flags().String("format", "", "")
	root.AddCommand(child)

	require.NoError(t, root.ParseFlags(nil))
	require.NoError(t, child.ParseFlags(args))
	return child
}

func TestOutputFormat(t *testing.T) {
	t.Setenv(CallerEnv, "")

	tests := []struct {
		name     string
		args     []string
		caller   string
		fallback string
		want     string
	}{
		{name: "fallback", fallback: FormatYAML, want: FormatYAML},
		{name: "empty fallback", want: FormatText},
		{name: "json flag", args: []string{"--json"}, fallback: FormatYAML, want: FormatJSON},
		{name: "json flag off", args: []string{"--json=false"}, caller: "llm", want: FormatText},
		{name: "format flag", args: []string{"--format", "TOML"}, fallback: FormatYAML, want: FormatTOML},
		{name: "machine caller", caller: "script", fallback: FormatText, want: FormatJSON},
		{name: "format beats caller", args: []string{"--format", "yaml"}, caller: "llm", want: FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(CallerEnv, tt.caller)
			cmd := newCommand(t, tt.args...)
			assert.Equal(t, tt.want, OutputFormat(cmd, tt.fallback))
		})
	}
}

func TestShouldOutputJSON(t *testing.T) {
	t.Setenv(CallerEnv, "")
	assert.False(t, ShouldOutputJSON(nil))
	assert.False(t, ShouldOutputJSON(newCommand(t)))
	assert.True(t, ShouldOutputJSON(newCommand(t, "--json")))

	t.Setenv(CallerEnv, "LLM")
	assert.True(t, ShouldOutputJSON(nil))
	assert.False(t, ShouldOutputJSON(newCommand(t, "--json=false")))
}

type sample struct {
	Dimension string `json:"dimension" yaml:"dimension" toml:"dimension"`
	Value     string `json:"value" yaml:"value" toml:"value"`
}

func TestMarshal(t *testing.T) {
	t.Setenv(CallerEnv, "")
	v := sample{Dimension: "Distance", Value: "1.609344"}

	tests := []struct {
		format string
		want   string
	}{
		{FormatJSON, "{\n  \"dimension\": \"Distance\",\n  \"value\": \"1.609344\"\n}\n"},
		{FormatYAML, "dimension: Distance\nvalue: \"1.609344\"\n"},
		{FormatTOML, "dimension = 'Distance'\nvalue = '1.609344'\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			data, err := Marshal(v, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}

	_, err := Marshal(v, "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotSupported))
}

func TestMarshalJSON_MachineCaller(t *testing.T) {
	t.Setenv(CallerEnv, "machine")
	data, err := MarshalJSON(sample{Dimension: "Mass", Value: "1"})
	require.NoError(t, err)
	assert.Equal(t, `{"dimension":"Mass","value":"1"}`, string(data))
}

func TestOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Output(&buf, map[string]int{"count": 3}, FormatYAML))
	assert.Equal(t, "count: 3\n", buf.String())

	buf.Reset()
	t.Setenv(CallerEnv, "machine")
	require.NoError(t, OutputJSON(&buf, []string{"m", "km"}))
	assert.Equal(t, "[\"m\",\"km\"]\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	err := Table(&buf, []string{"Unit", "Symbols"}, [][]string{
		{"metre", "m, meter"},
		{"foot", "ft, feet"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "metre")
	assert.Contains(t, out, "ft, feet")
	assert.Less(t, strings.Index(out, "metre"), strings.Index(out, "foot"))
}
