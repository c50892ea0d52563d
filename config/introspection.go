package config

import (
	"os"
	"sort"
	"strings"

	"github.com/teranos/measure/errors"
)

// Source represents where a configuration value came from
type Source string

const (
	SourceDefault     Source = "default"
	SourceSystem      Source = "system"      // /etc/measure/measure.toml
	SourceUser        Source = "user"        // ~/.measure/measure.toml
	SourceProject     Source = "project"     // nearest measure.toml
	SourceEnvironment Source = "environment" // MEASURE_* env vars
)

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source Source `json:"source" yaml:"source" toml:"source"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"` // File path or environment variable name
}

// Sources maps each key set by a configuration file to that file.
// It is filled while the cascade is merged.
var Sources = make(map[string]SourceInfo)

// Setting is one effective configuration value and its origin
type Setting struct {
	Key    string `json:"key" yaml:"key" toml:"key"`
	Value  any    `json:"value" yaml:"value" toml:"value"`
	Source Source `json:"source" yaml:"source" toml:"source"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
}

// Introspect lists every effective setting, sorted by key, with the source
// that supplied it.
func Introspect() ([]Setting, error) {
	if _, err := Load(); err != nil {
		return nil, errors.Wrap(err, "failed to load config for introspection")
	}
	v := GetViper()

	keys := v.AllKeys()
	sort.Strings(keys)

	settings := make([]Setting, 0, len(keys))
	for _, key := range keys {
		info := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := Sources[key]; ok {
			info = si
		}

		envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if _, ok := os.LookupEnv(envKey); ok {
			info = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		settings = append(settings, Setting{
			Key:    key,
			Value:  v.Get(key),
			Source: info.Source,
			Path:   info.Path,
		})
	}
	return settings, nil
}

// Cascade returns the configuration files consulted, lowest precedence
// first, and whether each one exists.
func Cascade() []FileStatus {
	var out []FileStatus
	for _, src := range cascade() {
		_, err := os.Stat(src.Path)
		out = append(out, FileStatus{SourceInfo: src, Exists: err == nil})
	}
	return out
}

// FileStatus is one entry of Cascade
type FileStatus struct {
	SourceInfo `yaml:",inline"`
	Exists     bool `json:"exists" yaml:"exists" toml:"exists"`
}
