// Package config defines the optional ember.yaml embedder manifest. The
// manifest ships inside the APK's assets; the host glue reads the bytes and
// hands them to Load before the frame loop starts.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// BaseDPI is the density an unscaled logical pixel corresponds to. Android's
// nominal base density is 160, but a smaller value makes immediate-mode UIs
// scale larger for better legibility on handheld screens.
const BaseDPI = 120.0

// Manifest represents the optional ember.yaml configuration.
type Manifest struct {
	App         AppConfig         `yaml:"app"`
	Logging     LoggingConfig     `yaml:"logging"`
	Input       InputConfig       `yaml:"input"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	// BaseDPI overrides the density a logical pixel corresponds to.
	// Zero means the BaseDPI default.
	BaseDPI float64 `yaml:"baseDpi,omitempty"`
}

// LoggingConfig contains logger settings.
type LoggingConfig struct {
	// Level is the minimum log level ("trace", "debug", "info", "warn", "error").
	Level string `yaml:"level,omitempty"`
}

// InputConfig contains input translation settings.
type InputConfig struct {
	// CoalesceMoves merges adjacent same-pointer move events within one
	// pending batch. Nil means enabled.
	CoalesceMoves *bool `yaml:"coalesceMoves,omitempty"`
}

// DiagnosticsConfig contains frame diagnostics settings.
type DiagnosticsConfig struct {
	// FrameSamples is the size of the frame timing window. Zero means 120.
	FrameSamples int `yaml:"frameSamples,omitempty"`
	// DebugServerPort enables an HTTP debug server on the given port.
	// 0 = disabled.
	DebugServerPort int `yaml:"debugServerPort,omitempty"`
}

var validLevels = map[string]bool{
	"": true, "trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

// Default returns a manifest with all defaults resolved.
func Default() *Manifest {
	coalesce := true
	return &Manifest{
		App:         AppConfig{Name: "ember", BaseDPI: BaseDPI},
		Logging:     LoggingConfig{Level: "info"},
		Input:       InputConfig{CoalesceMoves: &coalesce},
		Diagnostics: DiagnosticsConfig{FrameSamples: 120},
	}
}

// Load parses manifest bytes and resolves defaults. Nil or empty input
// yields the default manifest.
func Load(data []byte) (*Manifest, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse ember.yaml: %w", err)
	}

	if name := strings.TrimSpace(m.App.Name); name != "" {
		cfg.App.Name = name
	}
	if m.App.BaseDPI < 0 {
		return nil, fmt.Errorf("ember.yaml: baseDpi must be positive, got %v", m.App.BaseDPI)
	}
	if m.App.BaseDPI > 0 {
		cfg.App.BaseDPI = m.App.BaseDPI
	}

	level := strings.ToLower(strings.TrimSpace(m.Logging.Level))
	if !validLevels[level] {
		return nil, fmt.Errorf("ember.yaml: unknown log level %q", m.Logging.Level)
	}
	if level != "" {
		cfg.Logging.Level = level
	}

	if m.Input.CoalesceMoves != nil {
		cfg.Input.CoalesceMoves = m.Input.CoalesceMoves
	}

	if m.Diagnostics.FrameSamples < 0 {
		return nil, fmt.Errorf("ember.yaml: frameSamples must not be negative")
	}
	if m.Diagnostics.FrameSamples > 0 {
		cfg.Diagnostics.FrameSamples = m.Diagnostics.FrameSamples
	}
	if m.Diagnostics.DebugServerPort < 0 || m.Diagnostics.DebugServerPort > 65535 {
		return nil, fmt.Errorf("ember.yaml: debugServerPort out of range")
	}
	cfg.Diagnostics.DebugServerPort = m.Diagnostics.DebugServerPort

	return cfg, nil
}

// ScaleForDensity derives the density scale factor from a platform-reported
// DPI. A non-positive density yields 1.
func (m *Manifest) ScaleForDensity(densityDPI float64) float64 {
	if densityDPI <= 0 {
		return 1
	}
	base := m.App.BaseDPI
	if base <= 0 {
		base = BaseDPI
	}
	return densityDPI / base
}
