package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyYieldsDefaults(t *testing.T) {
	for _, data := range [][]byte{nil, {}} {
		cfg, err := Load(data)
		require.NoError(t, err)
		assert.Equal(t, "ember", cfg.App.Name)
		assert.Equal(t, BaseDPI, cfg.App.BaseDPI)
		assert.Equal(t, "info", cfg.Logging.Level)
		require.NotNil(t, cfg.Input.CoalesceMoves)
		assert.True(t, *cfg.Input.CoalesceMoves)
		assert.Equal(t, 120, cfg.Diagnostics.FrameSamples)
		assert.Equal(t, 0, cfg.Diagnostics.DebugServerPort)
	}
}

func TestLoad_FullManifest(t *testing.T) {
	cfg, err := Load([]byte(`
app:
  name: demo
  baseDpi: 160
logging:
  level: debug
input:
  coalesceMoves: false
diagnostics:
  frameSamples: 240
  debugServerPort: 8087
`))
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.App.Name)
	assert.Equal(t, 160.0, cfg.App.BaseDPI)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, *cfg.Input.CoalesceMoves)
	assert.Equal(t, 240, cfg.Diagnostics.FrameSamples)
	assert.Equal(t, 8087, cfg.Diagnostics.DebugServerPort)
}

func TestLoad_PartialManifestKeepsDefaults(t *testing.T) {
	cfg, err := Load([]byte("logging:\n  level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "ember", cfg.App.Name)
	assert.True(t, *cfg.Input.CoalesceMoves)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", ":\n  - ["},
		{"unknown level", "logging:\n  level: verbose\n"},
		{"negative baseDpi", "app:\n  baseDpi: -1\n"},
		{"negative samples", "diagnostics:\n  frameSamples: -5\n"},
		{"port out of range", "diagnostics:\n  debugServerPort: 70000\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestScaleForDensity(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 2.0, cfg.ScaleForDensity(240))
	assert.Equal(t, 1.0, cfg.ScaleForDensity(0))
	assert.Equal(t, 1.0, cfg.ScaleForDensity(-10))

	cfg.App.BaseDPI = 160
	assert.Equal(t, 3.0, cfg.ScaleForDensity(480))
}
