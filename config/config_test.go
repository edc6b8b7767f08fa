package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig
	require.NoError(t, c.Validate())
	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"rows low", func(c *Config) { c.Game.Rows = 3 }},
		{"rows high", func(c *Config) { c.Game.Rows = 41 }},
		{"cols low", func(c *Config) { c.Game.Cols = 3 }},
		{"tick rate zero", func(c *Config) { c.Game.TickRate = 0 }},
		{"tick ms high", func(c *Config) { c.Game.TickMS = 5000 }},
		{"control symbol", func(c *Config) { c.Theme.Symbols.Cell = '\t' }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultConfig
			tc.mutate(&c)
			var invalid *InvalidConfig
			assert.ErrorAs(t, c.Validate(), &invalid)
		})
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"game":{"rows":16,"cols":10,"tick_rate":4,"tick_ms":50},"log_level":"debug"}`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, c.Game.Rows)
	assert.Equal(t, 10, c.Game.Cols)
	assert.Equal(t, 4, c.Game.TickRate)
	assert.Equal(t, DefaultTheme, c.Theme)
	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"game":`), 0644))
	_, err := Load(broken)
	var invalid *InvalidConfig
	assert.ErrorAs(t, err, &invalid)

	outOfRange := filepath.Join(dir, "range.json")
	require.NoError(t, os.WriteFile(outOfRange, []byte(`{"game":{"rows":100}}`), 0644))
	_, err = Load(outOfRange)
	assert.ErrorAs(t, err, &invalid)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, *c)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	c := DefaultConfig
	c.Game.Autoplay = true
	c.Spectate.Addr = ":8080"
	require.NoError(t, saveCfgFile(path, &c, 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, *loaded)
}

func TestShapeColor(t *testing.T) {
	th := DefaultTheme
	assert.Equal(t, th.Colors.I, th.ShapeColor('i'))
	assert.Equal(t, th.Colors.Z, th.ShapeColor('z'))
	assert.Equal(t, th.Colors.Empty, th.ShapeColor('.'))
}
