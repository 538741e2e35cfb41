package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 300*time.Millisecond, cfg.Scanner.IdleTimeout.Duration)
	assert.Equal(t, "Enter", cfg.Scanner.Terminator)
	assert.Equal(t, 2*time.Second, cfg.Display.ToastDuration.Duration)
	assert.Equal(t, 3, cfg.Display.Columns)
	assert.True(t, cfg.GrabDevice())
	assert.False(t, cfg.Display.Windowed)
}

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
locale = "fr"

[scanner]
idle_timeout = "150ms"
ignored_keys = ["Shift"]

[display]
columns = 2
`))
	require.NoError(t, err)

	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, 150*time.Millisecond, cfg.Scanner.IdleTimeout.Duration)
	assert.Equal(t, []string{"Shift"}, cfg.Scanner.IgnoredKeys)
	assert.Equal(t, "Enter", cfg.Scanner.Terminator)
	assert.Equal(t, SourceSDL, cfg.Scanner.Source)
	assert.Equal(t, 2, cfg.Display.Columns)
	assert.Equal(t, int32(320), cfg.Display.TileSize)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte(`
[scanner]
idle_timout = "150ms"
`))
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.NotErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "scanner.idle_timout")
}

func TestParse_UnknownKeyNotMaskedByValidation(t *testing.T) {
	// Both a typo and a Validate failure: the typo must win.
	_, err := Parse([]byte(`
[scanner]
source = "evdev"
devcie = "/dev/input/event3"
`))
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.NotErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "scanner.devcie")
}

func TestParse_InvalidKeepsDefaults(t *testing.T) {
	t.Setenv("SCANNER_DEVICE", "")

	cfg, err := Parse([]byte(`
[scanner]
source = "evdev"
`))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, SourceEvdev, cfg.Scanner.Source)
	assert.Equal(t, Default().Scanner.Terminator, cfg.Scanner.Terminator)
	assert.Equal(t, Default().Display.Columns, cfg.Display.Columns)

	cfg.Scanner.Device = "/dev/input/event3"
	assert.NoError(t, cfg.Validate())
}

func TestParse_BadDuration(t *testing.T) {
	_, err := Parse([]byte(`
[scanner]
idle_timeout = "soon"
`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown source", func(c *Config) { c.Scanner.Source = "bluetooth" }},
		{"evdev without device", func(c *Config) { c.Scanner.Source = SourceEvdev }},
		{"negative idle", func(c *Config) { c.Scanner.IdleTimeout = Duration{-time.Second} }},
		{"empty terminator", func(c *Config) { c.Scanner.Terminator = "" }},
		{"zero columns", func(c *Config) { c.Display.Columns = 0 }},
		{"negative gap", func(c *Config) { c.Display.TileGap = -1 }},
		{"zero toast", func(c *Config) { c.Display.ToastDuration = Duration{} }},
	}

	t.Setenv("SCANNER_DEVICE", "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_EvdevDeviceFromEnv(t *testing.T) {
	t.Setenv("SCANNER_DEVICE", "/dev/input/event7")

	cfg := Default()
	cfg.Scanner.Source = SourceEvdev

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "/dev/input/event7", cfg.ScannerDevice())
}

func TestLoadFS(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "kiosk.toml", []byte(`
[scanner]
source = "evdev"
device = "Honeywell"
grab = false

[catalog]
path = "/etc/kiosk/catalog.toml"
assets = "/srv/kiosk"
`), 0o644))

	cfg, err := LoadFS(fs, "kiosk.toml")
	require.NoError(t, err)

	assert.Equal(t, SourceEvdev, cfg.Scanner.Source)
	assert.False(t, cfg.GrabDevice())
	assert.Equal(t, "/etc/kiosk/catalog.toml", cfg.Catalog.Path)
	assert.Equal(t, filepath.Join("/srv/kiosk", "products", "Tea.png"), cfg.AssetPath("products/Tea.png"))
}

func TestLoadFS_Missing(t *testing.T) {
	_, err := LoadFS(memfs.New(), "missing.toml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("locale = \"de\"\n"), 0o644))

	cfg, used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "de", cfg.Locale)
}

func TestLoad_EnvPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))
	t.Setenv("SCANKIOSK_CONFIG", path)

	cfg, used, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestAssetPath(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "", cfg.AssetPath(""))
	assert.Equal(t, "/abs/img.png", cfg.AssetPath("/abs/img.png"))
	assert.Equal(t, filepath.Join("assets", "home-bg.png"), cfg.AssetPath("home-bg.png"))
}
