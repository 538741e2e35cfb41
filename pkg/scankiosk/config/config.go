// Package config loads the kiosk configuration from a TOML file.
//
// Lookup order for the configuration file:
//  1. an explicit path (the -config flag)
//  2. the SCANKIOSK_CONFIG environment variable
//  3. $XDG_CONFIG_HOME/scankiosk/config.toml and the XDG config dirs
//
// When no file is found the built-in defaults are used. Zero values in a file
// fall back to the same defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// RelPath is the configuration file location relative to the XDG config dirs.
const RelPath = "scankiosk/config.toml"

// Key sources the scanner can read from.
const (
	SourceSDL      = "sdl"      // Keyboard events delivered to the kiosk window
	SourceEvdev    = "evdev"    // A dedicated Linux input device
	SourceTerminal = "terminal" // Raw stdin, for headless development
)

var (
	// ErrInvalid marks a file that decoded but failed Validate. The returned
	// Config is still defaulted, so overrides may repair it.
	ErrInvalid = errors.New("invalid configuration")

	// ErrUnknownKey marks a file naming keys the kiosk does not know. No
	// usable Config comes with it.
	ErrUnknownKey = errors.New("unknown configuration key")
)

// Duration is a time.Duration that decodes from TOML strings like "300ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the complete kiosk configuration.
type Config struct {
	Locale  string        `toml:"locale"`
	Scanner ScannerConfig `toml:"scanner"`
	Catalog CatalogConfig `toml:"catalog"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// ScannerConfig configures the key source and scan decoder.
type ScannerConfig struct {
	Source      string   `toml:"source"`       // sdl, evdev or terminal
	Device      string   `toml:"device"`       // evdev device path, or a substring of its name
	Grab        *bool    `toml:"grab"`         // Grab the evdev device exclusively (default true)
	IdleTimeout Duration `toml:"idle_timeout"` // Gap that completes a scan without a terminator
	Terminator  string   `toml:"terminator"`
	IgnoredKeys []string `toml:"ignored_keys"` // Replaces the default ignored set when non-empty
	HomeCode    string   `toml:"home_code"`
}

// CatalogConfig locates the product table and its artwork.
type CatalogConfig struct {
	Path      string `toml:"path"`   // Empty uses the embedded catalog
	AssetsDir string `toml:"assets"` // Root for tile, product and background images
}

// DisplayConfig controls the kiosk window and layout.
type DisplayConfig struct {
	Title         string   `toml:"title"`
	Windowed      bool     `toml:"windowed"`
	Background    string   `toml:"background"` // Relative to the assets dir
	Banner        string   `toml:"banner"`     // Relative to the assets dir
	FontPath      string   `toml:"font"`
	Columns       int      `toml:"columns"`
	TileSize      int32    `toml:"tile_size"`
	TileGap       int32    `toml:"tile_gap"`
	ToastDuration Duration `toml:"toast_duration"`
}

// LogConfig controls the structured log output.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Locale: "en",
		Scanner: ScannerConfig{
			Source:      SourceSDL,
			IdleTimeout: Duration{constants.DefaultScanIdleTimeout},
			Terminator:  constants.KeyEnter,
			HomeCode:    constants.DefaultHomeCode,
		},
		Catalog: CatalogConfig{
			AssetsDir: "assets",
		},
		Display: DisplayConfig{
			Title:         "Barcode Scanner Kiosk",
			Background:    "home-bg.png",
			Banner:        "homescr/signals-room-box.png",
			Columns:       constants.DefaultGridColumns,
			TileSize:      constants.DefaultTileSize,
			TileGap:       constants.DefaultTileGap,
			ToastDuration: Duration{constants.DefaultToastDuration},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Resolve returns the configuration file to read, or "" when none exists.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(constants.ConfigPathEnvVar); env != "" {
		return env
	}
	if path, err := xdg.SearchConfigFile(RelPath); err == nil {
		return path
	}
	return ""
}

// Load resolves and reads the configuration file from the OS filesystem.
// A missing implicit file is not an error; a missing explicit one is.
func Load(explicit string) (Config, string, error) {
	path := Resolve(explicit)
	if path == "" {
		cfg := Default()
		return cfg, "", cfg.Validate()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return Config{}, path, fmt.Errorf("config: %s: %w", path, err)
	}

	cfg, err := LoadFS(osfs.New(filepath.Dir(abs)), filepath.Base(abs))
	return cfg, abs, err
}

// LoadFS reads a configuration file from fs and applies defaults to unset fields.
func LoadFS(fs billy.Filesystem, path string) (Config, error) {
	data, err := util.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML document. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: %w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.Locale == "" {
		c.Locale = def.Locale
	}

	if c.Scanner.Source == "" {
		c.Scanner.Source = def.Scanner.Source
	}
	if c.Scanner.IdleTimeout.Duration == 0 {
		c.Scanner.IdleTimeout = def.Scanner.IdleTimeout
	}
	if c.Scanner.Terminator == "" {
		c.Scanner.Terminator = def.Scanner.Terminator
	}
	if c.Scanner.HomeCode == "" {
		c.Scanner.HomeCode = def.Scanner.HomeCode
	}

	if c.Catalog.AssetsDir == "" {
		c.Catalog.AssetsDir = def.Catalog.AssetsDir
	}

	if c.Display.Title == "" {
		c.Display.Title = def.Display.Title
	}
	if c.Display.Background == "" {
		c.Display.Background = def.Display.Background
	}
	if c.Display.Banner == "" {
		c.Display.Banner = def.Display.Banner
	}
	if c.Display.Columns == 0 {
		c.Display.Columns = def.Display.Columns
	}
	if c.Display.TileSize == 0 {
		c.Display.TileSize = def.Display.TileSize
	}
	if c.Display.TileGap == 0 {
		c.Display.TileGap = def.Display.TileGap
	}
	if c.Display.ToastDuration.Duration == 0 {
		c.Display.ToastDuration = def.Display.ToastDuration
	}

	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Scanner.Source {
	case SourceSDL, SourceEvdev, SourceTerminal:
	default:
		return fmt.Errorf("config: %w: scanner.source %q", ErrInvalid, c.Scanner.Source)
	}
	if c.Scanner.Source == SourceEvdev && c.Scanner.Device == "" && os.Getenv(constants.ScannerDeviceEnvVar) == "" {
		return fmt.Errorf("config: %w: scanner.device is required for the evdev source", ErrInvalid)
	}
	if c.Scanner.IdleTimeout.Duration <= 0 {
		return fmt.Errorf("config: %w: scanner.idle_timeout must be positive", ErrInvalid)
	}
	if c.Scanner.Terminator == "" {
		return fmt.Errorf("config: %w: scanner.terminator is empty", ErrInvalid)
	}
	if c.Display.Columns <= 0 {
		return fmt.Errorf("config: %w: display.columns must be positive", ErrInvalid)
	}
	if c.Display.TileSize <= 0 || c.Display.TileGap < 0 {
		return fmt.Errorf("config: %w: display tile size/gap", ErrInvalid)
	}
	if c.Display.ToastDuration.Duration <= 0 {
		return fmt.Errorf("config: %w: display.toast_duration must be positive", ErrInvalid)
	}
	return nil
}

// GrabDevice reports whether the evdev device should be grabbed exclusively.
// Grabbing keeps scanner keystrokes away from every other reader of the device.
func (c Config) GrabDevice() bool {
	return c.Scanner.Grab == nil || *c.Scanner.Grab
}

// ScannerDevice returns the configured evdev device, preferring SCANNER_DEVICE.
func (c Config) ScannerDevice() string {
	if env := os.Getenv(constants.ScannerDeviceEnvVar); env != "" {
		return env
	}
	return c.Scanner.Device
}

// AssetPath joins a catalog-relative asset path onto the assets dir.
// Absolute paths are returned unchanged; empty stays empty.
func (c Config) AssetPath(rel string) string {
	if rel == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.Catalog.AssetsDir, filepath.FromSlash(rel))
}

// DefaultLogPath returns the XDG state location for the log file, creating its directory.
func DefaultLogPath() (string, error) {
	return xdg.StateFile("scankiosk/scankiosk.log")
}
