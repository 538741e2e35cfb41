package kiosk

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/catalog"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/config"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/i18n"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal/input"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/navigator"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/scanner"
	"github.com/go-git/go-billy/v5/osfs"
)

// NewApp builds a kiosk over cat using the locale and home code from cfg.
// Screens must be set before Run.
func NewApp(cfg config.Config, cat *catalog.Catalog, logger *slog.Logger) (*App, error) {
	if cat == nil {
		return nil, fmt.Errorf("kiosk: nil catalog")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	msgs, err := i18n.New(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("kiosk: %w", err)
	}

	nav := navigator.New(cat,
		navigator.WithHomeCode(cfg.Scanner.HomeCode),
		navigator.WithLogger(logger),
	)

	logger.Debug("Kiosk configured",
		"products", cat.Len(),
		"catalog_version", cat.Version(),
		"locale", msgs.Language().String(),
		"home_code", nav.HomeCode(),
	)

	return &App{Nav: nav, Msgs: msgs, Logger: logger}, nil
}

// LoadCatalog reads the catalog file named in cfg, or returns the embedded
// catalog when no file is configured.
func LoadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", cfg.Path, err)
	}
	return catalog.Load(osfs.New(filepath.Dir(abs)), filepath.Base(abs))
}

// DecoderOptions returns the scan decoder settings in cfg.
func DecoderOptions(cfg config.ScannerConfig, logger *slog.Logger) []scanner.Option {
	ignored := cfg.IgnoredKeys
	if len(ignored) == 0 {
		ignored = scanner.DefaultIgnoredKeys
	}

	opts := []scanner.Option{
		scanner.WithKeyPolicy(scanner.NewKeyPolicy(cfg.Terminator, ignored...)),
	}
	if cfg.IdleTimeout.Duration > 0 {
		opts = append(opts, scanner.WithIdleTimeout(cfg.IdleTimeout.Duration))
	}
	if logger != nil {
		opts = append(opts, scanner.WithLogger(logger))
	}
	return opts
}

// NewSource returns the standalone key reader for the configured source.
// The sdl source is read by the window itself, so it has none and nil is returned.
func NewSource(cfg config.Config, logger *slog.Logger) input.Source {
	switch cfg.Scanner.Source {
	case config.SourceEvdev:
		return &input.EvdevSource{
			Device: cfg.ScannerDevice(),
			Grab:   cfg.GrabDevice(),
			Logger: logger,
		}
	case config.SourceTerminal:
		return input.NewTerminalSource()
	}
	return nil
}
