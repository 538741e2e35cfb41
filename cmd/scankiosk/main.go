// Command scankiosk runs the barcode scanner kiosk.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/config"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/kiosk"
)

func init() {
	// SDL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to config.toml (default: $SCANKIOSK_CONFIG or the XDG config dir)")
	catalogPath := flag.String("catalog", "", "Path to a catalog TOML file (overrides catalog.path)")
	source := flag.String("source", "", "Key source: sdl, evdev or terminal (overrides scanner.source)")
	device := flag.String("device", "", "evdev device path or name (overrides scanner.device)")
	headless := flag.Bool("headless", false, "Run without a window, reading keys from the terminal or evdev")
	windowed := flag.Bool("windowed", false, "Run in a window instead of fullscreen")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error (overrides log.level)")
	flag.Parse()

	if err := run(*configPath, overrides{
		catalog:  *catalogPath,
		source:   *source,
		device:   *device,
		windowed: *windowed,
		logLevel: *logLevel,
	}, *headless); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := failureHint(err, *headless); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}

// failureHint suggests a way around errors the kiosk cannot recover from.
func failureHint(err error, headless bool) string {
	switch {
	case scankiosk.IsInfrastructureError(err) && !headless:
		return "The display could not be started. Run with -headless to scan from a terminal or evdev device."
	case errors.Is(err, config.ErrUnknownKey):
		return "Check the config file for misspelled keys."
	}
	return ""
}

type overrides struct {
	catalog  string
	source   string
	device   string
	windowed bool
	logLevel string
}

func (o overrides) apply(cfg *config.Config) error {
	if o.catalog != "" {
		cfg.Catalog.Path = o.catalog
	}
	if o.source != "" {
		cfg.Scanner.Source = o.source
	}
	if o.device != "" {
		cfg.Scanner.Device = o.device
	}
	if o.windowed {
		cfg.Display.Windowed = true
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg.Validate()
}

func run(configPath string, o overrides, headless bool) error {
	cfg, loadedFrom, err := config.Load(configPath)
	// Flags may fix an invalid file, e.g. by naming the evdev device.
	if err != nil && !errors.Is(err, config.ErrInvalid) {
		return err
	}
	if err := o.apply(&cfg); err != nil {
		return err
	}

	logPath := cfg.Log.Path
	if logPath == "" {
		if logPath, err = config.DefaultLogPath(); err != nil {
			logPath = ""
		}
	}
	scankiosk.SetLogPath(logPath)
	scankiosk.SetRawLogLevel(cfg.Log.Level)

	logger := scankiosk.GetLogger()
	logger.Info("Configuration loaded", "path", loadedFrom, "log", logPath)

	cat, err := kiosk.LoadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if headless {
		return scankiosk.RunHeadless(ctx, cfg, cat)
	}
	return scankiosk.Run(ctx, cfg, cat)
}
