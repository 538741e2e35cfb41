package scankiosk

import (
	"context"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/catalog"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/config"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal/input"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/kiosk"
)

// Run opens the kiosk window and shows the catalog until the window is closed
// or ctx is done. Run owns SDL for its whole duration and must be called from
// the main OS thread.
func Run(ctx context.Context, cfg config.Config, cat *catalog.Catalog) error {
	logger := GetLogger()

	app, err := kiosk.NewApp(cfg, cat, logger)
	if err != nil {
		return err
	}

	if err := Init(Options{
		WindowTitle: cfg.Display.Title,
		Windowed:    cfg.Display.Windowed,
		FontPath:    cfg.Display.FontPath,
		Background:  cfg.AssetPath(cfg.Display.Background),
	}); err != nil {
		return err
	}
	defer Close()

	screens, err := NewScreens(ScreensOptions{
		Catalog:    cat,
		Scans:      app.Scans(),
		Display:    cfg.Display,
		AssetPath:  cfg.AssetPath,
		DecoderOps: kiosk.DecoderOptions(cfg.Scanner, internal.GetInternalLogger()),
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	defer screens.Close()
	app.Screens = screens

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screens.StartSource(ctx, kiosk.NewSource(cfg, logger))

	logger.Info("Kiosk started", "source", cfg.Scanner.Source, "products", cat.Len())
	err = app.Run(ctx)

	cancel()
	screens.Wait()
	return err
}

// RunHeadless runs the kiosk without a window, reading keys from the
// configured source. The sdl source has no meaning without a window, so
// stdin is read instead.
func RunHeadless(ctx context.Context, cfg config.Config, cat *catalog.Catalog) error {
	logger := GetLogger()
	defer internal.CloseLogger()

	app, err := kiosk.NewApp(cfg, cat, logger)
	if err != nil {
		return err
	}

	src := kiosk.NewSource(cfg, logger)
	if src == nil {
		src = input.NewTerminalSource()
	}

	logger.Info("Headless kiosk started", "source", cfg.Scanner.Source, "products", cat.Len())
	return kiosk.RunHeadless(ctx, app, src, kiosk.DecoderOptions(cfg.Scanner, internal.GetInternalLogger())...)
}
