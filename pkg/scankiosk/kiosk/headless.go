package kiosk

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal/input"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/scanner"
)

// Headless implements Screens without a display. It reads keys from a
// Source, decodes them the same way the windowed screens do, and logs what
// would have been shown.
type Headless struct {
	source     input.Source
	scans      Scans
	hub        *scanner.Hub
	dispatcher *scanner.Dispatcher
	decoderOps []scanner.Option
	logger     *slog.Logger

	done      chan struct{}
	sourceErr error
}

// NewHeadless creates headless screens reading from src.
func NewHeadless(src input.Source, scans Scans, logger *slog.Logger, opts ...scanner.Option) *Headless {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Headless{
		source:     src,
		scans:      scans,
		hub:        scanner.NewHub(),
		dispatcher: scanner.NewDispatcher(),
		decoderOps: opts,
		logger:     logger,
		done:       make(chan struct{}),
	}
}

// RunHeadless runs app on headless screens reading from src until the source
// ends, the user interrupts it, or ctx is cancelled.
func RunHeadless(ctx context.Context, app *App, src input.Source, opts ...scanner.Option) error {
	h := NewHeadless(src, app.Scans(), app.logger(), opts...)
	app.Screens = h

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.readSource(ctx)
	}()

	err := app.Run(ctx)
	cancel()
	wg.Wait()

	if err != nil {
		return err
	}
	return h.sourceErr
}

func (h *Headless) readSource(ctx context.Context) {
	err := h.source.Run(ctx, func(key string) {
		h.dispatcher.Post(func() {
			h.hub.Publish(scanner.NewKeyEvent(key))
		})
	})
	if errors.Is(err, input.ErrInterrupted) {
		h.logger.Info("Interrupted")
		err = nil
	}
	h.sourceErr = err
	close(h.done)
}

func (h *Headless) Home(ctx context.Context, in HomeInput) (HomeResult, error) {
	h.logger.Info("Showing home")
	if in.Toast != "" {
		h.logger.Warn("Toast", "message", in.Toast)
	}

	var (
		result   HomeResult
		finished bool
	)
	dec := scanner.NewDecoder(h.dispatcher, func(ev scanner.ScanEvent) {
		if finished {
			return
		}
		res, toast, done := h.scans.OnHome(ev.Code)
		if toast != "" {
			h.logger.Warn("Toast", "message", toast)
		}
		if done {
			result, finished = res, true
		}
	}, h.decoderOps...)

	if err := h.loop(ctx, dec, func() bool { return finished }); err != nil || !finished {
		return HomeResult{Action: HomeActionExit}, err
	}
	return result, nil
}

func (h *Headless) Product(ctx context.Context, in ProductInput) (ProductResult, error) {
	h.logger.Info("Showing product", "code", in.Product.Code, "name", in.Product.Name)

	var (
		result   ProductResult
		finished bool
	)
	dec := scanner.NewDecoder(h.dispatcher, func(ev scanner.ScanEvent) {
		if finished {
			return
		}
		result, finished = h.scans.OnProduct(ev.Code), true
	}, h.decoderOps...)

	if err := h.loop(ctx, dec, func() bool { return finished }); err != nil || !finished {
		return ProductResult{Action: ProductActionExit}, err
	}
	return result, nil
}

// loop activates dec and drains the dispatcher until finished reports true,
// the source ends, or ctx is done.
func (h *Headless) loop(ctx context.Context, dec *scanner.Decoder, finished func() bool) error {
	if err := dec.Activate(h.hub); err != nil {
		return err
	}
	defer dec.Deactivate()

	for !finished() {
		select {
		case <-ctx.Done():
			return nil
		case <-h.dispatcher.Ready():
			// Keys behind a finishing scan belong to the next screen.
			h.dispatcher.RunPendingUntil(finished)
		case <-h.done:
			// Keys posted before the source ended still count.
			h.dispatcher.RunPendingUntil(finished)
			return nil
		}
	}
	return nil
}
