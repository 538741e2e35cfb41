package kiosk

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/internal/input"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/router"
	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedSource types one segment of keys, then waits for the kiosk to
// navigate before typing the next one.
type gatedSource struct {
	segments [][]string
	gate     chan struct{}
	err      error
}

func newGatedSource(segments ...[]string) *gatedSource {
	return &gatedSource{segments: segments, gate: make(chan struct{}, 16)}
}

func (s *gatedSource) Run(ctx context.Context, emit input.Emit) error {
	for i, seg := range s.segments {
		if i > 0 {
			select {
			case <-s.gate:
			case <-ctx.Done():
				return nil
			}
		}
		for _, k := range seg {
			emit(k)
		}
	}
	if s.err != nil {
		return s.err
	}
	<-ctx.Done()
	return nil
}

func keys(code string) []string {
	out := make([]string, 0, len(code)+1)
	for _, r := range code {
		out = append(out, string(r))
	}
	return append(out, "Enter")
}

type navLog struct {
	mu     sync.Mutex
	inputs []any
	to     []router.Screen
}

func (l *navLog) record(src *gatedSource) func(router.Screen, any) {
	return func(to router.Screen, in any) {
		l.mu.Lock()
		l.to = append(l.to, to)
		l.inputs = append(l.inputs, in)
		l.mu.Unlock()
		src.gate <- struct{}{}
	}
}

func (l *navLog) screens() []router.Screen {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]router.Screen(nil), l.to...)
}

func TestRunHeadless_ScanFlow(t *testing.T) {
	src := newGatedSource(
		keys("sc7"),   // home -> SC7
		keys("iv8"),   // SC7 -> IV8
		keys("bogus"), // IV8 -> home with toast
		keys("wt2"),   // home -> WT2
		keys("home"),  // WT2 -> home
	)

	app := newTestApp(t)
	log := &navLog{}
	app.OnNavigate = log.record(src)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- RunHeadless(ctx, app, src) }()

	require.Eventually(t, func() bool { return len(log.screens()) == 5 }, 5*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("headless run did not stop")
	}

	log.mu.Lock()
	defer log.mu.Unlock()

	require.GreaterOrEqual(t, len(log.to), 5)
	assert.Equal(t, []router.Screen{ScreenProduct, ScreenProduct, ScreenHome, ScreenProduct, ScreenHome}, log.to[:5])
	assert.Equal(t, "SC7", log.inputs[0].(ProductInput).Product.Code)
	assert.Equal(t, "IV8", log.inputs[1].(ProductInput).Product.Code)
	assert.Equal(t, "Unknown barcode: BOGUS", log.inputs[2].(HomeInput).Toast)
	assert.Equal(t, "WT2", log.inputs[3].(ProductInput).Product.Code)
	assert.Empty(t, log.inputs[4].(HomeInput).Toast)
}

func TestRunHeadless_BackToBackScansInOneBurst(t *testing.T) {
	src := newGatedSource(append(keys("sc7"), keys("vc9")...))

	app := newTestApp(t)
	log := &navLog{}
	app.OnNavigate = log.record(src)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- RunHeadless(ctx, app, src) }()

	require.Eventually(t, func() bool { return len(log.screens()) == 2 }, 5*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	log.mu.Lock()
	defer log.mu.Unlock()

	assert.Equal(t, []router.Screen{ScreenProduct, ScreenProduct}, log.to[:2])
	assert.Equal(t, "SC7", log.inputs[0].(ProductInput).Product.Code)
	assert.Equal(t, "VC9", log.inputs[1].(ProductInput).Product.Code)
}

func TestRunHeadless_HomeCodeAndUnknownStayHome(t *testing.T) {
	src := newGatedSource(append(append(keys("HOME"), keys("nope")...), keys("FM3")...))

	app := newTestApp(t)
	log := &navLog{}
	app.OnNavigate = log.record(src)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- RunHeadless(ctx, app, src) }()

	require.Eventually(t, func() bool { return len(log.screens()) == 1 }, 5*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, ScreenProduct, log.screens()[0])
}

func TestRunHeadless_IdleTimeoutCompletesScan(t *testing.T) {
	src := newGatedSource([]string{"V", "C", "9"})

	app := newTestApp(t)
	log := &navLog{}
	app.OnNavigate = log.record(src)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- RunHeadless(ctx, app, src, scanner.WithIdleTimeout(20*time.Millisecond)) }()

	require.Eventually(t, func() bool { return len(log.screens()) == 1 }, 5*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	log.mu.Lock()
	defer log.mu.Unlock()
	assert.Equal(t, "VC9", log.inputs[0].(ProductInput).Product.Code)
}

func TestRunHeadless_SourceEndsSession(t *testing.T) {
	src := newGatedSource(keys("SC7"))
	src.err = input.ErrInterrupted

	app := newTestApp(t)
	app.OnNavigate = func(router.Screen, any) {}

	err := RunHeadless(context.Background(), app, src)
	assert.NoError(t, err)
}

func TestRunHeadless_SourceErrorIsReturned(t *testing.T) {
	boom := errors.New("device unplugged")
	src := newGatedSource(nil)
	src.err = boom

	app := newTestApp(t)
	err := RunHeadless(context.Background(), app, src)
	assert.ErrorIs(t, err, boom)
}
