package scanner

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
	"github.com/google/uuid"
	"go.uber.org/atomic"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrAlreadyActive is returned by Activate when the decoder is already attached to a source.
var ErrAlreadyActive = errors.New("scanner: decoder already active")

// Trigger records what completed a scan.
type Trigger int

const (
	TriggerTerminator Trigger = iota // Terminator key pressed
	TriggerIdle                      // Idle timeout expired
)

func (t Trigger) String() string {
	if t == TriggerIdle {
		return "idle"
	}
	return "terminator"
}

// ScanEvent is one completed scan. Code is upper-cased with outer whitespace trimmed.
type ScanEvent struct {
	ID      uuid.UUID
	Code    string
	Trigger Trigger
	At      time.Time
}

// ScanFunc receives completed scans. It is called synchronously from the
// key handler or timer callback that completed the scan.
type ScanFunc func(ev ScanEvent)

// Stats counts decoder outcomes since creation.
type Stats struct {
	Scans       int64 // Scans emitted
	EmptyScans  int64 // Completions dropped because the buffer was blank
	IgnoredKeys int64 // Keys in the ignored set
	Filtered    int64 // Non-printable keys outside the ignored set
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithIdleTimeout sets the idle gap that completes a scan without a terminator.
func WithIdleTimeout(d time.Duration) Option {
	return func(dec *Decoder) {
		if d > 0 {
			dec.idle = d
		}
	}
}

// WithKeyPolicy replaces the default terminator and ignored key set.
func WithKeyPolicy(p KeyPolicy) Option {
	return func(dec *Decoder) {
		dec.policy = p
	}
}

// WithLogger sets the logger used for debug tracing of scan completion.
func WithLogger(l *slog.Logger) Option {
	return func(dec *Decoder) {
		if l != nil {
			dec.logger = l
		}
	}
}

// WithClock overrides the time source used to stamp ScanEvents.
func WithClock(now func() time.Time) Option {
	return func(dec *Decoder) {
		if now != nil {
			dec.now = now
		}
	}
}

// Decoder reconstructs discrete scans from a key stream.
// It owns exactly one buffer and at most one pending idle timer.
type Decoder struct {
	sched  Scheduler
	onScan ScanFunc
	policy KeyPolicy
	idle   time.Duration
	logger *slog.Logger
	now    func() time.Time
	upper  cases.Caser

	buf      strings.Builder
	timer    Timer
	timerSeq uint64

	active      bool
	unsubscribe func()

	scans       atomic.Int64
	emptyScans  atomic.Int64
	ignoredKeys atomic.Int64
	filtered    atomic.Int64
}

// NewDecoder creates a decoder that schedules idle timers on sched and reports
// completed scans to onScan.
func NewDecoder(sched Scheduler, onScan ScanFunc, opts ...Option) *Decoder {
	d := &Decoder{
		sched:  sched,
		onScan: onScan,
		policy: DefaultKeyPolicy(),
		idle:   constants.DefaultScanIdleTimeout,
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
		upper:  cases.Upper(language.Und),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Activate attaches the decoder to src. Each activation owns a fresh buffer.
func (d *Decoder) Activate(src Source) error {
	if d.active {
		return ErrAlreadyActive
	}
	d.reset()
	d.active = true
	d.unsubscribe = src.Subscribe(func(ev *KeyEvent) {
		if d.active {
			d.HandleKey(ev)
		}
	})
	return nil
}

// Deactivate detaches the decoder from its source and cancels any pending timer.
// No scan is emitted after Deactivate returns. Calling it twice is harmless.
func (d *Decoder) Deactivate() {
	if !d.active {
		return
	}
	d.active = false
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	d.reset()
}

// Active reports whether the decoder is attached to a source.
func (d *Decoder) Active() bool {
	return d.active
}

// HandleKey feeds one key press through the decoder.
func (d *Decoder) HandleKey(ev *KeyEvent) {
	switch d.policy.Classify(ev.Key) {
	case KeyIgnored:
		d.ignoredKeys.Inc()

	case KeyTerminator:
		ev.PreventDefault()
		d.complete(TriggerTerminator)

	case KeyData:
		ev.PreventDefault()
		d.buf.WriteString(ev.Key)
		d.cancelTimer()
		d.scheduleTimer()

	default:
		d.filtered.Inc()
	}
}

// Flush discards the buffered characters and any pending timer without emitting.
func (d *Decoder) Flush() {
	d.reset()
}

// Pending returns the characters buffered so far.
func (d *Decoder) Pending() string {
	return d.buf.String()
}

// HasPendingTimer reports whether an idle timer is outstanding.
func (d *Decoder) HasPendingTimer() bool {
	return d.timer != nil
}

// Stats returns a snapshot of the decoder counters.
func (d *Decoder) Stats() Stats {
	return Stats{
		Scans:       d.scans.Load(),
		EmptyScans:  d.emptyScans.Load(),
		IgnoredKeys: d.ignoredKeys.Load(),
		Filtered:    d.filtered.Load(),
	}
}

func (d *Decoder) scheduleTimer() {
	d.timerSeq++
	seq := d.timerSeq
	d.timer = d.sched.AfterFunc(d.idle, func() {
		d.expire(seq)
	})
}

func (d *Decoder) cancelTimer() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Decoder) expire(seq uint64) {
	// superseded or cancelled
	if seq != d.timerSeq || d.timer == nil {
		return
	}
	d.timer = nil
	d.complete(TriggerIdle)
}

// complete ends the current scan. The buffer is always cleared; an event is
// emitted only if something other than whitespace was buffered.
func (d *Decoder) complete(trigger Trigger) {
	code := strings.TrimSpace(d.buf.String())
	d.buf.Reset()
	d.cancelTimer()

	if code == "" {
		d.emptyScans.Inc()
		d.logger.Debug("Dropped empty scan", "trigger", trigger.String())
		return
	}

	ev := ScanEvent{
		ID:      uuid.New(),
		Code:    d.upper.String(code),
		Trigger: trigger,
		At:      d.now(),
	}
	d.scans.Inc()
	d.logger.Debug("Scan completed", "id", ev.ID.String(), "code", ev.Code, "trigger", trigger.String())

	if d.onScan != nil {
		d.onScan(ev)
	}
}

func (d *Decoder) reset() {
	d.cancelTimer()
	d.timerSeq++
	d.buf.Reset()
}
