package scanner

import (
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// Scheduler schedules a callback after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled callback.
// Stop cancels the callback and reports whether it was still pending.
// Once Stop returns, the callback will not run.
type Timer interface {
	Stop() bool
}

// Dispatcher is a work queue drained by a single owning goroutine.
// Other goroutines hand work to the owner with Post; timers created with
// AfterFunc deliver their callback through the same queue, so every callback
// runs on the owner in arrival order.
type Dispatcher struct {
	mu    sync.Mutex
	queue []func()
	ready chan struct{}

	posted atomic.Int64
	ran    atomic.Int64
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		ready: make(chan struct{}, 1),
	}
}

// Post queues fn to run on the owning goroutine. Safe for concurrent use.
func (d *Dispatcher) Post(fn func()) {
	d.mu.Lock()
	d.queue = append(d.queue, fn)
	d.mu.Unlock()
	d.posted.Inc()

	select {
	case d.ready <- struct{}{}:
	default:
	}
}

// Ready returns a channel that receives a value whenever work has been posted.
// Use it in select loops, then call RunPending.
func (d *Dispatcher) Ready() <-chan struct{} {
	return d.ready
}

// RunPending runs all work queued so far and returns how many callbacks ran.
// Work posted by the callbacks themselves is left for the next call.
// Must only be called from the owning goroutine.
func (d *Dispatcher) RunPending() int {
	d.mu.Lock()
	batch := d.queue
	d.queue = nil
	d.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	d.ran.Add(int64(len(batch)))
	return len(batch)
}

// RunPendingUntil runs queued work like RunPending but checks stop before
// each callback. Once stop reports true the rest of the batch stays queued,
// ahead of anything posted since, for the next drain.
// Must only be called from the owning goroutine.
func (d *Dispatcher) RunPendingUntil(stop func() bool) int {
	d.mu.Lock()
	batch := d.queue
	d.queue = nil
	d.mu.Unlock()

	n := 0
	for n < len(batch) && !stop() {
		batch[n]()
		n++
	}
	d.ran.Add(int64(n))

	if rest := batch[n:]; len(rest) > 0 {
		d.mu.Lock()
		d.queue = append(rest[:len(rest):len(rest)], d.queue...)
		d.mu.Unlock()

		select {
		case d.ready <- struct{}{}:
		default:
		}
	}
	return n
}

// Run drains the queue until ctx is cancelled. The calling goroutine becomes the owner.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-d.ready:
			d.RunPending()
		}
	}
}

// Len returns the number of callbacks waiting to run.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// Stats returns the number of callbacks posted and run since creation.
func (d *Dispatcher) Stats() (posted, ran int64) {
	return d.posted.Load(), d.ran.Load()
}

const (
	timerPending int32 = iota
	timerFired
	timerStopped
)

type dispatchTimer struct {
	t     *time.Timer
	state atomic.Int32
}

// AfterFunc waits for dur and then queues fn on the dispatcher.
// If Stop is called before fn runs, fn never runs, even when the expiry is
// already sitting in the queue.
func (d *Dispatcher) AfterFunc(dur time.Duration, fn func()) Timer {
	dt := &dispatchTimer{}
	dt.t = time.AfterFunc(dur, func() {
		d.Post(func() {
			if dt.state.CompareAndSwap(timerPending, timerFired) {
				fn()
			}
		})
	})
	return dt
}

func (t *dispatchTimer) Stop() bool {
	if t.state.CompareAndSwap(timerPending, timerStopped) {
		t.t.Stop()
		return true
	}
	return false
}
