// Package scanner turns a raw stream of key presses into discrete barcode scans.
//
// Hardware barcode scanners usually present themselves as USB keyboards: a scan
// arrives as a fast burst of printable characters, optionally followed by Enter.
// A Decoder subscribes to a key stream (Source), buffers printable characters and
// emits a normalized ScanEvent either when the terminator key arrives or when the
// stream has been idle for the configured timeout (300ms by default).
//
// # Threading
//
// A Decoder is not safe for concurrent use. It is meant to be driven from a single
// goroutine, the same way a UI event loop drives its handlers. Idle timers are
// scheduled through a Scheduler; the Dispatcher implementation queues timer
// expiries back onto the owning goroutine so that key handling and expiry never
// race:
//
//	d := scanner.NewDispatcher()
//	hub := scanner.NewHub()
//
//	dec := scanner.NewDecoder(d, func(ev scanner.ScanEvent) {
//	    fmt.Println("scanned", ev.Code)
//	})
//	if err := dec.Activate(hub); err != nil {
//	    return err
//	}
//	defer dec.Deactivate()
//
//	// Producers on other goroutines hand key presses to the loop.
//	d.Post(func() { hub.Publish(scanner.NewKeyEvent("a")) })
//
//	// The owning goroutine drains the queue.
//	_ = d.Run(ctx)
//
// # Key policy
//
// Every key identifier is classified exactly once by a KeyPolicy, in this order:
// ignored keys (modifiers, arrows, Tab, Escape...), the terminator, single
// printable characters, and finally everything else, which is filtered out.
// Only terminator and printable keys have their default action prevented.
package scanner
