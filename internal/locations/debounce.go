package locations

import (
	"sync"
	"time"
)

// Debouncer is a trailing debounce over a stream of input values: the emit
// function runs with the latest value once no new value has arrived for the
// configured delay. Every new value restarts the timer, so a burst of
// keystrokes produces exactly one emission. Nothing is emitted after Stop.
type Debouncer struct {
	delay time.Duration
	emit  func(string)

	mu      sync.Mutex
	gen     uint64
	timer   *time.Timer
	stopped bool
}

// NewDebouncer creates a debouncer that calls emit after delay of quiescence.
// emit runs with the debouncer's lock held and must not call Send or Stop.
func NewDebouncer(delay time.Duration, emit func(string)) *Debouncer {
	return &Debouncer{delay: delay, emit: emit}
}

// Send feeds a new input value, restarting the quiescence timer.
func (d *Debouncer) Send(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		// A newer value or Stop superseded this timer while it was firing.
		if d.stopped || gen != d.gen {
			return
		}
		// Emit under the lock: a Send landing mid-emission would otherwise
		// let this superseded value slip out after the newer one.
		d.emit(value)
	})
}

// Stop tears the debouncer down; any pending emission is dropped.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
