package session

import (
	"sync"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Tests inject a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock schedules callbacks with time.AfterFunc.
type SystemClock struct{}

// AfterFunc implements Clock.
func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer delays a commit until input has been quiet for the given delay.
// Each Schedule cancels the previous pending commit: the last value wins and
// at most one commit is pending.
type Debouncer[T any] struct {
	clock  Clock
	commit func(T)

	mu      sync.Mutex
	timer   Timer
	value   T
	pending bool
	seq     uint64
}

// NewDebouncer creates a debouncer that calls commit on the clock's goroutine.
func NewDebouncer[T any](clock Clock, commit func(T)) *Debouncer[T] {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Debouncer[T]{clock: clock, commit: commit}
}

// Schedule cancels any pending commit and arms a new one for v after delay.
func (d *Debouncer[T]) Schedule(v T, delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.seq++
	seq := d.seq
	d.value = v
	d.pending = true
	d.timer = d.clock.AfterFunc(delay, func() { d.fire(seq) })
}

// Cancel drops the pending commit. It reports whether one was pending.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	was := d.pending
	d.stopLocked()
	return was
}

// Flush commits the pending value immediately, if any.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	v := d.value
	d.stopLocked()
	d.mu.Unlock()

	d.commit(v)
	return true
}

// Pending reports whether a commit is armed.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	// A newer Schedule or a Cancel may have raced with the timer.
	if !d.pending || seq != d.seq {
		d.mu.Unlock()
		return
	}
	v := d.value
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	d.commit(v)
}

func (d *Debouncer[T]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
	d.seq++
	var zero T
	d.value = zero
}
