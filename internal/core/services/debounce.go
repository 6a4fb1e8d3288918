package services

import (
	"sync"
	"time"
)

// DebounceScheduler coalesces bursts of triggers into one execution per key:
// Schedule cancels any pending timer for the same key before arming a new
// one, so the function runs once, delay after the last trigger (trailing
// debounce). An in-flight function is never interrupted.
type DebounceScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewDebounceScheduler creates an empty scheduler.
func NewDebounceScheduler() *DebounceScheduler {
	return &DebounceScheduler{timers: make(map[string]*time.Timer)}
}

// Schedule arms fn to run after delay, replacing any pending schedule for
// the same key.
func (d *DebounceScheduler) Schedule(key string, delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.timers[key] = time.AfterFunc(delay, func() {
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops a pending schedule for key, if any. Returns whether a timer
// was pending.
func (d *DebounceScheduler) Cancel(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.timers[key]
	if ok {
		t.Stop()
		delete(d.timers, key)
	}
	return ok
}

// CancelAll drops every pending schedule.
func (d *DebounceScheduler) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for key, t := range d.timers {
		t.Stop()
		delete(d.timers, key)
	}
}
