// Package overlaytest provides a manually advanced Scheduler for deterministic tests
// of timed overlay feedback.
package overlaytest

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/overlay"
)

// Scheduler is an overlay.Scheduler whose clock only moves when Advance is called.
// Callbacks run synchronously on the goroutine calling Advance.
type Scheduler struct {
	mu     sync.Mutex
	now    time.Duration
	nextID int
	timers []*timer
}

type timer struct {
	s        *Scheduler
	id       int
	deadline time.Duration
	f        func()
	stopped  bool
	fired    bool
}

var _ overlay.Scheduler = &Scheduler{}

// NewScheduler creates a Scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) AfterFunc(d time.Duration, f func()) overlay.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t := &timer{s: s, id: s.nextID, deadline: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// Now returns the elapsed manual time.
func (s *Scheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Scheduled returns the number of timers that are neither stopped nor fired.
func (s *Scheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d and runs every timer that comes due, in
// deadline order (ties in creation order).
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*timer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.deadline <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.timers = slices.DeleteFunc(s.timers, func(t *timer) bool { return t.fired || t.stopped })
	s.mu.Unlock()

	slices.SortStableFunc(due, func(a, b *timer) int {
		if a.deadline != b.deadline {
			return cmp.Compare(a.deadline, b.deadline)
		}
		return a.id - b.id
	})
	for _, t := range due {
		t.f()
	}
}

func (t *timer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
