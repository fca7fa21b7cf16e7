// Package sched schedules delayed callbacks with browser-timeout semantics:
// unique non-zero handles, negative delays clamped to zero, cancellation
// that is idempotent and ignores unknown handles.
package sched

import (
	"sync"
	"time"
)

// Handle identifies one pending callback. The zero Handle is never issued.
type Handle uint64

// Scheduler owns the pending-timer table. The zero value is not usable;
// call New.
type Scheduler struct {
	mu      sync.Mutex
	nextID  Handle
	pending map[Handle]*time.Timer
}

func New() *Scheduler {
	return &Scheduler{pending: map[Handle]*time.Timer{}}
}

// SetTimeout runs fn once after d and returns a handle that cancels the
// pending run. Delays below zero are treated as zero. fn runs on its own
// goroutine; callers that need loop affinity should make fn post a message
// to their loop instead of doing work directly.
func (s *Scheduler) SetTimeout(fn func(), d time.Duration) Handle {
	if d < 0 {
		d = 0
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.pending[id] = time.AfterFunc(d, func() {
		s.mu.Lock()
		_, live := s.pending[id]
		delete(s.pending, id)
		s.mu.Unlock()
		// A concurrent Clear may have won the race after the timer fired
		// but before this callback ran; honor the cancellation.
		if live {
			fn()
		}
	})
	s.mu.Unlock()
	return id
}

// Clear cancels the pending callback for h. Clearing an already-fired,
// already-cleared, or unknown handle is a no-op.
func (s *Scheduler) Clear(h Handle) {
	s.mu.Lock()
	t, ok := s.pending[h]
	delete(s.pending, h)
	s.mu.Unlock()
	if ok {
		t.Stop()
	}
}

// Pending reports how many callbacks are currently scheduled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Shutdown cancels everything still pending.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	for id, t := range s.pending {
		t.Stop()
		delete(s.pending, id)
	}
	s.mu.Unlock()
}
