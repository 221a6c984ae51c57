// This file is part of the program "pa-cycle-profile".
// Please see the LICENSE file for copyright information.

package main

import (
	"context"
	"sync"
)

// mainloop runs queued callbacks one at a time on the goroutine that called
// Run. Other goroutines only ever enqueue work through Post.
type mainloop struct {
	mu      sync.Mutex
	pending []func() error
	wake    chan struct{}

	quit   bool
	retval int
}

func newMainloop() *mainloop {
	return &mainloop{wake: make(chan struct{}, 1)}
}

// Post queues f to run on the loop. It never blocks and may be called from
// any goroutine, including from inside a running callback.
func (m *mainloop) Post(f func() error) {
	m.mu.Lock()
	m.pending = append(m.pending, f)
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Quit makes Run return retval once the current callback finishes.
func (m *mainloop) Quit(retval int) {
	m.quit = true
	m.retval = retval
}

func (m *mainloop) next() func() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return nil
	}
	f := m.pending[0]
	m.pending[0] = nil
	m.pending = m.pending[1:]
	return f
}

// Run dispatches callbacks until one of them calls Quit or returns an error,
// or until ctx is done.
func (m *mainloop) Run(ctx context.Context) (int, error) {
	for {
		f := m.next()
		if f == nil {
			select {
			case <-m.wake:
				continue
			case <-ctx.Done():
				return -1, fatalf("interrupted")
			}
		}

		if err := f(); err != nil {
			return -1, err
		}
		if m.quit {
			return m.retval, nil
		}
	}
}
