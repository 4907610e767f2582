package service

import (
	"fmt"
	"sync"

	"github.com/nvats/travelog/internal/domain"
)

// inflight is the re-entrancy guard for suspending operations (AI summary,
// AI cover, export). Each operation name has an independent flag: starting
// an operation whose flag is set returns domain.ErrBusy — the second call
// is rejected, never queued or cancelled. The release func must run on
// every exit path (callers defer it), so the flag can never stick.
type inflight struct {
	mu   sync.Mutex
	busy map[string]bool
}

func newInflight() *inflight {
	return &inflight{busy: make(map[string]bool)}
}

// start claims the flag for op. On success it returns the release func;
// on contention it returns domain.ErrBusy.
func (f *inflight) start(op string) (release func(), err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.busy[op] {
		return nil, fmt.Errorf("%w: %s", domain.ErrBusy, op)
	}
	f.busy[op] = true
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.busy[op] = false
	}, nil
}
