package worker

import (
	"context"
	"sync"
	"time"

	"eventhub/internal/domain/lifecycle"
)

// stopper lets an fx OnStop hook cancel a running Serve loop and wait for
// it to return.
type stopper struct {
	once sync.Once
	quit chan struct{}
	done chan struct{}
}

func newStopper() *stopper {
	return &stopper{
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// run derives a context cancelled by stop. finish must be called when
// the loop returns.
func (s *stopper) run(ctx context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		select {
		case <-s.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		cancel()
		close(s.done)
	}
}

func (s *stopper) stop(ctx context.Context) error {
	s.once.Do(func() { close(s.quit) })

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.done:
	case <-waitCtx.Done():
	}

	return nil
}

// sleep waits for d or until ctx is done, reporting whether to continue.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
