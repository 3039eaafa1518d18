package cart

import (
	"context"
	"sync"

	"github.com/gemfold/atelier/pkg/errors"
)

// Guard wraps a Submitter so that at most one mutation is in flight per
// guard. A second submission while one is pending fails fast with ErrBusy
// instead of issuing a duplicate request for the same user action.
//
// A guard is owned by a single UI view instance, the same as the selection
// state it protects; the mutex only defends against re-entrant event
// handlers, not cross-view sharing.
type Guard struct {
	mu        sync.Mutex
	busy      bool
	submitter Submitter
}

// NewGuard creates a submission guard around the given submitter.
func NewGuard(submitter Submitter) *Guard {
	return &Guard{submitter: submitter}
}

// Busy reports whether a mutation is currently in flight. UI controls use
// this to render their busy state.
func (g *Guard) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// Submit issues an "add line" mutation. If the hosting view's context is
// canceled while the request is in flight, the result is discarded and
// ErrCanceled is returned instead.
func (g *Guard) Submit(ctx context.Context, payload MutationPayload) error {
	return g.run(ctx, func() error {
		return g.submitter.AddLine(ctx, payload)
	})
}

// Update issues an "update line" mutation for an existing cart item.
func (g *Guard) Update(ctx context.Context, itemID string, payload MutationPayload) error {
	return g.run(ctx, func() error {
		return g.submitter.UpdateLine(ctx, itemID, payload)
	})
}

// run executes fn under the single-flight guard.
func (g *Guard) run(ctx context.Context, fn func() error) error {
	if err := g.acquire(); err != nil {
		return err
	}
	defer g.release()

	err := fn()

	// The view unmounted or the user navigated away: discard the result.
	if ctx.Err() != nil {
		return errors.WrapResource("submit", "cart item", "", errors.ErrCanceled)
	}
	return err
}

// acquire marks the guard busy, failing if a mutation is already pending.
func (g *Guard) acquire() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return errors.ErrBusy
	}
	g.busy = true
	return nil
}

// release clears the busy flag.
func (g *Guard) release() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}
