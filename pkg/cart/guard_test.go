package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemfold/atelier/pkg/errors"
)

// blockingSubmitter holds AddLine open until released, so tests can observe
// the in-flight state.
type blockingSubmitter struct {
	entered chan struct{}
	release chan struct{}
	calls   int
	mu      sync.Mutex
}

func newBlockingSubmitter() *blockingSubmitter {
	return &blockingSubmitter{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (s *blockingSubmitter) AddLine(_ context.Context, _ MutationPayload) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	close(s.entered)
	<-s.release
	return nil
}

func (s *blockingSubmitter) UpdateLine(_ context.Context, _ string, _ MutationPayload) error {
	return nil
}

type recordingSubmitter struct {
	added   []MutationPayload
	updated map[string]MutationPayload
	err     error
}

func (s *recordingSubmitter) AddLine(_ context.Context, payload MutationPayload) error {
	if s.err != nil {
		return s.err
	}
	s.added = append(s.added, payload)
	return nil
}

func (s *recordingSubmitter) UpdateLine(_ context.Context, itemID string, payload MutationPayload) error {
	if s.err != nil {
		return s.err
	}
	if s.updated == nil {
		s.updated = make(map[string]MutationPayload)
	}
	s.updated[itemID] = payload
	return nil
}

func TestGuardSingleFlight(t *testing.T) {
	submitter := newBlockingSubmitter()
	guard := NewGuard(submitter)

	done := make(chan error, 1)
	go func() {
		done <- guard.Submit(context.Background(), MutationPayload{ProductID: "p1", Quantity: 1})
	}()

	<-submitter.entered
	assert.True(t, guard.Busy(), "guard should report busy while in flight")

	// A second click while in flight fails fast
	err := guard.Submit(context.Background(), MutationPayload{ProductID: "p1", Quantity: 1})
	require.Error(t, err)
	assert.True(t, errors.IsBusy(err))

	close(submitter.release)
	require.NoError(t, <-done)
	assert.False(t, guard.Busy(), "guard should clear busy after completion")

	// And the guard is reusable afterwards
	submitter2 := &recordingSubmitter{}
	guard2 := NewGuard(submitter2)
	require.NoError(t, guard2.Submit(context.Background(), MutationPayload{ProductID: "p2", Quantity: 2}))
	assert.Len(t, submitter2.added, 1)
}

func TestGuardDiscardsResultAfterCancel(t *testing.T) {
	submitter := newBlockingSubmitter()
	guard := NewGuard(submitter)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- guard.Submit(ctx, MutationPayload{ProductID: "p1", Quantity: 1})
	}()

	<-submitter.entered
	cancel() // view unmounts mid-flight
	close(submitter.release)

	err := <-done
	require.Error(t, err)
	assert.True(t, errors.IsCanceled(err), "result should be discarded as canceled, got %v", err)
}

func TestGuardUpdate(t *testing.T) {
	submitter := &recordingSubmitter{}
	guard := NewGuard(submitter)

	payload := MutationPayload{ProductID: "p1", Quantity: 3, RingSize: "7"}
	require.NoError(t, guard.Update(context.Background(), "line-1", payload))
	assert.Equal(t, payload, submitter.updated["line-1"])
}

func TestGuardPropagatesSubmitterError(t *testing.T) {
	apiErr := errors.NewAPIError("/cart/items", 500, "upstream down")
	guard := NewGuard(&recordingSubmitter{err: apiErr})

	err := guard.Submit(context.Background(), MutationPayload{ProductID: "p1", Quantity: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
	assert.False(t, guard.Busy(), "failed submit must release the guard so the user can retry")
}
