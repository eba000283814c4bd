// ABOUTME: Single-flight background worker for AI requests.
// ABOUTME: A second request while one is running is rejected, not queued.
package ai

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrRequestInFlight is returned when a request is submitted while a
// previous one has not finished.
var ErrRequestInFlight = errors.New("an AI request is already in progress")

// Result carries the outcome of one AI request.
type Result struct {
	Response string
	Err      error
}

// Worker runs AI requests off the caller's goroutine, one at a time.
type Worker struct {
	provider Provider
	busy     atomic.Bool
}

// NewWorker wraps a provider in a single-flight worker.
func NewWorker(provider Provider) *Worker {
	return &Worker{provider: provider}
}

// Busy reports whether a request is currently running.
func (w *Worker) Busy() bool {
	return w.busy.Load()
}

// Submit starts a request in the background and returns a channel that
// delivers exactly one Result. Returns ErrRequestInFlight when a prior
// request is still running.
func (w *Worker) Submit(ctx context.Context, prompt string) (<-chan Result, error) {
	if !w.busy.CompareAndSwap(false, true) {
		return nil, ErrRequestInFlight
	}

	ch := make(chan Result, 1)
	go func() {
		defer w.busy.Store(false)
		response, err := w.provider.Complete(ctx, prompt)
		ch <- Result{Response: response, Err: err}
	}()
	return ch, nil
}

// Ask is the synchronous form of Submit: it blocks until the response
// arrives or the context is done.
func (w *Worker) Ask(ctx context.Context, prompt string) (string, error) {
	ch, err := w.Submit(ctx, prompt)
	if err != nil {
		return "", err
	}
	select {
	case res := <-ch:
		return res.Response, res.Err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
