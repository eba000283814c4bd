// ABOUTME: Tests for the single-flight AI worker.
// ABOUTME: Uses a fake provider; no network calls.
package ai

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeProvider struct {
	response string
	err      error
	delay    time.Duration
	block    chan struct{}
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if f.block != nil {
		<-f.block
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.response, f.err
}

func TestWorkerAsk(t *testing.T) {
	w := NewWorker(&fakeProvider{response: "2000"})

	got, err := w.Ask(context.Background(), "calorie goal?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if got != "2000" {
		t.Errorf("Expected 2000, got %q", got)
	}
	if w.Busy() {
		t.Error("Worker should be idle after Ask returns")
	}
}

func TestWorkerPropagatesError(t *testing.T) {
	wantErr := errors.New("rate limited")
	w := NewWorker(&fakeProvider{err: wantErr})

	_, err := w.Ask(context.Background(), "prompt")
	if !errors.Is(err, wantErr) {
		t.Errorf("Expected provider error, got %v", err)
	}
}

func TestWorkerRejectsConcurrentRequests(t *testing.T) {
	block := make(chan struct{})
	w := NewWorker(&fakeProvider{response: "ok", block: block})

	ch, err := w.Submit(context.Background(), "first")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if _, err := w.Submit(context.Background(), "second"); !errors.Is(err, ErrRequestInFlight) {
		t.Errorf("Expected ErrRequestInFlight, got %v", err)
	}

	close(block)
	res := <-ch
	if res.Err != nil || res.Response != "ok" {
		t.Errorf("Unexpected result: %+v", res)
	}

	// Once the first finishes, a new request is accepted.
	if _, err := w.Ask(context.Background(), "third"); err != nil {
		t.Errorf("Expected worker free after completion, got %v", err)
	}
}

func TestWorkerAskContextCancelled(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	w := NewWorker(&fakeProvider{response: "late", block: block})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := w.Ask(ctx, "prompt"); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
