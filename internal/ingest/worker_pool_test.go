package ingest

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_RunsSubmittedTasks(t *testing.T) {
	pool := NewWorkerPool(2, 4)
	results := pool.Run(context.Background())

	var ran int32
	for i := 0; i < 5; i++ {
		ok := pool.Submit(context.Background(), func(context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
		if !ok {
			t.Fatalf("expected submit %d to be accepted", i)
		}
	}
	pool.Close()

	got := 0
	for res := range results {
		if res.Err != nil {
			t.Fatalf("unexpected task error: %v", res.Err)
		}
		got++
	}
	if got != 5 {
		t.Fatalf("expected 5 results, got %d", got)
	}
	if atomic.LoadInt32(&ran) != 5 {
		t.Fatalf("expected 5 tasks to run, got %d", ran)
	}
}

func TestWorkerPool_ReportsTaskErrors(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	results := pool.Run(context.Background())

	wantErr := errors.New("fetch failed")
	pool.Submit(context.Background(), func(context.Context) error { return wantErr })
	pool.Submit(context.Background(), func(context.Context) error { return nil })
	pool.Close()

	failed := 0
	for res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Fatalf("expected exactly one failed result, got %d", failed)
	}
}

func TestWorkerPool_SubmitReturnsAfterCancel(t *testing.T) {
	pool := NewWorkerPool(1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	results := pool.Run(ctx)
	cancel()

	// The result stream closes once every worker has exited, so past this
	// point nothing is left to receive a queued task.
	for range results {
	}

	done := make(chan bool, 1)
	go func() {
		done <- pool.Submit(ctx, func(context.Context) error { return nil })
	}()

	select {
	case accepted := <-done:
		if accepted {
			t.Fatalf("expected submit to be rejected after cancellation")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("submit still blocked after cancellation")
	}

	pool.Close()
}
