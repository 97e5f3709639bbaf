package split

import (
	"context"
	"sync"
	"testing"
)

func TestCell_ConcurrentWaitersObserveOneOutcome(t *testing.T) {
	load := newManualLoad()
	cell := newCell(newLoader(load.fn))

	const waiters = 16
	results := make(chan bool, waiters)
	var wg sync.WaitGroup
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := cell.Await(context.Background())
			if err != nil {
				t.Errorf("Await errored: %v", err)
			}
			results <- ok
		}()
	}

	<-load.started
	load.fire(true)
	wg.Wait()

	for i := 0; i < waiters; i++ {
		if ok := <-results; !ok {
			t.Fatal("Expected every waiter to observe success")
		}
	}
	if load.callCount() != 1 {
		t.Errorf("Expected one load attempt across all waiters, got %d", load.callCount())
	}
}

func TestCell_TryGetDoesNotStartLoad(t *testing.T) {
	load := newManualLoad()
	cell := newCell(newLoader(load.fn))

	if _, completed := cell.TryGet(); completed {
		t.Fatal("Fresh cell must not report completion")
	}
	if load.callCount() != 0 {
		t.Errorf("TryGet must not fire the load routine, got %d calls", load.callCount())
	}
}

func TestCell_AwaitAfterCompletionWithCancelledContext(t *testing.T) {
	load := newManualLoad()
	cell := newCell(newLoader(load.fn))

	done := make(chan struct{})
	go func() {
		cell.Await(context.Background())
		close(done)
	}()
	<-load.started
	load.fire(true)
	<-done

	// Resolved cells answer without suspending, even on a dead context.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok, err := cell.Await(ctx)
	if err != nil {
		t.Fatalf("Await on resolved cell errored: %v", err)
	}
	if !ok {
		t.Fatal("Expected cached success")
	}
}

func TestCell_PreloadedResolvesImmediately(t *testing.T) {
	cell := newCell(completedLoader(true))

	ok, err := cell.Await(context.Background())
	if err != nil {
		t.Fatalf("Await errored: %v", err)
	}
	if !ok {
		t.Fatal("Expected preloaded cell to resolve true")
	}
	if success, completed := cell.TryGet(); !completed || !success {
		t.Error("Expected TryGet to report cached success")
	}
}
