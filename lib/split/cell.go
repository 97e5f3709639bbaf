package split

import (
	"context"
	"sync"
)

// Cell memoizes a single asynchronous load. Any number of awaiters, arriving
// before or after completion, pay for exactly one load attempt and observe
// the same outcome. Cells are shared by pointer; every holder sees the same
// state.
type Cell struct {
	once   sync.Once
	loader *loader
}

func newCell(l *loader) *Cell {
	return &Cell{loader: l}
}

// Await drives the load on first use and blocks until the module's outcome is
// known or ctx is cancelled. Cancellation abandons only this wait: the load
// keeps running and its eventual outcome is visible to every other and later
// awaiter.
func (c *Cell) Await(ctx context.Context) (bool, error) {
	c.once.Do(c.loader.drive)

	// Fast path: a resolved cell answers without suspending, even when ctx
	// is already cancelled.
	if success, completed := c.loader.tryGet(); completed {
		return success, nil
	}

	select {
	case <-c.loader.done:
		success, _ := c.loader.tryGet()
		return success, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// TryGet reports the cached outcome, if any, without suspending and without
// starting a load.
func (c *Cell) TryGet() (success, completed bool) {
	return c.loader.tryGet()
}
