package split

import "sync"

type loaderState int

const (
	stateDeferred loaderState = iota
	statePending
	stateCompleted
)

// loader tracks one split module's load from deferred through completion.
// State moves strictly forward: deferred -> pending -> completed. The mutex
// is required because the completion callback may run on any goroutine.
type loader struct {
	mu      sync.Mutex
	state   loaderState
	success bool
	load    LoadFunc
	done    chan struct{}
}

func newLoader(load LoadFunc) *loader {
	return &loader{
		state: stateDeferred,
		load:  load,
		done:  make(chan struct{}),
	}
}

// completedLoader returns a loader that never had anything to fetch, used for
// preloaded handles.
func completedLoader(success bool) *loader {
	l := &loader{
		state:   stateCompleted,
		success: success,
		done:    make(chan struct{}),
	}
	close(l.done)
	return l
}

// drive issues the external load request. The cell gates this behind a
// sync.Once, so the load routine fires at most once per loader.
func (l *loader) drive() {
	l.mu.Lock()
	if l.state != stateDeferred {
		l.mu.Unlock()
		return
	}
	l.state = statePending
	load := l.load
	l.load = nil
	l.mu.Unlock()

	// The exported token keeps the loader reachable for the callback; it is
	// handed away here and consumed by Complete.
	load(Complete, exportLoader(l))
}

// complete records the outcome and wakes every waiter. Closing the done
// channel broadcasts, so no waiter list is needed.
func (l *loader) complete(success bool) {
	l.mu.Lock()
	if l.state == stateCompleted {
		l.mu.Unlock()
		return
	}
	l.state = stateCompleted
	l.success = success
	l.mu.Unlock()
	close(l.done)
}

// tryGet reports the cached outcome without blocking.
func (l *loader) tryGet() (success, completed bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.success, l.state == stateCompleted
}
