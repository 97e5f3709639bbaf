package split

import (
	"context"
	"sync"
)

// Handle is the owning slot for one split module's load state. Create one
// per module, once, and share it between every facade bound to that module.
type Handle struct {
	cell *Cell
}

// NewHandle returns a handle in deferred form. The load routine is not
// invoked until the first EnsureLoaded.
func NewHandle(load LoadFunc) *Handle {
	return &Handle{cell: newCell(newLoader(load))}
}

// PreloadedHandle returns a handle whose module is already resident, for
// builds where this module was not split out.
func PreloadedHandle() *Handle {
	return &Handle{cell: newCell(completedLoader(true))}
}

// EnsureLoaded loads the module if it has not been loaded yet and returns
// whether the module is ready for calls. Safe to call concurrently and
// repeatedly; the load routine fires at most once across all callers, and a
// failed load stays failed.
func (h *Handle) EnsureLoaded(ctx context.Context) (bool, error) {
	return h.cell.Await(ctx)
}

// Cell returns the handle's shared lazy cell for callers that want to await
// the load without going through a facade.
func (h *Handle) Cell() *Cell {
	return h.cell
}

var (
	modulesMu sync.Mutex
	modules   = make(map[string]*Handle)
)

// ForModule returns the process-wide handle for the named split module,
// creating it in deferred form on first access. The load routine of later
// calls for the same name is ignored; the first registration wins.
func ForModule(name string, load LoadFunc) *Handle {
	modulesMu.Lock()
	defer modulesMu.Unlock()

	if h, ok := modules[name]; ok {
		return h
	}
	h := NewHandle(load)
	modules[name] = h
	return h
}
