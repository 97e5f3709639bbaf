package split

import "context"

// Lazy binds a statically typed function to the handle of the split module
// that provides it. The function value must not be invoked until the module
// is resident; Call enforces that, so a Lazy is safe to declare long before
// anything is loaded.
//
// Typical usage declares the facade once, package-scoped:
//
//	var addModule = split.ForModule("add", loadAddModule)
//	var lazyAdd = split.New(addImported, addModule)
//
//	func compute(ctx context.Context) (int, error) {
//		if ok, err := lazyAdd.Load(ctx); err != nil || !ok {
//			return 0, split.ErrFailedToLoad
//		}
//		return lazyAdd.Call(AddArgs{A: 2, B: 3})
//	}
type Lazy[Args, Ret any] struct {
	imported func(Args) Ret
	handle   *Handle
}

// New creates a deferred facade. imported is the function as it will exist
// once its module is resident; until the handle reports a successful load it
// is treated as opaque and never invoked.
func New[Args, Ret any](imported func(Args) Ret, handle *Handle) *Lazy[Args, Ret] {
	return &Lazy[Args, Ret]{
		imported: imported,
		handle:   handle,
	}
}

// Preloaded creates a facade over an already resident function, for builds
// where the module was not split out. Call sites behave uniformly either way.
func Preloaded[Args, Ret any](f func(Args) Ret) *Lazy[Args, Ret] {
	return &Lazy[Args, Ret]{
		imported: f,
		handle:   PreloadedHandle(),
	}
}

// Load ensures the backing module is resident and reports whether it loaded
// successfully. A false result is terminal for this module. The error only
// reports context cancellation; load failure itself is the boolean.
func (l *Lazy[Args, Ret]) Load(ctx context.Context) (bool, error) {
	return l.handle.EnsureLoaded(ctx)
}

// Call invokes the bound function with args if its module loaded
// successfully. It never suspends and never starts a load: before completion,
// or after a failed load, it returns ErrFailedToLoad without touching the
// function value.
func (l *Lazy[Args, Ret]) Call(args Args) (Ret, error) {
	success, completed := l.handle.cell.TryGet()
	if !completed || !success {
		var zero Ret
		return zero, ErrFailedToLoad
	}
	return l.imported(args), nil
}
