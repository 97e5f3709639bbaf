// Package split provides a lazy loader for functions that live in split-out
// modules. A facade declares the function up front; the backing module is
// fetched on first use, every concurrent caller awaits the same in-flight
// load, and the typed call path stays closed until the module is resident.
package split

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrFailedToLoad is returned by Call when the backing module is not resident:
// either loading never completed, or the load routine reported failure.
var ErrFailedToLoad = errors.New("failed to load split module")

// Token identifies one in-flight load across the module boundary. The load
// routine must hand it back, untouched, to the completion callback.
type Token uuid.UUID

func (t Token) String() string {
	return uuid.UUID(t).String()
}

// CompleteFunc is the completion callback handed to a load routine. It must
// be invoked exactly once per load attempt, with the token the routine was
// given and a flag reporting whether the module is ready for calls.
type CompleteFunc func(token Token, success bool)

// LoadFunc fetches and instantiates one split module. It must return promptly
// and report the outcome through complete at some later point. Invoking
// complete synchronously, before returning, is tolerated.
type LoadFunc func(complete CompleteFunc, token Token)

// inflight maps tokens to their loaders while a load is outstanding. The
// entry keeps the loader reachable for the callback after the stack frame
// that issued the load is gone; Complete consumes it.
var inflight sync.Map

func exportLoader(l *loader) Token {
	token := Token(uuid.Must(uuid.NewV7()))
	inflight.Store(token, l)
	return token
}

// Complete is the completion callback entry point. Load routines receive it
// as their CompleteFunc. The token's in-flight entry is consumed on first
// use; duplicate or unknown tokens are ignored.
func Complete(token Token, success bool) {
	v, ok := inflight.LoadAndDelete(token)
	if !ok {
		return
	}
	v.(*loader).complete(success)
}
