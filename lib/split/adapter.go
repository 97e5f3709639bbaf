package split

import (
	"context"
	"fmt"
)

// Serializer defines the request and response codecs for a split function
// that exchanges raw bytes.
type Serializer[Req, Resp any] struct {
	MarshalRequest    func(Req) ([]byte, error)
	UnmarshalResponse func([]byte) (Resp, error)
}

// LazyAdapter provides typed call sites over a byte-oriented split function.
// Split functions that cross a serialization boundary keep the raw
// []byte -> []byte signature on the facade; the adapter restores the real
// request and response types on top of it.
type LazyAdapter[Req, Resp any] struct {
	lazy       *Lazy[[]byte, []byte]
	serializer Serializer[Req, Resp]
}

// NewLazyAdapter creates a generic adapter over an existing facade.
func NewLazyAdapter[Req, Resp any](lazy *Lazy[[]byte, []byte], serializer Serializer[Req, Resp]) *LazyAdapter[Req, Resp] {
	return &LazyAdapter[Req, Resp]{
		lazy:       lazy,
		serializer: serializer,
	}
}

// Load ensures the backing module is resident. See Lazy.Load.
func (a *LazyAdapter[Req, Resp]) Load(ctx context.Context) (bool, error) {
	return a.lazy.Load(ctx)
}

// Call marshals request, invokes the split function through the facade, and
// unmarshals its response. Load-state failures surface as ErrFailedToLoad,
// unchanged; codec failures are wrapped.
func (a *LazyAdapter[Req, Resp]) Call(request Req) (Resp, error) {
	var zeroResp Resp

	requestBytes, err := a.serializer.MarshalRequest(request)
	if err != nil {
		return zeroResp, fmt.Errorf("lazyadapter: failed to marshal request: %w", err)
	}

	responseBytes, err := a.lazy.Call(requestBytes)
	if err != nil {
		return zeroResp, err
	}

	resp, err := a.serializer.UnmarshalResponse(responseBytes)
	if err != nil {
		return zeroResp, fmt.Errorf("lazyadapter: failed to unmarshal response: %w", err)
	}

	return resp, nil
}
