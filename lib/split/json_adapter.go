package split

import "encoding/json"

// NewJSONLazyAdapter creates a LazyAdapter specialized for JSON
// serialization. Req and Resp are plain Go types that marshal to and from
// JSON; the adapter handles the round trip so call sites work with them
// directly.
func NewJSONLazyAdapter[Req, Resp any](lazy *Lazy[[]byte, []byte]) *LazyAdapter[Req, Resp] {
	serializer := Serializer[Req, Resp]{
		MarshalRequest: func(req Req) ([]byte, error) {
			return json.Marshal(req)
		},
		UnmarshalResponse: func(data []byte) (Resp, error) {
			var resp Resp
			// If Resp is a pointer type, json.Unmarshal allocates for it;
			// for value types &resp provides the needed pointer.
			err := json.Unmarshal(data, &resp)
			return resp, err
		},
	}
	return NewLazyAdapter(lazy, serializer)
}
