package split

import (
	"google.golang.org/protobuf/proto"
)

// NewProtobufLazyAdapter creates a LazyAdapter specialized for Protocol
// Buffers serialization. Req and Resp must implement proto.Message (e.g.
// *pb.MyRequest, *pb.MyResponse). newRespInstance must return a new, non-nil
// instance of the Resp type for each response to unmarshal into.
// Example: func() *pb.MyResponse { return new(pb.MyResponse) }
func NewProtobufLazyAdapter[Req proto.Message, Resp proto.Message](
	lazy *Lazy[[]byte, []byte],
	newRespInstance func() Resp,
) *LazyAdapter[Req, Resp] {
	serializer := Serializer[Req, Resp]{
		MarshalRequest: func(req Req) ([]byte, error) {
			return proto.Marshal(req)
		},
		UnmarshalResponse: func(data []byte) (Resp, error) {
			instance := newRespInstance()
			if err := proto.Unmarshal(data, instance); err != nil {
				var zero Resp
				return zero, err
			}
			return instance, nil
		},
	}
	return NewLazyAdapter(lazy, serializer)
}
