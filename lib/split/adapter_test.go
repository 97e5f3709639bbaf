package split

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type echoRequest struct {
	Message string `json:"message"`
}

type echoResponse struct {
	Echo string `json:"echo"`
}

// echoBytes is a resident stand-in for a split function that crosses a
// serialization boundary.
func echoBytes(payload []byte) []byte {
	var req echoRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return []byte(`{}`)
	}
	out, _ := json.Marshal(echoResponse{Echo: req.Message})
	return out
}

func TestJSONLazyAdapter_Call(t *testing.T) {
	adapter := NewJSONLazyAdapter[echoRequest, echoResponse](Preloaded(echoBytes))

	ok, err := adapter.Load(context.Background())
	if err != nil || !ok {
		t.Fatalf("Expected preloaded adapter to load, got ok=%t err=%v", ok, err)
	}

	resp, err := adapter.Call(echoRequest{Message: "hello"})
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if resp.Echo != "hello" {
		t.Errorf("Expected echo 'hello', got '%s'", resp.Echo)
	}
}

func TestLazyAdapter_NotLoaded(t *testing.T) {
	load := newManualLoad()
	lazy := New(echoBytes, NewHandle(load.fn))
	adapter := NewJSONLazyAdapter[echoRequest, echoResponse](lazy)

	_, err := adapter.Call(echoRequest{Message: "hello"})
	if !errors.Is(err, ErrFailedToLoad) {
		t.Fatalf("Expected ErrFailedToLoad through the adapter, got: %v", err)
	}
}

func TestLazyAdapter_UnmarshalError(t *testing.T) {
	broken := Preloaded(func([]byte) []byte {
		return []byte("not json")
	})
	adapter := NewJSONLazyAdapter[echoRequest, echoResponse](broken)

	_, err := adapter.Call(echoRequest{Message: "hello"})
	if err == nil {
		t.Fatal("Expected unmarshal error")
	}
	if errors.Is(err, ErrFailedToLoad) {
		t.Error("Codec failures must not masquerade as load failures")
	}
}

func TestProtobufLazyAdapter_Call(t *testing.T) {
	upper := Preloaded(func(payload []byte) []byte {
		var req wrapperspb.StringValue
		if err := proto.Unmarshal(payload, &req); err != nil {
			return nil
		}
		out, _ := proto.Marshal(wrapperspb.String(strings.ToUpper(req.GetValue())))
		return out
	})

	adapter := NewProtobufLazyAdapter[*wrapperspb.StringValue, *wrapperspb.StringValue](
		upper,
		func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) },
	)

	resp, err := adapter.Call(wrapperspb.String("hello"))
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if resp.GetValue() != "HELLO" {
		t.Errorf("Expected 'HELLO', got '%s'", resp.GetValue())
	}
}
