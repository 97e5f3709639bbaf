package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/snowmerak/split.go/lib/split"
)

type greetRequest struct {
	Name string `json:"name"`
}

type greetResponse struct {
	Greeting string `json:"greeting"`
}

// greet is the byte-oriented form of a split function that crosses a
// serialization boundary.
func greet(payload []byte) []byte {
	var req greetRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return []byte(`{}`)
	}
	out, _ := json.Marshal(greetResponse{Greeting: "hello, " + req.Name})
	return out
}

func loadGreetModule(complete split.CompleteFunc, token split.Token) {
	go func() {
		time.Sleep(200 * time.Millisecond)
		complete(token, true)
	}()
}

func main() {
	fmt.Println("=== JSON Adapter Demo ===")

	lazyGreet := split.New(greet, split.ForModule("greet", loadGreetModule))
	adapter := split.NewJSONLazyAdapter[greetRequest, greetResponse](lazyGreet)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ok, err := adapter.Load(ctx)
	if err != nil {
		log.Fatalf("Load interrupted: %v", err)
	}
	if !ok {
		log.Fatal("Module failed to load")
	}

	resp, err := adapter.Call(greetRequest{Name: "split"})
	if err != nil {
		log.Fatalf("Call failed: %v", err)
	}
	fmt.Println(resp.Greeting)
}
