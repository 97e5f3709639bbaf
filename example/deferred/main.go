package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/snowmerak/split.go/lib/split"
)

type addArgs struct {
	A int
	B int
}

// add stands in for a function that lives in a split-out module. In a real
// build the splitter emits the load routine and this function is not
// resident until that routine completes.
func add(args addArgs) int {
	return args.A + args.B
}

// loadAddModule simulates the platform fetch: it returns immediately and
// reports completion from another goroutine a moment later.
func loadAddModule(complete split.CompleteFunc, token split.Token) {
	fmt.Printf("Fetching module for token %s...\n", token)
	go func() {
		time.Sleep(300 * time.Millisecond)
		complete(token, true)
	}()
}

func main() {
	fmt.Println("=== Deferred Facade Demo ===")

	lazyAdd := split.New(add, split.ForModule("add", loadAddModule))

	// Calling before the module is resident is rejected, not crashed.
	if _, err := lazyAdd.Call(addArgs{A: 2, B: 3}); errors.Is(err, split.ErrFailedToLoad) {
		fmt.Println("Call before load:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ok, err := lazyAdd.Load(ctx)
	if err != nil {
		log.Fatalf("Load interrupted: %v", err)
	}
	if !ok {
		log.Fatal("Module failed to load")
	}

	sum, err := lazyAdd.Call(addArgs{A: 2, B: 3})
	if err != nil {
		log.Fatalf("Call failed: %v", err)
	}
	fmt.Println("2 + 3 =", sum)
}
