package spinlock_test

import (
	"fmt"
	"sync"

	"github.com/justeige/JUL/ring"
	"github.com/justeige/JUL/spinlock"
)

// A ring shared by several producers, guarded by a spin lock.
func Example() {
	var (
		mu    spinlock.SpinLock
		wg    sync.WaitGroup
		wraps int
	)
	r := ring.MustNew[int](4)

	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				mu.Lock()
				if r.Push(i) {
					wraps++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	fmt.Println(wraps, r.Index())
	// Output: 100 0
}
