package spinlock

import (
	"sync"
	"testing"
)

func BenchmarkSpinLockUncontended(b *testing.B) {
	var l SpinLock
	for i := 0; i < b.N; i++ {
		l.Lock()
		l.Unlock()
	}
}

func BenchmarkSpinLockParallel(b *testing.B) {
	var (
		l SpinLock
		n int
	)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Lock()
			n++
			l.Unlock()
		}
	})
	_ = n
}

func BenchmarkMutexParallel(b *testing.B) {
	var (
		mu sync.Mutex
		n  int
	)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mu.Lock()
			n++
			mu.Unlock()
		}
	})
	_ = n
}
