// File: api/lock.go
// Package api defines the Locker contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "sync"

// Locker is a sync.Locker that can also attempt a single non-blocking acquire.
type Locker interface {
	sync.Locker
	TryLock() bool
}
