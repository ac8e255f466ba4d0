package stress

import (
	"context"
	"fmt"
	"time"

	"github.com/justeige/JUL/internal/affinity"
)

// Result describes one verified round.
type Result struct {
	Workload     string        `json:"workload"`
	Round        int           `json:"round"`
	Acquisitions int           `json:"acquisitions"`
	MaxStreak    int           `json:"max_streak"`
	Pushes       int           `json:"pushes,omitempty"`
	Wraps        int           `json:"wraps,omitempty"`
	Duration     time.Duration `json:"duration"`
}

// Workload runs one contention round and verifies it.
type Workload interface {
	Name() string
	Round(ctx context.Context, round int) (Result, error)
}

// ctxCheckEvery bounds how many lock iterations run between context checks.
const ctxCheckEvery = 1024

// pinWorker binds the calling goroutine to a CPU when pin is set.
func pinWorker(pin bool, id int) (func(), error) {
	if !pin {
		return func() {}, nil
	}
	unpin, err := affinity.Pin(id)
	if err != nil {
		return nil, fmt.Errorf("pin worker %d: %w", id, err)
	}
	return unpin, nil
}
