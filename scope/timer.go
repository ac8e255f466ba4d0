package scope

import (
	"log/slog"
	"time"
)

// MeasureTime starts a timer and returns the function that stops it and logs
// the elapsed time at debug level. Use as defer MeasureTime(logger, "name")().
// A nil logger uses slog.Default().
func MeasureTime(logger *slog.Logger, name string) func() time.Duration {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	return func() time.Duration {
		elapsed := time.Since(start)
		logger.Debug("scope timing",
			"scope", name,
			"elapsed", elapsed,
			"elapsed_ms", float64(elapsed.Nanoseconds())/1e6)
		return elapsed
	}
}
