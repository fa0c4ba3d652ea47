// internal/bench/summary.go
package bench

import (
	"fmt"
	"time"
)

// Summary holds the completion statistics for a finished run.
type Summary struct {
	// TotalOperations is the fixed work budget, not the possibly
	// overshot counter value. Using the target keeps the reported
	// throughput reproducible run to run.
	TotalOperations uint64
	Elapsed         time.Duration
	OpsPerSecond    float64
	Score           float64 // millions of operations per second
}

// Summarize derives the final statistics from the fixed target and
// the total wall-clock duration. Call it only after every worker has
// been joined.
func Summarize(target uint64, elapsed time.Duration) Summary {
	s := Summary{
		TotalOperations: target,
		Elapsed:         elapsed,
	}
	if secs := elapsed.Seconds(); secs > 0 {
		s.OpsPerSecond = float64(target) / secs
		s.Score = s.OpsPerSecond / 1_000_000
	}
	return s
}

// String renders the fixed four-line completion report printed after
// the dashboard has been torn down.
func (s Summary) String() string {
	return fmt.Sprintf(
		"Stress test completed\n"+
			"Total operations: %d\n"+
			"Total time: %.2fs\n"+
			"Operations per second: %.2f (%.2f million ops/sec)",
		s.TotalOperations, s.Elapsed.Seconds(), s.OpsPerSecond, s.Score)
}
