// internal/bench/counter.go
package bench

import "sync/atomic"

// Counter is the single value shared between the workers and the
// dashboard: a monotonically non-decreasing count of completed
// operations. Both operations are wait-free. Readers tolerate a stale
// value; the dashboard only needs eventual visibility, one tick of
// staleness is fine. Go's atomics are sequentially consistent, which
// is stronger ordering than the counter needs but costs nothing at
// this call frequency (one add per million iterations).
type Counter struct {
	ops atomic.Uint64
}

// Add folds n completed operations into the counter.
func (c *Counter) Add(n uint64) {
	c.ops.Add(n)
}

// Load returns a snapshot of the counter.
func (c *Counter) Load() uint64 {
	return c.ops.Load()
}
