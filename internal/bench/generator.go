// internal/bench/generator.go
package bench

import (
	"runtime"
	"sync"
)

// Batch is the number of local iterations a worker accumulates before
// folding them into the shared counter.
const Batch = 1_000_000

// Generator saturates every logical core with arithmetic work until
// the shared counter reaches the target.
//
// Termination is deliberately relaxed: a worker folds a full batch
// into the counter and only then re-reads it, so several workers can
// each pass a stale-but-sufficient check before any of them observes
// completion. The final counter can therefore exceed the target by up
// to workers*Batch - 1 operations. That overshoot is the price of
// keeping the hot loop free of any synchronization finer than one
// atomic add per batch; do not tighten it.
type Generator struct {
	counter *Counter
	target  uint64
	workers int
	wg      sync.WaitGroup
}

// NewGenerator creates a generator with one worker per logical core.
func NewGenerator(counter *Counter, target uint64) *Generator {
	return &Generator{
		counter: counter,
		target:  target,
		workers: workerCount(runtime.NumCPU()),
	}
}

// workerCount clamps the platform's reported core count to at least 1.
func workerCount(detected int) int {
	if detected < 1 {
		return 1
	}
	return detected
}

// Workers returns the number of worker goroutines the generator runs.
func (g *Generator) Workers() int {
	return g.workers
}

// Start launches the workers. It returns immediately.
func (g *Generator) Start() {
	g.wg.Add(g.workers)
	for i := 0; i < g.workers; i++ {
		go g.run()
	}
}

// Wait blocks until every worker has exited. It must be called before
// computing final statistics, on every shutdown path.
func (g *Generator) Wait() {
	g.wg.Wait()
}

// run is the worker loop: a wrapping uint64 increment purely to burn
// cycles, folded into the shared counter every Batch iterations. The
// accumulator feeds the branch condition, so the loop has an
// observable effect and cannot be discarded.
func (g *Generator) run() {
	defer g.wg.Done()
	var n uint64
	for {
		n++
		if n%Batch == 0 {
			g.counter.Add(Batch)
			if g.counter.Load() >= g.target {
				return
			}
		}
	}
}
