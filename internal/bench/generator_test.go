package bench

import (
	"sync"
	"testing"
	"time"
)

func TestGeneratorMeetsBudgetWithBoundedOvershoot(t *testing.T) {
	t.Parallel()
	counter := &Counter{}
	gen := NewGenerator(counter, 10*Batch)

	gen.Start()
	gen.Wait()

	final := counter.Load()
	if final < gen.target {
		t.Fatalf("final counter %d is below target %d", final, gen.target)
	}
	bound := uint64(gen.Workers()) * Batch
	if overshoot := final - gen.target; overshoot >= bound {
		t.Errorf("overshoot %d, want < workers*Batch = %d", overshoot, bound)
	}
}

func TestGeneratorCounterQuiescentAfterWait(t *testing.T) {
	t.Parallel()
	counter := &Counter{}
	gen := NewGenerator(counter, 2*Batch)

	gen.Start()
	gen.Wait()

	// Every worker has been joined, so nothing increments the counter
	// anymore.
	before := counter.Load()
	time.Sleep(20 * time.Millisecond)
	if after := counter.Load(); after != before {
		t.Errorf("counter moved after Wait: %d -> %d", before, after)
	}
}

func TestWorkerCountClampsToOne(t *testing.T) {
	t.Parallel()
	cases := []struct {
		detected int
		want     int
	}{
		{0, 1},
		{-1, 1},
		{1, 1},
		{8, 8},
	}
	for _, c := range cases {
		if got := workerCount(c.detected); got != c.want {
			t.Errorf("workerCount(%d) = %d, want %d", c.detected, got, c.want)
		}
	}
}

func TestCounterConcurrentAdds(t *testing.T) {
	t.Parallel()
	counter := &Counter{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				counter.Add(10)
			}
		}()
	}
	wg.Wait()

	if got := counter.Load(); got != 8*1000*10 {
		t.Errorf("counter = %d, want %d", got, 8*1000*10)
	}
}
