// internal/model/history.go
package model

// HistoryCap is the number of samples each chart retains.
const HistoryCap = 240

// History is a bounded FIFO window of samples backed by a fixed ring:
// append and eviction are both O(1), with the oldest sample dropped
// first once the capacity is reached.
type History struct {
	buf   []Sample
	head  int
	count int
}

// NewHistory creates an empty window holding at most capacity samples.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]Sample, capacity)}
}

// Push appends a sample, evicting the oldest one when full.
func (h *History) Push(s Sample) {
	tail := (h.head + h.count) % len(h.buf)
	h.buf[tail] = s
	if h.count < len(h.buf) {
		h.count++
		return
	}
	h.head = (h.head + 1) % len(h.buf)
}

// Len returns the number of retained samples.
func (h *History) Len() int {
	return h.count
}

// Samples returns the retained samples oldest-first. The slice is a
// copy; the caller may keep it across ticks.
func (h *History) Samples() []Sample {
	out := make([]Sample, h.count)
	for i := 0; i < h.count; i++ {
		out[i] = h.buf[(h.head+i)%len(h.buf)]
	}
	return out
}

// Latest returns the most recent sample, if any.
func (h *History) Latest() (Sample, bool) {
	if h.count == 0 {
		return Sample{}, false
	}
	return h.buf[(h.head+h.count-1)%len(h.buf)], true
}
