package model

import "testing"

func TestHistoryLenTracksPushes(t *testing.T) {
	t.Parallel()
	h := NewHistory(HistoryCap)

	for i := 1; i <= 300; i++ {
		h.Push(Sample{Elapsed: float64(i), Value: float64(i)})

		want := i
		if want > HistoryCap {
			want = HistoryCap
		}
		if h.Len() != want {
			t.Fatalf("after %d pushes: Len = %d, want %d", i, h.Len(), want)
		}
	}
}

func TestHistoryEvictsOldestFirst(t *testing.T) {
	t.Parallel()
	h := NewHistory(3)

	for i := 1; i <= 5; i++ {
		h.Push(Sample{Elapsed: float64(i), Value: float64(i * 10)})
	}

	got := h.Samples()
	if len(got) != 3 {
		t.Fatalf("Len = %d, want 3", len(got))
	}
	for i, want := range []float64{3, 4, 5} {
		if got[i].Elapsed != want {
			t.Errorf("Samples()[%d].Elapsed = %v, want %v", i, got[i].Elapsed, want)
		}
	}
}

func TestHistoryLatest(t *testing.T) {
	t.Parallel()
	h := NewHistory(2)

	if _, ok := h.Latest(); ok {
		t.Error("Latest on empty window reported a sample")
	}

	h.Push(Sample{Value: 1})
	h.Push(Sample{Value: 2})
	h.Push(Sample{Value: 3})

	latest, ok := h.Latest()
	if !ok || latest.Value != 3 {
		t.Errorf("Latest = %v, %v, want {Value:3}, true", latest, ok)
	}
}

func TestHistorySamplesIsACopy(t *testing.T) {
	t.Parallel()
	h := NewHistory(4)
	h.Push(Sample{Value: 7})

	got := h.Samples()
	got[0].Value = 99

	again := h.Samples()
	if again[0].Value != 7 {
		t.Errorf("mutating the returned slice changed the window: got %v, want 7", again[0].Value)
	}
}
