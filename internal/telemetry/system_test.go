package telemetry

import "testing"

func TestSystemSnapshotBounds(t *testing.T) {
	t.Parallel()
	s := NewSystem()
	snap := s.Snapshot()

	if snap.CPUPercent < 0 || snap.CPUPercent > 100 {
		t.Errorf("CPUPercent = %v, want within [0,100]", snap.CPUPercent)
	}
	if snap.MemoryPercent < 0 || snap.MemoryPercent > 100 {
		t.Errorf("MemoryPercent = %v, want within [0,100]", snap.MemoryPercent)
	}
	for _, core := range snap.Cores {
		if core.UsagePct < 0 || core.UsagePct > 100 {
			t.Errorf("%s usage = %v, want within [0,100]", core.Label, core.UsagePct)
		}
	}
}

func TestSystemSnapshotMetadataKeys(t *testing.T) {
	t.Parallel()
	snap := NewSystem().Snapshot()

	want := []string{"OS", "OS Version", "Kernel", "Host Name", "Total Memory", "Total Swap"}
	if len(snap.SystemInfo) != len(want) {
		t.Fatalf("SystemInfo has %d entries, want %d", len(snap.SystemInfo), len(want))
	}
	for i, key := range want {
		if snap.SystemInfo[i].Key != key {
			t.Errorf("SystemInfo[%d].Key = %q, want %q", i, snap.SystemInfo[i].Key, key)
		}
	}
}

func TestCoreStatsLabels(t *testing.T) {
	t.Parallel()
	cores := coreStats([]float64{10, 20, 30})

	if len(cores) != 3 {
		t.Fatalf("got %d cores, want 3", len(cores))
	}
	if cores[0].Label != "CPU 0" || cores[2].Label != "CPU 2" {
		t.Errorf("labels = %q..%q, want CPU 0..CPU 2", cores[0].Label, cores[2].Label)
	}
	if cores[1].UsagePct != 20 {
		t.Errorf("cores[1].UsagePct = %v, want 20", cores[1].UsagePct)
	}
}

func TestCoreStatsEmpty(t *testing.T) {
	t.Parallel()
	if cores := coreStats(nil); len(cores) != 0 {
		t.Errorf("coreStats(nil) = %v, want empty", cores)
	}
}
