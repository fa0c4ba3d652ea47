// internal/telemetry/system.go
package telemetry

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/Slimey-dev/rustmark/internal/model"
)

// System reads telemetry from the local machine via gopsutil. Every
// query degrades to zero values or empty strings on failure; a
// telemetry hiccup must never take down the benchmark.
type System struct{}

// NewSystem creates the provider and primes the CPU usage baseline,
// so the first dashboard tick already has a delta to report.
func NewSystem() *System {
	cpu.Percent(0, true)
	return &System{}
}

// Snapshot queries current usage and metadata. Bounded-time: every
// gopsutil call here reads /proc (or the platform equivalent) without
// waiting on a sampling interval.
func (s *System) Snapshot() Snapshot {
	var snap Snapshot

	perCore, err := cpu.Percent(0, true)
	if err == nil && len(perCore) > 0 {
		var sum float64
		for _, u := range perCore {
			sum += u
		}
		snap.CPUPercent = sum / float64(len(perCore))
	}

	if vm, err := mem.VirtualMemory(); err == nil && vm != nil && vm.Total > 0 {
		snap.MemoryPercent = float64(vm.Used) / float64(vm.Total) * 100
	}

	snap.Cores = coreStats(perCore)
	snap.SystemInfo = systemInfo()
	return snap
}

// coreStats pairs per-core usage with the frequency reported by
// cpu.Info. Some platforms report fewer info entries than logical
// cores; missing frequencies stay zero.
func coreStats(perCore []float64) []model.CoreStat {
	freqs := make([]float64, 0, len(perCore))
	if infos, err := cpu.Info(); err == nil {
		for _, info := range infos {
			freqs = append(freqs, info.Mhz)
		}
	}

	cores := make([]model.CoreStat, len(perCore))
	for i, usage := range perCore {
		stat := model.CoreStat{
			Label:    fmt.Sprintf("CPU %d", i),
			UsagePct: usage,
		}
		switch {
		case i < len(freqs):
			stat.FreqMHz = freqs[i]
		case len(freqs) > 0:
			// Linux often reports one info record per socket; reuse
			// the first frequency for the remaining cores.
			stat.FreqMHz = freqs[0]
		}
		cores[i] = stat
	}
	return cores
}

// systemInfo rebuilds the metadata list. The values barely change,
// but re-deriving them each tick keeps the snapshot self-contained.
func systemInfo() []model.InfoEntry {
	hi, err := host.Info()
	if err != nil || hi == nil {
		hi = &host.InfoStat{}
	}

	var memTotal, swapTotal uint64
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		memTotal = vm.Total
	}
	if sm, err := mem.SwapMemory(); err == nil && sm != nil {
		swapTotal = sm.Total
	}

	return []model.InfoEntry{
		{Key: "OS", Value: hi.Platform},
		{Key: "OS Version", Value: hi.PlatformVersion},
		{Key: "Kernel", Value: hi.KernelVersion},
		{Key: "Host Name", Value: hi.Hostname},
		{Key: "Total Memory", Value: fmt.Sprintf("%d MB", memTotal/1024/1024)},
		{Key: "Total Swap", Value: fmt.Sprintf("%d MB", swapTotal/1024/1024)},
	}
}
