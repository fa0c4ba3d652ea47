// cmd/rustmark/main.go
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Slimey-dev/rustmark/internal/bench"
	"github.com/Slimey-dev/rustmark/internal/telemetry"
	"github.com/Slimey-dev/rustmark/internal/tui"
)

const defaultTarget = 100_000_000_000

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rustmark: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var target uint64
	var tick time.Duration

	cmd := &cobra.Command{
		Use:   "rustmark",
		Short: "CPU saturation benchmark with a live terminal dashboard",
		Long: "rustmark saturates every logical core with arithmetic work until a\n" +
			"fixed operation budget is consumed, showing live CPU, memory and\n" +
			"per-core telemetry while it runs. Press q to stop watching; the\n" +
			"benchmark itself runs to completion either way.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(target, tick)
		},
	}

	cmd.Flags().Uint64Var(&target, "target", defaultTarget, "total operations to perform")
	cmd.Flags().DurationVar(&tick, "tick", 200*time.Millisecond, "dashboard refresh interval")
	return cmd
}

func run(target uint64, tick time.Duration) error {
	if target == 0 {
		return errors.New("target must be greater than zero")
	}
	if tick <= 0 {
		return errors.New("tick must be a positive duration")
	}

	counter := &bench.Counter{}
	gen := bench.NewGenerator(counter, target)
	start := time.Now()
	gen.Start()

	m := tui.NewModel(telemetry.NewSystem(), counter, target, tick, start)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		// Bubbletea restores the terminal before returning, on error
		// paths included. A display failure is fatal: abort instead
		// of grinding through the rest of the budget headless.
		return fmt.Errorf("dashboard: %w", err)
	}

	// The workers only notice completion at a batch boundary, and a
	// user quit does not signal them at all: they grind on until the
	// counter reaches the target. Join them all before computing the
	// final statistics.
	gen.Wait()

	fmt.Println(bench.Summarize(target, time.Since(start)))
	return nil
}
