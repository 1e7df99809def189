// Package diagnostics gathers the ambient run-time health checks every
// solver loop in this toolbox shares: a NaN/Inf guard adapted from
// utils.IsNan/IsNanPanic, and a small set of atomic step counters a CLI
// command can report at the end of a run.
package diagnostics

import (
	"fmt"
	"math"
	"runtime"

	"go.uber.org/atomic"

	"github.com/EMinsight/lsmtoolbox/grid"
)

// IsNonFinite reports whether any entry of f is NaN or +/-Inf.
func IsNonFinite[T grid.Real](f *grid.Field[T], fillBox grid.Box) bool {
	found := false
	fillBox.Iterate(func(idx [grid.MaxDim]int) {
		v := float64(f.At(idx))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			found = true
		}
	})
	return found
}

// PanicIfNonFinite panics if any entry of f over fillBox is NaN or Inf,
// naming the field for the panic message.
func PanicIfNonFinite[T grid.Real](name string, f *grid.Field[T], fillBox grid.Box) {
	if IsNonFinite(f, fillBox) {
		panic(fmt.Sprintf("diagnostics: %s contains a NaN or Inf value", name))
	}
}

// RunCounters accumulates coarse-grained step statistics across a
// simulation loop, safe to read concurrently with the loop that updates it
// (e.g. from a command handling a progress ticker).
type RunCounters struct {
	Steps        atomic.Int64
	RejectedDt   atomic.Int64
	Reinitialize atomic.Int64
}

// MemUsage reports current heap statistics in the same MiB summary format
// as the original utils.GetMemUsage, for CLI commands that print run
// diagnostics on completion.
func MemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	toMB := func(b uint64) uint64 { return b / 1024 / 1024 }
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		toMB(m.Alloc), toMB(m.TotalAlloc), toMB(m.Sys), m.NumGC)
}
