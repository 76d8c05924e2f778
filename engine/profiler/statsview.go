package profiler

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// DefaultStatsAddress is used by LaunchStatsView when no address is given.
const DefaultStatsAddress = "localhost:12600"

const statsURL = "/debug/statsview"

// LaunchStatsView serves live runtime statistics (heap, goroutines, GC
// pauses) over http. Useful for checking that a long session does not
// accumulate garbage that could cause GC stalls during a trial.
func LaunchStatsView(address string, output io.Writer) {
	if address == "" {
		address = DefaultStatsAddress
	}
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(address))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", address, statsURL)
}
