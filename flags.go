package main

import "flag"

// Command-line flags that control the simulation population, scheduling, and
// optional diagnostics.
var (
	// fishFlag sets the simulated fish population size.
	fishFlag = flag.Int("fish", defaultFishCount, "number of simulated fish")

	// workersFlag overrides the worker pool size (0 = hardware threads).
	workersFlag = flag.Int("workers", 0, "worker goroutines for parallel ticks (0 = auto)")

	// batchFlag overrides the index batch width handed to each worker.
	batchFlag = flag.Int("batch", 0, "indices per worker batch (0 = default)")

	// seedFlag fixes the run seed so repeated runs are identical.
	seedFlag = flag.Uint64("seed", 1, "base random seed for noise and fish steering")

	// debugFlag enables the FPS and tick timing overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and tick timing overlay")

	// pausedFlag starts the simulation paused.
	pausedFlag = flag.Bool("paused", false, "start with the simulation paused")

	// logIntervalFlag logs population stats every N ticks.
	logIntervalFlag = flag.Int("log-interval", 0, "log simulation stats every N ticks (0 = disabled)")

	// cpuProfileFlag writes a CPU profile for the whole run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to the given path")
)
