package sim

import (
	"fmt"

	"github.com/goki/mat32"
)

// Tuning constants preserved from the original behavior. Neither value has a
// documented rationale; they are kept as-is rather than inferred.
const (
	// boundaryRetreatDivisor shrinks the spawn half-extents when picking an
	// interior retreat target for an out-of-bounds fish.
	boundaryRetreatDivisor = 1.3

	// swimChangeTrigger is the inclusive upper bound on the uniform draw in
	// [0, SwimChangeFrequency) that triggers a heading randomization.
	swimChangeTrigger = 2
)

// SchoolConfig is the immutable per-run configuration of a fish population.
type SchoolConfig struct {
	// Count is the fixed population size.
	Count int

	// BatchSize is the index-batch width handed to each worker. Zero selects
	// DefaultBatchSize.
	BatchSize int

	// SwimSpeed scales forward motion per second.
	SwimSpeed float32

	// TurnSpeed scales the heading blend rate per second.
	TurnSpeed float32

	// SwimChangeFrequency sets the odds of a random heading change per tick:
	// a uniform integer in [0, SwimChangeFrequency) triggers when it is at
	// most swimChangeTrigger.
	SwimChangeFrequency int

	// SpawnCenter and SpawnBounds describe the axis-aligned containment box:
	// half-extents of SpawnBounds/2 on x and z about SpawnCenter.
	SpawnCenter mat32.Vec3
	SpawnBounds mat32.Vec3

	// SeedBase is folded into every per-entity per-tick random seed.
	SeedBase uint64
}

// withDefaults fills unset optional fields.
func (c SchoolConfig) withDefaults() SchoolConfig {
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	return c
}

// Validate reports a fatal configuration error, wrapping ErrInvalidConfig.
func (c SchoolConfig) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("population size %d: %w", c.Count, ErrInvalidConfig)
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("batch size %d: %w", c.BatchSize, ErrInvalidConfig)
	}
	if c.SwimChangeFrequency <= 0 {
		return fmt.Errorf("swim change frequency %d: %w", c.SwimChangeFrequency, ErrInvalidConfig)
	}
	if c.SpawnBounds.X < 0 || c.SpawnBounds.Y < 0 || c.SpawnBounds.Z < 0 {
		return fmt.Errorf("negative spawn bounds: %w", ErrInvalidConfig)
	}
	return nil
}

// TickParams is the per-tick value bundle for a school update. Time is always
// passed in explicitly; nothing in the per-entity update reads a global clock.
type TickParams struct {
	DeltaTime float32
	Time      float32
}
