package sim

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/goki/mat32"
)

// School simulates a fixed-size fish population. Positions and orientations
// live in the caller's TransformAccess; the school owns only the velocity
// arena, allocated once at creation and released exactly once at teardown.
type School struct {
	cfg        SchoolConfig
	driver     *Driver
	velocities []mat32.Vec3
	released   bool
}

// NewSchool validates cfg and allocates the velocity arena.
func NewSchool(d *Driver, cfg SchoolConfig) (*School, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &School{
		cfg:        cfg,
		driver:     d,
		velocities: make([]mat32.Vec3, cfg.Count),
	}, nil
}

// Count reports the fixed population size.
func (s *School) Count() int { return s.cfg.Count }

// Velocity returns the carried velocity of one entity.
func (s *School) Velocity(i int) mat32.Vec3 { return s.velocities[i] }

// SetVelocity overrides one entity's carried velocity, e.g. when seeding a
// population.
func (s *School) SetVelocity(i int, v mat32.Vec3) { s.velocities[i] = v }

// Schedule dispatches one tick over every entity and returns its join
// handle. The transform set must stay untouched by other code until Wait
// returns. Scheduling on a released school fails with ErrInvalidConfig.
func (s *School) Schedule(tr TransformAccess, p TickParams) (*Handle, error) {
	if s.released {
		return nil, fmt.Errorf("school released: %w", ErrInvalidConfig)
	}
	return s.driver.Schedule(s.cfg.Count, s.cfg.BatchSize, func(i int) {
		s.step(i, tr, p)
	})
}

// Tick runs one tick to completion before returning.
func (s *School) Tick(tr TransformAccess, p TickParams) error {
	h, err := s.Schedule(tr, p)
	if err != nil {
		return err
	}
	h.Wait()
	return nil
}

// Release frees the velocity arena. It is idempotent and refuses to run while
// a tick is in flight.
func (s *School) Release() error {
	if s.released {
		return nil
	}
	if !s.driver.closed.Load() && !s.driver.idle() {
		return fmt.Errorf("release with tick in flight: %w", ErrScheduleConflict)
	}
	s.released = true
	s.velocities = nil
	return nil
}

// step advances one entity. Entities never read or write each other's state,
// so any processing order within a tick yields the same result.
func (s *School) step(i int, tr TransformAccess, p TickParams) {
	rng := s.entityRand(i, p.Time)

	pos := tr.Position(i)
	rot := tr.Rotation(i)
	vel := s.velocities[i]

	// Forward motion along the current heading, jittered per entity.
	forward := mat32.Vec3{Z: 1}.MulQuat(rot)
	stride := s.cfg.SwimSpeed * p.DeltaTime * (0.3 + 0.7*rng.Float32())
	pos = pos.Add(forward.MulScalar(stride))

	// Blend the heading toward the carried velocity. A zero velocity has no
	// look direction and skips the blend.
	if vel.LengthSq() > 0 {
		look := lookRotation(vel)
		rot.Slerp(look, clamp01(s.cfg.TurnSpeed*p.DeltaTime))
	}

	hx := s.cfg.SpawnBounds.X / 2
	hz := s.cfg.SpawnBounds.Z / 2
	dx := pos.X - s.cfg.SpawnCenter.X
	dz := pos.Z - s.cfg.SpawnCenter.Z

	if dx < -hx || dx > hx || dz < -hz || dz > hz {
		// Out of bounds: steer toward a random interior target and turn at
		// double rate. No heading randomization on this tick.
		rx := (rng.Float32()*2 - 1) * (hx / boundaryRetreatDivisor)
		rz := (rng.Float32()*2 - 1) * (hz / boundaryRetreatDivisor)
		target := mat32.Vec3{
			X: s.cfg.SpawnCenter.X + rx,
			Y: pos.Y,
			Z: s.cfg.SpawnCenter.Z + rz,
		}
		dir := target.Sub(pos)
		if dir.LengthSq() > 0 {
			vel = dir.Normal()
			look := lookRotation(vel)
			rot.Slerp(look, clamp01(2*s.cfg.TurnSpeed*p.DeltaTime))
		}
	} else if rng.IntN(s.cfg.SwimChangeFrequency) <= swimChangeTrigger {
		// Undirected random-walk perturbation in the horizontal plane.
		vel = mat32.Vec3{
			X: rng.Float32()*2 - 1,
			Z: rng.Float32()*2 - 1,
		}
	}

	tr.SetPosition(i, pos)
	tr.SetRotation(i, rot)
	s.velocities[i] = vel
}

// entityRand derives the deterministic per-entity per-tick random stream:
// identical inputs give identical draws, and streams are distinct across
// entities within a tick.
func (s *School) entityRand(i int, time float32) *rand.Rand {
	return rand.New(rand.NewPCG(
		s.cfg.SeedBase^uint64(i),
		uint64(math.Float32bits(time)),
	))
}

// lookRotation returns the rotation carrying +Z onto dir.
func lookRotation(dir mat32.Vec3) mat32.Quat {
	q := mat32.Quat{W: 1}
	q.SetFromUnitVectors(mat32.Vec3{Z: 1}, dir.Normal())
	return q
}

// clamp01 keeps a blend factor inside [0, 1].
func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
