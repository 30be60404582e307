package main

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goki/mat32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"reefsim/mesh"
	"reefsim/sim"
)

// Game owns the simulation core and the render-side buffers. The clock is
// explicit: simTime advances by a fixed delta per tick and is passed into
// every update; nothing inside the per-element functions reads wall time.
type Game struct {
	logger *log.Logger

	driver     *sim.Driver
	water      *mesh.Grid
	wave       *sim.WaveUpdater
	school     *sim.School
	transforms *sim.TransformBuffer

	simTime         float32
	tick            int
	paused          bool
	lastTickElapsed time.Duration

	pixels []byte
}

// newGame constructs a fully initialized Game from the parsed flags.
func newGame(logger *log.Logger) (*Game, error) {
	driver := sim.NewDriver(*workersFlag)

	school, err := sim.NewSchool(driver, schoolConfig())
	if err != nil {
		driver.Close()
		return nil, err
	}

	g := &Game{
		logger:     logger,
		driver:     driver,
		water:      mesh.NewGrid(gridW, gridH, 1),
		wave:       sim.NewWaveUpdater(driver, int64(*seedFlag), *batchFlag),
		school:     school,
		transforms: sim.NewTransformBuffer(school.Count()),
		paused:     *pausedFlag,
		pixels:     make([]byte, gridW*gridH*4),
	}
	g.spawnFish()
	return g, nil
}

// schoolConfig builds the immutable per-run fish configuration.
func schoolConfig() sim.SchoolConfig {
	return sim.SchoolConfig{
		Count:               *fishFlag,
		BatchSize:           *batchFlag,
		SwimSpeed:           swimSpeed,
		TurnSpeed:           turnSpeed,
		SwimChangeFrequency: swimChangeFrequency,
		SpawnCenter:         mat32.Vec3{X: spawnCenterX, Z: spawnCenterZ},
		SpawnBounds:         mat32.Vec3{X: spawnBoundsX, Z: spawnBoundsZ},
		SeedBase:            *seedFlag,
	}
}

// spawnFish scatters the population across the spawn box with random yaw
// headings, reproducibly for a fixed seed.
func (g *Game) spawnFish() {
	rng := rand.New(rand.NewPCG(*seedFlag, uint64(g.school.Count())))
	for i := 0; i < g.school.Count(); i++ {
		g.transforms.SetPosition(i, mat32.Vec3{
			X: spawnCenterX + (rng.Float32()-0.5)*spawnBoundsX,
			Z: spawnCenterZ + (rng.Float32()-0.5)*spawnBoundsZ,
		})
		yaw := rng.Float32() * 2 * math.Pi
		g.transforms.SetRotation(i, mat32.NewQuatAxisAngle(mat32.Vec3{Y: 1}, yaw))
		g.school.SetVelocity(i, mat32.Vec3{})
	}
}

// Update advances one simulation tick: wave pass, fish pass, then the
// derived-normal recompute once both read-backs are safe.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.spawnFish()
	}
	if g.paused {
		return nil
	}

	g.tick++
	g.simTime += fixedDelta
	tickStart := time.Now()

	err := g.wave.Update(g.water.Vertices(), g.water.Normals(), sim.WaveParams{
		Scale:       waveScale,
		OffsetSpeed: waveOffsetSpeed,
		Height:      waveHeight,
		Time:        g.simTime,
	})
	if err != nil {
		return err
	}

	if err := g.school.Tick(g.transforms, sim.TickParams{
		DeltaTime: fixedDelta,
		Time:      g.simTime,
	}); err != nil {
		return err
	}

	g.water.RecomputeNormals()
	g.lastTickElapsed = time.Since(tickStart)

	if *logIntervalFlag > 0 && g.tick%*logIntervalFlag == 0 {
		g.logStats()
	}
	return nil
}

// logStats reports population containment and tick timing.
func (g *Game) logStats() {
	inside := 0
	hx := float32(spawnBoundsX) / 2
	hz := float32(spawnBoundsZ) / 2
	for i := 0; i < g.school.Count(); i++ {
		p := g.transforms.Position(i)
		dx := p.X - spawnCenterX
		dz := p.Z - spawnCenterZ
		if dx >= -hx && dx <= hx && dz >= -hz && dz <= hz {
			inside++
		}
	}
	g.logger.Info("tick stats",
		"tick", g.tick,
		"fish", g.school.Count(),
		"inside", inside,
		"tickTime", g.lastTickElapsed.Round(time.Microsecond),
	)
}

// shutdown releases the simulation buffers exactly once, after no tick can
// still be in flight.
func (g *Game) shutdown() {
	if err := g.school.Release(); err != nil {
		g.logger.Error("release failed", "err", err)
	}
	g.driver.Close()
	g.logger.Info("simulation stopped", "ticks", g.tick)
}
