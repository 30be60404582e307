package sim

import (
	"fmt"

	"github.com/goki/mat32"

	"reefsim/noise"
)

// waveBaseHeight is the constant lift added on top of every noise sample.
const waveBaseHeight = 0.3

// WaveParams is the immutable per-tick scalar bundle for a wave update.
type WaveParams struct {
	Scale       float32
	OffsetSpeed float32
	Height      float32
	Time        float32
}

// WaveUpdater recomputes the height of upward-facing vertices from a seeded
// noise field. It borrows the vertex and normal buffers for the duration of
// one update and owns nothing between ticks.
type WaveUpdater struct {
	driver    *Driver
	noise     *noise.Simplex
	batchSize int
}

// NewWaveUpdater creates an updater dispatching on d, sampling noise seeded
// by noiseSeed. batchSize <= 0 selects DefaultBatchSize.
func NewWaveUpdater(d *Driver, noiseSeed int64, batchSize int) *WaveUpdater {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &WaveUpdater{
		driver:    d,
		noise:     noise.New(noiseSeed),
		batchSize: batchSize,
	}
}

// Schedule dispatches one wave tick over the vertex buffer and returns its
// join handle. Vertices whose normal has no upward component are left
// untouched.
func (u *WaveUpdater) Schedule(vertices, normals []mat32.Vec3, p WaveParams) (*Handle, error) {
	if len(vertices) != len(normals) {
		return nil, fmt.Errorf("wave update: %d vertices, %d normals: %w",
			len(vertices), len(normals), ErrShapeMismatch)
	}
	return u.driver.Schedule(len(vertices), u.batchSize, func(i int) {
		if normals[i].Z <= 0 {
			return
		}
		v := vertices[i]
		sx := v.X*p.Scale + p.OffsetSpeed*p.Time
		sy := v.Y*p.Scale + p.OffsetSpeed*p.Time
		vertices[i].Z = u.noise.Eval2(sx, sy)*p.Height + waveBaseHeight
	})
}

// Update runs one wave tick to completion before returning.
func (u *WaveUpdater) Update(vertices, normals []mat32.Vec3, p WaveParams) error {
	h, err := u.Schedule(vertices, normals, p)
	if err != nil {
		return err
	}
	h.Wait()
	return nil
}
