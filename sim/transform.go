package sim

import "github.com/goki/mat32"

// TransformAccess is the index-addressable handle through which the
// simulation reads and writes entity positions and orientations. The set is
// sized at population-creation time and fixed afterward; the owner must not
// touch it while a tick is in flight.
type TransformAccess interface {
	Position(i int) mat32.Vec3
	SetPosition(i int, p mat32.Vec3)
	Rotation(i int) mat32.Quat
	SetRotation(i int, q mat32.Quat)
}

// TransformBuffer is a flat-array TransformAccess, one position and one
// orientation per entity index.
type TransformBuffer struct {
	Positions []mat32.Vec3
	Rotations []mat32.Quat
}

// NewTransformBuffer allocates identity transforms for n entities.
func NewTransformBuffer(n int) *TransformBuffer {
	rots := make([]mat32.Quat, n)
	for i := range rots {
		rots[i] = mat32.Quat{W: 1}
	}
	return &TransformBuffer{
		Positions: make([]mat32.Vec3, n),
		Rotations: rots,
	}
}

// Len reports the number of transforms.
func (t *TransformBuffer) Len() int { return len(t.Positions) }

func (t *TransformBuffer) Position(i int) mat32.Vec3 { return t.Positions[i] }

func (t *TransformBuffer) SetPosition(i int, p mat32.Vec3) { t.Positions[i] = p }

func (t *TransformBuffer) Rotation(i int) mat32.Quat { return t.Rotations[i] }

func (t *TransformBuffer) SetRotation(i int, q mat32.Quat) { t.Rotations[i] = q }

// Clone returns a deep copy, useful for comparing tick outcomes.
func (t *TransformBuffer) Clone() *TransformBuffer {
	c := &TransformBuffer{
		Positions: make([]mat32.Vec3, len(t.Positions)),
		Rotations: make([]mat32.Quat, len(t.Rotations)),
	}
	copy(c.Positions, t.Positions)
	copy(c.Rotations, t.Rotations)
	return c
}
