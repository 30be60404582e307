// Package noise provides deterministic, seedable 2D simplex noise used to
// drive the water surface animation.
package noise

import (
	"math"
	"math/rand"
)

// Simplex generates 2D simplex noise from a seed-shuffled permutation table.
// The same seed always produces the same field.
type Simplex struct {
	perm [512]int
}

// New creates a noise generator whose permutation table is shuffled by seed.
func New(seed int64) *Simplex {
	sn := &Simplex{}
	r := rand.New(rand.NewSource(seed))

	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(256, func(i, j int) { p[i], p[j] = p[j], p[i] })

	for i := 0; i < 512; i++ {
		sn.perm[i] = p[i&255]
	}
	return sn
}

// grad2 computes the dot product of a hashed gradient vector and (x, y).
func grad2(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Skew factors for the 2D simplex grid.
const (
	f2 = 0.3660254037844386  // (sqrt(3) - 1) / 2
	g2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

// Eval2 returns the noise value at (x, y), approximately in [-1, 1].
func (sn *Simplex) Eval2(x, y float32) float32 {
	xf := float64(x)
	yf := float64(y)

	// Skew input space to determine which simplex cell contains the point.
	s := (xf + yf) * f2
	i := math.Floor(xf + s)
	j := math.Floor(yf + s)

	t := (i + j) * g2
	x0 := xf - (i - t)
	y0 := yf - (j - t)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := int(i) & 255
	jj := int(j) & 255

	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad2(sn.perm[ii+sn.perm[jj]], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad2(sn.perm[ii+i1+sn.perm[jj+j1]], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad2(sn.perm[ii+1+sn.perm[jj+1]], x2, y2)
	}

	// 70 scales the summed corner contributions into [-1, 1].
	return float32(70.0 * (n0 + n1 + n2))
}
