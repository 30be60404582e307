// Package mesh provides the water-surface collaborator: flat vertex and
// normal buffers for a z-up grid plane, and the derived-lighting normal
// recompute that runs after each wave tick.
package mesh

import "github.com/goki/mat32"

// Grid is a cols x rows vertex grid. Vertices and normals are stored in flat
// row-major arrays so a parallel updater can borrow them directly.
type Grid struct {
	cols, rows int
	cellSize   float32
	vertices   []mat32.Vec3
	normals    []mat32.Vec3
}

// NewGrid allocates a flat grid of cols x rows vertices spaced cellSize
// apart, at height zero with all normals facing up.
func NewGrid(cols, rows int, cellSize float32) *Grid {
	g := &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		vertices: make([]mat32.Vec3, cols*rows),
		normals:  make([]mat32.Vec3, cols*rows),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i := r*cols + c
			g.vertices[i] = mat32.Vec3{
				X: float32(c) * cellSize,
				Y: float32(r) * cellSize,
			}
			g.normals[i] = mat32.Vec3{Z: 1}
		}
	}
	return g
}

// Cols reports the grid width in vertices.
func (g *Grid) Cols() int { return g.cols }

// Rows reports the grid height in vertices.
func (g *Grid) Rows() int { return g.rows }

// Vertices lends out the vertex buffer for the duration of one update call.
func (g *Grid) Vertices() []mat32.Vec3 { return g.vertices }

// Normals lends out the normal buffer for the duration of one update call.
func (g *Grid) Normals() []mat32.Vec3 { return g.normals }

// HeightAt reads the current height of one grid vertex.
func (g *Grid) HeightAt(c, r int) float32 {
	return g.vertices[r*g.cols+c].Z
}

// RecomputeNormals rebuilds per-vertex lighting normals from the current
// height field using central differences, clamped at the grid edges.
func (g *Grid) RecomputeNormals() {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cl, cr := c-1, c+1
			if cl < 0 {
				cl = 0
			}
			if cr > g.cols-1 {
				cr = g.cols - 1
			}
			rd, ru := r-1, r+1
			if rd < 0 {
				rd = 0
			}
			if ru > g.rows-1 {
				ru = g.rows - 1
			}
			var ddx, ddy float32
			if cr > cl {
				ddx = (g.HeightAt(cr, r) - g.HeightAt(cl, r)) / (float32(cr-cl) * g.cellSize)
			}
			if ru > rd {
				ddy = (g.HeightAt(c, ru) - g.HeightAt(c, rd)) / (float32(ru-rd) * g.cellSize)
			}
			g.normals[r*g.cols+c] = mat32.Vec3{X: -ddx, Y: -ddy, Z: 1}.Normal()
		}
	}
}
