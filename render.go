package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/goki/mat32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders the water height field, the fish population, and the spawn
// box outline.
func (g *Game) Draw(screen *ebiten.Image) {
	for r := 0; r < gridH; r++ {
		for c := 0; c < gridW; c++ {
			// Map height into [0,1]; the field stays near [0.3-H, 0.3+H].
			v := (g.water.HeightAt(c, r) - waveBaseline + waveHeight) / (2 * waveHeight)
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			base := (r*gridW + c) * 4
			g.pixels[base] = uint8(10 + 40*v)
			g.pixels[base+1] = uint8(40 + 90*v)
			g.pixels[base+2] = uint8(90 + 160*v)
			g.pixels[base+3] = 255
		}
	}
	screen.WritePixels(g.pixels)

	g.drawSpawnBox(screen)

	for i := 0; i < g.school.Count(); i++ {
		pos := g.transforms.Position(i)
		forward := mat32.Vec3{Z: 1}.MulQuat(g.transforms.Rotation(i))
		x0 := clampCoord(int(pos.X), 0, gridW-1)
		y0 := clampCoord(int(pos.Z), 0, gridH-1)
		x1 := clampCoord(int(pos.X+forward.X*fishHeadingLen), 0, gridW-1)
		y1 := clampCoord(int(pos.Z+forward.Z*fishHeadingLen), 0, gridH-1)
		drawLine(screen, x0, y0, x1, y1, color.RGBA{255, 200, 80, 255})
		screen.Set(x0, y0, color.RGBA{255, 120, 40, 255})
	}

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nFish: %d\nTick: %.2f ms",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.school.Count(),
			g.lastTickElapsed.Seconds()*1000)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return gridW, gridH }

// waveBaseline mirrors the constant lift the wave updater adds to every
// sample, so the render range stays centered.
const waveBaseline = 0.3

// drawSpawnBox outlines the fish containment box.
func (g *Game) drawSpawnBox(screen *ebiten.Image) {
	clr := color.RGBA{60, 160, 120, 180}
	cx, cz := float32(spawnCenterX), float32(spawnCenterZ)
	hx, hz := float32(spawnBoundsX)/2, float32(spawnBoundsZ)/2
	x0 := clampCoord(int(cx-hx), 0, gridW-1)
	x1 := clampCoord(int(cx+hx), 0, gridW-1)
	y0 := clampCoord(int(cz-hz), 0, gridH-1)
	y1 := clampCoord(int(cz+hz), 0, gridH-1)
	drawLine(screen, x0, y0, x1, y0, clr)
	drawLine(screen, x0, y1, x1, y1, clr)
	drawLine(screen, x0, y0, x0, y1, clr)
	drawLine(screen, x1, y0, x1, y1, clr)
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= 0 && x0 < gridW && y0 >= 0 && y0 < gridH {
			screen.Set(x0, y0, clr)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
