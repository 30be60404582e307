package main

// Simulation and rendering configuration constants. These define the water
// grid size, timing, wave tuning, and the default fish population behavior.
const (
	gridW, gridH = 256, 256
	windowScale  = 3
	defaultTPS   = 60.0
	fixedDelta   = 1.0 / defaultTPS

	waveScale       = 0.05
	waveOffsetSpeed = 0.6
	waveHeight      = 2.0

	defaultFishCount    = 400
	swimSpeed           = 14.0
	turnSpeed           = 2.5
	swimChangeFrequency = 120

	spawnCenterX = gridW / 2.0
	spawnCenterZ = gridH / 2.0
	spawnBoundsX = gridW * 0.8
	spawnBoundsZ = gridH * 0.8

	fishHeadingLen = 4
)
