package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "reefsim",
	})

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			logger.Fatal("CPU profile setup failed", "path", *cpuProfileFlag, "err", err)
		}
		defer stop()
		logger.Info("recording CPU profile", "path", *cpuProfileFlag)
	}

	game, err := newGame(logger)
	if err != nil {
		logger.Fatal("simulation setup failed", "err", err)
	}
	defer game.shutdown()

	logger.Info("starting",
		"fish", game.school.Count(),
		"grid", gridW*gridH,
		"workers", game.driver.Workers(),
		"seed", *seedFlag,
	)

	ebiten.SetWindowSize(gridW*windowScale, gridH*windowScale)
	ebiten.SetWindowTitle("reefsim")
	ebiten.SetTPS(defaultTPS)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run failed", "err", err)
	}
}
