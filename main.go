package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avolkov/go-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	world, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Failed to initialize game: %v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, world)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		history        historyTracker
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			saveFinalState(config, world)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		// Update performance stats and stagnation history
		livingCells := world.GetAliveCells()
		stats.Update(generation, livingCells, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		status := "Active"
		if history.isStagnant(world) {
			stagnantCount++
			status = fmt.Sprintf("Stagnant (%d)", stagnantCount)
		} else {
			stagnantCount = 0
		}
		if livingCells == 0 {
			status = "Extinct"
		}
		history.update(world)

		displayGameStatus(generation, world, stats, lastRestartGen, status)
		renderer.Display(world)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)
		if shouldRestart && config.AutoRestart {
			fmt.Printf("Restarting due to %s...\n", restartReason)
			world, err = restartGame(config)
			if err != nil {
				fmt.Printf("Failed to restart game: %v\n", err)
				os.Exit(1)
			}
			history.reset()
			lastRestartGen = generation
			stagnantCount = 0
		}

		world.Step(config.Toroidal)
		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
	saveFinalState(config, world)
}
