package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/avolkov/go-life/model"
	"github.com/avolkov/go-life/utils"
	"github.com/avolkov/go-life/zoo"
)

// seedGrid builds the initial grid, either from a pattern file or from a
// random soup with a few zoo creatures merged on top
func seedGrid(config utils.Config) (*model.Grid, error) {
	if config.PatternFile != "" {
		if strings.HasSuffix(config.PatternFile, ".bgol") {
			return zoo.LoadBinary(config.PatternFile)
		}
		return zoo.LoadAscii(config.PatternFile)
	}

	grid := model.NewGrid(config.Width, config.Height)
	grid.Randomize(config.RandomDensity)

	// Merge creatures alive-only so they survive on top of the soup
	if config.Width >= 10 && config.Height >= 10 {
		_ = grid.Merge(zoo.Glider(), 1, 1, true)
		_ = grid.Merge(zoo.RPentomino(), config.Width/2, config.Height/2, true)
	}
	if config.Width >= 20 && config.Height >= 15 {
		_ = grid.Merge(zoo.LightWeightSpaceship(), config.Width-7, 2, true)
	}
	return grid, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.World, *model.TerminalRenderer, *utils.Stats, error) {
	grid, err := seedGrid(config)
	if err != nil {
		return nil, nil, nil, err
	}
	return model.NewWorldFromGrid(grid), &model.TerminalRenderer{}, utils.NewStats(), nil
}

// historyTracker keeps recent grid hashes for cycle detection
type historyTracker struct {
	hashes []string
}

// update adds the current state hash to the history and maintains size
func (h *historyTracker) update(world *model.World) {
	h.hashes = append(h.hashes, world.GetState().GetHash())

	// Keep only last 5 states to detect cycles
	if len(h.hashes) > 5 {
		h.hashes = h.hashes[1:]
	}
}

// isStagnant checks if the world is stuck in a cycle or static state by
// comparing the current hash against the most recent history entries. Call
// before update, so the current state is not compared with itself.
func (h *historyTracker) isStagnant(world *model.World) bool {
	currentHash := world.GetState().GetHash()
	for i := 1; i <= min(3, len(h.hashes)); i++ {
		if h.hashes[len(h.hashes)-i] == currentHash {
			return true
		}
	}
	return false
}

// reset clears the history after a restart
func (h *historyTracker) reset() {
	h.hashes = nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, world *model.World) {
	fmt.Printf("Topology: toroidal=%v | Grid: %dx%d | Initial living cells: %d\n",
		config.Toroidal, world.GetWidth(), world.GetHeight(), world.GetAliveCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(generation int, world *model.World, stats *utils.Stats, lastRestartGen int, status string) {
	density := float64(world.GetAliveCells()) / float64(world.GetTotalCells()) * 100
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, world.GetAliveCells(), density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame handles the game restart logic
func restartGame(config utils.Config) (*model.World, error) {
	fmt.Printf("\nRestarting...\n")
	time.Sleep(1 * time.Second)

	grid, err := seedGrid(config)
	if err != nil {
		return nil, err
	}
	world := model.NewWorldFromGrid(grid)

	fmt.Printf("New patterns loaded! Living cells: %d\n", world.GetAliveCells())
	time.Sleep(2 * time.Second)

	return world, nil
}

// saveFinalState writes the final world state if a save file is configured
func saveFinalState(config utils.Config, world *model.World) {
	if config.SaveFile == "" {
		return
	}
	var err error
	if strings.HasSuffix(config.SaveFile, ".bgol") {
		err = zoo.SaveBinary(config.SaveFile, world.GetState())
	} else {
		err = zoo.SaveAscii(config.SaveFile, world.GetState())
	}
	if err != nil {
		fmt.Printf("Failed to save final state: %v\n", err)
		return
	}
	fmt.Printf("Final state saved to %s\n", config.SaveFile)
}
