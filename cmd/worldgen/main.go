// Command worldgen is the standalone world generator: it builds one
// world from the default config, runs a handful of turns, and dumps the
// four standard PPM views plus one decorative relief-art rendering to the
// working directory.
package main

import (
	"fmt"
	"os"

	"worldsim/internal/config"
	"worldsim/internal/export"
	"worldsim/internal/world"
	"worldsim/internal/worldlog"
)

// turnsToRun is the K in "initialize, then update K times" from spec.md §6.
const turnsToRun = 8

func main() {
	log := worldlog.New(config.Default().Seed)

	w, err := world.Create(config.Default(), log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "worldgen: create failed:", err)
		os.Exit(1)
	}

	w.Initialize()
	for i := 0; i < turnsToRun; i++ {
		w.Update()
	}

	if err := export.WriteAllPPMs(w, "."); err != nil {
		fmt.Fprintln(os.Stderr, "worldgen: export failed:", err)
		os.Exit(1)
	}

	reliefFile, err := os.Create("relief.ppm")
	if err != nil {
		fmt.Fprintln(os.Stderr, "worldgen: relief export failed:", err)
		os.Exit(1)
	}
	defer reliefFile.Close()
	if err := export.WriteReliefArt(reliefFile, w, int64(config.Default().Seed)); err != nil {
		fmt.Fprintln(os.Stderr, "worldgen: relief export failed:", err)
		os.Exit(1)
	}

	fmt.Printf("worldgen: wrote geo.ppm politics.ppm climate.ppm biomes.ppm relief.ppm after %d turns (dropped events: %d)\n",
		turnsToRun, w.DroppedEventCount())
}
