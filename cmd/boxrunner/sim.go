package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxrunner/internal/clock"
	"github.com/vovakirdan/boxrunner/internal/config"
	"github.com/vovakirdan/boxrunner/internal/core"
	"github.com/vovakirdan/boxrunner/internal/runner"
)

var (
	flagSimTicks  int
	flagSimConfig string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run the simulation without a display for a fixed number of ticks,
or until the run ends. No input is fed, so the player just stands
there and the outcome depends entirely on the seed.

Useful for checking determinism and obstacle pacing:

  boxrunner sim --seed 42 --ticks 300
  boxrunner sim --seed 42 --ticks 300   # identical output`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 300, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "boxrunner-sim",
	})

	gameCfg, err := config.LoadRunner(flagSimConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	game, err := runner.New(gameCfg)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = seed
	game.Reset(cfg)

	logger.Info("starting headless run", "seed", seed, "ticks", flagSimTicks, "fps", flagFPS)

	empty := core.NewInputFrame()
	c := clock.New(flagFPS)

	start := time.Now()
	err = c.Start(context.Background(), func(tick uint64) bool {
		result := game.Step(empty)
		if result.State.GameOver {
			logger.Info("run ended", "tick", tick, "score", result.State.Score)
			return false
		}
		return tick < uint64(flagSimTicks)
	})
	if err != nil {
		logger.Fatal("cannot start clock", "error", err)
	}
	c.Wait()

	state := game.State()
	snap := game.Snapshot()

	fmt.Printf("Ticks:     %d\n", snap.Tick)
	fmt.Printf("Score:     %d\n", state.Score)
	fmt.Printf("Game over: %v\n", state.GameOver)
	fmt.Printf("Obstacles: %d\n", len(snap.Obstacles))
	fmt.Printf("Elapsed:   %s\n", time.Since(start).Round(time.Millisecond))
}
