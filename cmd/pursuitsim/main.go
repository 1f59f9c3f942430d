package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"pursuitsim/internal/config"
	"pursuitsim/internal/render"
	"pursuitsim/internal/sim"
	"pursuitsim/internal/util"
)

func main() {
	var cfgPath string
	var size, chasers, delayMS, penalty int
	var seed int64
	var startRow, startCol int
	var tui, color, quiet bool
	flag.StringVar(&cfgPath, "config", "", "scenario yaml file (optional)")
	flag.IntVar(&size, "size", 12, "grid size")
	flag.IntVar(&chasers, "chasers", 3, "chaser count (1..7)")
	flag.Int64Var(&seed, "seed", 12345, "layout seed")
	flag.IntVar(&delayMS, "delay", 500, "delay between turns in ms")
	flag.IntVar(&penalty, "penalty", 100, "chaser adjacency penalty")
	flag.IntVar(&startRow, "start-row", -1, "seeker start row (default 0)")
	flag.IntVar(&startCol, "start-col", -1, "seeker start col (default size-1)")
	flag.BoolVar(&tui, "tui", false, "render with a live terminal view")
	flag.BoolVar(&color, "color", true, "ANSI colors in console mode")
	flag.BoolVar(&quiet, "quiet", false, "suppress per-move event log")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = *loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.GridSize = size
			cfg.SeekerStart = nil
		case "chasers":
			cfg.Chasers = chasers
		case "seed":
			cfg.Seed = seed
		case "delay":
			cfg.TurnDelayMS = delayMS
		case "penalty":
			cfg.ChaserPenalty = penalty
		}
	})
	if startRow >= 0 || startCol >= 0 {
		if startRow < 0 {
			startRow = 0
		}
		if startCol < 0 {
			startCol = cfg.GridSize - 1
		}
		cfg.SeekerStart = &config.GridRef{Row: startRow, Col: startCol}
	}
	if err := cfg.Normalize(); err != nil {
		log.Fatalf("scenario: %v", err)
	}

	rng := util.New(cfg.Seed)
	layout := sim.RandomLayout(&cfg, rng)

	onEvent := func(ev sim.Event) {
		if quiet && (ev.Type == sim.EventSeekerMoved || ev.Type == sim.EventChaserMoved) {
			return
		}
		if tui {
			return // the screen owns the terminal
		}
		log.Printf("event %s %v", ev.Type, ev.Payload)
	}

	eng, err := sim.NewEngine(layout,
		sim.NewShortestPath(cfg.ChaserPenalty),
		sim.NewHeuristicDirect(cfg.ChaserPenalty),
		onEvent)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	var draw sim.RenderFunc
	if tui {
		view, err := render.NewScreen(eng.Stop)
		if err != nil {
			log.Fatalf("tui: %v", err)
		}
		defer view.Close()
		draw = view.Draw
		view.Draw(0, eng.Snapshot())
	} else {
		console := render.NewConsole(os.Stdout, color)
		draw = console.Draw
		fmt.Println("seeker (S) races to the goal (G); chasers (C) try to intercept")
		fmt.Println("press ENTER to stop")
		console.Draw(0, eng.Snapshot())

		// Blocking line read; any input ends the run.
		go func() {
			sc := bufio.NewScanner(os.Stdin)
			sc.Scan()
			eng.Stop()
		}()
	}

	runner := sim.NewRunner(eng, draw, time.Duration(cfg.TurnDelayMS)*time.Millisecond)
	turns := runner.Run(context.Background())

	final := eng.Snapshot()
	if tui {
		// Hold the last frame briefly so the outcome is visible before the
		// terminal is restored.
		draw(turns, final)
		time.Sleep(2 * time.Second)
		return
	}
	fmt.Printf("\nfinished after %d turns: %s", turns, final.State)
	if final.State == sim.StateChaserWon {
		fmt.Printf(" (chaser %d)", final.Winner)
	}
	fmt.Println()
}
