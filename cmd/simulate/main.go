package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"ruin-platform/internal/fair"
	"ruin-platform/internal/sim"
)

func main() {
	initial := flag.Float64("initial", 20, "initial wealth")
	bet := flag.Float64("bet", 1, "bet increment")
	target := flag.Float64("target", 40, "target ceiling")
	takehome := flag.Float64("takehome", sim.DefaultTakehome, "fraction of the bet credited on a win")
	p := flag.Float64("p", sim.DefaultWinProb, "win probability")
	n := flag.Int("n", sim.DefaultTrials, "MC trial count")
	workers := flag.Int("workers", 1, "worker count (1 = sequential)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	serverSeed := flag.String("server-seed", "", "replay a provably-fair run: server seed")
	clientSeed := flag.String("client-seed", "", "replay a provably-fair run: client seed")
	strategy := flag.String("strategy", "flat", "staking strategy: flat, martingale, paroli")
	showPath := flag.Bool("path", false, "print the wealth trajectory of the last trial")
	flag.Parse()

	params := sim.Params{
		InitialWealth: *initial,
		Bet:           *bet,
		Target:        *target,
		Takehome:      *takehome,
		WinProb:       *p,
		Trials:        *n,
		Workers:       *workers,
		Strategy:      *strategy,
		RecordPath:    *showPath,
	}

	var sources sim.SourceFactory
	switch {
	case *serverSeed != "":
		sources = func(worker int) sim.Source {
			return fair.NewStream(*serverSeed, fmt.Sprintf("%s:%d", *clientSeed, worker))
		}
	case *seed != 0:
		sources = func(worker int) sim.Source {
			return sim.NewSource(*seed + int64(worker)*67890)
		}
	}

	start := time.Now()
	summary, err := sim.MonteCarlo(params, sources)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Printf("Gambler's Ruin Monte Carlo\n")
	fmt.Printf("Trials:          %d\n", summary.Trials)
	fmt.Printf("Expected wealth: %.4f\n", summary.ExpectedWealth)
	fmt.Printf("Expected steps:  %.2f\n", summary.ExpectedSteps)
	fmt.Printf("Ruined:          %d (%.2f%%)\n", summary.RuinCount,
		100*float64(summary.RuinCount)/float64(summary.Trials))
	fmt.Printf("Reached target:  %d (%.2f%%)\n", summary.TargetCount,
		100*float64(summary.TargetCount)/float64(summary.Trials))
	fmt.Printf("Longest trial:   %d steps\n", summary.MaxSteps)
	fmt.Printf("Elapsed:         %s\n", time.Since(start).Round(time.Millisecond))

	if *showPath && summary.LastPath != nil {
		fmt.Printf("Last trajectory: %v\n", summary.LastPath)
	}
}
