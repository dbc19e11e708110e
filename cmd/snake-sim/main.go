package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	"snake/internal/sim"
	"snake/internal/snake"

	"github.com/cheggaaa/pb/v3"
)

func main() {
	games := flag.Int("games", 1000, "number of games to play")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first game; game i uses seed+i")
	maxTicks := flag.Int("max-ticks", 5000, "moves per game before it is abandoned")
	quiet := flag.Bool("quiet", false, "hide the progress bar")
	flag.Parse()

	if *workers <= 0 {
		*workers = 1
	}
	cfg := snake.DefaultConfig()

	jobs := make(chan int64)
	results := make(chan sim.Result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- sim.Play(cfg, s, *maxTicks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *games; i++ {
			jobs <- *seed + int64(i)
		}
		close(jobs)
	}()

	var bar *pb.ProgressBar
	if !*quiet {
		bar = pb.StartNew(*games)
	}
	var sum sim.Summary
	for res := range results {
		sum.Add(res)
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	avg := 0.0
	if sum.Games > 0 {
		avg = float64(sum.TotalTicks) / float64(sum.Games)
	}
	fmt.Printf("Games: %d (grid %dx%d), avg ticks %.1f, max length %d\n", sum.Games, cfg.GridSize, cfg.GridSize, avg, sum.MaxLength)
	fmt.Printf("Deaths: %d %s, %d %s, %d abandoned at %d ticks\n",
		sum.WallDeaths, snake.CauseWall, sum.SelfDeaths, snake.CauseSelf, sum.Survived, *maxTicks)

	if len(sum.Violations) > 0 {
		fmt.Printf("\nViolations (%d):\n", len(sum.Violations))
		for _, v := range sum.Violations {
			fmt.Printf("  %s\n", v)
		}
		os.Exit(1)
	}
}
