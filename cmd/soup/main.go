package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"lifeboard/internal/core"
	"lifeboard/internal/life"

	"golang.org/x/sync/errgroup"
)

type soupResult struct {
	seed    int64
	initial int
	outcome life.Outcome
}

func main() {
	soups := flag.Int("soups", 256, "number of random boards to run")
	rows := flag.Int("rows", 32, "board rows")
	cols := flag.Int("cols", 32, "board columns")
	density := flag.Float64("density", 0.35, "initial live cell probability")
	seed := flag.Int64("seed", 1, "seed of the first soup; soup i uses seed+i")
	gens := flag.Int("gens", 2000, "generation budget per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if *soups < 1 {
		log.Fatalf("soups must be positive, got %d", *soups)
	}
	if _, err := core.NewGrid(*rows, *cols); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Running %d soups of %dx%d at density %.2f (%d workers, %d generations)\n",
		*soups, *rows, *cols, *density, *workers, *gens)

	results := make([]soupResult, *soups)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)

	start := time.Now()
	for i := range results {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runSoup(*rows, *cols, *density, *seed+int64(i), *gens)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	periods := map[int]int{}
	for _, res := range results {
		periods[res.outcome.Period]++
	}
	keys := make([]int, 0, len(periods))
	for p := range periods {
		keys = append(keys, p)
	}
	sort.Ints(keys)

	fmt.Printf("\nFinal periods (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, p := range keys {
		label := fmt.Sprintf("p%d", p)
		switch p {
		case 0:
			label = "unsettled"
		case 1:
			label = "still"
		}
		fmt.Printf("  %-10s %d\n", label, periods[p])
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].outcome.Settled != results[j].outcome.Settled {
			return results[i].outcome.Settled > results[j].outcome.Settled
		}
		return results[i].seed < results[j].seed
	})
	fmt.Printf("\nLongest lived:\n")
	for i := 0; i < len(results) && i < 5; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%d settled=%d period=%d pop=%d->%d\n",
			i+1, res.seed, res.outcome.Settled, res.outcome.Period, res.initial, res.outcome.Population)
	}
}

func runSoup(rows, cols int, density float64, seed int64, gens int) (soupResult, error) {
	grid, err := core.NewGrid(rows, cols)
	if err != nil {
		return soupResult{}, err
	}
	grid.Randomize(core.NewRNG(seed), density)
	res := soupResult{seed: seed, initial: grid.Population()}
	res.outcome = life.Settle(grid, gens)
	return res, nil
}
