package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"weighted-ca/internal/analysis"
	"weighted-ca/internal/core"
	"weighted-ca/internal/seed"
	"weighted-ca/internal/sims/weighted"
)

type paramSet struct {
	fill       int
	iterations int
	die        float64
	spawn      float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("fill=%d iterations=%d die=%.2f spawn=%.2f", p.fill, p.iterations, p.die, p.spawn)
}

type scenarioResult struct {
	params      paramSet
	aliveMean   float64
	aliveStd    float64
	cavesMean   float64
	largestMean float64
	score       float64
	best        *core.Grid
}

func main() {
	n := flag.Int("n", 64, "cells per grid side")
	seeds := flag.Int("seeds", 8, "grids generated per scenario")
	baseSeed := flag.Int64("seed", 1, "first seed; scenario grids use seed..seed+seeds-1")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "results to print")
	target := flag.Float64("target", 0.45, "alive fraction scenarios are ranked against")
	printBest := flag.Bool("print", false, "print the best grid")
	fills := flag.String("fill", "40,45,50,55", "fill probabilities")
	iterations := flag.String("iterations", "2,4,6", "iteration counts")
	dies := flag.String("die", "3,4,5", "min weights to die")
	spawns := flag.String("spawn", "4,5,6", "min weights to spawn")
	layerWeights := flag.String("weights", "1", "layer weights, one per layer")
	prev := flag.Bool("prev", true, "read from a snapshot of the previous pass")
	walling := flag.Bool("walling", true, "count out-of-bounds neighbours as walls")
	flag.Parse()

	base := weighted.DefaultConfig()
	weights, err := parseFloats(*layerWeights)
	if err != nil {
		log.Fatalf("-weights: %v", err)
	}
	base.LayerCount = len(weights)
	base.LayerWeights = weights
	base.UsePrevStates = *prev
	base.PreferWalling = *walling
	if err := base.Validate(); err != nil {
		log.Fatal(err)
	}
	if *n < 1 || *seeds < 1 || *workers < 1 {
		log.Fatal("-n, -seeds and -workers must be positive")
	}

	sets, err := buildSets(*fills, *iterations, *dies, *spawns)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("sweeping %d parameter sets (%d workers, %d seeds, %dx%d)", len(sets), *workers, *seeds, *n, *n)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params, *n, *baseSeed, *seeds, *target)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score < all[j].score
		}
		return all[i].cavesMean < all[j].cavesMean
	})

	fmt.Printf("\nTop %d results (elapsed %s, target alive %.2f):\n", *top, time.Since(start).Round(time.Millisecond), *target)
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) alive=%.3f±%.3f caves=%.1f largest=%.1f %s\n",
			i+1, res.aliveMean, res.aliveStd, res.cavesMean, res.largestMean, res.params)
	}

	if *printBest && len(all) > 0 {
		fmt.Printf("\nBest grid (%s):\n%s\n", all[0].params, all[0].best)
	}
}

func runScenario(base weighted.Config, params paramSet, n int, firstSeed int64, seeds int, target float64) scenarioResult {
	cfg := base.Clone()
	cfg.Iterations = params.iterations
	cfg.MinWeightToDie = params.die
	cfg.MinWeightToSpawn = params.spawn

	alive := make([]float64, seeds)
	caves := make([]float64, seeds)
	largest := make([]float64, seeds)
	var best *core.Grid
	bestDelta := math.Inf(1)

	for s := 0; s < seeds; s++ {
		g := core.NewGrid(n)
		seed.Fill(g, params.fill, core.NewRNG(firstSeed+int64(s)))
		weighted.Run(g, cfg)

		sum := analysis.Summarize(g)
		alive[s] = sum.AliveFraction
		caves[s] = float64(sum.Caves)
		largest[s] = float64(sum.LargestCave)
		if d := math.Abs(sum.AliveFraction - target); d < bestDelta {
			bestDelta = d
			best = g
		}
	}

	mean, std := stat.MeanStdDev(alive, nil)
	if seeds < 2 {
		std = 0
	}
	return scenarioResult{
		params:      params,
		aliveMean:   mean,
		aliveStd:    std,
		cavesMean:   stat.Mean(caves, nil),
		largestMean: stat.Mean(largest, nil),
		score:       math.Abs(mean - target),
		best:        best,
	}
}

func buildSets(fills, iterations, dies, spawns string) ([]paramSet, error) {
	fillOptions, err := parseInts(fills)
	if err != nil {
		return nil, fmt.Errorf("-fill: %w", err)
	}
	iterationOptions, err := parseInts(iterations)
	if err != nil {
		return nil, fmt.Errorf("-iterations: %w", err)
	}
	dieOptions, err := parseFloats(dies)
	if err != nil {
		return nil, fmt.Errorf("-die: %w", err)
	}
	spawnOptions, err := parseFloats(spawns)
	if err != nil {
		return nil, fmt.Errorf("-spawn: %w", err)
	}

	var sets []paramSet
	for _, fill := range fillOptions {
		if fill < 0 || fill > 100 {
			return nil, fmt.Errorf("-fill: %d outside [0, 100]", fill)
		}
		for _, it := range iterationOptions {
			if it < 0 {
				return nil, fmt.Errorf("-iterations: %d is negative", it)
			}
			for _, die := range dieOptions {
				for _, spawn := range spawnOptions {
					sets = append(sets, paramSet{fill: fill, iterations: it, die: die, spawn: spawn})
				}
			}
		}
	}
	return sets, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range splitList(s) {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list %q", s)
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range splitList(s) {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty list %q", s)
	}
	return out, nil
}

func splitList(s string) []string {
	var parts []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
