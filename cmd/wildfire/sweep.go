package main

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"burnscar/internal/sims/wildfire"
)

type paramSet struct {
	decayTime  float64
	frequency  float64
	meanRadius float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("decay=%g freq=%g radius=%g", p.decayTime, p.frequency, p.meanRadius)
}

type scenarioResult struct {
	params paramSet
	wildfire.ScenarioResult
}

func newSweepCmd(opts *options) *cobra.Command {
	var (
		steps   int
		workers int
		top     int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run deterministic scenarios over a grid of decay times, fire frequencies and radii.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := opts.loadConfig()
			if err != nil {
				return err
			}
			sets := sweepSets(
				[]float64{5, 10, 20, 40},
				[]float64{0.01, 0.05, 0.1, 0.5},
				[]float64{2, 4, 8},
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sweeping %d parameter sets (%d workers, %d steps)\n", len(sets), workers, steps)

			start := time.Now()
			results, err := sweep(cmd.Context(), base, sets, steps, workers)
			if err != nil {
				return err
			}
			sort.Slice(results, func(i, j int) bool { return results[i].FinalMean > results[j].FinalMean })

			fmt.Fprintf(out, "\nTop %d results by final mean erodibility (elapsed %s):\n", min(top, len(results)), time.Since(start).Round(time.Millisecond))
			for i := 0; i < len(results) && i < top; i++ {
				res := results[i]
				fmt.Fprintf(out, "%2d) final=%.4f peakMean=%.4f peakMax=%.4f fires=%d burned=%d largest=%.2f %s\n",
					i+1, res.FinalMean, res.PeakMean, res.PeakMax, res.Fires, res.BurnedNodes, res.LargestRadius, res.params)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 500, "timesteps to simulate per scenario")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of scenarios run concurrently")
	cmd.Flags().IntVar(&top, "top", 5, "number of results to print")
	return cmd
}

func sweepSets(decayTimes, frequencies, radii []float64) []paramSet {
	var sets []paramSet
	for _, decay := range decayTimes {
		for _, freq := range frequencies {
			for _, radius := range radii {
				sets = append(sets, paramSet{decayTime: decay, frequency: freq, meanRadius: radius})
			}
		}
	}
	return sets
}

func sweep(ctx context.Context, base wildfire.Config, sets []paramSet, steps, workers int) ([]scenarioResult, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]scenarioResult, len(sets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, params := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := base
			cfg.Params.DecayTime = params.decayTime
			cfg.Params.FireFrequency = params.frequency
			cfg.Params.MeanFireRadius = params.meanRadius
			res, err := wildfire.RunScenario(cfg, steps)
			if err != nil {
				return fmt.Errorf("%s: %w", params, err)
			}
			results[i] = scenarioResult{params: params, ScenarioResult: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
