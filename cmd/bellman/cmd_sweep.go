package main

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CodeStranger-Fred/valueiteration/gridworld"
	"github.com/CodeStranger-Fred/valueiteration/internal/chart"
)

// gammaRange returns steps evenly spaced values from..to inclusive.
func gammaRange(from, to float64, steps int) []float64 {
	if steps <= 1 {
		return []float64{from}
	}
	gammas := make([]float64, steps)
	for i := range gammas {
		gammas[i] = from + (to-from)*float64(i)/float64(steps-1)
	}
	return gammas
}

func newSweepCmd(a *app) *cobra.Command {
	var (
		from, to float64
		steps    int
		jobs     int
		outDir   string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate every non-terminal cell over a range of discount factors and chart it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from < 0 || to > 1 || from > to || steps < 1 || jobs < 1 {
				return fmt.Errorf("invalid sweep range [%v, %v] with %d steps", from, to, steps)
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			path := a.cfg.ChartPath()
			if cmd.Flags().Changed("out") {
				path = filepath.Join(outDir, a.cfg.Chart.File)
			}

			runID := uuid.NewString()
			gammas := gammaRange(from, to, steps)

			var cells []gridworld.Space
			for _, s := range gridworld.Cells() {
				if !s.IsFinal() {
					cells = append(cells, s)
				}
			}
			series := make([]chart.Series, len(cells))
			for i, s := range cells {
				series[i] = chart.Series{Name: s.String(), Values: make([]float64, len(gammas))}
			}

			// An Evaluator is not safe for concurrent use; one per gamma.
			var eg errgroup.Group
			eg.SetLimit(jobs)
			for j, g := range gammas {
				eg.Go(func() error {
					values, err := gridworld.Utilities(a.gridEvaluator(runID), g, a.cfg.SeedVisited)
					if err != nil {
						return fmt.Errorf("gamma %.2f: %w", g, err)
					}
					for i, s := range cells {
						series[i].Values[j] = values[s]
					}
					return nil
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s", "gamma")
			for _, s := range cells {
				fmt.Fprintf(out, "%9d", s.N)
			}
			fmt.Fprintln(out)
			for j, g := range gammas {
				fmt.Fprintf(out, "%-8.2f", g)
				for i := range cells {
					fmt.Fprintf(out, "%9.4f", series[i].Values[j])
				}
				fmt.Fprintln(out)
			}

			if err := chart.WriteFile(path, a.cfg.Chart.Title, gammas, series...); err != nil {
				return err
			}
			a.logger.Info("sweep charted",
				zap.String("run_id", runID),
				zap.Int("gammas", len(gammas)),
				zap.String("chart", path),
			)
			fmt.Fprintf(out, "chart written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "Lowest discount factor")
	cmd.Flags().Float64Var(&to, "to", 1, "Highest discount factor")
	cmd.Flags().IntVar(&steps, "steps", 11, "Number of discount factors")
	cmd.Flags().IntVar(&jobs, "jobs", runtime.GOMAXPROCS(0), "Discount factors evaluated in parallel")
	cmd.Flags().StringVar(&outDir, "out", "", "Chart output directory (overrides config)")
	return cmd
}
