package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodeStranger-Fred/valueiteration/mdp"
	"github.com/CodeStranger-Fred/valueiteration/windy"
)

func newWindyCmd(a *app) *cobra.Command {
	var (
		rows, cols int
		gamma      float64
	)
	cmd := &cobra.Command{
		Use:   "windy",
		Short: "Evaluate the windy grid from its bottom-left cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wc := a.cfg.Windy
			if cmd.Flags().Changed("rows") {
				wc.Rows = rows
			}
			if cmd.Flags().Changed("cols") {
				wc.Cols = cols
			}
			if cmd.Flags().Changed("gamma") {
				a.cfg.Gamma = gamma
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			w := windy.GridWorld{
				Rows:       wc.Rows,
				Cols:       wc.Cols,
				BaseWind:   wc.BaseWind,
				Wind0:      wc.Wind0,
				Wind1:      wc.Wind1,
				Wind2:      wc.Wind2,
				StepReward: wc.StepReward,
				GoalReward: wc.GoalReward,
			}
			if err := w.Check(); err != nil {
				return err
			}
			start, err := w.Cell(w.Rows-1, 0)
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			e := mdp.NewEvaluator[windy.Move, windy.Cell](w,
				mdp.WithLogger(a.logger.With(zap.String("run_id", runID))),
				mdp.WithMaxDepth(a.cfg.MaxDepth),
			)
			u, err := e.Utility(start, a.cfg.Gamma, mdp.NewPath[windy.Cell]())
			if err != nil {
				return fmt.Errorf("evaluating %s: %w", start, err)
			}

			out := cmd.OutOrStdout()
			w.PrintCurrentState(out, aurora.NewAurora(a.color()), start)
			fmt.Fprintf(out, "utility of %s (gamma %.2f): %.6f\n", start, a.cfg.Gamma, u)
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 0, "Grid rows (overrides config)")
	cmd.Flags().IntVar(&cols, "cols", 0, "Grid columns (overrides config)")
	cmd.Flags().Float64Var(&gamma, "gamma", 1, "Discount factor")
	return cmd
}
