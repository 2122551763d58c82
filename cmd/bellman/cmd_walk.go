package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/CodeStranger-Fred/valueiteration/gridworld"
	"github.com/CodeStranger-Fred/valueiteration/mdp"
)

func newWalkCmd(a *app) *cobra.Command {
	var (
		start uint8
		steps int
		seed  uint64
	)
	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Sample a random walk on the grid world",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if start < 1 || start > 11 {
				return fmt.Errorf("start cell %d outside 1..11", start)
			}
			r := rand.New(rand.NewPCG(seed, seed))
			g := gridworld.New()

			episode, err := mdp.Rollout[gridworld.Move, gridworld.Space](
				g, gridworld.NewSpace(start), mdp.RandomPicker[gridworld.Move, gridworld.Space](r), r, steps)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			total := 0.0
			for i, step := range episode {
				total += step.Reward
				fmt.Fprintf(out, "step %2d: %s --%s--> %s reward %+.2f\n", i+1, step.State, step.Action, step.Next, step.Reward)
			}
			last := gridworld.NewSpace(start)
			if len(episode) > 0 {
				last = episode[len(episode)-1].Next
			}
			gridworld.NewBoard(out, a.color()).PrintCurrentState(last)
			fmt.Fprintf(out, "return %.2f after %d steps\n", total, len(episode))
			return nil
		},
	}
	cmd.Flags().Uint8Var(&start, "start", 1, "Start cell (1-11)")
	cmd.Flags().IntVar(&steps, "steps", 50, "Maximum number of steps")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Random seed")
	return cmd
}
