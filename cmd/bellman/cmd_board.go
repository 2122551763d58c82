package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/CodeStranger-Fred/valueiteration/gridworld"
)

func newBoardCmd(a *app) *cobra.Command {
	var f evalFlags
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Draw the grid world with the utility of every cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.apply(a, cmd); err != nil {
				return err
			}

			values, err := gridworld.Utilities(a.gridEvaluator(uuid.NewString()), a.cfg.Gamma, a.cfg.SeedVisited)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			board := gridworld.NewBoard(out, a.color())
			board.PrintCurrentState(gridworld.NewSpace(a.cfg.Start))
			fmt.Fprintln(out)
			board.PrintValueEstimates(values)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
