// Command bellman evaluates optimal state utilities on the bundled grid
// worlds.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodeStranger-Fred/valueiteration/internal/config"
	"github.com/CodeStranger-Fred/valueiteration/internal/logging"
)

// app carries state shared by every command of one invocation.
type app struct {
	verbose    bool
	noColor    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func (a *app) color() bool {
	return !a.noColor && isatty.IsTerminal(os.Stdout.Fd())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bellman",
		Short: "Optimal state utilities by recursive Bellman expansion",
		Long: `bellman expands the Bellman optimality equation from a start state of a
Markov Decision Process, stopping at terminal states and at states already
on the visited path.

The bundled models are the 4x3 stochastic grid world and a windy grid.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			if a.logger == nil {
				logger, err := logging.New(cfg.Logging.Level, cfg.Logging.JSON, a.verbose)
				if err != nil {
					return err
				}
				a.logger = logger
			}
			a.logger.Debug("config loaded", zap.String("path", a.configPath))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable coloured output")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "Path to the YAML config")

	root.AddCommand(
		newUtilityCmd(a),
		newSweepCmd(a),
		newBoardCmd(a),
		newWindyCmd(a),
		newWalkCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
