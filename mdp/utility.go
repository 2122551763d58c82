package mdp

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Stats describes the most recent top-level evaluation.
type Stats struct {
	Expansions int // recursive utility frames, root included
	Terminals  int // outcomes that landed on a terminal state
	Cycles     int // outcomes whose next state was already on the path
	MaxDepth   int // deepest frame reached, root is 0
}

type options struct {
	logger   *zap.Logger
	maxDepth int
}

type Option func(*options)

// WithLogger traces evaluations at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMaxDepth aborts an evaluation once a frame deeper than n would be
// entered. Zero means unlimited.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// Evaluator computes state utilities for one MDP. It keeps per-call
// statistics and must not be used by more than one goroutine at a time.
type Evaluator[A Action, S State[A]] struct {
	mdp      MDP[A, S]
	log      *zap.Logger
	maxDepth int
	stats    Stats
}

func NewEvaluator[A Action, S State[A]](m MDP[A, S], opts ...Option) *Evaluator[A, S] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Evaluator[A, S]{
		mdp:      m,
		log:      o.logger,
		maxDepth: o.maxDepth,
	}
}

// Utility evaluates a single state with a default Evaluator.
func Utility[A Action, S State[A]](m MDP[A, S], state S, gamma float64, visited *Path[S]) (float64, error) {
	return NewEvaluator[A, S](m).Utility(state, gamma, visited)
}

// abort carries a fatal error up through the recursion.
type abort struct {
	err error
}

// Utility returns the expected utility of state under the best action at
// every step, discounting future utility by gamma.
//
// visited is mutated during the call. Before exploring each outcome the
// current state is appended to it; an outcome whose next state is already
// recorded contributes only its immediate reward, and in that case the
// first occurrence of the current state is removed again. Nothing else is
// ever removed.
//
// A state without actions or an action without outcomes aborts the whole
// evaluation with ErrNoActions or ErrNoOutcomes.
func (e *Evaluator[A, S]) Utility(state S, gamma float64, visited *Path[S]) (u float64, err error) {
	if visited == nil {
		return 0, ErrNilPath
	}
	e.stats = Stats{}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		a, ok := r.(abort)
		if !ok {
			panic(r)
		}
		u, err = 0, a.err
		e.log.Debug("utility evaluation aborted",
			zap.Any("state", state),
			zap.Error(err),
			zap.Int("expansions", e.stats.Expansions),
		)
	}()

	u = e.utility(state, gamma, visited, 0)

	e.log.Debug("utility evaluated",
		zap.Any("state", state),
		zap.Float64("gamma", gamma),
		zap.Float64("utility", u),
		zap.Int("expansions", e.stats.Expansions),
		zap.Int("terminals", e.stats.Terminals),
		zap.Int("cycles", e.stats.Cycles),
		zap.Int("max_depth", e.stats.MaxDepth),
		zap.Int("path_len", visited.Len()),
	)
	return u, nil
}

// Stats returns the counters of the last Utility call.
func (e *Evaluator[A, S]) Stats() Stats {
	return e.stats
}

func (e *Evaluator[A, S]) fail(err error) {
	panic(abort{err: err})
}

func (e *Evaluator[A, S]) utility(state S, gamma float64, visited *Path[S], depth int) float64 {
	if e.maxDepth > 0 && depth > e.maxDepth {
		e.fail(fmt.Errorf("%w: depth %d at state %v", ErrDepthExceeded, depth, state))
	}
	e.stats.Expansions++
	e.stats.MaxDepth = max(e.stats.MaxDepth, depth)

	actions := state.PossibleActions()
	if len(actions) == 0 {
		e.fail(fmt.Errorf("%w: state %v", ErrNoActions, state))
	}

	best, ok := Max(slices.Values(actions), func(action A) float64 {
		outcomes := e.mdp.Transition(state, action)

		expected, ok := Sum(slices.Values(outcomes), func(o Outcome[S]) float64 {
			reward := e.mdp.Reward(state, action, o.Next)
			visited.Push(state)

			switch {
			case o.Next.IsFinal():
				e.stats.Terminals++
				return o.Probability * reward
			case visited.Contains(o.Next):
				e.stats.Cycles++
				visited.RemoveFirst(state)
				if ce := e.log.Check(zap.DebugLevel, "cycle closed"); ce != nil {
					ce.Write(
						zap.Any("state", state),
						zap.Any("action", action),
						zap.Any("next", o.Next),
						zap.Int("depth", depth),
					)
				}
				return o.Probability * reward
			default:
				next := gamma * e.utility(o.Next, gamma, visited, depth+1)
				return o.Probability * (reward + next)
			}
		})
		if !ok {
			e.fail(fmt.Errorf("%w: state %v action %v", ErrNoOutcomes, state, action))
		}
		return expected
	})
	if !ok {
		e.fail(fmt.Errorf("%w: state %v", ErrNoActions, state))
	}
	return best
}
