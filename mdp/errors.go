package mdp

import "errors"

var (
	// ErrNoActions is returned when a non-terminal state offers no actions.
	ErrNoActions = errors.New("mdp: no actions available from non-terminal state")

	// ErrNoOutcomes is returned when a transition yields an empty distribution.
	ErrNoOutcomes = errors.New("mdp: transition has no outcomes")

	// ErrDepthExceeded is returned when the recursion passes the evaluator's
	// depth limit.
	ErrDepthExceeded = errors.New("mdp: recursion depth limit exceeded")

	ErrNilPath = errors.New("mdp: visited path is nil")

	// ErrBadDistribution is returned by CheckDistribution.
	ErrBadDistribution = errors.New("mdp: malformed probability distribution")
)
