// Package mdp computes optimal utilities of Markov Decision Process states by
// recursively expanding the Bellman optimality equation.
//
// A caller describes its decision problem through three contracts: Action,
// State and MDP. The Evaluator walks the action/outcome tree from a start
// state, consulting the caller's Reward and Transition functions, and stops
// descending at terminal states and at states already recorded on the
// visited Path.
package mdp

// Action identifies a decision choice. Actions are compared with == and may
// be used as map keys.
type Action interface {
	comparable
}

// State is one configuration of the modeled system. States are compared by
// value; the visited path relies on that for cycle detection.
type State[A Action] interface {
	comparable

	// IsFinal reports whether the state is terminal.
	IsFinal() bool

	// PossibleActions lists the actions available from the state, in the
	// order they are evaluated. A non-terminal state reached during
	// evaluation must offer at least one action.
	PossibleActions() []A
}

// Outcome is one entry of a transition distribution.
type Outcome[S any] struct {
	Next        S
	Probability float64
}

// MDP is the domain model supplied by the caller.
type MDP[A Action, S State[A]] interface {
	// Reward is the immediate reward for moving from state to next via action.
	Reward(state S, action A, next S) float64

	// Transition returns the outcome distribution of taking action in state.
	// Probabilities are expected to sum to one; this is not checked.
	Transition(state S, action A) []Outcome[S]
}
