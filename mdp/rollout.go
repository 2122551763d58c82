package mdp

import (
	"fmt"
	"math/rand/v2"
)

// Step is one sampled transition.
type Step[A Action, S State[A]] struct {
	State  S
	Action A
	Next   S
	Reward float64
}

// Picker selects the action to take in a state.
type Picker[A Action, S State[A]] func(state S, actions []A) A

// RandomPicker picks uniformly among the available actions.
func RandomPicker[A Action, S State[A]](r *rand.Rand) Picker[A, S] {
	return func(_ S, actions []A) A {
		return actions[r.IntN(len(actions))]
	}
}

// Rollout samples one trajectory from start until a terminal state is
// reached or maxSteps transitions were taken. maxSteps <= 0 means no cap.
func Rollout[A Action, S State[A]](m MDP[A, S], start S, pick Picker[A, S], r *rand.Rand, maxSteps int) ([]Step[A, S], error) {
	var episode []Step[A, S]
	state := start
	for !state.IsFinal() {
		if maxSteps > 0 && len(episode) >= maxSteps {
			break
		}
		actions := state.PossibleActions()
		if len(actions) == 0 {
			return episode, fmt.Errorf("%w: state %v", ErrNoActions, state)
		}
		action := pick(state, actions)
		next, ok := Choose(m.Transition(state, action), r)
		if !ok {
			return episode, fmt.Errorf("%w: state %v action %v", ErrNoOutcomes, state, action)
		}
		episode = append(episode, Step[A, S]{
			State:  state,
			Action: action,
			Next:   next,
			Reward: m.Reward(state, action, next),
		})
		state = next
	}
	return episode, nil
}
