package mdp

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const probabilityTolerance = 1e-9

// CheckDistribution reports whether outcomes form a probability
// distribution: no negative or NaN entries and a total of one. The
// Evaluator never calls it; models that want the guarantee check their
// own transitions.
func CheckDistribution[S any](outcomes []Outcome[S]) error {
	if len(outcomes) == 0 {
		return fmt.Errorf("%w: no outcomes", ErrBadDistribution)
	}
	sum := 0.0
	for i, o := range outcomes {
		if math.IsNaN(o.Probability) || o.Probability < 0 {
			return fmt.Errorf("%w: outcome %d has probability %v", ErrBadDistribution, i, o.Probability)
		}
		sum += o.Probability
	}
	if math.Abs(sum-1) > probabilityTolerance {
		return fmt.Errorf("%w: probabilities sum to %v", ErrBadDistribution, sum)
	}
	return nil
}

// Choose samples a next state from outcomes. Rounding slack falls to the
// last outcome. It returns false for an empty distribution.
func Choose[S any](outcomes []Outcome[S], r *rand.Rand) (S, bool) {
	var last S
	if len(outcomes) == 0 {
		return last, false
	}
	v := r.Float64()
	cumulative := 0.0
	for _, o := range outcomes {
		cumulative += o.Probability
		if cumulative > v {
			return o.Next, true
		}
		last = o.Next
	}
	return last, true
}
