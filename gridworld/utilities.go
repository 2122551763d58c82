package gridworld

import (
	"github.com/CodeStranger-Fred/valueiteration/mdp"
)

// Utilities evaluates every cell with a fresh visited path. With seed set
// the path starts out holding the evaluated cell.
func Utilities(e *mdp.Evaluator[Move, Space], gamma float64, seed bool) (map[Space]float64, error) {
	values := make(map[Space]float64, 11)
	for _, s := range Cells() {
		path := mdp.NewPath[Space]()
		if seed {
			path.Push(s)
		}
		u, err := e.Utility(s, gamma, path)
		if err != nil {
			return nil, err
		}
		values[s] = u
	}
	return values, nil
}
