package mdp_test

import "github.com/CodeStranger-Fred/valueiteration/mdp"

// world is a table-driven MDP used across the tests. Rewards depend only on
// the next state.
type world struct {
	terminal map[string]bool
	order    map[string][]string
	edges    map[string]map[string][]mdp.Outcome[node]
	rewards  map[string]float64
}

type node struct {
	id string
	w  *world
}

func newWorld() *world {
	return &world{
		terminal: map[string]bool{},
		order:    map[string][]string{},
		edges:    map[string]map[string][]mdp.Outcome[node]{},
		rewards:  map[string]float64{},
	}
}

func (w *world) node(id string) node {
	return node{id: id, w: w}
}

func (w *world) final(ids ...string) *world {
	for _, id := range ids {
		w.terminal[id] = true
	}
	return w
}

func (w *world) reward(id string, r float64) *world {
	w.rewards[id] = r
	return w
}

// action registers an action with no outcomes yet.
func (w *world) action(from, action string) *world {
	if w.edges[from] == nil {
		w.edges[from] = map[string][]mdp.Outcome[node]{}
	}
	if _, ok := w.edges[from][action]; !ok {
		w.order[from] = append(w.order[from], action)
		w.edges[from][action] = nil
	}
	return w
}

func (w *world) edge(from, action, to string, p float64) *world {
	w.action(from, action)
	w.edges[from][action] = append(w.edges[from][action], mdp.Outcome[node]{Next: w.node(to), Probability: p})
	return w
}

func (n node) IsFinal() bool {
	return n.w.terminal[n.id]
}

func (n node) PossibleActions() []string {
	return n.w.order[n.id]
}

func (n node) String() string {
	return n.id
}

func (w *world) Reward(_ node, _ string, next node) float64 {
	return w.rewards[next.id]
}

func (w *world) Transition(s node, a string) []mdp.Outcome[node] {
	return w.edges[s.id][a]
}

// bellman is the textbook recursion without a visited path. It only
// terminates on acyclic worlds.
func (w *world) bellman(id string, gamma float64) float64 {
	best := 0.0
	for i, a := range w.order[id] {
		v := 0.0
		for _, o := range w.edges[id][a] {
			r := w.rewards[o.Next.id]
			if o.Next.IsFinal() {
				v += o.Probability * r
				continue
			}
			v += o.Probability * (r + gamma*w.bellman(o.Next.id, gamma))
		}
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}

func ids(states []node) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = s.id
	}
	return out
}
