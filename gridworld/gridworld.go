// Package gridworld is the classic 4x3 stochastic grid: eleven open cells
// and one wall, numbered column by column from the bottom-left corner.
//
//	3  5  8 11
//	2  #  7 10
//	1  4  6  9
//
// Cells 10 and 11 are terminal with rewards -1 and +1. Every other move
// costs StepReward. An intended move succeeds with probability 0.8 and
// slips into each of two other directions with probability 0.1. Moving
// into the wall or off the board leaves the agent in place.
package gridworld

import (
	"fmt"

	"github.com/CodeStranger-Fred/valueiteration/mdp"
)

const (
	Gamma      = 1.0
	StepReward = -0.04
)

type Move uint8

const (
	Up Move = iota
	Right
	Down
	Left
)

var moves = [...]string{Up: "up", Right: "right", Down: "down", Left: "left"}

func (m Move) String() string {
	if int(m) < len(moves) {
		return moves[m]
	}
	return fmt.Sprintf("Move(%d)", uint8(m))
}

// Space is one cell of the grid.
type Space struct {
	N uint8
}

func NewSpace(n uint8) Space {
	return Space{N: n}
}

func (s Space) IsFinal() bool {
	return s.N == 10 || s.N == 11
}

func (s Space) PossibleActions() []Move {
	return []Move{Up, Right, Down, Left}
}

func (s Space) String() string {
	return fmt.Sprintf("cell %d", s.N)
}

// Cells lists the open cells in numeric order.
func Cells() []Space {
	cells := make([]Space, 0, 11)
	for n := uint8(1); n <= 11; n++ {
		cells = append(cells, NewSpace(n))
	}
	return cells
}

func shiftUp(n uint8) uint8 {
	switch n {
	case 1, 2, 6, 7, 9, 10:
		return n + 1
	}
	return n
}

func shiftRight(n uint8) uint8 {
	switch n {
	case 1, 5, 6, 7, 8:
		return n + 3
	case 3, 4:
		return n + 2
	}
	return n
}

func shiftDown(n uint8) uint8 {
	switch n {
	case 2, 3, 7, 8, 10, 11:
		return n - 1
	}
	return n
}

func shiftLeft(n uint8) uint8 {
	switch n {
	case 4, 8, 9, 10, 11:
		return n - 3
	case 5, 6:
		return n - 2
	}
	return n
}

// GridWorld implements mdp.MDP[Move, Space].
type GridWorld struct{}

func New() GridWorld {
	return GridWorld{}
}

func (GridWorld) Reward(_ Space, _ Move, next Space) float64 {
	switch next.N {
	case 10:
		return -1.0
	case 11:
		return 1.0
	}
	return StepReward
}

func (GridWorld) Transition(s Space, m Move) []mdp.Outcome[Space] {
	n := s.N
	if s.IsFinal() {
		return []mdp.Outcome[Space]{{Next: s, Probability: 1.0}}
	}

	var intended, slipA, slipB uint8
	switch m {
	case Up:
		intended, slipA, slipB = shiftUp(n), shiftLeft(n), shiftRight(n)
	case Right:
		intended, slipA, slipB = shiftRight(n), shiftLeft(n), shiftDown(n)
	case Down:
		intended, slipA, slipB = shiftDown(n), shiftRight(n), shiftLeft(n)
	case Left:
		intended, slipA, slipB = shiftLeft(n), shiftDown(n), shiftUp(n)
	default:
		panic("unhandled move: " + m.String())
	}

	return []mdp.Outcome[Space]{
		{Next: NewSpace(intended), Probability: 0.8},
		{Next: NewSpace(slipA), Probability: 0.1},
		{Next: NewSpace(slipB), Probability: 0.1},
	}
}
