// Package windy is a rows x cols grid with an upward wind that varies per
// column. After every move the wind pushes the agent up by the column's base
// strength (probability Wind1), by one more than that (Wind2), or not at all
// (Wind0). The top-left and bottom-right cells are terminal.
package windy

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/logrusorgru/aurora"

	"github.com/CodeStranger-Fred/valueiteration/mdp"
)

type Move string

const (
	Left  Move = "left"
	Right Move = "right"
	Up    Move = "up"
	Down  Move = "down"
)

var ErrInvalidGrid = errors.New("windy: invalid grid")

// Cell is one position on a grid of the given size.
type Cell struct {
	Row, Col   int
	rows, cols int
}

func (c Cell) IsFinal() bool {
	return (c.Row == 0 && c.Col == 0) || (c.Row == c.rows-1 && c.Col == c.cols-1)
}

func (c Cell) PossibleActions() []Move {
	return []Move{Left, Right, Up, Down}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

type GridWorld struct {
	Rows     int
	Cols     int
	BaseWind []int
	Wind0    float64
	Wind1    float64
	Wind2    float64

	StepReward float64
	GoalReward float64
}

func floatEq(a, b float64) bool {
	const eps = 1e-9
	return math.Abs(a-b) < eps
}

func (w GridWorld) Check() error {
	if w.Rows <= 0 || w.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, w.Rows, w.Cols)
	}
	if len(w.BaseWind) != w.Cols {
		return fmt.Errorf("%w: %d wind values for %d columns", ErrInvalidGrid, len(w.BaseWind), w.Cols)
	}
	for _, p := range []float64{w.Wind0, w.Wind1, w.Wind2} {
		if p < 0 {
			return fmt.Errorf("%w: negative wind probability %v", ErrInvalidGrid, p)
		}
	}
	if !floatEq(w.Wind0+w.Wind1+w.Wind2, 1) {
		return fmt.Errorf("%w: wind probabilities sum to %v", ErrInvalidGrid, w.Wind0+w.Wind1+w.Wind2)
	}
	return nil
}

func (w GridWorld) Cell(r, c int) (Cell, error) {
	if r < 0 || c < 0 || r >= w.Rows || c >= w.Cols {
		return Cell{}, fmt.Errorf("%w: cell (%d,%d) off board", ErrInvalidGrid, r, c)
	}
	return w.cell(r, c), nil
}

func (w GridWorld) cell(r, c int) Cell {
	return Cell{Row: r, Col: c, rows: w.Rows, cols: w.Cols}
}

// Cells lists every cell row by row.
func (w GridWorld) Cells() []Cell {
	cells := make([]Cell, 0, w.Rows*w.Cols)
	for r := 0; r < w.Rows; r++ {
		for c := 0; c < w.Cols; c++ {
			cells = append(cells, w.cell(r, c))
		}
	}
	return cells
}

func (w GridWorld) clipRow(r int) int {
	return min(max(r, 0), w.Rows-1)
}

func (w GridWorld) clipCol(c int) int {
	return min(max(c, 0), w.Cols-1)
}

func (w GridWorld) shift(s Cell, m Move) Cell {
	r, c := s.Row, s.Col
	switch m {
	case Up:
		r--
	case Down:
		r++
	case Right:
		c++
	case Left:
		c--
	default:
		panic("unhandled action: " + string(m))
	}
	return w.cell(w.clipRow(r), w.clipCol(c))
}

// Transition moves first and then applies the wind of the landing column.
// Outcomes that land on the same cell are merged; impossible ones are
// dropped.
func (w GridWorld) Transition(s Cell, m Move) []mdp.Outcome[Cell] {
	s1 := w.shift(s, m)
	wind := w.BaseWind[s1.Col]

	var pdf []mdp.Outcome[Cell]
	add(&pdf, s1, w.Wind0)
	add(&pdf, w.cell(w.clipRow(s1.Row-wind), s1.Col), w.Wind1)
	add(&pdf, w.cell(w.clipRow(s1.Row-(wind+1)), s1.Col), w.Wind2)
	return pdf
}

func add(pdf *[]mdp.Outcome[Cell], next Cell, p float64) {
	if p == 0 {
		return
	}
	for i := range *pdf {
		if (*pdf)[i].Next == next {
			(*pdf)[i].Probability += p
			return
		}
	}
	*pdf = append(*pdf, mdp.Outcome[Cell]{Next: next, Probability: p})
}

func (w GridWorld) Reward(_ Cell, _ Move, next Cell) float64 {
	if next.IsFinal() {
		return w.GoalReward
	}
	return w.StepReward
}

// PrintCurrentState draws the grid with current highlighted.
func (w GridWorld) PrintCurrentState(out io.Writer, au aurora.Aurora, current Cell) {
	for r := 0; r < w.Rows; r++ {
		for c := 0; c < w.Cols; c++ {
			st := w.cell(r, c)
			label := fmt.Sprintf("%7s ", st)
			switch {
			case st == current:
				fmt.Fprint(out, au.Green(label))
			case st.IsFinal():
				fmt.Fprint(out, au.Cyan(label))
			default:
				fmt.Fprint(out, au.Blue(label))
			}
			fmt.Fprint(out, au.White("|"))
		}
		fmt.Fprintln(out)
	}
}
