package gridworld

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

// layout is the board seen from above; 0 marks the wall.
var layout = [3][4]uint8{
	{3, 5, 8, 11},
	{2, 0, 7, 10},
	{1, 4, 6, 9},
}

// Board prints the grid to a terminal.
type Board struct {
	w  io.Writer
	au aurora.Aurora
}

func NewBoard(w io.Writer, color bool) *Board {
	return &Board{w: w, au: aurora.NewAurora(color)}
}

func (b *Board) cell(n uint8, text string, current bool) aurora.Value {
	switch {
	case n == 0:
		return b.au.White(text)
	case current:
		return b.au.Green(text)
	case n == 11:
		return b.au.Cyan(text)
	case n == 10:
		return b.au.Red(text)
	}
	return b.au.Blue(text)
}

// PrintCurrentState draws the board with the current cell highlighted.
func (b *Board) PrintCurrentState(current Space) {
	for _, row := range layout {
		for _, n := range row {
			text := "    #"
			if n != 0 {
				text = fmt.Sprintf("%5d", n)
			}
			fmt.Fprintf(b.w, "%v%v", b.cell(n, text, n == current.N), b.au.White(" |"))
		}
		fmt.Fprintln(b.w)
	}
}

// PrintValueEstimates draws one value per cell. Cells missing from values
// are left blank.
func (b *Board) PrintValueEstimates(values map[Space]float64) {
	for _, row := range layout {
		for _, n := range row {
			text := "   #   "
			if n != 0 {
				text = "       "
				if v, ok := values[NewSpace(n)]; ok {
					text = format2x2(v)
				}
			}
			fmt.Fprintf(b.w, "%v%v", b.cell(n, text, false), b.au.White("|"))
		}
		fmt.Fprintln(b.w)
	}
}

func format2x2(x float64) string {
	if x < 0 {
		return " -" + fmt.Sprintf("%05.2f", -x)
	}
	return fmt.Sprintf("  %05.2f", x)
}
