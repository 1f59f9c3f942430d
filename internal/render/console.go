package render

import (
	"fmt"
	"io"
	"strings"

	"pursuitsim/internal/sim"
)

// ANSI sequences for the colored board. Kept as plain constants; Color
// false drops them entirely for dumb terminals.
const (
	ansiReset  = "\033[0m"
	ansiBlue   = "\033[34m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiGray   = "\033[90m"
)

// Console renders snapshots as text to a writer.
type Console struct {
	Out   io.Writer
	Color bool
}

func NewConsole(out io.Writer, color bool) *Console {
	return &Console{Out: out, Color: color}
}

// Draw prints the board with row/column headers, a legend and a stats line.
func (c *Console) Draw(turn int, s sim.Snapshot) {
	w := c.Out
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 3*s.Size+4))
	fmt.Fprintf(w, "  turn %d\n", turn)

	fmt.Fprint(w, "   ")
	for col := 0; col < s.Size; col++ {
		fmt.Fprintf(w, "%2d ", col)
	}
	fmt.Fprintln(w)

	for row := 0; row < s.Size; row++ {
		fmt.Fprintf(w, "%2d ", row)
		for col := 0; col < s.Size; col++ {
			cell := s.Grid.At(sim.Position{Row: row, Col: col})
			fmt.Fprintf(w, " %s ", c.symbol(cell))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\n S=seeker  C=chaser  G=goal  #=obstacle  .=empty")
	fmt.Fprintf(w, " distance to goal: %d | chasers: %d | state: %s\n",
		s.Distance(), len(s.Chasers), s.State)
}

func (c *Console) symbol(cell sim.Cell) string {
	s := cell.String()
	if !c.Color {
		return s
	}
	switch cell {
	case sim.Seeker:
		return ansiBlue + s + ansiReset
	case sim.Chaser:
		return ansiRed + s + ansiReset
	case sim.Goal:
		return ansiYellow + s + ansiReset
	case sim.Obstacle:
		return ansiGray + s + ansiReset
	}
	return s
}
