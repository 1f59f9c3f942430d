package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"pursuitsim/internal/sim"
)

// Screen is a live tcell view of the board. It owns the terminal for the
// duration of the run; key presses (Esc, q, Ctrl+C, Enter) invoke the stop
// callback so the engine can end the run cooperatively.
type Screen struct {
	scr  tcell.Screen
	stop func()
}

// NewScreen initializes the terminal and starts the input loop.
func NewScreen(stop func()) (*Screen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("render: open screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("render: init screen: %w", err)
	}
	scr.Clear()
	v := &Screen{scr: scr, stop: stop}
	go v.inputLoop()
	return v, nil
}

func (v *Screen) inputLoop() {
	for {
		ev := v.scr.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape,
				ev.Key() == tcell.KeyCtrlC,
				ev.Key() == tcell.KeyEnter,
				ev.Rune() == 'q':
				if v.stop != nil {
					v.stop()
				}
			}
		case *tcell.EventResize:
			v.scr.Sync()
		case nil:
			// Screen finalized.
			return
		}
	}
}

var cellStyles = map[sim.Cell]tcell.Style{
	sim.Seeker:   tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
	sim.Chaser:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	sim.Goal:     tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	sim.Obstacle: tcell.StyleDefault.Foreground(tcell.ColorGray),
	sim.Empty:    tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
}

// Draw repaints the whole board plus a status line.
func (v *Screen) Draw(turn int, s sim.Snapshot) {
	v.scr.Clear()
	for row := 0; row < s.Size; row++ {
		for col := 0; col < s.Size; col++ {
			cell := s.Grid.At(sim.Position{Row: row, Col: col})
			v.scr.SetContent(col*2, row, rune(cell.String()[0]), nil, cellStyles[cell])
		}
	}
	status := fmt.Sprintf("turn %d | distance %d | chasers %d | %s | q/esc to stop",
		turn, s.Distance(), len(s.Chasers), s.State)
	v.drawText(0, s.Size+1, status, tcell.StyleDefault)
	v.scr.Show()
}

func (v *Screen) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		v.scr.SetContent(x+i, y, r, nil, style)
	}
}

// Close releases the terminal.
func (v *Screen) Close() {
	v.scr.Fini()
}
