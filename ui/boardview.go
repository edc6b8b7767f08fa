// Package ui specifies custom controls for tview to play falling-block games in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris-local/config"
	"termtris-local/types"
)

type BoardView struct {
	Box       *tview.Box
	snap      types.Snapshot
	hint      *tview.TextView
	cfg       *config.Config
	styles    map[byte]tcell.Style
	empty     tcell.Style
	shadow    tcell.Style
	frame     tcell.Style
	infoPanel *InfoPanel
}

func NewBoardView(c *config.Config, hint *tview.TextView) *BoardView {
	view := &BoardView{
		Box:  tview.NewBox(),
		hint: hint,
	}
	view.SetConfig(c)
	view.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		w, h := view.Size()
		if w == 0 {
			return x, y, 1, 1
		}
		// Center the well inside the box.
		if width > w {
			x += (width - w) / 2
		}
		view.draw(screen, x, y)
		return x, y, w, h
	})
	return view
}

// Size returns the drawn size of the well including its frame.
func (v *BoardView) Size() (int, int) {
	if v.snap.Width() == 0 {
		return 0, 0
	}
	// 2 characters per cell for square appearance
	return v.snap.Width()*2 + 2, v.snap.Height() + 2
}

func (v *BoardView) SetConfig(c *config.Config) {
	v.cfg = c
	v.styles = make(map[byte]tcell.Style, 7)
	for _, id := range []byte("ijlotsz") {
		v.styles[id] = tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.ShapeColor(id)))
	}
	v.empty = tcell.StyleDefault.Background(tcell.PaletteColor(c.Theme.Colors.Empty))
	v.shadow = v.empty.Foreground(tcell.PaletteColor(c.Theme.Colors.Shadow))
	v.frame = tcell.StyleDefault.Foreground(tcell.PaletteColor(c.Theme.Colors.Border))
}

// SetSnapshot replaces the state being drawn and refreshes the side panels.
func (v *BoardView) SetSnapshot(s types.Snapshot) {
	v.snap = s
	v.refreshHint()
}

func (v *BoardView) Snapshot() types.Snapshot {
	return v.snap
}

func (v *BoardView) draw(screen tcell.Screen, x, y int) {
	s := &v.snap
	w, h := s.Width(), s.Height()
	left, top := x+1, y+1

	drawFrame(screen, x, y, w*2+2, h+2, v.frame)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if id := s.At(col, row); id != 0 {
				drawCell(screen, left, top, col, row, v.cfg.Theme.Symbols.Cell, v.cellStyle(id))
			} else {
				drawCell(screen, left, top, col, row, v.cfg.Theme.Symbols.Empty, v.empty)
			}
		}
	}
	if v.cfg.Theme.DrawShadow {
		for _, c := range s.Shadow {
			if c.Y >= 0 && c.Y < h {
				drawCell(screen, left, top, c.X, c.Y, v.cfg.Theme.Symbols.Shadow, v.shadow)
			}
		}
	}
	if len(s.ActiveID) > 0 {
		style := v.cellStyle(s.ActiveID[0])
		for _, c := range s.Active {
			if c.Y >= 0 && c.Y < h {
				drawCell(screen, left, top, c.X, c.Y, v.cfg.Theme.Symbols.Cell, style)
			}
		}
	}

	banner := ""
	switch {
	case s.Over:
		banner = "GAME OVER"
	case s.Paused:
		banner = "PAUSED"
	}
	if banner != "" {
		tview.Print(screen, banner, left, top+h/2, w*2, tview.AlignCenter, MenuColors.Title)
	}
}

func (v *BoardView) cellStyle(id byte) tcell.Style {
	if style, ok := v.styles[id]; ok {
		return style.Background(tcell.PaletteColor(v.cfg.Theme.Colors.Empty))
	}
	return v.empty
}

func (v *BoardView) refreshHint() {
	if v.infoPanel != nil {
		v.infoPanel.SetSnapshot(v.snap)
	}
	if v.hint == nil {
		return
	}

	var status string
	switch {
	case v.snap.Over:
		status = fmt.Sprintf("  Game over · score %d · r restart · q quit", v.snap.Score)
	case v.snap.Paused:
		status = "  Paused · p resume"
	case v.snap.Auto:
		status = "  Autopilot · t take over"
	default:
		status = "  ←→/hl move  ↑/k rotate  ↓/j faster  space drop"
	}
	v.hint.SetText(status + "\n  p pause   t autopilot   r restart   q quit")
}

// drawCell draws one board cell (2 characters wide)
func drawCell(s tcell.Screen, l, t, x, y int, r rune, style tcell.Style) {
	s.SetContent(l+x*2, t+y, r, nil, style)
	s.SetContent(l+x*2+1, t+y, r, nil, style)
}

func drawFrame(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for i := x + 1; i < x+w-1; i++ {
		s.SetContent(i, y+h-1, '─', nil, style)
	}
	for j := y; j < y+h-1; j++ {
		s.SetContent(x, j, '│', nil, style)
		s.SetContent(x+w-1, j, '│', nil, style)
	}
	s.SetContent(x, y+h-1, '└', nil, style)
	s.SetContent(x+w-1, y+h-1, '┘', nil, style)
}
