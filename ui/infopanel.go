package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris-local/config"
	"termtris-local/types"
)

// InfoPanel displays score, records and the next piece alongside the board.
type InfoPanel struct {
	box         *tview.TextView
	snap        types.Snapshot
	theme       config.Theme
	previewSize int
}

// NewInfoPanel creates a panel whose next-piece preview is previewSize cells square.
func NewInfoPanel(theme config.Theme, previewSize int) *InfoPanel {
	panel := &InfoPanel{
		box:         tview.NewTextView(),
		theme:       theme,
		previewSize: previewSize,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *InfoPanel) Box() *tview.TextView {
	return p.box
}

// SetTheme changes the preview colors.
func (p *InfoPanel) SetTheme(theme config.Theme) {
	p.theme = theme
	p.box.SetText(p.Text())
}

func (p *InfoPanel) SetSnapshot(s types.Snapshot) {
	p.snap = s
	p.box.SetText(p.Text())
}

// Text renders the panel contents with tview color tags.
func (p *InfoPanel) Text() string {
	var b strings.Builder
	s := p.snap

	b.WriteString("[white::b]Next[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	b.WriteString(p.preview())

	b.WriteString("\n[white::b]Game[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	fmt.Fprintf(&b, "[white]Score:[-:-:-]  %d\n", s.Score)
	fmt.Fprintf(&b, "[white]Lines:[-:-:-]  %d\n", s.Lines)
	fmt.Fprintf(&b, "[white]Pieces:[-:-:-] %d\n", s.Pieces)
	fmt.Fprintf(&b, "[white]Speed:[-:-:-]  %d\n", s.Cadence)

	b.WriteString("\n[white::b]Best[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	fmt.Fprintf(&b, "[white]Score:[-:-:-]  %d\n", s.BestScore)
	fmt.Fprintf(&b, "[white]Lines:[-:-:-]  %d\n", s.BestLines)

	if s.Auto {
		b.WriteString("\n[yellow::b]AUTOPILOT[-:-:-]\n")
	}
	return b.String()
}

// preview draws the next piece at form 0 in a previewSize square, 2 characters per cell.
func (p *InfoPanel) preview() string {
	size := p.previewSize
	if size <= 0 {
		return ""
	}
	grid := make([][]bool, size)
	for i := range grid {
		grid[i] = make([]bool, size)
	}
	for _, c := range p.snap.Next {
		if c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size {
			grid[c.Y][c.X] = true
		}
	}

	color := "white"
	if len(p.snap.NextID) > 0 {
		color = tagColor(p.theme.ShapeColor(p.snap.NextID[0]))
	}
	cell := string([]rune{p.theme.Symbols.Cell, p.theme.Symbols.Cell})

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(" ")
		for _, filled := range row {
			if filled {
				fmt.Fprintf(&b, "[%s]%s[-]", color, cell)
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// tagColor converts a 256-color palette index into a tview color tag.
func tagColor(index int) string {
	hex := tcell.PaletteColor(index).Hex()
	if hex < 0 {
		return "white"
	}
	return fmt.Sprintf("#%06x", hex)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardView, panel *InfoPanel, hint *tview.TextView) *tview.Flex {
	board.infoPanel = panel
	panel.SetSnapshot(board.Snapshot())

	// Create horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)     // Board (flexible, takes remaining space)
	boardRow.AddItem(panel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, compact status bar at bottom
	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(boardRow, 0, 1, true)
	mainFlex.AddItem(hint, 4, 0, false)

	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}
