package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris-local/config"
	"termtris-local/piece"
)

// PaletteUI edits the per-shape colors with a live preview.
type PaletteUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	catalog   *piece.Catalog
	onDone    func(error)

	shape    int // index into catalog shapes
	selected int // palette index under the cursor
}

// Bright tones that read well on a dark well.
var paletteChoices = []struct {
	code int
	name string
}{
	{51, "Cyan"},
	{45, "Turquoise"},
	{27, "Blue"},
	{33, "Dodger Blue"},
	{208, "Dark Orange"},
	{214, "Orange"},
	{226, "Yellow"},
	{220, "Gold"},
	{129, "Purple"},
	{171, "Orchid"},
	{46, "Green"},
	{118, "Chartreuse"},
	{196, "Red"},
	{203, "Salmon"},
	{255, "White"},
	{250, "Gray"},
}

// NewPalette creates the palette editor. onDone receives the result of saving.
func NewPalette(cfg *config.Config, catalog *piece.Catalog, onDone func(error)) *PaletteUI {
	pu := &PaletteUI{
		cfg:     cfg,
		catalog: catalog,
		onDone:  onDone,
	}

	pu.colorList = tview.NewList()
	pu.colorList.SetBorder(true)
	pu.colorList.SetBorderColor(MenuColors.Border)
	pu.colorList.ShowSecondaryText(false)
	pu.populateColorList()

	pu.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index >= 0 && index < len(paletteChoices) {
			pu.selected = paletteChoices[index].code
		}
	})

	pu.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(paletteChoices) {
			return
		}
		pu.Apply(paletteChoices[index].code)
		onDone(pu.cfg.Save())
	})

	pu.preview = tview.NewBox()
	pu.preview.SetBorder(true)
	pu.preview.SetBorderColor(MenuColors.Border)
	pu.preview.SetTitle(" Preview ")
	pu.preview.SetDrawFunc(pu.drawPreview)

	// Layout: list on left, preview on right
	pu.flex = tview.NewFlex().
		AddItem(pu.colorList, 30, 0, true).
		AddItem(pu.preview, 0, 1, false)

	return pu
}

// Shape returns the shape currently being edited.
func (pu *PaletteUI) Shape() *piece.Shape {
	return pu.catalog.Shape(pu.shape)
}

// Apply stores code as the color of the shape being edited.
func (pu *PaletteUI) Apply(code int) {
	c := &pu.cfg.Theme.Colors
	switch pu.Shape().ID {
	case 'i':
		c.I = code
	case 'j':
		c.J = code
	case 'l':
		c.L = code
	case 'o':
		c.O = code
	case 't':
		c.T = code
	case 's':
		c.S = code
	case 'z':
		c.Z = code
	}
	pu.selected = code
}

// NextShape moves the editor to the following shape in the catalog.
func (pu *PaletteUI) NextShape() {
	pu.shape = (pu.shape + 1) % pu.catalog.Count()
	pu.populateColorList()
}

func (pu *PaletteUI) populateColorList() {
	pu.colorList.Clear()
	current := pu.cfg.Theme.ShapeColor(pu.Shape().ID)
	pu.selected = current

	pu.colorList.SetTitle(fmt.Sprintf(" Color of %c (Tab: next shape) ", pu.Shape().ID))
	for i, c := range paletteChoices {
		pu.colorList.AddItem(fmt.Sprintf("[%s]████[-] %s (%d)", tagColor(c.code), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range paletteChoices {
		if c.code == current {
			pu.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (pu *PaletteUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	size := pu.catalog.MaxBoundingSize()
	if width < size*2+4 || height < size+3 {
		return x, y, width, height
	}
	startX, startY := x+2, y+1

	bg := tcell.PaletteColor(pu.cfg.Theme.Colors.Empty)
	empty := tcell.StyleDefault.Background(bg)
	style := empty.Foreground(tcell.PaletteColor(pu.selected))

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			drawCell(screen, startX, startY, col, row, pu.cfg.Theme.Symbols.Empty, empty)
		}
	}
	for _, c := range pu.Shape().Cells(0) {
		drawCell(screen, startX, startY, c.X, c.Y, pu.cfg.Theme.Symbols.Cell, style)
	}

	info := fmt.Sprintf("Shape %c: %d", pu.Shape().ID, pu.selected)
	tview.Print(screen, info, startX, startY+size+1, width-4, tview.AlignLeft, MenuColors.Hint)

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (pu *PaletteUI) Flex() *tview.Flex {
	return pu.flex
}

// SetInputCapture sets the input capture for the color list.
func (pu *PaletteUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	pu.colorList.SetInputCapture(capture)
}
