package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the Nord-inspired color palette for forms, banners and modals.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for borders
	BorderFocus tcell.Color // Brighter blue for focused borders
	Title       tcell.Color // Bright white for banners
	Hint        tcell.Color // Dim gray for hints
	ButtonBG    tcell.Color // Button background
	ButtonText  tcell.Color // Button text
	FieldBG     tcell.Color // Input field background
}{
	Border:      tcell.PaletteColor(60),
	BorderFocus: tcell.PaletteColor(109),
	Title:       tcell.PaletteColor(255),
	Hint:        tcell.PaletteColor(245),
	ButtonBG:    tcell.PaletteColor(60),
	ButtonText:  tcell.PaletteColor(255),
	FieldBG:     tcell.PaletteColor(236),
}
