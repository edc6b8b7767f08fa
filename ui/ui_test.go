package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termtris-local/config"
	"termtris-local/piece"
	"termtris-local/types"
)

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name  string
		event *tcell.EventKey
		want  types.Command
	}{
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), types.CmdLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), types.CmdRight},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), types.CmdTransform},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), types.CmdFastForward},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), types.CmdLeft},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), types.CmdRight},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), types.CmdTransform},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), types.CmdDrop},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), types.CmdNone},
		{"pause key", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), types.CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyCommand(tt.event))
		})
	}
}

func TestKeyAction(t *testing.T) {
	assert.Equal(t, ActionPause, KeyAction(tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone)))
	assert.Equal(t, ActionPause, KeyAction(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
	assert.Equal(t, ActionRestart, KeyAction(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.Equal(t, ActionToggleAuto, KeyAction(tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone)))
	assert.Equal(t, ActionQuit, KeyAction(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.Equal(t, ActionNone, KeyAction(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone)))
}

func testSnapshot() types.Snapshot {
	return types.Snapshot{
		Rows: []string{
			"....",
			"....",
			"....",
			"z...",
		},
		ActiveID: "o",
		Active:   []types.BoardPos{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		Shadow:   []types.BoardPos{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}},
		NextID:   "i",
		Next:     []types.BoardPos{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}},
		Score:    70,
		Lines:    1,
		Cadence:  8,
	}
}

func TestBoardViewDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 20)
	defer screen.Fini()

	cfg := config.DefaultConfig
	view := NewBoardView(&cfg, nil)
	view.SetSnapshot(testSnapshot())

	w, h := view.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 6, h)

	view.Box.SetRect(0, 0, w, h)
	view.Box.Draw(screen)

	cellRune := func(col, row int) rune {
		r, _, _, _ := screen.GetContent(1+col*2, 1+row)
		return r
	}
	symbols := cfg.Theme.Symbols
	assert.Equal(t, symbols.Cell, cellRune(0, 3), "locked cell")
	assert.Equal(t, symbols.Cell, cellRune(1, 0), "active cell")
	assert.Equal(t, symbols.Shadow, cellRune(2, 3), "shadow cell")
	assert.Equal(t, symbols.Empty, cellRune(3, 0), "empty cell")

	r, _, _, _ := screen.GetContent(0, 5)
	assert.Equal(t, '└', r)

	_, _, style, _ := screen.GetContent(1, 4)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(cfg.Theme.Colors.Z), fg)
}

func TestBoardViewHint(t *testing.T) {
	cfg := config.DefaultConfig
	hint := tview.NewTextView()
	view := NewBoardView(&cfg, hint)

	s := testSnapshot()
	s.Paused = true
	view.SetSnapshot(s)
	assert.Contains(t, hint.GetText(true), "Paused")

	s.Paused = false
	s.Over = true
	view.SetSnapshot(s)
	assert.Contains(t, hint.GetText(true), "Game over · score 70")
}

func TestInfoPanelText(t *testing.T) {
	panel := NewInfoPanel(config.DefaultTheme, 4)
	s := testSnapshot()
	s.BestScore = 900
	s.Auto = true
	panel.SetSnapshot(s)

	text := panel.Text()
	assert.Contains(t, text, "Score:[-:-:-]  70")
	assert.Contains(t, text, "Score:[-:-:-]  900")
	assert.Contains(t, text, "AUTOPILOT")

	lines := strings.Split(panel.preview(), "\n")
	require.Len(t, lines, 5)
	assert.NotContains(t, lines[0], "[")
	assert.Equal(t, 4, strings.Count(lines[1], "[-]"))
}

func TestGameSetupRejectsInvalidSize(t *testing.T) {
	var started []config.GameConfig
	setup := NewGameSetup(config.DefaultConfig.Game, func(g config.GameConfig) {
		started = append(started, g)
	}, func() {}, nil)

	setup.game.Rows = 2
	setup.start()
	assert.Empty(t, started)
	assert.Contains(t, setup.help.GetText(true), "rows")

	setup.game.Rows = 16
	setup.start()
	require.Len(t, started, 1)
	assert.Equal(t, 16, started[0].Rows)
	assert.Equal(t, config.DefaultConfig.Game.Cols, setup.Settings().Cols)
}

func TestPaletteApplyAndCycle(t *testing.T) {
	cfg := config.DefaultConfig
	catalog := piece.Standard()
	pu := NewPalette(&cfg, catalog, func(error) {})

	require.Equal(t, byte('i'), pu.Shape().ID)
	pu.Apply(196)
	assert.Equal(t, 196, cfg.Theme.Colors.I)
	assert.Equal(t, config.DefaultTheme.Colors.J, cfg.Theme.Colors.J)

	pu.NextShape()
	assert.Equal(t, catalog.Shape(1).ID, pu.Shape().ID)
	for i := 1; i < catalog.Count(); i++ {
		pu.NextShape()
	}
	assert.Equal(t, byte('i'), pu.Shape().ID)
}
