package ui

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termtris-local/config"
)

// SpeedOptions are the selectable base ticks per gravity step, slowest first.
var SpeedOptions = []int{12, 10, 8, 6, 4, 2, 1}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	help     *tview.TextView
	onStart  func(config.GameConfig)
	onCancel func()
	onColors func()

	game config.GameConfig
}

// NewGameSetup creates a new game setup form seeded from defaults.
func NewGameSetup(defaults config.GameConfig, onStart func(config.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		onColors: onColors,
		game:     defaults,
	}

	form := tview.NewForm()

	form.AddInputField("Rows", strconv.Itoa(defaults.Rows), 4, acceptDigits, func(text string) {
		if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			setup.game.Rows = v
		}
	})
	form.AddInputField("Columns", strconv.Itoa(defaults.Cols), 4, acceptDigits, func(text string) {
		if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			setup.game.Cols = v
		}
	})

	speeds := make([]string, len(SpeedOptions))
	initial := 0
	for i, rate := range SpeedOptions {
		speeds[i] = strconv.Itoa(i + 1)
		if rate == defaults.TickRate {
			initial = i
		}
	}
	speeds[0] += " (slowest)"
	speeds[len(speeds)-1] += " (fastest)"
	form.AddDropDown("Speed", speeds, initial, func(option string, index int) {
		setup.game.TickRate = SpeedOptions[index]
	})

	form.AddCheckbox("Autopilot", defaults.Autoplay, func(checked bool) {
		setup.game.Autoplay = checked
	})
	form.AddCheckbox("Speed up every 10 lines", defaults.Ramp, func(checked bool) {
		setup.game.Ramp = checked
	})

	form.AddButton("Start Game", func() {
		setup.start()
	})
	form.AddButton("Colors", func() {
		if onColors != nil {
			onColors()
		}
	})
	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetFieldBackgroundColor(MenuColors.FieldBG)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	// Create help text
	helpText := tview.NewTextView().
		SetText(defaultHelp).
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	// Create flex layout with form and help text
	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	setup.help = helpText
	return setup
}

const defaultHelp = "Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm"

// start validates the chosen settings and hands them to onStart.
func (s *GameSetupUI) start() {
	cfg := config.DefaultConfig
	cfg.Game = s.game
	if err := cfg.Validate(); err != nil {
		s.help.SetTextColor(tcell.ColorRed)
		s.help.SetText(err.Error())
		return
	}
	s.help.SetTextColor(MenuColors.Hint)
	s.help.SetText(defaultHelp)
	s.onStart(s.game)
}

// Settings returns the values currently entered in the form.
func (s *GameSetupUI) Settings() config.GameConfig {
	return s.game
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}

func acceptDigits(text string, lastChar rune) bool {
	return lastChar >= '0' && lastChar <= '9' && len(text) <= 3
}
