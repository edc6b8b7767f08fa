// termtris-local is a terminal falling-block game with a built-in autopilot.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"termtris-local/config"
	"termtris-local/engine"
	"termtris-local/piece"
	"termtris-local/scheduler"
	"termtris-local/spectate"
	"termtris-local/store"
	"termtris-local/types"
	"termtris-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

const logFile = "termtris-local/debug.log"

// Command-line flags
var (
	flagRows       = flag.Int("rows", 0, "Board height (4-40)")
	flagCols       = flag.Int("cols", 0, "Board width (4-30)")
	flagAuto       = flag.Bool("auto", false, "Start with the autopilot in control")
	flagSpeed      = flag.Int("speed", 0, "Base ticks per gravity step (1-20, lower is faster)")
	flagSpectate   = flag.String("spectate", "", "Serve a spectator feed on this address, e.g. :8080")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var boardView *ui.BoardView
var infoPanel *ui.InfoPanel
var gameHint *tview.TextView
var cfg *config.Config
var catalog *piece.Catalog
var scores store.ScoreStore
var hub *spectate.Hub

var game *engine.Game
var stopTicker context.CancelFunc

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termtris-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err = cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	f, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if fileStore, err := store.Open(); err != nil {
		log.Warn().Err(err).Msg("open-score-store")
		scores = &store.MemoryStore{}
	} else {
		scores = fileStore
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Spectate.Addr != "" {
		hub = spectate.NewHub()
		go hub.Run(ctx.Done())
		go func() {
			if err := spectate.Serve(ctx, cfg.Spectate.Addr, hub); err != nil {
				log.Error().Err(err).Str("addr", cfg.Spectate.Addr).Msg("spectate-serve")
			}
		}()
	}

	quickStart := *flagQuickStart || *flagRows > 0 || *flagCols > 0 || *flagAuto || *flagSpeed > 0

	catalog = piece.Standard()
	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ▦ termtris ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	boardView = ui.NewBoardView(cfg, gameHint)
	infoPanel = ui.NewInfoPanel(cfg.Theme, catalog.MaxBoundingSize())
	gameFrame := ui.CreateGameLayout(boardView, infoPanel, gameHint)

	boardView.Box.SetInputCapture(handleGameKey)

	// Game setup screen
	setupUI := ui.NewGameSetup(
		cfg.Game,
		func(g config.GameConfig) {
			startGame(ctx, g)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	// Palette screen
	palette := ui.NewPalette(cfg, catalog, func(err error) {
		if err != nil {
			log.Warn().Err(err).Msg("save-config")
		}
		boardView.SetConfig(cfg)
		infoPanel.SetTheme(cfg.Theme)
		rootPage.SwitchToPage("setup")
	})
	palette.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			palette.NextShape()
			return nil
		}
		return event
	})

	// Add pages - start on setup by default, or gameview if quick start
	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 64), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", palette.Flex(), true, false)

	if quickStart {
		startGame(ctx, cfg.Game)
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		log.Error().Err(err).Msg("ui")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	stopGame()
}

// applyFlags overrides config values with command-line flags.
func applyFlags(c *config.Config) {
	if *flagRows > 0 {
		c.Game.Rows = *flagRows
	}
	if *flagCols > 0 {
		c.Game.Cols = *flagCols
	}
	if *flagSpeed > 0 {
		c.Game.TickRate = *flagSpeed
	}
	if *flagAuto {
		c.Game.Autoplay = true
	}
	if *flagSpectate != "" {
		c.Spectate.Addr = *flagSpectate
	}
}

// setupLogging sends the global logger to a file, since the terminal belongs to the UI.
func setupLogging(c *config.Config) (*os.File, error) {
	path, err := xdg.StateFile(logFile)
	if err != nil {
		return nil, fmt.Errorf("locate log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	level, err := c.Level()
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}

// startGame replaces any running session with a new one and starts its clock.
func startGame(ctx context.Context, g config.GameConfig) {
	stopGame()

	session := engine.NewGame(engine.GameConfig{
		Rows:     g.Rows,
		Cols:     g.Cols,
		TickRate: g.TickRate,
		Autoplay: g.Autoplay,
	}, catalog, nil, scores)
	session.OnUpdate(boardView.SetSnapshot)
	if hub != nil {
		session.OnUpdate(hub.Publish)
	}
	game = session
	boardView.SetSnapshot(session.Snapshot())

	tickCtx, cancel := context.WithCancel(ctx)
	stopTicker = cancel
	overShown := false
	ticker := scheduler.New(time.Duration(cfg.Game.TickMS)*time.Millisecond, func() {
		app.QueueUpdateDraw(func() {
			if game != session {
				return
			}
			session.Advance()
			if g.Ramp {
				session.SetCadence(scheduler.CadenceForLines(g.TickRate, session.Lines()))
			}
			if session.Over() && !overShown {
				overShown = true
				showGameOver(session, func() { overShown = false })
			}
		})
	})
	go ticker.Run(tickCtx)

	log.Info().Int("rows", g.Rows).Int("cols", g.Cols).Int("tick_rate", g.TickRate).Bool("auto", g.Autoplay).Msg("game-start")
	rootPage.SwitchToPage("gameview")
	app.SetFocus(boardView.Box)
}

func stopGame() {
	if stopTicker != nil {
		stopTicker()
		stopTicker = nil
	}
	game = nil
}

func showGameOver(session *engine.Game, onRestart func()) {
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Game over\n\nScore %d   Lines %d\nBest %d", session.Score(), session.Lines(), session.BestScore())).
		AddButtons([]string{"Restart", "Menu"}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			rootPage.RemovePage("gameover")
			if buttonLabel == "Restart" {
				onRestart()
				session.Restart()
				app.SetFocus(boardView.Box)
				return
			}
			stopGame()
			rootPage.SwitchToPage("setup")
		})
	rootPage.AddPage("gameover", modal, true, true)
}

func handleGameKey(event *tcell.EventKey) *tcell.EventKey {
	if game == nil {
		return event
	}
	switch ui.KeyAction(event) {
	case ui.ActionQuit:
		stopGame()
		rootPage.SwitchToPage("setup")
		return nil
	case ui.ActionPause:
		game.Pause()
		return nil
	case ui.ActionRestart:
		game.Restart()
		return nil
	case ui.ActionToggleAuto:
		auto := game.ToggleAuto()
		log.Debug().Bool("auto", auto).Msg("autopilot-toggle")
		return nil
	}
	if cmd := ui.KeyCommand(event); cmd != types.CmdNone {
		// The autopilot owns the piece while it is on.
		if !game.Auto() {
			game.Move(cmd)
		}
		return nil
	}
	return event
}
