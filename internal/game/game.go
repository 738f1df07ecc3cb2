// Package game runs the guild's introductory script and shows its
// notifications in a terminal UI.
package game

import (
	"fmt"
	"log/slog"

	"adventurer-guild/internal/character"
	"adventurer-guild/internal/notify"
	"adventurer-guild/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Title is drawn on the first row of the viewer.
const Title = "⚔ THE ADVENTURER'S GUILD ⚔"

// Game is the terminal UI session: it owns the screen and the notification
// log the script writes into.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	log      *notify.Log
	party    []*character.Adventurer
	scroll   int
	logger   *slog.Logger
}

// New creates and returns a Game with screen initialized. logCap bounds the
// number of notifications kept for display.
func New(logCap int, logger *slog.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return newGame(screen, logCap, logger), nil
}

func newGame(screen tcell.Screen, logCap int, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		log:      notify.NewLog(logCap),
		logger:   logger,
	}
}

// load plays the script into the log.
func (g *Game) load() error {
	g.log.Reset()
	g.scroll = 0
	party, err := RunDemo(g.log, g.logger)
	if err != nil {
		return err
	}
	g.party = party
	return nil
}

// Run plays the script, then shows the log until the viewer quits.
func (g *Game) Run() error {
	defer g.screen.Fini()

	if err := g.load(); err != nil {
		return err
	}
	g.logger.Info("viewer started", "messages", g.log.Len(), "party", len(g.party))
	defer g.logger.Info("viewer stopped")

	for {
		g.draw()
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			// Screen finalized elsewhere.
			return nil
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			if !g.processAction(keyToAction(ev)) {
				return nil
			}
		}
	}
}

func (g *Game) draw() {
	g.renderer.DrawFrame(Title, g.log.Messages(), g.scroll, g.party)
}

// maxScroll is how far back the log can be scrolled.
func (g *Game) maxScroll() int {
	return max(g.log.Len()-g.renderer.LogRows(), 0)
}

// processAction applies one action and returns false when the viewer should
// close.
func (g *Game) processAction(action Action) bool {
	switch action {
	case ActionQuit:
		return false
	case ActionScrollUp:
		g.scroll = min(g.scroll+1, g.maxScroll())
	case ActionScrollDown:
		g.scroll = max(g.scroll-1, 0)
	case ActionTop:
		g.scroll = g.maxScroll()
	case ActionBottom:
		g.scroll = 0
	}
	return true
}
