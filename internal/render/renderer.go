package render

import (
	"adventurer-guild/internal/character"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom for the HUD.
const hudRows = 3

// Renderer draws the notification log and the party roster onto a tcell
// screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// LogRows returns how many log lines fit between the title and the HUD.
func (r *Renderer) LogRows() int {
	_, h := r.screen.Size()
	return max(h-hudRows-1, 0)
}

// DrawFrame renders the title, the visible window of messages and the HUD.
// scroll counts lines back from the newest message.
func (r *Renderer) DrawFrame(title string, messages []string, scroll int, party []*character.Adventurer) {
	r.screen.Clear()
	titleStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 100, 255)).Bold(true)
	r.drawText(0, 0, title, titleStyle)
	r.drawLog(messages, scroll)
	r.DrawHUD(party, len(messages), scroll)
}

// drawLog shows the newest LogRows messages, shifted back by scroll.
func (r *Renderer) drawLog(messages []string, scroll int) {
	rows := r.LogRows()
	end := len(messages) - scroll
	if end > len(messages) {
		end = len(messages)
	}
	if end < 0 {
		end = 0
	}
	start := max(end-rows, 0)
	style := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	for i, msg := range messages[start:end] {
		r.drawText(0, 1+i, msg, style)
	}
}

// drawText writes s at (x, y), truncated to the screen width. Wide runes take
// two columns; zero-width runes are skipped.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	w, _ := r.screen.Size()
	if x >= w {
		return x
	}
	s = runewidth.Truncate(s, w-x, "…")
	col := x
	for _, ch := range s {
		rw := runewidth.RuneWidth(ch)
		if rw == 0 {
			continue
		}
		r.screen.SetContent(col, y, ch, nil, style)
		col += rw
	}
	return col
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y)
// and returns the column after it.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) int {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return x
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	width := runewidth.StringWidth(glyph)
	if width == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
	return x + max(width, 1)
}
