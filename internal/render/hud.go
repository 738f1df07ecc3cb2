package render

import (
	"fmt"

	"adventurer-guild/assets"
	"adventurer-guild/internal/character"

	"github.com/gdamore/tcell/v2"
)

// ScrollHint is shown on the last row of the HUD.
const ScrollHint = "[j/k or ↑/↓] Scroll   [q/Esc] Quit"

// DrawHUD renders the separator, the party roster and the key hints at the
// bottom of the screen.
func (r *Renderer) DrawHUD(party []*character.Adventurer, total, scroll int) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	x := 0
	for i, a := range party {
		if x >= screenW {
			break
		}
		if i > 0 {
			x = r.drawText(x, hudY+1, "  ", tcell.StyleDefault)
		}
		x = r.drawRosterEntry(x, hudY+1, a)
	}

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	hint := ScrollHint
	if scroll > 0 {
		hint = fmt.Sprintf("%s   (%d/%d)", ScrollHint, total-scroll, total)
	}
	r.drawText(0, hudY+2, hint, dim)

	r.screen.Show()
}

// drawRosterEntry draws "<emoji> <name> L<level>", followed by the specialty
// attribute for specialists, in the role's color and returns the column after
// it.
func (r *Renderer) drawRosterEntry(x, y int, a *character.Adventurer) int {
	style := tcell.StyleDefault.Foreground(roleColor(a.Role))
	glyph := assets.GlyphUnknown
	if def, ok := a.Role.Def(); ok {
		glyph = def.Emoji
	}
	x = r.putGlyph(x, y, glyph, style)
	x = r.drawText(x, y, " ", style)
	entry := fmt.Sprintf("%s L%d", a.Name, a.Level())
	if s := a.Specialty; s != nil {
		entry += fmt.Sprintf(" %s %d", s.Attribute(), s.Value)
	}
	return r.drawText(x, y, entry, style)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
