package render

import (
	"adventurer-guild/internal/character"

	"github.com/gdamore/tcell/v2"
)

// RoleColors maps each role to the color of its roster entry.
var RoleColors = map[character.Role]tcell.Color{
	character.Fighter: tcell.NewRGBColor(255, 110, 80),
	character.Healer:  tcell.NewRGBColor(120, 230, 140),
	character.Wizard:  tcell.NewRGBColor(180, 100, 255),
}

func roleColor(r character.Role) tcell.Color {
	if c, ok := RoleColors[r]; ok {
		return c
	}
	return tcell.ColorWhite
}
