// Package character models the party: a base Character, the Adventurer built
// on it, and the role specialists.
package character

import (
	"fmt"

	"adventurer-guild/internal/component"
	"adventurer-guild/internal/notify"
)

// Character is the base entity: a name, health and an inventory.
type Character struct {
	Name      string
	Health    component.Health
	Inventory component.Inventory

	sink notify.Sink
}

// NewCharacter returns a character at full health with an empty inventory.
// A nil sink discards notifications.
func NewCharacter(name string, sink notify.Sink) *Character {
	c := &Character{}
	c.init(name, sink)
	return c
}

func (c *Character) init(name string, sink notify.Sink) {
	c.Name = name
	c.Health = component.FullHealth()
	c.sink = notify.OrDiscard(sink)
}

// Roll announces a roll.
func (c *Character) Roll() {
	c.notifyf("%s rolls...", c.Name)
}

func (c *Character) notifyf(format string, args ...any) {
	c.sink.Notify(fmt.Sprintf(format, args...))
}
