package character

import (
	"fmt"

	"adventurer-guild/internal/notify"
)

// Specialty is the role-specific payload of a specialist. Value holds
// strength for a Fighter, healing power for a Healer and mana for a Wizard.
type Specialty struct {
	Role  Role
	Value int
}

// Attribute names the attribute Value measures.
func (s Specialty) Attribute() string {
	def, _ := s.Role.Def()
	return def.Attribute
}

func newSpecialist(name string, role Role, sink notify.Sink) *Adventurer {
	a, err := NewAdventurer(name, string(role), sink)
	if err != nil {
		// The specialist roles are constants from the role table.
		panic(fmt.Sprintf("character: specialist role %q missing from role table", role))
	}
	def, _ := role.Def()
	a.Specialty = &Specialty{Role: role, Value: def.StartValue}
	return a
}

// NewFighter returns a Fighter with strength 10.
func NewFighter(name string, sink notify.Sink) *Adventurer {
	return newSpecialist(name, Fighter, sink)
}

// NewHealer returns a Healer with healing power 10.
func NewHealer(name string, sink notify.Sink) *Adventurer {
	return newSpecialist(name, Healer, sink)
}

// NewWizard returns a Wizard with 100 mana.
func NewWizard(name string, sink notify.Sink) *Adventurer {
	return newSpecialist(name, Wizard, sink)
}

// Act performs the specialty action: a Fighter attacks, a Healer heals and a
// Wizard casts a spell. It returns false, announcing nothing, for an
// adventurer without a specialty.
func (a *Adventurer) Act() bool {
	if a.Specialty == nil {
		return false
	}
	def, ok := a.Specialty.Role.Def()
	if !ok {
		return false
	}
	a.notifyf(def.ActionFormat, a.Name, a.Specialty.Value)
	return true
}

// Attack acts only if a is a Fighter specialist.
func (a *Adventurer) Attack() bool { return a.actAs(Fighter) }

// Heal acts only if a is a Healer specialist.
func (a *Adventurer) Heal() bool { return a.actAs(Healer) }

// CastSpell acts only if a is a Wizard specialist.
func (a *Adventurer) CastSpell() bool { return a.actAs(Wizard) }

func (a *Adventurer) actAs(role Role) bool {
	if a.Specialty == nil || a.Specialty.Role != role {
		return false
	}
	return a.Act()
}
