package character

import (
	"errors"

	"adventurer-guild/assets"
	"adventurer-guild/internal/component"
	"adventurer-guild/internal/notify"
)

// ErrNegativeExperience is returned by GainExperience for points < 0.
var ErrNegativeExperience = errors.New("experience points must not be negative")

// Adventurer is a Character with a role, leveling and skills. Specialists
// also carry a Specialty; adventurers from a factory do not.
type Adventurer struct {
	Character
	Role        Role
	Progression component.Progression
	Skills      component.Skills
	Specialty   *Specialty
}

// NewAdventurer validates role and returns a level 1 adventurer carrying the
// starting inventory. It fails with *InvalidRoleError for an unknown role.
func NewAdventurer(name, role string, sink notify.Sink) (*Adventurer, error) {
	r, err := ParseRole(role)
	if err != nil {
		return nil, err
	}
	a := &Adventurer{
		Role:        r,
		Progression: component.StartingProgression(),
	}
	a.init(name, sink)
	a.Inventory.Add(assets.StartingInventory...)
	return a, nil
}

func (a *Adventurer) Level() int      { return a.Progression.Level }
func (a *Adventurer) Experience() int { return a.Progression.Experience }

// Scout announces scouting, then rolls.
func (a *Adventurer) Scout() {
	a.notifyf("%s is scouting ahead...", a.Name)
	a.Roll()
}

// GainExperience adds points and grants at most one level if the threshold
// (level*100) is reached. Negative points leave the adventurer untouched.
func (a *Adventurer) GainExperience(points int) error {
	if points < 0 {
		return ErrNegativeExperience
	}
	a.Progression.Experience += points
	a.notifyf("%s gains %d experience points.", a.Name, points)
	a.checkLevelUp()
	return nil
}

func (a *Adventurer) checkLevelUp() {
	if a.Progression.TryLevelUp() {
		a.notifyf("%s has leveled up to level %d!", a.Name, a.Progression.Level)
	}
}

// LearnSkill appends skill, even if it is already known.
func (a *Adventurer) LearnSkill(skill string) {
	a.Skills.Learn(skill)
	a.notifyf("%s has learned a new skill: %s.", a.Name, skill)
}

// UseSkill announces the skill if it has been learned, or that it has not.
// It reports whether the skill was known.
func (a *Adventurer) UseSkill(skill string) bool {
	if !a.Skills.Knows(skill) {
		a.notifyf("%s hasn't learned the skill: %s.", a.Name, skill)
		return false
	}
	a.notifyf("%s uses the skill: %s.", a.Name, skill)
	return true
}
