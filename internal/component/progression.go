package component

// ExperiencePerLevel scales the level-up threshold: a character at level L
// needs L*ExperiencePerLevel experience to advance.
const ExperiencePerLevel = 100

// Progression is the (level, experience) leveling state.
type Progression struct {
	Level      int
	Experience int
}

// StartingProgression is level 1 with no experience.
func StartingProgression() Progression {
	return Progression{Level: 1}
}

// Threshold returns the experience needed to leave the current level.
func (p Progression) Threshold() int {
	return p.Level * ExperiencePerLevel
}

// TryLevelUp advances one level if experience has reached the threshold.
// Experience resets to zero; any excess over the threshold is discarded.
// At most one level is granted per call.
func (p *Progression) TryLevelUp() bool {
	if p.Experience < p.Threshold() {
		return false
	}
	p.Level++
	p.Experience = 0
	return true
}
