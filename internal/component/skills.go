package component

import "slices"

// Skills is the ordered list of learned skill labels. Learning the same skill
// twice records it twice.
type Skills struct {
	Learned []string
}

// Learn appends skill unconditionally.
func (s *Skills) Learn(skill string) {
	s.Learned = append(s.Learned, skill)
}

// Knows reports whether skill has been learned at least once.
func (s Skills) Knows(skill string) bool {
	return slices.Contains(s.Learned, skill)
}
