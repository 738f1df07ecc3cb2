package component

import (
	"slices"
	"testing"
)

func TestIsValidHealth(t *testing.T) {
	cases := []struct {
		v    int
		want bool
	}{
		{-1, false},
		{0, false},
		{1, true},
		{50, true},
		{MaxHealth, true},
		{MaxHealth + 1, false},
	}
	for _, c := range cases {
		if got := IsValidHealth(c.v); got != c.want {
			t.Errorf("IsValidHealth(%d) = %v; want %v", c.v, got, c.want)
		}
	}
}

func TestFullHealth(t *testing.T) {
	h := FullHealth()
	if h.Current != MaxHealth || h.Max != MaxHealth {
		t.Errorf("FullHealth = %d/%d; want %d/%d", h.Current, h.Max, MaxHealth, MaxHealth)
	}
}

func TestInventoryKeepsOrderAndDuplicates(t *testing.T) {
	var inv Inventory
	inv.Add("rope", "torch")
	inv.Add("rope")
	want := []string{"rope", "torch", "rope"}
	if !slices.Equal(inv.Items, want) {
		t.Errorf("Items = %v; want %v", inv.Items, want)
	}
}

func TestProgressionThreshold(t *testing.T) {
	for level := 1; level <= 5; level++ {
		p := Progression{Level: level}
		if got := p.Threshold(); got != level*100 {
			t.Errorf("level %d threshold = %d; want %d", level, got, level*100)
		}
	}
}

func TestTryLevelUp(t *testing.T) {
	cases := []struct {
		name      string
		start     Progression
		wantUp    bool
		wantState Progression
	}{
		{"below threshold", Progression{Level: 1, Experience: 99}, false, Progression{Level: 1, Experience: 99}},
		{"exact threshold", Progression{Level: 1, Experience: 100}, true, Progression{Level: 2, Experience: 0}},
		{"excess discarded", Progression{Level: 1, Experience: 250}, true, Progression{Level: 2, Experience: 0}},
		{"level 2 needs 200", Progression{Level: 2, Experience: 150}, false, Progression{Level: 2, Experience: 150}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := c.start
			if up := p.TryLevelUp(); up != c.wantUp {
				t.Errorf("TryLevelUp() = %v; want %v", up, c.wantUp)
			}
			if p != c.wantState {
				t.Errorf("state = %+v; want %+v", p, c.wantState)
			}
		})
	}
}

func TestSkillsLearnAppendsDuplicates(t *testing.T) {
	var s Skills
	s.Learn("Parry")
	s.Learn("Parry")
	if len(s.Learned) != 2 {
		t.Errorf("Learned = %v; want two entries", s.Learned)
	}
	if !s.Knows("Parry") {
		t.Error("Knows(Parry) = false after Learn")
	}
	if s.Knows("Riposte") {
		t.Error("Knows(Riposte) = true without Learn")
	}
}
