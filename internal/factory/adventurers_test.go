package factory

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"adventurer-guild/internal/character"
	"adventurer-guild/internal/notify"
)

func TestGenerateUsesBoundRole(t *testing.T) {
	f := New("Healer", nil, nil)
	if f.Role() != "Healer" {
		t.Errorf("Role = %q; want Healer", f.Role())
	}
	robin, err := f.Generate("Robin")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if robin.Role != character.Healer {
		t.Errorf("Role = %q; want Healer", robin.Role)
	}
	if robin.Level() != 1 || robin.Experience() != 0 {
		t.Errorf("progression = (%d, %d); want (1, 0)", robin.Level(), robin.Experience())
	}
	if robin.Specialty != nil {
		t.Error("factory adventurers carry no specialty")
	}
	if f.Len() != 1 {
		t.Errorf("Len = %d; want 1", f.Len())
	}
}

func TestGenerateInvalidRole(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	f := New("Bard", nil, logger) // accepted until Generate
	a, err := f.Generate("Alan")
	if a != nil {
		t.Error("Generate returned an adventurer for an invalid role")
	}
	var rerr *character.InvalidRoleError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v; want *character.InvalidRoleError", err)
	}
	if rerr.Valid != "Fighter, Healer, Wizard" {
		t.Errorf("Valid = %q", rerr.Valid)
	}
	if f.Len() != 0 {
		t.Errorf("Len = %d after failed Generate; want 0", f.Len())
	}
	if !strings.Contains(buf.String(), "generate rejected") {
		t.Errorf("expected a warning log line, got %q", buf.String())
	}
}

func TestFindByName(t *testing.T) {
	f := New("Healer", nil, nil)
	robin, _ := f.Generate("Robin")

	got, ok := f.FindByName("Robin")
	if !ok || got != robin {
		t.Errorf("FindByName(Robin) = %p, %v; want %p, true", got, ok, robin)
	}
	if got, ok := f.FindByName("Nobody"); ok || got != nil {
		t.Errorf("FindByName(Nobody) = %v, %v; want nil, false", got, ok)
	}
	if _, ok := f.FindByName("robin"); ok {
		t.Error("FindByName must match exactly")
	}
}

func TestFindByNameReturnsFirstDuplicate(t *testing.T) {
	f := New("Fighter", nil, nil)
	first, _ := f.Generate("Arthur")
	second, _ := f.Generate("Arthur")
	if first == second {
		t.Fatal("Generate returned the same entity twice")
	}
	if got, _ := f.FindByName("Arthur"); got != first {
		t.Error("FindByName should return the first adventurer with the name")
	}
	if f.Len() != 2 {
		t.Errorf("Len = %d; want 2", f.Len())
	}
}

func TestFindByIndex(t *testing.T) {
	f := New("Wizard", nil, nil)
	names := []string{"Merlin", "Morgana", "Nimue"}
	for _, n := range names {
		if _, err := f.Generate(n); err != nil {
			t.Fatalf("Generate(%q): %v", n, err)
		}
	}
	for i, n := range names {
		a, err := f.FindByIndex(i)
		if err != nil {
			t.Fatalf("FindByIndex(%d): %v", i, err)
		}
		if a.Name != n {
			t.Errorf("FindByIndex(%d).Name = %q; want %q", i, a.Name, n)
		}
	}
	for _, i := range []int{-1, 3, 100} {
		a, err := f.FindByIndex(i)
		if a != nil {
			t.Errorf("FindByIndex(%d) fabricated an adventurer", i)
		}
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("FindByIndex(%d) err = %v; want ErrOutOfRange", i, err)
		}
	}
}

func TestFindByIndexEmpty(t *testing.T) {
	f := New("Healer", nil, nil)
	a, err := f.FindByIndex(0)
	if a != nil {
		t.Error("empty registry returned an adventurer")
	}
	var oerr *OutOfRangeError
	if !errors.As(err, &oerr) {
		t.Fatalf("err = %v; want *OutOfRangeError", err)
	}
	if oerr.Index != 0 || oerr.Len != 0 {
		t.Errorf("OutOfRangeError = %+v", *oerr)
	}
}

func TestAllInCreationOrder(t *testing.T) {
	f := New("Fighter", nil, nil)
	for _, n := range []string{"Arthur", "Gawain", "Kay"} {
		_, _ = f.Generate(n)
	}
	var got []string
	for i, a := range f.All() {
		if i != len(got) {
			t.Errorf("index %d out of sequence", i)
		}
		got = append(got, a.Name)
		if i == 1 {
			break
		}
	}
	if strings.Join(got, ",") != "Arthur,Gawain" {
		t.Errorf("All yielded %v", got)
	}
}

func TestGeneratedAdventurersShareSink(t *testing.T) {
	log := notify.NewLog(0)
	f := New("Healer", log, nil)
	robin, _ := f.Generate("Robin")
	robin.Scout()
	if log.Len() != 2 {
		t.Errorf("notified %v; want scout and roll", log.Messages())
	}
	// The registry holds the same entity the caller mutates.
	_ = robin.GainExperience(100)
	got, _ := f.FindByIndex(0)
	if got.Level() != 2 {
		t.Errorf("registry entity level = %d; want 2", got.Level())
	}
}
