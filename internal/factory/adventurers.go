// Package factory produces adventurers of one pinned role and keeps them in
// creation order for later lookup.
package factory

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"adventurer-guild/internal/character"
	"adventurer-guild/internal/notify"
)

// ErrOutOfRange matches every *OutOfRangeError.
var ErrOutOfRange = errors.New("adventurer index out of range")

// OutOfRangeError is returned by FindByIndex for an index outside the
// registry.
type OutOfRangeError struct {
	Index, Len int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("adventurer index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// AdventurerFactory builds adventurers with its bound role. The role is not
// checked until Generate. Not safe for concurrent use.
type AdventurerFactory struct {
	role        string
	adventurers []*character.Adventurer
	sink        notify.Sink
	logger      *slog.Logger
}

// New returns a factory bound to role. Generated adventurers notify sink.
// A nil logger discards log output.
func New(role string, sink notify.Sink, logger *slog.Logger) *AdventurerFactory {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AdventurerFactory{
		role:   role,
		sink:   notify.OrDiscard(sink),
		logger: logger,
	}
}

// Role returns the bound role.
func (f *AdventurerFactory) Role() string { return f.role }

// Generate builds an adventurer named name, records it and returns it.
// An invalid bound role yields *character.InvalidRoleError and records
// nothing.
func (f *AdventurerFactory) Generate(name string) (*character.Adventurer, error) {
	a, err := character.NewAdventurer(name, f.role, f.sink)
	if err != nil {
		f.logger.Warn("factory: generate rejected", "name", name, "role", f.role, "error", err)
		return nil, fmt.Errorf("generate %q: %w", name, err)
	}
	f.adventurers = append(f.adventurers, a)
	f.logger.Debug("factory: adventurer generated", "name", name, "role", f.role, "index", len(f.adventurers)-1)
	return a, nil
}

// FindByIndex returns the i-th adventurer in creation order.
func (f *AdventurerFactory) FindByIndex(i int) (*character.Adventurer, error) {
	if i < 0 || i >= len(f.adventurers) {
		return nil, &OutOfRangeError{Index: i, Len: len(f.adventurers)}
	}
	return f.adventurers[i], nil
}

// FindByName returns the first adventurer, in creation order, whose name is
// exactly name. ok is false when there is none.
func (f *AdventurerFactory) FindByName(name string) (*character.Adventurer, bool) {
	for _, a := range f.adventurers {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// Len returns the number of adventurers generated so far.
func (f *AdventurerFactory) Len() int { return len(f.adventurers) }

// All yields each adventurer with its index, in creation order.
func (f *AdventurerFactory) All() iter.Seq2[int, *character.Adventurer] {
	return func(yield func(int, *character.Adventurer) bool) {
		for i, a := range f.adventurers {
			if !yield(i, a) {
				return
			}
		}
	}
}
