package game

import (
	"fmt"
	"log/slog"

	"adventurer-guild/internal/character"
	"adventurer-guild/internal/factory"
	"adventurer-guild/internal/notify"
)

// RunDemo plays the introductory script against sink and returns every
// adventurer it created, in creation order.
func RunDemo(sink notify.Sink, logger *slog.Logger) ([]*character.Adventurer, error) {
	var party []*character.Adventurer

	healers := factory.New(string(character.Healer), sink, logger)
	robin, err := healers.Generate("Robin")
	if err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}
	party = append(party, robin)
	robin.Scout()
	if err := robin.GainExperience(150); err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}
	robin.LearnSkill("Healing Touch")
	robin.UseSkill("Healing Touch")

	fighters := factory.New(string(character.Fighter), sink, logger)
	arthur, err := fighters.Generate("Arthur")
	if err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}
	party = append(party, arthur)

	for _, s := range []*character.Adventurer{
		character.NewFighter("Lancelot", sink),
		character.NewHealer("Morgana", sink),
		character.NewWizard("Merlin", sink),
	} {
		s.Act()
		party = append(party, s)
	}

	notify.OrDiscard(sink).Notify("Available roles for Adventurer: " + character.ListRoles())
	return party, nil
}
