package deck

import (
	"github.com/decksmith/decksmith/internal/card"
)

// Test fixtures shared across the deck package tests.

func spell(name string, manaValue int, colors ...card.Color) *card.Card {
	set := card.Colors(colors...)
	return &card.Card{
		Name:          name,
		ManaValue:     manaValue,
		Colors:        set,
		ColorIdentity: set,
		TypeLine:      card.TypeLine{Types: []string{"Instant"}},
		Faces:         []card.Face{{Name: name}},
		Printing:      card.Printing{Set: "TST", CollectorNumber: "1"},
	}
}

func creature(name string, manaValue int, colors ...card.Color) *card.Card {
	c := spell(name, manaValue, colors...)
	c.TypeLine = card.TypeLine{Types: []string{"Creature"}}
	return c
}

func land(name string) *card.Card {
	c := spell(name, 0)
	c.TypeLine = card.TypeLine{Types: []string{"Land"}}
	return c
}

func lesson(name string, manaValue int, colors ...card.Color) *card.Card {
	c := spell(name, manaValue, colors...)
	c.TypeLine = card.TypeLine{Types: []string{"Sorcery"}, Subtypes: []string{"Lesson"}}
	return c
}

// selfFetcher models cards like Legion Angel that bring further copies of
// themselves in from outside the game.
func selfFetcher(name string, manaValue int, colors ...card.Color) *card.Card {
	c := creature(name, manaValue, colors...)
	c.Faces = []card.Face{{
		Name:       name,
		OracleText: "When this creature enters the battlefield, you may reveal a card named " + name + " from outside the game and put it into your hand.",
	}}
	return c
}
