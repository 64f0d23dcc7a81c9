package card

import (
	"cmp"
	"slices"
	"strconv"
)

// TypeLine is the parsed type line of a card: its card types (Creature,
// Instant, Land, ...) and subtypes (Goblin, Lesson, ...).
type TypeLine struct {
	Types    []string
	Subtypes []string
}

// Is reports whether the type line carries the given card type.
func (t TypeLine) Is(cardType string) bool {
	return slices.Contains(t.Types, cardType)
}

// HasSubtype reports whether the type line carries the given subtype.
func (t TypeLine) HasSubtype(subtype string) bool {
	return slices.Contains(t.Subtypes, subtype)
}

// Face is one face of a card. Single-faced cards have exactly one.
type Face struct {
	Name       string
	OracleText string
}

// Printing identifies a specific edition of a card by set code and collector
// number.
type Printing struct {
	Set             string
	CollectorNumber string
}

// Compare orders printings by set code, then collector number. Collector
// numbers that are both numeric compare numerically, so "20" sorts after "9".
func (p Printing) Compare(other Printing) int {
	if c := cmp.Compare(p.Set, other.Set); c != 0 {
		return c
	}
	return compareCollectorNumbers(p.CollectorNumber, other.CollectorNumber)
}

func compareCollectorNumbers(a, b string) int {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return cmp.Compare(an, bn)
	}
	return cmp.Compare(a, b)
}

// Card is a single printing of a card, carrying everything the deck builder
// needs: identity, cost, colors, type line, faces, and the printing itself.
type Card struct {
	Name          string
	ManaValue     int
	Colors        ColorSet
	ColorIdentity ColorSet
	TypeLine      TypeLine
	Faces         []Face
	Printing      Printing
}

// IsLand reports whether the card's main type line is a land.
func (c *Card) IsLand() bool {
	return c.TypeLine.Is("Land")
}

// DeckBuilderColorIdentity is the color group the deck builder files a card
// under: its colors, or its color identity when the card itself is colorless.
func (c *Card) DeckBuilderColorIdentity() ColorSet {
	if c.Colors.IsEmpty() {
		return c.ColorIdentity
	}
	return c.Colors
}

// Entry returns the canonical deck-list reference for this printing.
func (c *Card) Entry() ArenaEntry {
	return ArenaEntry{
		Name:            c.Name,
		Set:             c.Printing.Set,
		CollectorNumber: c.Printing.CollectorNumber,
	}
}
