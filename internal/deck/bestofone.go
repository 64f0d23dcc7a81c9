package deck

import (
	"strings"

	"github.com/decksmith/decksmith/internal/card"
)

// BestOfOneSideboardSize is the number of sideboard slots the client shows
// without scrolling in best-of-one queues.
const BestOfOneSideboardSize = 7

// Grizzled Huntmaster fetches any creature from outside the game, so every
// sideboard creature matters in best-of-one while it is in the main deck.
const huntmasterName = "Grizzled Huntmaster"

func isSignificantFromSideboard(c *card.Card) bool {
	if c.TypeLine.HasSubtype("Lesson") {
		return true
	}
	fetchText := "named " + c.Name + " from outside the game"
	for _, face := range c.Faces {
		if strings.Contains(face.OracleText, fetchText) {
			return true
		}
	}
	return false
}

// PrioritizeSideboard moves the sideboard cards that matter in best-of-one
// play (Lessons, self-fetching cards, and creatures while Grizzled
// Huntmaster is in the main deck) ahead of the rest, so they land within the
// visible slots. The reorder is skipped when no card qualifies, when the
// qualifying copies would not fit in the slots left over by the companion,
// or when the whole sideboard already qualifies. The input deck is never
// modified; when no reorder applies it is returned as is.
func PrioritizeSideboard(d *Deck[*card.Card]) *Deck[*card.Card] {
	sideboard := d.Entries(Sideboard)
	significance := isSignificantFromSideboard

	for _, e := range d.Entries(MainDeck) {
		if e.Card.Name == huntmasterName {
			base := significance
			significance = func(c *card.Card) bool {
				return base(c) || c.TypeLine.Is("Creature")
			}
			break
		}
	}

	significant := make(map[*card.Card]bool)
	sigSize := 0
	for _, e := range sideboard {
		if significance(e.Card) {
			significant[e.Card] = true
			sigSize += e.Count
		}
	}

	capacity := BestOfOneSideboardSize - d.Count(Companion)
	if sigSize == 0 || sigSize > capacity || sigSize == d.Count(Sideboard) {
		return d
	}

	b := d.MutableCopy()
	b.ClearSection(Sideboard)
	for _, e := range sideboard {
		if significant[e.Card] {
			b.Add(Sideboard, e.Card, e.Count)
		}
	}
	for _, e := range sideboard {
		if !significant[e.Card] {
			b.Add(Sideboard, e.Card, e.Count)
		}
	}
	return b.Build()
}
