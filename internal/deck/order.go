package deck

import (
	"cmp"
	"slices"

	"github.com/decksmith/decksmith/internal/card"
)

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

// CompareCards is the deck-builder display order: nonlands before lands, then
// ascending mana value, then deck-builder color identity with colorless last,
// then main name.
func CompareCards(a, b *card.Card) int {
	if c := compareBool(a.IsLand(), b.IsLand()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ManaValue, b.ManaValue); c != 0 {
		return c
	}
	if c := card.CompareColorlessLast(a.DeckBuilderColorIdentity(), b.DeckBuilderColorIdentity()); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// ComparePrintings is the collection view order: color identity first, then
// the land flag, mana value, and name, with the printing itself as the final
// key so reprints of one card still rank deterministically.
func ComparePrintings(a, b *card.Card) int {
	if c := card.CompareColorlessLast(a.DeckBuilderColorIdentity(), b.DeckBuilderColorIdentity()); c != 0 {
		return c
	}
	if c := compareBool(a.IsLand(), b.IsLand()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ManaValue, b.ManaValue); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return a.Printing.Compare(b.Printing)
}

// CompareEntries orders concrete deck entries: deck-builder card order, with
// the printing breaking ties between duplicate names.
func CompareEntries(a, b *card.Card) int {
	if c := CompareCards(a, b); c != 0 {
		return c
	}
	return a.Printing.Compare(b.Printing)
}

// Canonicalize returns a deck with every section stably sorted into the
// canonical entry order. The input deck is not modified.
func Canonicalize(d *Deck[*card.Card]) *Deck[*card.Card] {
	b := NewBuilder[*card.Card]()
	for _, s := range AllSections {
		entries := d.Entries(s)
		slices.SortStableFunc(entries, func(x, y Entry[*card.Card]) int {
			return CompareEntries(x.Card, y.Card)
		})
		for _, e := range entries {
			b.Add(s, e.Card, e.Count)
		}
	}
	return b.Build()
}
