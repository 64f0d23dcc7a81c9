package deck

import (
	"testing"

	"github.com/decksmith/decksmith/internal/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareCards(t *testing.T) {
	t.Run("lands sort after nonlands regardless of mana value", func(t *testing.T) {
		expensive := spell("Emergent Ultimatum", 7, card.Black, card.Green, card.Blue)
		basic := land("Island")
		assert.Negative(t, CompareCards(expensive, basic))
		assert.Positive(t, CompareCards(basic, expensive))
	})

	t.Run("lower mana value sorts first", func(t *testing.T) {
		one := spell("Opt", 1, card.Blue)
		two := spell("Quench", 2, card.Blue)
		assert.Negative(t, CompareCards(one, two))
	})

	t.Run("colorless sorts after colored at equal mana value", func(t *testing.T) {
		colored := spell("Shock", 1, card.Red)
		artifact := spell("Mishra's Bauble", 1)
		assert.Negative(t, CompareCards(colored, artifact))
	})

	t.Run("equal mana value breaks ties by name", func(t *testing.T) {
		a := spell("Abrade", 2, card.Red)
		b := spell("Heartfire", 2, card.Red)
		assert.Negative(t, CompareCards(a, b))
	})
}

func TestCompareEntries(t *testing.T) {
	a := spell("Shock", 1, card.Red)
	a.Printing = card.Printing{Set: "M20", CollectorNumber: "160"}
	b := spell("Shock", 1, card.Red)
	b.Printing = card.Printing{Set: "M21", CollectorNumber: "159"}

	assert.Negative(t, CompareEntries(a, b))
	assert.Positive(t, CompareEntries(b, a))
}

func TestComparePrintings(t *testing.T) {
	t.Run("color identity dominates the land flag", func(t *testing.T) {
		plains := land("Plains")
		plains.ColorIdentity = card.Colors(card.White)
		shock := spell("Shock", 1, card.Red)
		// White land before red spell here, even though the deck-builder
		// order puts every land last.
		assert.Negative(t, ComparePrintings(plains, shock))
		assert.Negative(t, CompareCards(shock, plains))
	})

	t.Run("reprints order by printing", func(t *testing.T) {
		a := spell("Shock", 1, card.Red)
		a.Printing = card.Printing{Set: "M20", CollectorNumber: "160"}
		b := spell("Shock", 1, card.Red)
		b.Printing = card.Printing{Set: "M21", CollectorNumber: "159"}
		assert.Negative(t, ComparePrintings(a, b))
	})
}

func TestCanonicalize(t *testing.T) {
	bolt := spell("Lightning Bolt", 1, card.Red)
	giant := creature("Bonecrusher Giant", 3, card.Red)
	mountain := land("Mountain")

	b := NewBuilder[*card.Card]()
	b.Add(MainDeck, mountain, 20)
	b.Add(MainDeck, giant, 4)
	b.Add(MainDeck, bolt, 4)
	d := Canonicalize(b.Build())

	entries := d.Entries(MainDeck)
	require.Len(t, entries, 3)
	assert.Equal(t, bolt, entries[0].Card)
	assert.Equal(t, giant, entries[1].Card)
	assert.Equal(t, mountain, entries[2].Card)
	assert.Equal(t, 20, entries[2].Count)
}
