package deck

import (
	"testing"

	"github.com/decksmith/decksmith/internal/card"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	bolt := spell("Lightning Bolt", 1, card.Red)
	bolt.Printing = card.Printing{Set: "STA", CollectorNumber: "42"}
	mountain := land("Mountain")
	mountain.Printing = card.Printing{Set: "ANA", CollectorNumber: "4"}
	duress := spell("Duress", 1, card.Black)
	duress.Printing = card.Printing{Set: "M21", CollectorNumber: "96"}

	t.Run("sections separated by a single blank line", func(t *testing.T) {
		b := NewBuilder[*card.Card]()
		b.Add(MainDeck, bolt, 4)
		b.Add(MainDeck, mountain, 20)
		b.Add(Sideboard, duress, 3)
		d := b.Build()

		assert.Equal(t,
			"Deck\n4 Lightning Bolt (STA) 42\n20 Mountain (ANA) 4\n\nSideboard\n3 Duress (M21) 96\n",
			Serialize(d))
	})

	t.Run("no trailing blank line after a single section", func(t *testing.T) {
		b := NewBuilder[*card.Card]()
		b.Add(MainDeck, bolt, 4)
		d := b.Build()

		assert.Equal(t, "Deck\n4 Lightning Bolt (STA) 42\n", Serialize(d))
	})

	t.Run("empty sections are omitted", func(t *testing.T) {
		b := NewBuilder[*card.Card]()
		b.Add(Sideboard, duress, 2)
		d := b.Build()

		assert.Equal(t, "Sideboard\n2 Duress (M21) 96\n", Serialize(d))
	})
}

func TestRoundTrip(t *testing.T) {
	bolt := spell("Lightning Bolt", 1, card.Red)
	bolt.Printing = card.Printing{Set: "STA", CollectorNumber: "42"}
	mountain := land("Mountain")
	mountain.Printing = card.Printing{Set: "ANA", CollectorNumber: "4"}
	duress := spell("Duress", 1, card.Black)
	duress.Printing = card.Printing{Set: "M21", CollectorNumber: "96"}

	b := NewBuilder[*card.Card]()
	b.Add(MainDeck, bolt, 4)
	b.Add(MainDeck, mountain, 20)
	b.Add(Companion, creature("Yorion, Sky Nomad", 5, card.White, card.Blue), 1)
	b.Add(Sideboard, duress, 3)
	resolved := b.Build()

	reparsed, err := ParseRawDeck(Serialize(resolved))
	require.NoError(t, err)

	for _, s := range AllSections {
		want := make([]Entry[card.ArenaEntry], 0, len(resolved.Entries(s)))
		for _, e := range resolved.Entries(s) {
			want = append(want, Entry[card.ArenaEntry]{Card: e.Card.Entry(), Count: e.Count})
		}
		got := reparsed.Entries(s)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("section %s round trip mismatch (-want +got):\n%s", s, diff)
		}
	}
}
