package deck

import (
	"fmt"
	"io"
	"strings"

	"github.com/decksmith/decksmith/internal/card"
)

// Write renders the deck in the line-oriented deck-list format: each
// non-empty section's label on its own line, one "<count> <entry>" line per
// distinct entry in stored order, and a single blank line between
// consecutive sections. Decks are normally passed through Canonicalize (and
// optionally PrioritizeSideboard) first, so the stored order is the one the
// caller wants on the wire.
func Write(w io.Writer, d *Deck[*card.Card]) error {
	for i, s := range d.Sections() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, s.Label()); err != nil {
			return err
		}
		for _, e := range d.Entries(s) {
			if _, err := fmt.Fprintf(w, "%d %s\n", e.Count, e.Card.Entry()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Serialize renders the deck to a string.
func Serialize(d *Deck[*card.Card]) string {
	var sb strings.Builder
	Write(&sb, d)
	return sb.String()
}
