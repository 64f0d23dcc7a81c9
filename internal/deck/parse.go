package deck

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/decksmith/decksmith/internal/card"
)

// SyntaxError reports a deck-list line that does not fit the format.
type SyntaxError struct {
	Line string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid deck syntax: %s", e.Line)
}

// UnknownCardError reports a reference with no match in the catalog.
type UnknownCardError struct {
	Entry card.ArenaEntry
}

func (e *UnknownCardError) Error() string {
	return fmt.Sprintf("unrecognized card: %s", e.Entry)
}

var deckLinePattern = regexp.MustCompile(`^(\d+)\s+(.*)$`)

// byteOrderMarks are stray BOM code points some exporters leave at the start
// of a line.
const byteOrderMarks = "\uFEFF\uFFFE"

// ReadEntries reads a deck list into a raw deck of unresolved references.
//
// Lines are processed in a single forward pass: a blank line switches the
// current section to the sideboard, a section label line switches to that
// section, and every other line must be "<count> <card reference>". The
// first malformed line aborts the read.
func ReadEntries(r io.Reader) (*Deck[card.ArenaEntry], error) {
	builder := NewBuilder[card.ArenaEntry]()
	current := MainDeck

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		line = strings.TrimLeft(line, byteOrderMarks)
		if line == "" {
			current = Sideboard
			continue
		}
		if s, ok := SectionFromLabel(line); ok {
			current = s
			continue
		}
		m := deckLinePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, &SyntaxError{Line: line}
		}
		count, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			return nil, &SyntaxError{Line: line}
		}
		entry, ok := card.ParseEntry(m[2])
		if !ok {
			return nil, &SyntaxError{Line: m[2]}
		}
		builder.Add(current, entry, int(count))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return builder.Build(), nil
}

// ParseRawDeck parses a deck list held in memory.
func ParseRawDeck(text string) (*Deck[card.ArenaEntry], error) {
	return ReadEntries(strings.NewReader(text))
}

// Resolve looks up every reference in the catalog, producing a resolved deck
// with identical counts and section structure. The first reference with no
// catalog match aborts the whole resolve.
func Resolve(d *Deck[card.ArenaEntry], catalog card.Catalog) (*Deck[*card.Card], error) {
	return Transform(d, func(e card.ArenaEntry) (*card.Card, error) {
		c, ok := catalog.Lookup(e)
		if !ok {
			return nil, &UnknownCardError{Entry: e}
		}
		return c, nil
	})
}
