package card

import (
	"fmt"
	"regexp"
)

// ArenaEntry is one deck-list card reference: a card name with an optional
// set-and-collector-number qualifier, e.g. "Shock" or "Shock (M21) 159".
type ArenaEntry struct {
	Name            string
	Set             string
	CollectorNumber string
}

var arenaEntryPattern = regexp.MustCompile(`^(.*?)(?: \(([0-9A-Z]{2,6})\) (\S+))?$`)

// ParseEntry parses a deck-list card reference. The qualifier is optional;
// when present it must carry both a set code and a collector number.
func ParseEntry(s string) (ArenaEntry, bool) {
	m := arenaEntryPattern.FindStringSubmatch(s)
	if m == nil || m[1] == "" {
		return ArenaEntry{}, false
	}
	return ArenaEntry{Name: m[1], Set: m[2], CollectorNumber: m[3]}, true
}

// String renders the reference in deck-list form. ParseEntry is its exact
// inverse.
func (e ArenaEntry) String() string {
	if e.Set == "" {
		return e.Name
	}
	return fmt.Sprintf("%s (%s) %s", e.Name, e.Set, e.CollectorNumber)
}
