package card

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
)

// Catalog resolves deck-list references to concrete printings.
type Catalog interface {
	Lookup(entry ArenaEntry) (*Card, bool)
}

// TableCatalog is a Catalog backed by an in-memory card table, typically
// loaded from a catalog.toml file.
type TableCatalog struct {
	byName map[string][]*Card
}

// Catalog file structures
type catalogFile struct {
	Cards []cardConfig `toml:"card"`
}

type cardConfig struct {
	Name            string       `toml:"name"`
	ManaValue       int          `toml:"mana_value"`
	Colors          []string     `toml:"colors"`
	ColorIdentity   []string     `toml:"color_identity"`
	Types           []string     `toml:"types"`
	Subtypes        []string     `toml:"subtypes"`
	OracleText      string       `toml:"oracle_text"`
	Faces           []faceConfig `toml:"faces"`
	Set             string       `toml:"set"`
	CollectorNumber string       `toml:"collector_number"`
}

type faceConfig struct {
	Name       string `toml:"name"`
	OracleText string `toml:"oracle_text"`
}

// LoadCatalog loads a card catalog from a TOML file.
func LoadCatalog(path string) (*TableCatalog, error) {
	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("error parsing catalog: %v", err)
	}

	cards := make([]*Card, 0, len(file.Cards))
	for _, cc := range file.Cards {
		c, err := cc.toCard()
		if err != nil {
			return nil, fmt.Errorf("error in catalog entry %q: %v", cc.Name, err)
		}
		cards = append(cards, c)
	}
	return NewTableCatalog(cards), nil
}

func (cc cardConfig) toCard() (*Card, error) {
	if cc.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	colors, err := ParseColorSet(cc.Colors)
	if err != nil {
		return nil, err
	}
	identity, err := ParseColorSet(cc.ColorIdentity)
	if err != nil {
		return nil, err
	}

	faces := make([]Face, 0, len(cc.Faces))
	for _, fc := range cc.Faces {
		faces = append(faces, Face{Name: fc.Name, OracleText: fc.OracleText})
	}
	if len(faces) == 0 {
		faces = []Face{{Name: cc.Name, OracleText: cc.OracleText}}
	}

	return &Card{
		Name:          cc.Name,
		ManaValue:     cc.ManaValue,
		Colors:        colors,
		ColorIdentity: identity,
		TypeLine:      TypeLine{Types: cc.Types, Subtypes: cc.Subtypes},
		Faces:         faces,
		Printing:      Printing{Set: cc.Set, CollectorNumber: cc.CollectorNumber},
	}, nil
}

// NewTableCatalog builds a catalog from a card table. Printings of the same
// name are kept sorted so that an unqualified reference resolves to the
// lowest-ordered printing.
func NewTableCatalog(cards []*Card) *TableCatalog {
	byName := make(map[string][]*Card)
	for _, c := range cards {
		byName[c.Name] = append(byName[c.Name], c)
	}
	for _, printings := range byName {
		slices.SortFunc(printings, func(a, b *Card) int {
			return a.Printing.Compare(b.Printing)
		})
	}
	return &TableCatalog{byName: byName}
}

// Lookup resolves a reference. An unqualified reference (no set code) matches
// the card's first printing; a qualified one must match set code and
// collector number exactly.
func (t *TableCatalog) Lookup(entry ArenaEntry) (*Card, bool) {
	printings, ok := t.byName[entry.Name]
	if !ok {
		return nil, false
	}
	if entry.Set == "" {
		return printings[0], true
	}
	for _, c := range printings {
		if c.Printing.Set == entry.Set && c.Printing.CollectorNumber == entry.CollectorNumber {
			return c, true
		}
	}
	return nil, false
}

// Cards returns every printing in the catalog, in no particular order.
func (t *TableCatalog) Cards() []*Card {
	var all []*Card
	for _, printings := range t.byName {
		all = append(all, printings...)
	}
	return all
}
