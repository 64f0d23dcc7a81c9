package deck

// Section is a named partition of a deck.
type Section int

const (
	MainDeck Section = iota
	Companion
	Sideboard
)

// AllSections lists every section in serialization order.
var AllSections = []Section{MainDeck, Companion, Sideboard}

var sectionLabels = map[Section]string{
	MainDeck:  "Deck",
	Companion: "Companion",
	Sideboard: "Sideboard",
}

// Label returns the section header used in the deck-list format.
func (s Section) Label() string {
	return sectionLabels[s]
}

func (s Section) String() string {
	return s.Label()
}

// SectionFromLabel matches a line against the fixed section label table.
// Matching is exact: case and punctuation must agree.
func SectionFromLabel(line string) (Section, bool) {
	for _, s := range AllSections {
		if sectionLabels[s] == line {
			return s, true
		}
	}
	return 0, false
}
