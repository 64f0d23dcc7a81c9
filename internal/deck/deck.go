package deck

// Entry is one distinct element of a section with its copy count.
type Entry[C comparable] struct {
	Card  C
	Count int
}

// multiset keeps per-element counts in insertion order.
type multiset[C comparable] struct {
	entries []Entry[C]
	index   map[C]int
}

func newMultiset[C comparable]() *multiset[C] {
	return &multiset[C]{index: make(map[C]int)}
}

func (m *multiset[C]) add(c C, n int) {
	if n <= 0 {
		return
	}
	if i, ok := m.index[c]; ok {
		m.entries[i].Count += n
		return
	}
	m.index[c] = len(m.entries)
	m.entries = append(m.entries, Entry[C]{Card: c, Count: n})
}

func (m *multiset[C]) size() int {
	total := 0
	for _, e := range m.entries {
		total += e.Count
	}
	return total
}

func (m *multiset[C]) clone() *multiset[C] {
	out := newMultiset[C]()
	for _, e := range m.entries {
		out.add(e.Card, e.Count)
	}
	return out
}

// Deck is an immutable collection of card copies partitioned into sections.
// It is generic over the card identity: a raw deck holds unresolved
// references, a resolved deck holds catalog cards.
type Deck[C comparable] struct {
	sections map[Section]*multiset[C]
}

// Entries returns the section's distinct elements with their counts, in the
// order they were added. The returned slice is a copy.
func (d *Deck[C]) Entries(s Section) []Entry[C] {
	m, ok := d.sections[s]
	if !ok {
		return nil
	}
	out := make([]Entry[C], len(m.entries))
	copy(out, m.entries)
	return out
}

// Count returns the number of physical copies in the section.
func (d *Deck[C]) Count(s Section) int {
	m, ok := d.sections[s]
	if !ok {
		return 0
	}
	return m.size()
}

// Sections returns the non-empty sections in serialization order.
func (d *Deck[C]) Sections() []Section {
	var out []Section
	for _, s := range AllSections {
		if d.Count(s) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// MutableCopy returns a Builder pre-populated with the deck's contents, for
// deriving a modified deck without touching the original.
func (d *Deck[C]) MutableCopy() *Builder[C] {
	b := NewBuilder[C]()
	for s, m := range d.sections {
		b.sections[s] = m.clone()
	}
	return b
}

// Builder accumulates card copies per section and produces an immutable Deck.
type Builder[C comparable] struct {
	sections map[Section]*multiset[C]
}

// NewBuilder returns an empty Builder.
func NewBuilder[C comparable]() *Builder[C] {
	return &Builder[C]{sections: make(map[Section]*multiset[C])}
}

// Add records n copies of a card in the section. Adding zero copies is a
// no-op.
func (b *Builder[C]) Add(s Section, c C, n int) {
	m, ok := b.sections[s]
	if !ok {
		m = newMultiset[C]()
		b.sections[s] = m
	}
	m.add(c, n)
}

// ClearSection discards everything accumulated for the section.
func (b *Builder[C]) ClearSection(s Section) {
	delete(b.sections, s)
}

// Build produces an immutable Deck. The Builder may keep being used
// afterwards without affecting the built deck.
func (b *Builder[C]) Build() *Deck[C] {
	sections := make(map[Section]*multiset[C], len(b.sections))
	for s, m := range b.sections {
		sections[s] = m.clone()
	}
	return &Deck[C]{sections: sections}
}

// Transform converts every card in the deck through f, preserving counts and
// section structure. The first conversion error aborts the whole transform.
func Transform[A, B comparable](d *Deck[A], f func(A) (B, error)) (*Deck[B], error) {
	b := NewBuilder[B]()
	for _, s := range AllSections {
		for _, e := range d.Entries(s) {
			converted, err := f(e.Card)
			if err != nil {
				return nil, err
			}
			b.Add(s, converted, e.Count)
		}
	}
	return b.Build(), nil
}
