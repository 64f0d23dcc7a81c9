package validator

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/decksmith/decksmith/internal/card"
	"github.com/decksmith/decksmith/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Catalog  card.Catalog
	Results  ValidationResults
}

func NewValidator(deckPath string, catalog card.Catalog) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Catalog:  catalog,
		Results:  ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	raw, err := v.readDeck()
	if err != nil {
		return v.Results, err
	}
	if raw == nil {
		return v.Results, nil
	}

	resolved := v.resolveCards(raw)
	if resolved != nil {
		v.checkSectionSizes(resolved)
		v.checkCopyLimits(resolved)
	}

	return v.Results, nil
}

func (v *Validator) readDeck() (*deck.Deck[card.ArenaEntry], error) {
	file, err := os.Open(v.DeckPath)
	if err != nil {
		return nil, fmt.Errorf("error opening deck list: %v", err)
	}
	defer file.Close()

	raw, err := deck.ReadEntries(file)
	if err != nil {
		var syntaxErr *deck.SyntaxError
		if errors.As(err, &syntaxErr) {
			v.Results.Errors = append(v.Results.Errors, syntaxErr.Error())
			return nil, nil
		}
		return nil, err
	}
	return raw, nil
}

// resolveCards looks up every reference individually so that a report can
// list all unknown cards, not just the first one.
func (v *Validator) resolveCards(raw *deck.Deck[card.ArenaEntry]) *deck.Deck[*card.Card] {
	unknown := 0
	builder := deck.NewBuilder[*card.Card]()
	for _, s := range deck.AllSections {
		for _, e := range raw.Entries(s) {
			c, ok := v.Catalog.Lookup(e.Card)
			if !ok {
				v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("unrecognized card: %s", e.Card))
				unknown++
				continue
			}
			builder.Add(s, c, e.Count)
		}
	}
	if unknown > 0 {
		return nil
	}
	return builder.Build()
}

func (v *Validator) checkSectionSizes(d *deck.Deck[*card.Card]) {
	if n := d.Count(deck.MainDeck); n < 60 {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("main deck has %d cards, constructed formats require 60", n))
	}
	if n := d.Count(deck.Sideboard); n > 15 {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("sideboard has %d cards, the limit is 15", n))
	}
	if n := d.Count(deck.Companion); n > 1 {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("companion section has %d cards, expected at most 1", n))
	}
}

// checkCopyLimits warns about more than four copies of a name across all
// sections. Lands are exempt since basic lands have no copy limit.
func (v *Validator) checkCopyLimits(d *deck.Deck[*card.Card]) {
	copies := make(map[string]int)
	lands := make(map[string]bool)
	for _, s := range deck.AllSections {
		for _, e := range d.Entries(s) {
			copies[e.Card.Name] += e.Count
			if e.Card.IsLand() {
				lands[e.Card.Name] = true
			}
		}
	}
	names := make([]string, 0, len(copies))
	for name := range copies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if n := copies[name]; n > 4 && !lands[name] {
			v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("%d copies of %q, the limit is 4", n, name))
		}
	}
}
