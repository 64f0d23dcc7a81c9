package card

import (
	"cmp"
	"fmt"
	"math/bits"
)

// Color is one of the five card colors, in the fixed WUBRG order.
type Color int

const (
	White Color = iota
	Blue
	Black
	Red
	Green
)

var colorSymbols = [...]string{"W", "U", "B", "R", "G"}

// Symbol returns the single-letter symbol for the color.
func (c Color) Symbol() string {
	return colorSymbols[c]
}

// ColorSet is a set of colors. The zero value is the empty set, which stands
// for colorless.
type ColorSet struct {
	bits uint8
}

// Colors builds a ColorSet from individual colors.
func Colors(colors ...Color) ColorSet {
	var s ColorSet
	for _, c := range colors {
		s.bits |= 1 << uint(c)
	}
	return s
}

// ParseColorSet builds a ColorSet from single-letter symbols (W, U, B, R, G).
func ParseColorSet(symbols []string) (ColorSet, error) {
	var s ColorSet
	for _, sym := range symbols {
		found := false
		for i, known := range colorSymbols {
			if sym == known {
				s.bits |= 1 << uint(i)
				found = true
				break
			}
		}
		if !found {
			return ColorSet{}, fmt.Errorf("unknown color symbol: %s", sym)
		}
	}
	return s, nil
}

// IsEmpty reports whether the set is colorless.
func (s ColorSet) IsEmpty() bool {
	return s.bits == 0
}

// Has reports whether the set contains the color.
func (s ColorSet) Has(c Color) bool {
	return s.bits&(1<<uint(c)) != 0
}

// Size returns the number of colors in the set.
func (s ColorSet) Size() int {
	return bits.OnesCount8(s.bits)
}

// String renders the set in WUBRG order, e.g. "WU". The colorless set renders
// as "C".
func (s ColorSet) String() string {
	if s.IsEmpty() {
		return "C"
	}
	out := ""
	for c := White; c <= Green; c++ {
		if s.Has(c) {
			out += c.Symbol()
		}
	}
	return out
}

// CompareColorlessLast is a total order over color sets that places the
// colorless (empty) set strictly last. Non-empty sets are ordered by
// ascending bitmask in WUBRG bit order, so mono-white sorts first and
// five-color sorts last among the colored sets.
func CompareColorlessLast(a, b ColorSet) int {
	if a.bits == b.bits {
		return 0
	}
	if a.IsEmpty() {
		return 1
	}
	if b.IsEmpty() {
		return -1
	}
	return cmp.Compare(a.bits, b.bits)
}
