package core

import (
	"fmt"
	"math/bits"
	"strings"
)

// AlphabetSize is the number of symbols the optimizer assigns to keys:
// the 26 letters plus the apostrophe.
const AlphabetSize = 27

var alphabetRunes = [AlphabetSize]rune{
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm',
	'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '\'',
}

// Symbol is one of the 27 atomic alphabet units, identified by its
// index in canonical order (a=0 .. z=25, apostrophe=26).
type Symbol uint8

// Rune returns the character the symbol stands for.
func (s Symbol) Rune() rune {
	return alphabetRunes[s]
}

func (s Symbol) String() string {
	return string(s.Rune())
}

// ParseSymbol maps a character to its Symbol.
func ParseSymbol(r rune) (Symbol, error) {
	switch {
	case r >= 'a' && r <= 'z':
		return Symbol(r - 'a'), nil
	case r == '\'':
		return Symbol(26), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
	}
}

// Group is a set of symbols assigned to one physical key, stored as a
// bitset over symbol indices.
type Group uint32

// NewGroup builds a group from the given symbols.
func NewGroup(symbols ...Symbol) Group {
	var g Group
	for _, s := range symbols {
		g = g.Add(s)
	}
	return g
}

// Universe returns the group containing the first n symbols.
// Universe(AlphabetSize) is the full alphabet.
func Universe(n int) Group {
	if n <= 0 {
		return 0
	}
	if n >= 32 {
		return ^Group(0)
	}
	return Group(1)<<n - 1
}

// Alphabet is the full 27-symbol universe.
var Alphabet = Universe(AlphabetSize)

func (g Group) Add(s Symbol) Group       { return g | 1<<s }
func (g Group) Remove(s Symbol) Group    { return g &^ (1 << s) }
func (g Group) Contains(s Symbol) bool   { return g&(1<<s) != 0 }
func (g Group) Union(o Group) Group      { return g | o }
func (g Group) Intersect(o Group) Group  { return g & o }
func (g Group) Difference(o Group) Group { return g &^ o }

// Len returns the number of symbols in the group.
func (g Group) Len() int {
	return bits.OnesCount32(uint32(g))
}

func (g Group) IsEmpty() bool {
	return g == 0
}

// Min returns the smallest symbol in the group.
// The second return value is false for the empty group.
func (g Group) Min() (Symbol, bool) {
	if g == 0 {
		return 0, false
	}
	return Symbol(bits.TrailingZeros32(uint32(g))), true
}

// Symbols returns the group's symbols in canonical order.
func (g Group) Symbols() []Symbol {
	out := make([]Symbol, 0, g.Len())
	for rest := g; rest != 0; {
		s := Symbol(bits.TrailingZeros32(uint32(rest)))
		out = append(out, s)
		rest = rest.Remove(s)
	}
	return out
}

// String renders the group as its symbols in canonical order, e.g. "akw".
func (g Group) String() string {
	var b strings.Builder
	for _, s := range g.Symbols() {
		b.WriteRune(s.Rune())
	}
	return b.String()
}

// ParseGroup parses a run of symbol characters, e.g. "akw".
func ParseGroup(text string) (Group, error) {
	var g Group
	for _, r := range text {
		s, err := ParseSymbol(r)
		if err != nil {
			return 0, err
		}
		if g.Contains(s) {
			return 0, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		g = g.Add(s)
	}
	return g, nil
}
