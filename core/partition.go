package core

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// Partition assigns every symbol of a universe to exactly one group.
// Groups are interchangeable keys: two partitions that differ only in
// group order are the same partition. Canonical form sorts groups by
// their smallest symbol.
type Partition []Group

// Singletons returns the partition that puts every symbol of the
// universe on its own key.
func Singletons(universe Group) Partition {
	symbols := universe.Symbols()
	p := make(Partition, 0, len(symbols))
	for _, s := range symbols {
		p = append(p, NewGroup(s))
	}
	return p
}

// Clone returns an independent copy of the partition.
func (p Partition) Clone() Partition {
	return slices.Clone(p)
}

// Canonical returns a copy with groups sorted by their smallest symbol.
// Group bitsets already order symbols within a group, so the result is
// a canonical encoding: equal partitions have identical canonical forms.
func (p Partition) Canonical() Partition {
	c := slices.Clone(p)
	slices.SortFunc(c, compareGroups)
	return c
}

func compareGroups(a, b Group) int {
	am, aok := a.Min()
	bm, bok := b.Min()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	default:
		return int(am) - int(bm)
	}
}

// Equal reports whether two partitions are the same up to group order.
func (p Partition) Equal(o Partition) bool {
	return slices.Equal(p.Canonical(), o.Canonical())
}

// Compare orders partitions by their canonical encoding: group by
// group, each group by its symbol sequence. Used for deterministic
// tie-breaking between partitions of equal penalty.
func (p Partition) Compare(o Partition) int {
	pc, oc := p.Canonical(), o.Canonical()
	for i := 0; i < len(pc) && i < len(oc); i++ {
		if c := compareGroupSymbols(pc[i], oc[i]); c != 0 {
			return c
		}
	}
	return len(pc) - len(oc)
}

func compareGroupSymbols(a, b Group) int {
	as, bs := a.Symbols(), b.Symbols()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			return int(as[i]) - int(bs[i])
		}
	}
	return len(as) - len(bs)
}

// Union returns the set of all symbols covered by the partition.
func (p Partition) Union() Group {
	var u Group
	for _, g := range p {
		u = u.Union(g)
	}
	return u
}

// GroupOf returns the index of the group containing the symbol.
func (p Partition) GroupOf(s Symbol) (int, bool) {
	for i, g := range p {
		if g.Contains(s) {
			return i, true
		}
	}
	return 0, false
}

// String renders the canonical layout, groups separated by commas,
// e.g. "akw,bn,cejq,dfx',gm,hiv,lyz,ot,pr,su".
func (p Partition) String() string {
	c := p.Canonical()
	parts := make([]string, len(c))
	for i, g := range c {
		parts[i] = g.String()
	}
	return strings.Join(parts, ",")
}

// ParsePartition parses a comma-separated layout string.
func ParsePartition(layout string) (Partition, error) {
	fields := strings.Split(layout, ",")
	p := make(Partition, 0, len(fields))
	seen := Group(0)
	for _, field := range fields {
		g, err := ParseGroup(field)
		if err != nil {
			return nil, err
		}
		if !seen.Intersect(g).IsEmpty() {
			return nil, ErrDuplicateSymbol
		}
		seen = seen.Union(g)
		p = append(p, g)
	}
	return p, nil
}

// ID is a unique identifier for domain entities, derived from content
// so that identical content produces identical IDs.
type ID uint64

// Fingerprint generates a deterministic ID from the canonical form of
// the partition using BLAKE2b hashing. Equal partitions share a
// fingerprint regardless of group order.
func (p Partition) Fingerprint() ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	var buf [4]byte
	for _, g := range p.Canonical() {
		binary.LittleEndian.PutUint32(buf[:], uint32(g))
		h.Write(buf[:])
	}
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}
