package pairfreq

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/poiesic/keyfit/core"
	"github.com/poiesic/keyfit/penalty"
)

// Model is a table-driven, per-group decomposable penalty model.
type Model struct {
	entries map[core.Group]core.Penalty
}

var _ penalty.GroupModel = (*Model)(nil)

// New builds a model from a layout→penalty table. Keys are runs of
// symbol characters, e.g. "ae" or "th'".
func New(table map[string]float64) (*Model, error) {
	entries := make(map[core.Group]core.Penalty, len(table))
	for layout, value := range table {
		g, err := core.ParseGroup(layout)
		if err != nil {
			return nil, err
		}
		if g.Len() < 2 {
			return nil, fmt.Errorf("%w: entry %q needs at least two symbols",
				ErrInvalidTable, layout)
		}
		p := core.Penalty(value)
		if err := core.ValidatePenalty(p); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %w", ErrInvalidTable, layout, err)
		}
		entries[g] = p
	}
	return &Model{entries: entries}, nil
}

// Load reads a pair-penalty table from a CSV file with a
// "pairs,penalty" header.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader reads a pair-penalty table from CSV data.
func LoadReader(r io.Reader) (*Model, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	if header[0] != "pairs" || header[1] != "penalty" {
		return nil, fmt.Errorf("%w: expected pairs,penalty header, got %v",
			ErrInvalidTable, header)
	}

	table := make(map[string]float64)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
		}
		value, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %q: %w", ErrInvalidTable, record[0], err)
		}
		table[record[0]] = value
	}
	return New(table)
}

// Len returns the number of table entries.
func (m *Model) Len() int {
	return len(m.entries)
}

// GroupPenalty sums the table entries fully contained in the group.
func (m *Model) GroupPenalty(g core.Group) core.Penalty {
	var total core.Penalty
	for entry, p := range m.entries {
		if entry.Intersect(g) == entry {
			total += p
		}
	}
	return total
}

// Penalty sums the per-group costs over the partition.
func (m *Model) Penalty(p core.Partition) core.Penalty {
	var total core.Penalty
	for _, g := range p {
		total += m.GroupPenalty(g)
	}
	return total
}
