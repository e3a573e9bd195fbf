package core

import (
	"testing"
)

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		name    string
		r       rune
		want    Symbol
		wantErr bool
	}{
		{"first letter", 'a', 0, false},
		{"last letter", 'z', 25, false},
		{"apostrophe", '\'', 26, false},
		{"uppercase rejected", 'A', 0, true},
		{"digit rejected", '3', 0, true},
		{"space rejected", ' ', 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSymbol(tt.r)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseSymbol(%q) expected error, got %v", tt.r, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSymbol(%q) unexpected error: %v", tt.r, err)
			}
			if got != tt.want {
				t.Errorf("ParseSymbol(%q) = %d, want %d", tt.r, got, tt.want)
			}
			if got.Rune() != tt.r {
				t.Errorf("Symbol(%d).Rune() = %q, want %q", got, got.Rune(), tt.r)
			}
		})
	}
}

func TestGroup_SetOperations(t *testing.T) {
	g := NewGroup(0, 2, 26)

	if g.Len() != 3 {
		t.Errorf("Len() = %d, want 3", g.Len())
	}
	if !g.Contains(2) {
		t.Errorf("Contains(2) = false, want true")
	}
	if g.Contains(1) {
		t.Errorf("Contains(1) = true, want false")
	}

	g = g.Remove(2)
	if g.Contains(2) {
		t.Errorf("Contains(2) after Remove = true, want false")
	}
	if g.Len() != 2 {
		t.Errorf("Len() after Remove = %d, want 2", g.Len())
	}

	other := NewGroup(1, 26)
	if got := g.Union(other).Len(); got != 3 {
		t.Errorf("Union Len() = %d, want 3", got)
	}
	if got := g.Intersect(other); got != NewGroup(26) {
		t.Errorf("Intersect = %s, want %s", got, NewGroup(26))
	}
	if got := g.Difference(other); got != NewGroup(0) {
		t.Errorf("Difference = %s, want %s", got, NewGroup(0))
	}
}

func TestGroup_Min(t *testing.T) {
	if _, ok := Group(0).Min(); ok {
		t.Errorf("Min() of empty group reported a symbol")
	}

	g := NewGroup(5, 3, 20)
	m, ok := g.Min()
	if !ok || m != 3 {
		t.Errorf("Min() = %d, %v, want 3, true", m, ok)
	}
}

func TestGroup_String(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"single", "a"},
		{"run", "akw"},
		{"with apostrophe", "dfx'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseGroup(tt.text)
			if err != nil {
				t.Fatalf("ParseGroup(%q) unexpected error: %v", tt.text, err)
			}
			if got := g.String(); got != tt.text {
				t.Errorf("String() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestParseGroup_Invalid(t *testing.T) {
	if _, err := ParseGroup("aa"); err == nil {
		t.Errorf("ParseGroup(\"aa\") expected duplicate symbol error")
	}
	if _, err := ParseGroup("a b"); err == nil {
		t.Errorf("ParseGroup(\"a b\") expected unknown symbol error")
	}
}

func TestUniverse(t *testing.T) {
	if got := Universe(0); !got.IsEmpty() {
		t.Errorf("Universe(0) = %s, want empty", got)
	}
	if got := Universe(5).Len(); got != 5 {
		t.Errorf("Universe(5).Len() = %d, want 5", got)
	}
	if got := Alphabet.Len(); got != AlphabetSize {
		t.Errorf("Alphabet.Len() = %d, want %d", got, AlphabetSize)
	}
	if s, _ := Universe(5).Min(); s != 0 {
		t.Errorf("Universe(5).Min() = %d, want 0", s)
	}
}
