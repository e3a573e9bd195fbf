package core

import (
	"errors"
	"math"
	"testing"
)

func TestValidateKIn(t *testing.T) {
	tests := []struct {
		name    string
		k       int
		wantErr bool
	}{
		{"one key", 1, false},
		{"all singletons", AlphabetSize, false},
		{"zero", 0, true},
		{"negative", -3, true},
		{"too many", AlphabetSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateK(tt.k)
			if tt.wantErr && !errors.Is(err, ErrInvalidK) {
				t.Errorf("ValidateK(%d) = %v, want ErrInvalidK", tt.k, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateK(%d) unexpected error: %v", tt.k, err)
			}
		})
	}
}

func TestValidatePartitionIn(t *testing.T) {
	universe := Universe(4)

	tests := []struct {
		name    string
		layout  string
		k       int
		wantErr error
	}{
		{"valid", "ab,cd", 2, nil},
		{"valid singletons", "a,b,c,d", 4, nil},
		{"wrong group count", "ab,cd", 3, ErrGroupCount},
		{"missing symbol", "ab,c", 2, ErrMissingSymbol},
		{"outside universe", "ab,cde", 2, ErrUnknownSymbol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustParse(t, tt.layout)
			err := ValidatePartitionIn(universe, p, tt.k)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePartitionIn(%q, %d) unexpected error: %v", tt.layout, tt.k, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePartitionIn(%q, %d) = %v, want %v", tt.layout, tt.k, err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidPartition) {
				t.Errorf("ValidatePartitionIn(%q, %d) does not wrap ErrInvalidPartition", tt.layout, tt.k)
			}
		})
	}
}

func TestValidatePartitionIn_EmptyGroup(t *testing.T) {
	p := Partition{NewGroup(0, 1), Group(0), NewGroup(2, 3)}
	err := ValidatePartitionIn(Universe(4), p, 3)
	if !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("expected ErrEmptyGroup, got %v", err)
	}
}

func TestValidatePartitionIn_DuplicateSymbol(t *testing.T) {
	p := Partition{NewGroup(0, 1), NewGroup(1, 2, 3)}
	err := ValidatePartitionIn(Universe(4), p, 2)
	if !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("expected ErrDuplicateSymbol, got %v", err)
	}
}

func TestValidatePenalty(t *testing.T) {
	tests := []struct {
		name    string
		p       Penalty
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 0.024, false},
		{"max", MaxPenalty, false},
		{"negative", -1, true},
		{"nan", Penalty(math.NaN()), true},
		{"inf", Penalty(math.Inf(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePenalty(tt.p)
			if tt.wantErr && !errors.Is(err, ErrInvalidPenalty) {
				t.Errorf("ValidatePenalty(%v) = %v, want ErrInvalidPenalty", tt.p, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidatePenalty(%v) unexpected error: %v", tt.p, err)
			}
		})
	}
}
