package core

import (
	"errors"
	"fmt"
)

// Difficulty is the reading level a text is rewritten for.
type Difficulty string

const (
	// Original leaves the words alone; only whitespace is normalized.
	Original Difficulty = "original"
	// Intermediate drops parentheticals and swaps a few formal words.
	Intermediate Difficulty = "intermediate"
	// Simple additionally splits clauses and re-paragraphs into short lines.
	Simple Difficulty = "simple"
)

// ErrInvalidDifficulty is returned for a level outside the three known tiers.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Difficulties returns the known levels, mildest first.
func Difficulties() []Difficulty {
	return []Difficulty{Original, Intermediate, Simple}
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case Original, Intermediate, Simple:
		return true
	}
	return false
}

func (d Difficulty) String() string { return string(d) }

// ParseDifficulty converts a request value into a Difficulty. Matching is
// exact: no trimming, no case folding, and "" is rejected.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q (want original, intermediate or simple)", ErrInvalidDifficulty, s)
	}
	return d, nil
}
