package align

import (
	"fmt"
	"strings"
)

// Policy scores alignment steps. Implementations must be pure and
// stateless, and must return finite values for valid indices.
//
//   - Pair(s, t, i, j)         — score for aligning s[i] with t[j].
//   - Gap(seq, i, continuing)  — score for leaving seq[i] unpaired;
//     continuing is true when the previous step in the same direction was
//     also a gap (affine "extend" vs "open").
//
// Indices are 0-based into the original sequences. Higher is better.
type Policy interface {
	Pair(s, t []rune, i, j int) float64
	Gap(seq []rune, i int, continuing bool) float64
}

// Levenshtein rewards equal pairs with 1 and charges nothing for gaps.
// Under this policy max(n,m) − H[n][m] is the classic edit distance.
type Levenshtein struct{}

// Pair returns 1 for equal symbols, 0 otherwise.
func (Levenshtein) Pair(s, t []rune, i, j int) float64 {
	if s[i] == t[j] {
		return 1
	}

	return 0
}

// Gap returns 0.
func (Levenshtein) Gap(_ []rune, _ int, _ bool) float64 {
	return 0
}

// WordForm scores two morphological variants of the same lemma. It favors
// long shared stems and keeps differing endings together in one span.
type WordForm struct{}

// WordForm scores.
const (
	wfContinueMatch  = 2.0  // equal and the previous pair was equal too
	wfCrossBoundary  = -3.0 // ending of one word matched against start of the other
	wfLateRematch    = -3.0 // a fresh match inside the last two positions
	wfRematch        = -1.0 // a fresh match elsewhere
	wfOpenMismatch   = -1.0 // first pair of a mismatch run
	wfExtendMismatch = 0.0  // continuing a mismatch run
	wfGapOpen        = -2.0
	wfGapExtend      = 0.0

	// wfLateStart is the relative position past which a match starting at
	// the other word's index 0 counts as crossing word boundaries.
	wfLateStart = 0.6
)

// Pair implements the WordForm pair table.
func (WordForm) Pair(s, t []rune, i, j int) float64 {
	// run continues when at a boundary or the preceding pair was equal
	continuing := i == 0 || j == 0 || s[i-1] == t[j-1]
	if s[i] == t[j] {
		if continuing {
			if (float64(i)/float64(len(s)) >= wfLateStart && j == 0) ||
				(float64(j)/float64(len(t)) >= wfLateStart && i == 0) {
				return wfCrossBoundary
			}

			return wfContinueMatch
		}
		if i >= len(s)-2 || j >= len(t)-2 {
			return wfLateRematch
		}

		return wfRematch
	}
	if continuing {
		return wfOpenMismatch
	}

	return wfExtendMismatch
}

// Gap charges wfGapOpen for the first gap of a run and nothing after.
func (WordForm) Gap(_ []rune, _ int, continuing bool) float64 {
	if continuing {
		return wfGapExtend
	}

	return wfGapOpen
}

// PolicyByName resolves a built-in policy by name, case-insensitively.
//
//   - "levenshtein", "l"          → Levenshtein
//   - "wordform", "cstest", "c"   → WordForm
//
// Any other name yields ErrUnknownPolicy.
func PolicyByName(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "levenshtein", "l":
		return Levenshtein{}, nil
	case "wordform", "cstest", "c":
		return WordForm{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPolicy)
	}
}

// PolicyName returns the canonical name of a built-in policy, or "custom".
func PolicyName(p Policy) string {
	switch p.(type) {
	case Levenshtein, *Levenshtein:
		return "levenshtein"
	case WordForm, *WordForm:
		return "wordform"
	default:
		return "custom"
	}
}
