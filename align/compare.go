package align

import (
	"fmt"
	"unicode/utf8"
)

// Compare aligns s against t under p and renders the merged diff.
// Strings are compared rune by rune.
//
// Errors: ErrNilPolicy, ErrNonFiniteScore, ErrBrokenPath.
//
// Example:
//
//	res, _ := Compare("walk", "walked", Levenshtein{})
//	// res.Diff == "walk<ed>", res.Similarity == 4
func Compare(s, t string, p Policy) (*Result, error) {
	return CompareRunes([]rune(s), []rune(t), p)
}

// CompareRunes is Compare over rune sequences.
func CompareRunes(s, t []rune, p Policy) (*Result, error) {
	m, err := Build(s, t, p)
	if err != nil {
		return nil, err
	}
	ali, err := Backtrace(m, s, t)
	if err != nil {
		return nil, err
	}

	return &Result{
		Alignment:  ali,
		Diff:       MergedDiff(ali),
		Similarity: m.Final(),
		Matrix:     m,
	}, nil
}

// Similarity returns H[n][m] of s against t under p.
func Similarity(s, t string, p Policy) (float64, error) {
	m, err := Build([]rune(s), []rune(t), p)
	if err != nil {
		return 0, err
	}

	return m.Final(), nil
}

// EditDistance returns the Levenshtein distance between s and t, counted
// in runes, as max(n, m) − Similarity(s, t, Levenshtein{}).
//
//	EditDistance("kitten", "sitting") == 3
func EditDistance(s, t string) int {
	sim, err := Similarity(s, t, Levenshtein{})
	if err != nil {
		// Levenshtein scores are always 0 or 1
		panic(fmt.Sprintf("align: levenshtein policy failed: %v", err))
	}

	return max(utf8.RuneCountInString(s), utf8.RuneCountInString(t)) - int(sim)
}
