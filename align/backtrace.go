package align

import "fmt"

// Backtrace recovers one canonical alignment of s and t from m.
//
// Starting at (n, m) it repeatedly checks, in this fixed order:
//  1. Diag ∈ D[i][j] → Pair(s[i-1], t[j-1]); i--, j--
//  2. Up   ∈ D[i][j] → Delete(s[i-1]);       i--
//  3. Left ∈ D[i][j] → Insert(t[j-1]);       j--
//
// until it reaches the origin, then reverses the emitted operations.
// Among several score-optimal alignments the same one is always returned:
// pairing is preferred over gapping, and consuming s over consuming t.
//
// Errors:
//   - ErrDimensionMismatch — m was not built for sequences of these lengths.
//   - ErrBrokenPath        — an empty direction set was met before (0,0).
//
// Complexity: O(n+m) time, O(n+m) memory.
func Backtrace(m *Matrix, s, t []rune) (Alignment, error) {
	if m == nil || m.rows != len(s)+1 || m.cols != len(t)+1 {
		return nil, ErrDimensionMismatch
	}

	ali := make(Alignment, 0, max(len(s), len(t)))
	i, j := len(s), len(t)
	for i > 0 || j > 0 {
		d := m.dirs[m.offset(i, j)]
		switch {
		case d.Has(Diag) && i > 0 && j > 0:
			ali = append(ali, Op{Kind: OpPair, S: s[i-1], T: t[j-1]})
			i--
			j--
		case d.Has(Up) && i > 0:
			ali = append(ali, Op{Kind: OpDelete, S: s[i-1]})
			i--
		case d.Has(Left) && j > 0:
			ali = append(ali, Op{Kind: OpInsert, T: t[j-1]})
			j--
		default:
			return nil, fmt.Errorf("cell (%d,%d) has directions %s: %w", i, j, d, ErrBrokenPath)
		}
	}

	// reverse in place
	for l, r := 0, len(ali)-1; l < r; l, r = l+1, r-1 {
		ali[l], ali[r] = ali[r], ali[l]
	}

	return ali, nil
}
