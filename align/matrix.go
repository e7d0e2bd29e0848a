package align

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matrix holds the score matrix H and the direction-set matrix D of one
// comparison. Both live in flat row-major buffers of Rows()*Cols() cells,
// with rows indexed by i (prefix length of s) and columns by j (prefix
// length of t). A Matrix is immutable once Build returns it.
type Matrix struct {
	rows, cols int       // n+1 and m+1
	score      []float64 // H, row-major
	dirs       []DirSet  // D, row-major
}

// cellErrorf wraps err with Matrix method context.
func cellErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// Rows returns n+1.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns m+1.
func (m *Matrix) Cols() int {
	return m.cols
}

// offset is the unchecked flat index of (i, j).
func (m *Matrix) offset(i, j int) int {
	return i*m.cols + j
}

// indexOf computes the flat index for (i, j) or returns ErrOutOfRange.
func (m *Matrix) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, cellErrorf(method, i, j, ErrOutOfRange)
	}

	return m.offset(i, j), nil
}

// Score returns H[i][j].
// Complexity: O(1).
func (m *Matrix) Score(i, j int) (float64, error) {
	idx, err := m.indexOf("Score", i, j)
	if err != nil {
		return 0, err
	}

	return m.score[idx], nil
}

// Dirs returns D[i][j].
// Complexity: O(1).
func (m *Matrix) Dirs(i, j int) (DirSet, error) {
	idx, err := m.indexOf("Dirs", i, j)
	if err != nil {
		return DirSet{}, err
	}

	return m.dirs[idx], nil
}

// Final returns the terminal cell H[n][m], the similarity score.
func (m *Matrix) Final() float64 {
	return m.score[len(m.score)-1]
}

// String renders H and D side by side, one row per line, for debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(m.score[m.offset(i, j)], 'g', -1, 64))
			sb.WriteByte('/')
			sb.WriteString(m.dirs[m.offset(i, j)].String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Build fills H and D for s (length n) against t (length m) under p.
//
// Stage 1 (Validate): p must be non-nil.
// Stage 2 (Prepare): allocate (n+1)·(m+1) cells; H[0][0] = 0, D[0][0] = ∅.
// Stage 3 (Fill): outer loop over j, inner over i; each cell takes the best
// of the valid candidates
//
//	UP   = H[i-1][j]   + p.Gap(s, i-1, UP   ∈ D[i-1][j])   (i > 0)
//	LEFT = H[i][j-1]   + p.Gap(t, j-1, LEFT ∈ D[i][j-1])   (j > 0)
//	DIAG = H[i-1][j-1] + p.Pair(s, t, i-1, j-1)            (i > 0, j > 0)
//
// and records every candidate equal to the best in D.
//
// Errors: ErrNilPolicy, ErrNonFiniteScore (wrapped with the cell) for a
// non-finite policy value or a running score that overflows.
// Complexity: O(n·m) time and memory.
func Build(s, t []rune, p Policy) (*Matrix, error) {
	if p == nil {
		return nil, ErrNilPolicy
	}

	n, m := len(s), len(t)
	mat := &Matrix{
		rows:  n + 1,
		cols:  m + 1,
		score: make([]float64, (n+1)*(m+1)),
		dirs:  make([]DirSet, (n+1)*(m+1)),
	}

	negInf := math.Inf(-1)
	for j := 0; j <= m; j++ {
		for i := 0; i <= n; i++ {
			up, left, diag := negInf, negInf, negInf

			if i > 0 {
				prev := mat.offset(i-1, j)
				g := p.Gap(s, i-1, mat.dirs[prev].Has(Up))
				if !finite(g) {
					return nil, scoreErrorf("Gap", i, j, g)
				}
				up = mat.score[prev] + g
			}
			if j > 0 {
				prev := mat.offset(i, j-1)
				g := p.Gap(t, j-1, mat.dirs[prev].Has(Left))
				if !finite(g) {
					return nil, scoreErrorf("Gap", i, j, g)
				}
				left = mat.score[prev] + g
			}
			if i > 0 && j > 0 {
				g := p.Pair(s, t, i-1, j-1)
				if !finite(g) {
					return nil, scoreErrorf("Pair", i, j, g)
				}
				diag = mat.score[mat.offset(i-1, j-1)] + g
			}

			if i == 0 && j == 0 {
				// origin: no predecessor, H stays 0
				continue
			}
			best := math.Max(up, math.Max(left, diag))
			if !finite(best) {
				return nil, fmt.Errorf("best score at cell (%d,%d) overflowed to %v: %w", i, j, best, ErrNonFiniteScore)
			}

			idx := mat.offset(i, j)
			mat.score[idx] = best
			if up == best {
				mat.dirs[idx].Add(Up)
			}
			if left == best {
				mat.dirs[idx].Add(Left)
			}
			if diag == best {
				mat.dirs[idx].Add(Diag)
			}
		}
	}

	return mat, nil
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// scoreErrorf reports a non-finite policy value met while filling (i, j).
func scoreErrorf(callback string, i, j int, v float64) error {
	return fmt.Errorf("Policy.%s at cell (%d,%d) returned %v: %w", callback, i, j, v, ErrNonFiniteScore)
}
