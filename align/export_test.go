package align

// NewMatrixForTest assembles a Matrix from raw row-major cells so tests
// can feed Backtrace hand-made (including deliberately broken) matrices.
func NewMatrixForTest(rows, cols int, score []float64, dirs []DirSet) *Matrix {
	return &Matrix{rows: rows, cols: cols, score: score, dirs: dirs}
}

// DirsOf builds a DirSet from the given directions.
func DirsOf(ds ...Direction) DirSet {
	var s DirSet
	for _, d := range ds {
		s.Add(d)
	}

	return s
}
