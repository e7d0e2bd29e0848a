package align

import "strings"

// Direction labels a predecessor move in the DP matrix.
//
//   - Up   — consume s[i-1] alone (a deletion from s).
//   - Left — consume t[j-1] alone (an insertion from t).
//   - Diag — consume both (a match or a substitution).
type Direction int

const (
	// Up: predecessor is (i-1, j).
	Up Direction = iota

	// Left: predecessor is (i, j-1).
	Left

	// Diag: predecessor is (i-1, j-1).
	Diag
)

// String returns the upper-case label of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Left:
		return "LEFT"
	case Diag:
		return "DIAG"
	default:
		return "UNKNOWN"
	}
}

// DirSet is the set of every Direction attaining a cell's best score.
// The zero value is the empty set. Ties keep several members.
type DirSet struct {
	up, left, diag bool
}

// Has reports whether d is a member of the set.
func (s DirSet) Has(d Direction) bool {
	switch d {
	case Up:
		return s.up
	case Left:
		return s.left
	case Diag:
		return s.diag
	default:
		return false
	}
}

// Add inserts d into the set. Unknown directions are ignored.
func (s *DirSet) Add(d Direction) {
	switch d {
	case Up:
		s.up = true
	case Left:
		s.left = true
	case Diag:
		s.diag = true
	}
}

// Empty reports whether no direction is recorded.
func (s DirSet) Empty() bool {
	return !s.up && !s.left && !s.diag
}

// String renders the set as a fixed-width three-letter mask "ULD",
// using '.' for absent members, e.g. "U.D" or "...".
func (s DirSet) String() string {
	b := []byte("...")
	if s.up {
		b[0] = 'U'
	}
	if s.left {
		b[1] = 'L'
	}
	if s.diag {
		b[2] = 'D'
	}

	return string(b)
}

// OpKind tags the shape of an alignment operation.
type OpKind int

const (
	// OpPair: both sequences advance; S and T may be equal (match) or differ (substitution).
	OpPair OpKind = iota

	// OpDelete: s advances, t does not; only S is meaningful.
	OpDelete

	// OpInsert: t advances, s does not; only T is meaningful.
	OpInsert
)

// Op is a single alignment operation.
type Op struct {
	Kind OpKind
	S    rune // symbol from s (OpPair, OpDelete)
	T    rune // symbol from t (OpPair, OpInsert)
}

// IsMatch reports whether op pairs two equal symbols.
func (op Op) IsMatch() bool {
	return op.Kind == OpPair && op.S == op.T
}

// String renders op as "a=b" (pair), "-a" (delete) or "+b" (insert).
func (op Op) String() string {
	switch op.Kind {
	case OpPair:
		return string(op.S) + "=" + string(op.T)
	case OpDelete:
		return "-" + string(op.S)
	case OpInsert:
		return "+" + string(op.T)
	default:
		return "?"
	}
}

// Alignment is an ordered, left-to-right list of operations that fully
// consumes both sequences: pairs+deletes == len(s), pairs+inserts == len(t).
type Alignment []Op

// Counts returns the number of pair, delete and insert operations.
func (a Alignment) Counts() (pairs, deletes, inserts int) {
	for _, op := range a {
		switch op.Kind {
		case OpPair:
			pairs++
		case OpDelete:
			deletes++
		case OpInsert:
			inserts++
		}
	}

	return pairs, deletes, inserts
}

// Strings returns the String form of every operation, in order.
func (a Alignment) Strings() []string {
	out := make([]string, len(a))
	for i, op := range a {
		out[i] = op.String()
	}

	return out
}

// String renders the alignment as "[w=w a=a +e]".
func (a Alignment) String() string {
	return "[" + strings.Join(a.Strings(), " ") + "]"
}

// Markers delimits the bracketed spans of a merged diff.
type Markers struct {
	RemoveOpen  rune
	RemoveClose rune
	AddOpen     rune
	AddClose    rune
}

// DefaultMarkers renders removed spans as `abc' and added spans as <abc>.
var DefaultMarkers = Markers{
	RemoveOpen:  '`',
	RemoveClose: '\'',
	AddOpen:     '<',
	AddClose:    '>',
}

// Result bundles everything a single comparison produces.
type Result struct {
	// Alignment is the canonical alignment recovered by Backtrace.
	Alignment Alignment

	// Diff is the merged diff string rendered with DefaultMarkers.
	Diff string

	// Similarity is H[n][m], the best attainable score under the policy.
	Similarity float64

	// Matrix holds H and D for diagnostics.
	Matrix *Matrix
}
