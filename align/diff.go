package align

import "strings"

// MergedDiff renders ali with DefaultMarkers.
//
//	MergedDiff(walk → walked)   = "walk<ed>"
//	MergedDiff(kitten → sitting) = "`k'<s>itt`e'<i>n<g>"
func MergedDiff(ali Alignment) string {
	return MergedDiffWith(ali, DefaultMarkers)
}

// MergedDiffWith renders ali as literal matched symbols interleaved with
// bracketed spans. Consecutive non-matching operations (deletions,
// insertions and substitutions alike) accumulate into one removed span and
// one added span; each true match, and the end of the alignment, flushes
// the removed span first, then the added span.
//
// Complexity: O(len(ali)).
func MergedDiffWith(ali Alignment, mk Markers) string {
	var (
		out     strings.Builder
		removed []rune
		added   []rune
	)

	flush := func() {
		if len(removed) > 0 {
			out.WriteRune(mk.RemoveOpen)
			out.WriteString(string(removed))
			out.WriteRune(mk.RemoveClose)
		}
		if len(added) > 0 {
			out.WriteRune(mk.AddOpen)
			out.WriteString(string(added))
			out.WriteRune(mk.AddClose)
		}
		removed = removed[:0]
		added = added[:0]
	}

	for _, op := range ali {
		switch {
		case op.IsMatch():
			flush()
			out.WriteRune(op.S)
		case op.Kind == OpPair:
			removed = append(removed, op.S)
			added = append(added, op.T)
		case op.Kind == OpDelete:
			removed = append(removed, op.S)
		case op.Kind == OpInsert:
			added = append(added, op.T)
		}
	}
	// terminal step: a match without a literal
	flush()

	return out.String()
}
