// Package align scores, aligns and diffs two symbol sequences (words) under
// a pluggable, possibly non-symmetric scoring policy.
//
// 🚀 What is inside?
//
//	A global-alignment engine in three stages:
//	  • Build      — fill the (n+1)×(m+1) score matrix H and the
//	                 direction-set matrix D (ties are kept, not resolved)
//	  • Backtrace  — walk D from (n,m) to (0,0) with the fixed priority
//	                 DIAG > UP > LEFT, yielding one canonical Alignment
//	  • MergedDiff — render the Alignment as one annotated string where
//	                 runs of non-matching operations collapse into
//	                 `removed' and <added> spans
//
// ✨ Built-in policies:
//   - Levenshtein — pair = 1 on equal symbols else 0, gap = 0.
//     EditDistance(s,t) = max(n,m) − H[n][m].
//   - WordForm    — tuned for morphological variants of one lemma:
//     rewards continuing matches, penalizes spurious re-matches near word
//     endings and an affine-like open/extend gap cost.
//
// ⚙️ Usage:
//
//	res, err := align.Compare("walk", "walked", align.Levenshtein{})
//	if err != nil {
//	  // ErrNonFiniteScore (bad policy) or ErrBrokenPath (internal fault)
//	}
//	fmt.Println(res.Diff) // walk<ed>
//
//	d := align.EditDistance("kitten", "sitting") // 3
//
// Gap continuation:
//
//	The "continuing" flag passed to Policy.Gap looks exactly one step back
//	at the predecessor's recorded direction set. It does not replay the
//	path actually taken through an ambiguous predecessor, so it only
//	approximates affine gap costs. Outputs depend on that approximation.
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m), two flat buffers per comparison, nothing shared
//
// All functions are synchronous and keep no package state; independent
// comparisons may run on separate goroutines.
package align
