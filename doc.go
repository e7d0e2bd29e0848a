// Package strdiff aligns two words and renders a compact annotated diff,
// under a pluggable and possibly non-symmetric scoring policy.
//
// 🚀 What is strdiff?
//
//	A small, dependency-free alignment core plus a command-line driver:
//		• align/   — DP matrix with tie-preserving direction sets,
//		             deterministic backtrace, run-merging diff renderer,
//		             Levenshtein and WordForm policies, EditDistance
//		• report/  — text / JSON / YAML renderers writing to any io.Writer
//		• cmd/strdiff — CLI: two words, or "WORD1 WORD2" lines from stdin
//
// ✨ Why?
//
//   - Deterministic – the same inputs always yield the same alignment
//   - Pure Go – the core imports only the standard library
//   - Concurrency-friendly – no package state; compare pairs in parallel
//
// Quick example:
//
//	walk  vs. walked  →  walk<ed>
//	kitten vs. sitting →  `k'<s>itt`e'<i>n<g>
//
//	go get github.com/katalvlaran/strdiff/align
package strdiff
