package align_test

import (
	"testing"

	"github.com/katalvlaran/strdiff/align"
	"github.com/stretchr/testify/assert"
)

// TestMergedDiff_Runs checks how substitutions merge with surrounding gaps
// and how each true match flushes removed before added.
func TestMergedDiff_Runs(t *testing.T) {
	pair := func(a, b rune) align.Op { return align.Op{Kind: align.OpPair, S: a, T: b} }
	del := func(a rune) align.Op { return align.Op{Kind: align.OpDelete, S: a} }
	ins := func(b rune) align.Op { return align.Op{Kind: align.OpInsert, T: b} }

	cases := []struct {
		name string
		ali  align.Alignment
		want string
	}{
		{"empty", nil, ""},
		{"all matches", align.Alignment{pair('a', 'a'), pair('b', 'b')}, "ab"},
		{"trailing insert", align.Alignment{pair('a', 'a'), ins('x'), ins('y')}, "a<xy>"},
		{"leading delete", align.Alignment{del('x'), pair('a', 'a')}, "`x'a"},
		{"substitution", align.Alignment{pair('a', 'b')}, "`a'<b>"},
		{
			"mixed run merges",
			align.Alignment{pair('a', 'a'), ins('x'), pair('b', 'c'), del('d'), pair('e', 'e')},
			"a`bd'<xc>e",
		},
		{
			"two separate runs",
			align.Alignment{del('x'), pair('a', 'a'), ins('y')},
			"`x'a<y>",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, align.MergedDiff(tc.ali))
		})
	}
}

// TestMergedDiffWith_CustomMarkers renders spans with caller-chosen markers.
func TestMergedDiffWith_CustomMarkers(t *testing.T) {
	mk := align.Markers{RemoveOpen: '[', RemoveClose: ']', AddOpen: '{', AddClose: '}'}
	ali := align.Alignment{
		{Kind: align.OpPair, S: 'ž', T: 'ž'},
		{Kind: align.OpPair, S: 'a', T: 'y'},
	}

	assert.Equal(t, "ž[a]{y}", align.MergedDiffWith(ali, mk))
}
