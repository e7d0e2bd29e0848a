package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/strdiff/align"
	"github.com/katalvlaran/strdiff/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func compare(t *testing.T, s, u string, p align.Policy) *align.Result {
	t.Helper()
	res, err := align.Compare(s, u, p)
	require.NoError(t, err)

	return res
}

// TestParseFormat covers names, aliases and rejects.
func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{
		"": report.Text, "TEXT": report.Text, "json": report.JSON, "yml": report.YAML, "YAML": report.YAML,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := report.ParseFormat("xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

// TestWriter_TextPlain writes only the diff line.
func TestWriter_TextPlain(t *testing.T) {
	var buf bytes.Buffer
	w, err := report.New(&buf, report.DefaultOptions())
	require.NoError(t, err)

	require.NoError(t, w.Write("walk", "walked", align.Levenshtein{}, compare(t, "walk", "walked", align.Levenshtein{})))
	require.NoError(t, w.Close())
	assert.Equal(t, "Diff: walk<ed>\n", buf.String())
}

// TestWriter_TextDetails writes matrices, similarity and alignment first.
func TestWriter_TextDetails(t *testing.T) {
	var buf bytes.Buffer
	opts := report.DefaultOptions()
	opts.Details = true
	w, err := report.New(&buf, opts)
	require.NoError(t, err)

	require.NoError(t, w.Write("ab", "ba", align.Levenshtein{}, compare(t, "ab", "ba", align.Levenshtein{})))
	want := strings.Join([]string{
		"[[0 0 0]",
		" [0 0 1]",
		" [0 1 1]]",
		"[[... .L. .L.]",
		" [U.. ULD ..D]",
		" [U.. ..D UL.]]",
		"Similarity: 1",
		"Alignment: [+b a=a -b]",
		"Diff: <b>a`b'",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

// TestWriter_TextNegativeScores pads columns to the widest cell.
func TestWriter_TextNegativeScores(t *testing.T) {
	var buf bytes.Buffer
	opts := report.DefaultOptions()
	opts.Details = true
	w, err := report.New(&buf, opts)
	require.NoError(t, err)

	require.NoError(t, w.Write("ab", "ba", align.WordForm{}, compare(t, "ab", "ba", align.WordForm{})))
	assert.True(t, strings.HasPrefix(buf.String(), "[[ 0 -2 -2]\n [-2 -1  0]\n [-2  0 -1]]\n"), buf.String())
}

// TestWriter_CustomMarkers re-renders the diff with the configured markers.
func TestWriter_CustomMarkers(t *testing.T) {
	var buf bytes.Buffer
	opts := report.DefaultOptions()
	opts.Markers = align.Markers{RemoveOpen: '[', RemoveClose: ']', AddOpen: '{', AddClose: '}'}
	w, err := report.New(&buf, opts)
	require.NoError(t, err)

	require.NoError(t, w.Write("žena", "ženy", align.WordForm{}, compare(t, "žena", "ženy", align.WordForm{})))
	assert.Equal(t, "Diff: žen[a]{y}\n", buf.String())
}

// TestWriter_JSON emits one decodable object per line.
func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w, err := report.New(&buf, report.Options{Format: report.JSON, Details: true})
	require.NoError(t, err)

	require.NoError(t, w.Write("kitten", "sitting", align.Levenshtein{}, compare(t, "kitten", "sitting", align.Levenshtein{})))
	require.NoError(t, w.Write("a", "a", align.WordForm{}, compare(t, "a", "a", align.WordForm{})))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec report.Record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "levenshtein", rec.Policy)
	assert.Equal(t, "`k'<s>itt`e'<i>n<g>", rec.Diff)
	require.NotNil(t, rec.Similarity)
	assert.Equal(t, 4.0, *rec.Similarity)
	require.NotNil(t, rec.Distance)
	assert.Equal(t, 3, *rec.Distance)
	assert.Len(t, rec.Scores, 7)
	assert.Len(t, rec.Dirs[0], 8)

	rec = report.Record{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "wordform", rec.Policy)
	assert.Nil(t, rec.Distance, "distance is reported for levenshtein only")
}

// TestWriter_PointerPolicy reports the distance for a *Levenshtein policy too.
func TestWriter_PointerPolicy(t *testing.T) {
	var buf bytes.Buffer
	w, err := report.New(&buf, report.Options{Format: report.JSON, Details: true})
	require.NoError(t, err)

	p := &align.Levenshtein{}
	require.NoError(t, w.Write("kitten", "sitting", p, compare(t, "kitten", "sitting", p)))

	var rec report.Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "levenshtein", rec.Policy)
	require.NotNil(t, rec.Distance)
	assert.Equal(t, 3, *rec.Distance)
}

// TestWriter_YAML emits a document stream that decodes back.
func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w, err := report.New(&buf, report.Options{Format: report.YAML})
	require.NoError(t, err)

	require.NoError(t, w.Write("walk", "walked", align.Levenshtein{}, compare(t, "walk", "walked", align.Levenshtein{})))
	require.NoError(t, w.Write("hrad", "hrady", align.WordForm{}, compare(t, "hrad", "hrady", align.WordForm{})))
	require.NoError(t, w.Close())

	dec := yaml.NewDecoder(&buf)
	var got []report.Record
	for {
		var rec report.Record
		if err := dec.Decode(&rec); err != nil {
			break
		}
		got = append(got, rec)
	}
	require.Len(t, got, 2)
	assert.Equal(t, "walk<ed>", got[0].Diff)
	assert.Equal(t, "hrad<y>", got[1].Diff)
	assert.Nil(t, got[0].Similarity, "plain mode omits details")
}

// TestNew_Errors rejects a nil sink and unknown formats.
func TestNew_Errors(t *testing.T) {
	_, err := report.New(nil, report.DefaultOptions())
	assert.Error(t, err)

	_, err = report.New(&bytes.Buffer{}, report.Options{Format: "csv"})
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}
