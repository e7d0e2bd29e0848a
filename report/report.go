// Package report renders comparison results to an explicit output sink.
//
// Three formats are supported:
//   - text — "Diff: walk<ed>" per pair; details add the score matrix, the
//     direction matrix, the similarity and the raw alignment
//   - json — one JSON object per line
//   - yaml — one YAML document per pair
//
// A Writer never touches process-wide streams; callers hand it the sink.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/strdiff/align"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	// Text is the human-readable format of the original tool.
	Text Format = "text"

	// JSON writes newline-delimited JSON objects.
	JSON Format = "json"

	// YAML writes a stream of YAML documents.
	YAML Format = "yaml"
)

// ErrUnknownFormat indicates that ParseFormat was given an unsupported name.
var ErrUnknownFormat = errors.New("report: unknown output format")

// ParseFormat parses "text", "json", "yaml" or "yml" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Options configures a Writer.
type Options struct {
	Format  Format
	Details bool          // include matrices, similarity and alignment
	Markers align.Markers // span delimiters for the diff
}

// DefaultOptions returns plain text output with the default markers.
func DefaultOptions() Options {
	return Options{
		Format:  Text,
		Markers: align.DefaultMarkers,
	}
}

// Record is the serializable view of one comparison.
type Record struct {
	S          string      `json:"s" yaml:"s"`
	T          string      `json:"t" yaml:"t"`
	Policy     string      `json:"policy" yaml:"policy"`
	Diff       string      `json:"diff" yaml:"diff"`
	Similarity *float64    `json:"similarity,omitempty" yaml:"similarity,omitempty"`
	Distance   *int        `json:"distance,omitempty" yaml:"distance,omitempty"`
	Alignment  []string    `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Scores     [][]float64 `json:"scores,omitempty" yaml:"scores,omitempty,flow"`
	Dirs       [][]string  `json:"dirs,omitempty" yaml:"dirs,omitempty,flow"`
}

// Writer renders records to an io.Writer. It is not safe for concurrent use;
// callers serialize writes (the driver writes results in input order).
type Writer struct {
	out  io.Writer
	opts Options
	yml  *yaml.Encoder
}

// New returns a Writer bound to out.
func New(out io.Writer, opts Options) (*Writer, error) {
	if out == nil {
		return nil, errors.New("report: nil output sink")
	}
	f, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}
	opts.Format = f
	if opts.Markers == (align.Markers{}) {
		opts.Markers = align.DefaultMarkers
	}

	w := &Writer{out: out, opts: opts}
	if opts.Format == YAML {
		w.yml = yaml.NewEncoder(out)
		w.yml.SetIndent(2)
	}

	return w, nil
}

// NewRecord builds the Record of s compared with t under p.
// The diff is re-rendered with the Writer's markers.
func (w *Writer) NewRecord(s, t string, p align.Policy, res *align.Result) Record {
	rec := Record{
		S:      s,
		T:      t,
		Policy: align.PolicyName(p),
		Diff:   align.MergedDiffWith(res.Alignment, w.opts.Markers),
	}
	if !w.opts.Details {
		return rec
	}

	sim := res.Similarity
	rec.Similarity = &sim
	if align.PolicyName(p) == "levenshtein" {
		d := align.EditDistance(s, t)
		rec.Distance = &d
	}
	rec.Alignment = res.Alignment.Strings()
	rec.Scores, rec.Dirs = grids(res.Matrix)

	return rec
}

// Write renders one comparison.
func (w *Writer) Write(s, t string, p align.Policy, res *align.Result) error {
	return w.WriteRecord(w.NewRecord(s, t, p, res))
}

// WriteRecord renders a prepared record in the configured format.
func (w *Writer) WriteRecord(rec Record) error {
	switch w.opts.Format {
	case JSON:
		return json.NewEncoder(w.out).Encode(rec)
	case YAML:
		return w.yml.Encode(rec)
	default:
		return w.writeText(rec)
	}
}

// Close flushes a pending YAML stream.
func (w *Writer) Close() error {
	if w.yml != nil {
		return w.yml.Close()
	}

	return nil
}

func (w *Writer) writeText(rec Record) error {
	var sb strings.Builder
	if w.opts.Details {
		sb.WriteString(formatScores(rec.Scores))
		sb.WriteString(formatDirs(rec.Dirs))
		sb.WriteString("Similarity: " + strconv.FormatFloat(*rec.Similarity, 'g', -1, 64) + "\n")
		sb.WriteString("Alignment: [" + strings.Join(rec.Alignment, " ") + "]\n")
	}
	sb.WriteString("Diff: " + rec.Diff + "\n")

	_, err := io.WriteString(w.out, sb.String())

	return err
}

// grids copies H and D into nested slices.
func grids(m *align.Matrix) ([][]float64, [][]string) {
	if m == nil {
		return nil, nil
	}
	scores := make([][]float64, m.Rows())
	dirs := make([][]string, m.Rows())
	for i := range scores {
		scores[i] = make([]float64, m.Cols())
		dirs[i] = make([]string, m.Cols())
		for j := range scores[i] {
			// indices are in range by construction
			scores[i][j], _ = m.Score(i, j)
			d, _ := m.Dirs(i, j)
			dirs[i][j] = d.String()
		}
	}

	return scores, dirs
}

// formatScores prints H as right-aligned columns inside brackets.
func formatScores(rows [][]float64) string {
	cells := make([][]string, len(rows))
	width := 1
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = strconv.FormatFloat(v, 'g', -1, 64)
			width = max(width, len(cells[i][j]))
		}
	}

	return bracketed(cells, width)
}

// formatDirs prints D with one three-letter mask per cell.
func formatDirs(rows [][]string) string {
	return bracketed(rows, 3)
}

func bracketed(cells [][]string, width int) string {
	var sb strings.Builder
	for i, row := range cells {
		if i == 0 {
			sb.WriteString("[[")
		} else {
			sb.WriteString(" [")
		}
		for j, c := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strings.Repeat(" ", width-len(c)))
			sb.WriteString(c)
		}
		sb.WriteByte(']')
		if i == len(cells)-1 {
			sb.WriteByte(']')
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
