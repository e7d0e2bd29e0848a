package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/strdiff/align"
	"github.com/katalvlaran/strdiff/report"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds one input line; longer pairs are far past any
// sensible max-cells cap anyway.
const maxLineSize = 16 << 20

// errTooLarge marks a pair whose DP matrix exceeds the configured cap.
var errTooLarge = errors.New("pair exceeds max-cells")

// pair is one parsed comparison request.
type pair struct {
	line int // 1-based input line, 0 for positional arguments
	s, t string
}

// outcome is the result of comparing one pair.
type outcome struct {
	pair
	res *align.Result
	err error
}

// runner wires parsed pairs through align into a report.Writer.
type runner struct {
	st     *settings
	out    *report.Writer
	logger *slog.Logger
}

func newRunner(st *settings, w io.Writer, logger *slog.Logger) (*runner, error) {
	out, err := report.New(w, st.report)
	if err != nil {
		return nil, err
	}

	return &runner{st: st, out: out, logger: logger}, nil
}

// runPair compares two positional words.
func (r *runner) runPair(s, t string) error {
	o := r.compare(pair{s: s, t: t})
	if o.err != nil {
		return o.err
	}
	if err := r.emit(o); err != nil {
		return err
	}

	return r.out.Close()
}

// runLines reads pairs from in. A terminal is served line by line; any
// other input is read as a batch and compared in parallel.
func (r *runner) runLines(ctx context.Context, in io.Reader) error {
	return r.lines(ctx, in, isTerminal(in))
}

// lines serves in line by line when interactive is set, as a batch otherwise.
func (r *runner) lines(ctx context.Context, in io.Reader, interactive bool) error {
	if interactive {
		return r.interactive(ctx, in)
	}

	return r.batch(ctx, in)
}

// newScanner returns a line scanner accepting lines up to maxLineSize.
func newScanner(in io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return sc
}

func (r *runner) interactive(ctx context.Context, in io.Reader) error {
	sc := newScanner(in)
	for n := 1; sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, ok, stop := r.parseLine(n, sc.Text())
		if stop {
			break
		}
		if !ok {
			continue
		}
		if err := r.handle(r.compare(p)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return r.out.Close()
}

func (r *runner) batch(ctx context.Context, in io.Reader) error {
	pairs, err := r.readPairs(in)
	if err != nil {
		return err
	}
	r.logger.Debug("comparing batch", "pairs", len(pairs), "workers", r.st.workers)

	results := make([]outcome, len(pairs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.st.workers)
	for i, p := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.compare(p)
			// only internal faults abort the batch
			if results[i].err != nil && !errors.Is(results[i].err, errTooLarge) {
				return results[i].err
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, o := range results {
		if err := r.handle(o); err != nil {
			return err
		}
	}

	return r.out.Close()
}

// readPairs collects pairs until a blank line or EOF.
func (r *runner) readPairs(in io.Reader) ([]pair, error) {
	var pairs []pair
	sc := newScanner(in)
	for n := 1; sc.Scan(); n++ {
		p, ok, stop := r.parseLine(n, sc.Text())
		if stop {
			break
		}
		if ok {
			pairs = append(pairs, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return pairs, nil
}

// parseLine splits a trimmed line at its first whitespace run. stop is
// set on a blank line; ok is false for lines without two fields.
func (r *runner) parseLine(n int, line string) (p pair, ok, stop bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return pair{}, false, true
	}
	s, t, found := splitPair(line)
	if !found {
		r.logger.Warn("skipping malformed line", "line", n, "text", line)

		return pair{}, false, false
	}

	return pair{line: n, s: s, t: t}, true, false
}

// splitPair returns the first field of line and the remainder.
func splitPair(line string) (s, t string, ok bool) {
	idx := strings.IndexFunc(line, unicode.IsSpace)
	if idx < 0 {
		return "", "", false
	}
	s = line[:idx]
	t = strings.TrimLeftFunc(line[idx:], unicode.IsSpace)

	return s, t, t != ""
}

// compare folds case if requested, enforces the size cap and runs align.
func (r *runner) compare(p pair) outcome {
	if r.st.ignoreCase {
		p.s, p.t = strings.ToLower(p.s), strings.ToLower(p.t)
	}
	if r.st.maxCells > 0 {
		cells := (utf8.RuneCountInString(p.s) + 1) * (utf8.RuneCountInString(p.t) + 1)
		if cells > r.st.maxCells {
			return outcome{pair: p, err: fmt.Errorf("%d cells > %d: %w", cells, r.st.maxCells, errTooLarge)}
		}
	}

	res, err := align.Compare(p.s, p.t, r.st.policy)
	if err != nil {
		return outcome{pair: p, err: fmt.Errorf("comparing %q and %q: %w", p.s, p.t, err)}
	}

	return outcome{pair: p, res: res}
}

// handle writes a successful outcome, logs a skipped one and fails otherwise.
func (r *runner) handle(o outcome) error {
	switch {
	case o.err == nil:
		return r.emit(o)
	case errors.Is(o.err, errTooLarge):
		r.logger.Warn("skipping oversized pair", "line", o.line, "error", o.err)

		return nil
	default:
		return o.err
	}
}

func (r *runner) emit(o outcome) error {
	if err := r.out.Write(o.s, o.t, r.st.policy, o.res); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	return nil
}

// isTerminal reports whether in is an interactive terminal.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
