// Command strdiff aligns pairs of words and prints an annotated diff.
//
// Usage:
//
//	strdiff [flags] WORD1 WORD2
//	strdiff [flags] < pairs.txt      # one "WORD1 WORD2" per line, blank line ends
//
// See `strdiff --help` for flags.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("fatal error", "error", err)
		stop()
		os.Exit(1)
	}
}
