// Command aoc2018 runs one Advent of Code 2018 puzzle day against an input
// file and prints both answers, one per line.
//
// Usage:
//
//	aoc2018 -day 4 [-input inputs/4.txt] [-threshold 10000]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/katalvlaran/aoc2018/input"
	"github.com/katalvlaran/aoc2018/internal/config"
	"github.com/katalvlaran/aoc2018/internal/logging"
)

type options struct {
	day       int
	path      string
	threshold int
}

func main() {
	cfg := config.Load()
	logging.Init(cfg.LogFormat == "json", logging.ParseLevel(cfg.LogLevel))

	var opts options
	flag.IntVar(&opts.day, "day", 0, "puzzle day to run (1-6)")
	flag.StringVar(&opts.path, "input", "", "input file (default $AOC_INPUT_DIR/<day>.txt)")
	flag.IntVar(&opts.threshold, "threshold", cfg.SafeThreshold, "day 6 safe-region distance threshold")
	flag.Parse()

	if opts.path == "" {
		opts.path = filepath.Join(cfg.InputDir, strconv.Itoa(opts.day)+".txt")
	}

	if err := run(os.Stdout, opts); err != nil {
		slog.Error("run failed", "day", opts.day, "error", err)
		os.Exit(1)
	}
}

func run(w io.Writer, opts options) error {
	solve, ok := solvers[opts.day]
	if !ok {
		return fmt.Errorf("aoc2018: no solver for day %d", opts.day)
	}

	lines, err := input.ReadLines(opts.path)
	if err != nil {
		return err
	}
	slog.Debug("input loaded", "day", opts.day, "path", opts.path, "records", len(lines))

	start := time.Now()
	ans, err := solve(lines, params{threshold: opts.threshold})
	if err != nil {
		return fmt.Errorf("day %d: %w", opts.day, err)
	}
	attrs := append([]slog.Attr{
		slog.Int("day", opts.day),
		slog.Duration("elapsed", time.Since(start)),
	}, ans.Details...)
	slog.LogAttrs(context.Background(), slog.LevelInfo, "solved", attrs...)

	_, err = fmt.Fprintf(w, "%d\n%s\n", ans.Part1, ans.Part2)
	return err
}
