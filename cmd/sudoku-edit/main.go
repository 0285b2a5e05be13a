package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"svw.info/sudoku-editor/internal/adapters/cli"
	"svw.info/sudoku-editor/internal/editor"
	"svw.info/sudoku-editor/internal/infrastructure/seedfile"
	"svw.info/sudoku-editor/internal/usecase"
	"svw.info/sudoku-editor/internal/validator"
)

func main() {
	echo := flag.Bool("echo", false, "echo input lines (for scripted transcripts)")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	lvl := slog.LevelInfo
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-echo] [-log-level level] puzzle-file\n", os.Args[0])
		os.Exit(2)
	}
	path := flag.Arg(0)

	// Seed the board from the configuration file. Any bad line is fatal
	// before the interactive phase starts.
	ed := editor.New()
	if err := seedfile.LoadFile(path, ed); err != nil {
		var le *seedfile.LoadError
		if errors.As(err, &le) {
			logger.Error("configuration rejected",
				"file", path,
				"line", le.Line,
				"reason", le.Reason,
				"result", le.Result.String(),
			)
		} else {
			logger.Error("cannot read configuration", "file", path, "err", err)
		}
		os.Exit(1)
	}
	ed.Seal()

	// Wire editor + validator → use cases → CLI session.
	uc := usecase.NewService(ed, validator.New())
	ctx := context.Background()

	if ok, conf, err := uc.Check(ctx); err != nil || !ok {
		logger.Error("board inconsistent after seeding", "err", err, "conflicts", conf)
		os.Exit(1)
	}
	logger.Debug("seeding complete", "file", path)

	grid, err := uc.Render()
	if err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
	fmt.Print(grid)

	sess := cli.New(uc, os.Stdin, os.Stdout, *echo)
	if err := sess.Run(ctx); err != nil {
		logger.Error("session error", "err", err)
		os.Exit(1)
	}
}
