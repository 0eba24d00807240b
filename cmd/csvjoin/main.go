package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/leengari/csvjoin/internal/config"
	derrors "github.com/leengari/csvjoin/internal/domain/errors"
	"github.com/leengari/csvjoin/internal/engine"
	"github.com/leengari/csvjoin/internal/logging"
	"github.com/leengari/csvjoin/internal/render"
)

// Exit codes let scripts tell a no-match run apart from a broken one
const (
	exitOK      = 0
	exitError   = 1
	exitUsage   = 2
	exitNoMatch = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("csvjoin", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: csvjoin [flags] [left.csv right.csv]\n\n")
		fmt.Fprintf(fs.Output(), "Joins two delimited files on one or more equality columns.\n\n")
		fs.PrintDefaults()
	}

	cfg, err := config.Parse(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(os.Stderr, "csvjoin:", err)
		return exitUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "csvjoin:", err)
		fs.Usage()
		return exitUsage
	}

	logger, closeFn := logging.SetupLogger(cfg.LoggingOptions())
	defer closeFn()
	slog.SetDefault(logger)

	eng := engine.New(cfg.Output, cfg.StorageOptions(), logger)
	eng.AddObserver(engine.NewLoggingObserver(logger))

	result, err := eng.Run(cfg.Left, cfg.Right, cfg.JoinSpec(), cfg.JoinType())
	if err != nil {
		switch {
		case errors.Is(err, derrors.ErrNoMatch):
			slog.Warn("no rows matched; nothing written", "on", cfg.JoinSpec().String())
			return exitNoMatch
		case errors.Is(err, derrors.ErrMissingColumn), errors.Is(err, derrors.ErrEmptyJoinSpec):
			slog.Error("invalid join configuration", "error", err)
			return exitUsage
		default:
			slog.Error("join failed", "error", err)
			return exitError
		}
	}

	if cfg.Preview {
		render.PrintTable(os.Stdout, result)
	}

	slog.Info("result written", "path", eng.OutputPath(), "rows", len(result.Rows))
	return exitOK
}
