package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/leengari/csvjoin/internal/logging"
	"github.com/leengari/csvjoin/internal/storage"
	"github.com/leengari/csvjoin/internal/storage/writer"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("csvsplit", flag.ContinueOnError)
	in := fs.String("in", "", "input file")
	by := fs.String("by", "", "comma separated columns to split on")
	outDir := fs.String("out", ".", "directory for the split files")
	delim := fs.String("delim", ",", `field delimiter (single character or "\t")`)
	logLevel := fs.String("log-level", "info", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if *in == "" && fs.NArg() > 0 {
		*in = fs.Arg(0)
	}
	if *in == "" || *by == "" {
		fmt.Fprintln(os.Stderr, "csvsplit: -in and -by are required")
		fs.Usage()
		return exitUsage
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "csvsplit:", err)
		return exitUsage
	}
	logger, closeFn := logging.SetupLogger(logging.Options{Level: level})
	defer closeFn()
	slog.SetDefault(logger)

	comma, err := storage.ParseDelimiter(*delim)
	if err != nil {
		slog.Error("invalid delimiter", "error", err)
		return exitUsage
	}

	var cols []string
	for _, c := range strings.Split(*by, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}

	opts := storage.Options{Delimiter: comma, Format: storage.FormatCSV}
	paths, err := writer.SplitFile(*in, cols, *outDir, opts, logger)
	if err != nil {
		slog.Error("split failed", "error", err)
		return exitError
	}

	for _, p := range paths {
		fmt.Println(p)
	}
	return exitOK
}
