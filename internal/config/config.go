package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/leengari/csvjoin/internal/domain/data"
	"github.com/leengari/csvjoin/internal/logging"
	"github.com/leengari/csvjoin/internal/query/operations/join"
	"github.com/leengari/csvjoin/internal/storage"
)

// Config describes one csvjoin invocation.
// It can be read from YAML and then overridden by command-line flags.
type Config struct {
	Left      string   `yaml:"left"`
	Right     string   `yaml:"right"`
	Type      string   `yaml:"type"`
	On        []string `yaml:"columns"`
	Output    string   `yaml:"output"`
	Delimiter string   `yaml:"delimiter"`
	Format    string   `yaml:"format"`
	Preview   bool     `yaml:"preview"`
	LogLevel  string   `yaml:"log_level"`
	SeqURL    string   `yaml:"seq_url"`
}

// Default returns the configuration used when nothing is specified
func Default() Config {
	return Config{
		Type:      "inner",
		Output:    "result.csv",
		Delimiter: ",",
		Format:    string(storage.FormatCSV),
		LogLevel:  "info",
	}
}

// Load reads a YAML file on top of Default()
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// columnList is a flag.Value collecting repeated and comma separated column names
type columnList struct {
	cols *[]string
	set  bool
}

func (c *columnList) String() string {
	if c.cols == nil {
		return ""
	}
	return strings.Join(*c.cols, ",")
}

func (c *columnList) Set(v string) error {
	// First use on the command line replaces whatever the file said
	if !c.set {
		*c.cols = nil
		c.set = true
	}
	for _, col := range strings.Split(v, ",") {
		if col = strings.TrimSpace(col); col != "" {
			*c.cols = append(*c.cols, col)
		}
	}
	return nil
}

// Parse builds a Config from args. When -config names a file, it is loaded
// first and explicitly passed flags override its values.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	// Find -config before the real parse so the file can provide defaults
	cfg := Default()
	if path := findConfigFlag(args); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fs.String("config", "", "YAML file with join settings")
	fs.StringVar(&cfg.Left, "left", cfg.Left, "left input file")
	fs.StringVar(&cfg.Right, "right", cfg.Right, "right input file")
	fs.StringVar(&cfg.Type, "type", cfg.Type, "join type: inner, left or right")
	fs.Var(&columnList{cols: &cfg.On}, "on", "join column (repeatable or comma separated)")
	fs.StringVar(&cfg.Output, "out", cfg.Output, "output file")
	fs.StringVar(&cfg.Delimiter, "delim", cfg.Delimiter, `field delimiter (single character or "\t")`)
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: csv or json")
	fs.BoolVar(&cfg.Preview, "preview", cfg.Preview, "print the result as a table")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.SeqURL, "seq", cfg.SeqURL, "Seq endpoint for structured logs")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	// Positional fallback: csvjoin [flags] left.csv right.csv
	rest := fs.Args()
	if cfg.Left == "" && len(rest) > 0 {
		cfg.Left, rest = rest[0], rest[1:]
	}
	if cfg.Right == "" && len(rest) > 0 {
		cfg.Right = rest[0]
	}

	return cfg, nil
}

func findConfigFlag(args []string) string {
	for i, a := range args {
		switch {
		case a == "--":
			return ""
		case a == "-config" || a == "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}

// Validate checks the configuration is usable
func (c Config) Validate() error {
	if c.Left == "" || c.Right == "" {
		return fmt.Errorf("both left and right input files are required")
	}
	if len(c.On) == 0 {
		return fmt.Errorf("at least one join column is required (-on)")
	}
	if _, err := join.ParseType(c.Type); err != nil {
		return err
	}
	if _, err := storage.ParseDelimiter(c.Delimiter); err != nil {
		return err
	}
	if _, err := storage.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// JoinType returns the parsed join type
func (c Config) JoinType() join.Type {
	t, _ := join.ParseType(c.Type)
	return t
}

// JoinSpec returns the join columns as a spec
func (c Config) JoinSpec() data.JoinSpec {
	return data.NewJoinSpec(c.On...)
}

// StorageOptions returns the read/write options
func (c Config) StorageOptions() storage.Options {
	delim, _ := storage.ParseDelimiter(c.Delimiter)
	format, _ := storage.ParseFormat(c.Format)
	return storage.Options{Delimiter: delim, Format: format}
}

// LoggingOptions returns the logger settings
func (c Config) LoggingOptions() logging.Options {
	level, _ := logging.ParseLevel(c.LogLevel)
	return logging.Options{Level: level, SeqURL: c.SeqURL}
}
