package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strings"

	ordinal "github.com/goliatone/go-ordinal"
)

const (
	exitOK      = 0
	exitValue   = 1
	exitUsage   = 2
	programName = "ordinal"
)

type cliConfig struct {
	locale     string
	gender     string
	configPath string
	list       bool
	verbose    bool
	values     []string
}

var errInvalidValues = errors.New("one or more values could not be formatted")

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", programName, err)
		os.Exit(exitUsage)
	}

	os.Exit(run(cfg, os.Stdin, os.Stdout, newLogger(os.Stderr, cfg.verbose)))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).With("cmd", programName)
}

func parseFlags(fs *flag.FlagSet, args []string) (cliConfig, error) {
	var cfg cliConfig

	fs.StringVar(&cfg.locale, "locale", "", "BCP 47 locale, e.g. en-US or zh-TW (defaults to the config default locale or en)")
	fs.StringVar(&cfg.gender, "gender", "", "grammatical gender: male or female (es, pt, it)")
	fs.StringVar(&cfg.configPath, "config", "", "path to a YAML or JSON config file")
	fs.BoolVar(&cfg.list, "list", false, "print supported languages and exit")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	cfg.values = fs.Args()

	if cfg.gender != "" {
		if _, err := ordinal.ParseGender(cfg.gender); err != nil {
			return cliConfig{}, err
		}
	}

	return cfg, nil
}

func run(cfg cliConfig, stdin io.Reader, stdout io.Writer, logger *slog.Logger) int {
	if cfg.list {
		for _, lang := range ordinal.Languages() {
			fmt.Fprintln(stdout, lang)
		}
		return exitOK
	}

	formatter, err := buildFormatter(cfg)
	if err != nil {
		logger.Error("cannot build formatter", "error", err)
		return exitUsage
	}

	logger.Debug("formatter ready",
		"locale", formatter.Locale().String(),
		"gender", formatter.Gender().String(),
		"supported", formatter.Supports(),
	)
	if !formatter.Supports() {
		logger.Warn("no ordinal rule for language, values are printed unchanged", "locale", formatter.Locale().String())
	}

	if err := formatValues(formatter, valueSource(cfg.values, stdin), stdout, logger); err != nil {
		return exitValue
	}
	return exitOK
}

func buildFormatter(cfg cliConfig) (*ordinal.Formatter, error) {
	var opts []ordinal.ConfigOption
	if cfg.gender != "" {
		gender, err := ordinal.ParseGender(cfg.gender)
		if err != nil {
			return nil, err
		}
		opts = append(opts, ordinal.WithDefaultGender(gender))
	}

	var (
		conf *ordinal.Config
		err  error
	)
	if cfg.configPath != "" {
		conf, err = ordinal.LoadConfig(cfg.configPath, opts...)
	} else {
		conf, err = ordinal.NewConfig(opts...)
	}
	if err != nil {
		return nil, err
	}

	formatter, err := conf.Formatter(cfg.locale)
	if err != nil {
		return nil, err
	}

	// An explicit -gender beats per locale genders from the config file.
	if cfg.gender != "" {
		formatter = ordinal.ForLocale(formatter.Locale(), ordinal.WithGender(conf.Gender))
	}
	return formatter, nil
}

// valueSource yields the argument values, or else one value per non blank
// stdin line. Lines have no length limit since values may be integers of any
// size; a read failure is yielded as the final element.
func valueSource(values []string, stdin io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if len(values) > 0 {
			for _, value := range values {
				if !yield(value, nil) {
					return
				}
			}
			return
		}

		reader := bufio.NewReader(stdin)
		for {
			line, err := reader.ReadString('\n')
			if value := strings.TrimSpace(line); value != "" {
				if !yield(value, nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", fmt.Errorf("read values: %w", err))
				return
			}
		}
	}
}

func formatValues(formatter *ordinal.Formatter, values iter.Seq2[string, error], stdout io.Writer, logger *slog.Logger) error {
	failed := 0
	for value, err := range values {
		if err != nil {
			logger.Error("cannot read values", "error", err)
			failed++
			continue
		}

		out, err := formatter.Format(value)
		if err != nil {
			logger.Error("cannot format value", "value", value, "error", err)
			failed++
			continue
		}
		fmt.Fprintln(stdout, out)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d failed", errInvalidValues, failed)
	}
	return nil
}
