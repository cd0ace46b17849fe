package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/keychain/complexity"
)

// Environment variables consulted for flags not given on the command line.
const (
	EnvDepth     = "KEYCHAIN_DEPTH"
	EnvWorkers   = "KEYCHAIN_WORKERS"
	EnvLayouts   = "KEYCHAIN_LAYOUTS"
	EnvLogLevel  = "KEYCHAIN_LOG_LEVEL"
	EnvLogFormat = "KEYCHAIN_LOG_FORMAT"
)

// defaultEnvFile is read if present; a missing default file is not an error.
const defaultEnvFile = ".env"

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the validated command-line configuration.
type Config struct {
	InputPath   string // empty means stdin
	LayoutsPath string // empty means the standard keypads
	Depths      []int
	Workers     int
	LogFormat   string
	LogLevel    slog.Level
	EnvFile     string // dotenv file that was read; empty if none
}

// LookupFunc reports the value of an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Settings come from flags first, then lookup, then the env file.
func Parse(args []string, output io.Writer, lookup LookupFunc) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("keychain", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
keychain - price door codes typed through a chain of robot-operated keypads.

Usage:
  keychain [options] [CODES_FILE]

Arguments:
  CODES_FILE
    File with one code (digits followed by A) per line. Defaults to stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the codes file.")
	iFlag := flagSet.String("i", "", "Path to the codes file (shorthand).")
	depthFlag := flagSet.Int("depth", -1, "Directional keypads between the human and the door robot. -1 prints both standard chains (2 and 25).")
	layoutsFlag := flagSet.String("layouts", "", "YAML file with 'numeric' and 'directional' layout documents.")
	workersFlag := flagSet.Int("workers", 1, "Number of codes priced concurrently.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	envFileFlag := flagSet.String("env-file", defaultEnvFile, "Dotenv file with KEYCHAIN_* settings.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	env, envFile, err := readEnv(*envFileFlag, set["env-file"], lookup)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *inputFlag
	if path == "" {
		path = *iFlag
	}
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	depth := *depthFlag
	if v, ok := env(EnvDepth); ok && !set["depth"] {
		if depth, err = strconv.Atoi(v); err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s: %q", EnvDepth, v)}
		}
	}
	workers := *workersFlag
	if v, ok := env(EnvWorkers); ok && !set["workers"] {
		if workers, err = strconv.Atoi(v); err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s: %q", EnvWorkers, v)}
		}
	}
	layouts := *layoutsFlag
	if v, ok := env(EnvLayouts); ok && !set["layouts"] {
		layouts = v
	}
	logFormat := strings.ToLower(*logFormatFlag)
	if v, ok := env(EnvLogFormat); ok && !set["log-format"] {
		logFormat = strings.ToLower(v)
	}
	logLevel := strings.ToLower(*logLevelFlag)
	if v, ok := env(EnvLogLevel); ok && !set["log-level"] {
		logLevel = strings.ToLower(v)
	}

	var depths []int
	switch {
	case depth == -1:
		depths = []int{complexity.ShortChain, complexity.LongChain}
	case depth < 0:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid depth: %d must be >= 0", depth)}
	default:
		depths = []int{depth}
	}
	if workers < 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid workers: %d must be >= 1", workers)}
	}
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := &Config{
		InputPath:   path,
		LayoutsPath: layouts,
		Depths:      depths,
		Workers:     workers,
		LogFormat:   logFormat,
		LogLevel:    level,
		EnvFile:     envFile,
	}
	return cfg, false, nil
}

// readEnv returns a lookup that consults lookup first and the dotenv file
// second, plus the path of the file it read. A missing file is fine unless
// it was named explicitly.
func readEnv(path string, explicit bool, lookup LookupFunc) (LookupFunc, string, error) {
	file, err := godotenv.Read(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("env-file %q: %v", path, err)
		}
		file, path = nil, ""
	}
	return func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		v, ok := file[key]
		return v, ok
	}, path, nil
}
