// Command keychain reads door codes and prints their total complexity for
// each requested chain depth.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/keychain/codes"
	"github.com/katalvlaran/keychain/complexity"
	"github.com/katalvlaran/keychain/internal/cli"
	"github.com/katalvlaran/keychain/keypad"
)

// main is the entrypoint for the keychain application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(context.Background(), os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, in io.Reader, out, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, out, os.LookupEnv)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	logger := newLogger(errW, cfg)
	logger.LogAttrs(ctx, slog.LevelDebug, "configuration resolved",
		slog.Any("depths", cfg.Depths), slog.Int("workers", cfg.Workers),
		slog.String("env_file", cfg.EnvFile), slog.String("layouts", cfg.LayoutsPath))

	if cfg.InputPath != "" {
		f, err := os.Open(cfg.InputPath)
		if err != nil {
			return fmt.Errorf("open codes: %w", err)
		}
		defer f.Close()
		in = f
	}
	cs, err := codes.Read(in)
	if err != nil {
		return err
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "codes loaded",
		slog.Int("count", len(cs)), slog.String("source", sourceName(cfg.InputPath)))

	opts := []complexity.Option{
		complexity.WithWorkers(cfg.Workers),
		complexity.WithLogger(logger),
	}
	if cfg.LayoutsPath != "" {
		numeric, directional, err := loadLayouts(cfg.LayoutsPath)
		if err != nil {
			return err
		}
		logger.LogAttrs(ctx, slog.LevelInfo, "custom layouts loaded", slog.String("path", cfg.LayoutsPath))
		opts = append(opts, complexity.WithLayouts(numeric, directional))
	}
	agg, err := complexity.New(opts...)
	if err != nil {
		return err
	}

	for _, depth := range cfg.Depths {
		total, err := agg.Complexity(cs, depth)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "depth %d: %d\n", depth, total)
	}
	return nil
}

// newLogger builds the run logger from the validated config.
func newLogger(w io.Writer, cfg *cli.Config) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

// loadLayouts reads a YAML stream and picks the documents named
// "numeric" and "directional".
func loadLayouts(path string) (numeric, directional *keypad.Layout, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open layouts: %w", err)
	}
	defer f.Close()

	ls, err := keypad.LoadYAML(f)
	if err != nil {
		return nil, nil, fmt.Errorf("layouts %s: %w", path, err)
	}
	for _, l := range ls {
		var slot **keypad.Layout
		switch l.Name() {
		case "numeric":
			slot = &numeric
		case "directional":
			slot = &directional
		default:
			continue
		}
		if *slot != nil {
			return nil, nil, fmt.Errorf("layouts %s: %w: duplicate %s document",
				path, keypad.ErrConfiguration, l.Name())
		}
		*slot = l
	}
	if numeric == nil || directional == nil {
		return nil, nil, fmt.Errorf("layouts %s: %w: need documents named numeric and directional",
			path, keypad.ErrConfiguration)
	}
	return numeric, directional, nil
}

func sourceName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
