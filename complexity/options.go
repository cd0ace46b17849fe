package complexity

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/keychain/keypad"
)

// Chain depths of the two standard puzzle variants.
const (
	// ShortChain is two robots on directional keypads.
	ShortChain = 2
	// LongChain is twenty-five robots on directional keypads.
	LongChain = 25
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("complexity: invalid option supplied")

// Option configures an Aggregator.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds Aggregator settings.
type Options struct {
	// Numeric is the keypad the codes are typed on.
	Numeric *keypad.Layout

	// Directional is the keypad every robot in the chain is driven from.
	Directional *keypad.Layout

	// Workers bounds how many codes are priced at once. 1 means sequential.
	Workers int

	// Logger receives per-code debug records and a run summary.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns the standard keypads, one worker and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Numeric:     keypad.Numeric(),
		Directional: keypad.Directional(),
		Workers:     1,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLayouts replaces both keypads. Both must be non-nil.
func WithLayouts(numeric, directional *keypad.Layout) Option {
	return func(o *Options) {
		if numeric == nil || directional == nil {
			o.err = fmt.Errorf("%w: layouts must be non-nil", ErrOptionViolation)
			return
		}
		o.Numeric, o.Directional = numeric, directional
	}
}

// WithWorkers prices up to n codes concurrently.
//
//	n == 1: sequential (default)
//	n > 1:  concurrent, caches shared
//	n < 1:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
