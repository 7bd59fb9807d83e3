// Package draw computes Secret Santa assignments.
//
// An assignment is a derangement of the roster: a permutation in which nobody is
// mapped to themselves. It is found by rejection sampling, re-shuffling the whole
// roster until no fixed point remains or the attempt budget runs out.
package draw

import (
	"errors"
	"math/rand/v2"
)

// MaxAttempts bounds the shuffle loop. For n >= 2 the chance of a single shuffle
// being a derangement is about 1/e, so the bound is never reached in practice.
const MaxAttempts = 1000

var (
	// ErrInsufficientParticipants is returned for rosters with fewer than two names.
	ErrInsufficientParticipants = errors.New("at least 2 participants are required for a draw")
	// ErrDrawFailed is returned when no derangement was found within the attempt budget.
	ErrDrawFailed = errors.New("could not find a valid draw, try again")
)

// Shuffler permutes names in place.
type Shuffler func(names []string)

// Engine runs draws. The zero value is not usable; use New.
type Engine struct {
	maxAttempts int
	shuffle     Shuffler
	observe     func(attempts int, ok bool)
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxAttempts overrides MaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithShuffler replaces the uniform shuffle. Used by tests.
func WithShuffler(s Shuffler) Option {
	return func(e *Engine) {
		if s != nil {
			e.shuffle = s
		}
	}
}

// WithObserver registers a callback invoked after every draw with the number of
// shuffles performed and whether a derangement was found.
func WithObserver(fn func(attempts int, ok bool)) Option {
	return func(e *Engine) {
		e.observe = fn
	}
}

// New creates an Engine using a uniform random shuffle.
func New(opts ...Option) *Engine {
	e := &Engine{
		maxAttempts: MaxAttempts,
		shuffle:     uniformShuffle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Draw maps names[i] to a recipient such that the mapping is a bijection over names
// with no fixed points. names must be unique; it is not modified.
func (e *Engine) Draw(names []string) (map[string]string, error) {
	if len(names) < 2 {
		return nil, ErrInsufficientParticipants
	}

	recipients := make([]string, len(names))
	copy(recipients, names)

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		e.shuffle(recipients)
		if isDerangement(names, recipients) {
			e.report(attempt, true)
			assignments := make(map[string]string, len(names))
			for i, giver := range names {
				assignments[giver] = recipients[i]
			}
			return assignments, nil
		}
	}

	e.report(e.maxAttempts, false)
	return nil, ErrDrawFailed
}

func (e *Engine) report(attempts int, ok bool) {
	if e.observe != nil {
		e.observe(attempts, ok)
	}
}

func isDerangement(names, recipients []string) bool {
	for i := range names {
		if names[i] == recipients[i] {
			return false
		}
	}
	return true
}

func uniformShuffle(names []string) {
	rand.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
}
