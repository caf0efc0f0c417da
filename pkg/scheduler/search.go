package scheduler

import (
	"context"
	"math/rand"
)

// Result holds the best-scoring candidate observed across all epochs and its
// score. Assignment is nil when no candidate was ever retained.
type Result struct {
	Assignment Candidate
	Score      int
}

// Search drives repeated candidate generation and scoring, retaining the
// best-scoring candidate seen.
type Search interface {
	// Run executes Options.Epochs generate-and-score iterations over the
	// read-only catalogs. Cancelling ctx aborts between epochs; the best
	// retained so far is returned along with the context error.
	Run(ctx context.Context, sessions []Session, preferences []Preference) (Result, error)
}

// NewSearch builds a search over the given options. onEpoch, when non-nil, is
// invoked after every epoch with the epoch number and the best score so far;
// it has no effect on the search outcome.
func NewSearch(options Options, random *rand.Rand, onEpoch func(epoch, bestScore int)) Search {
	return &search{
		options:   options,
		generator: NewGenerator(random),
		onEpoch:   onEpoch,
	}
}

type search struct {
	options   Options
	generator Generator
	onEpoch   func(epoch, bestScore int)
}

func (s *search) Run(ctx context.Context, sessions []Session, preferences []Preference) (Result, error) {
	best := Result{Score: 0}

	for epoch := 0; epoch < s.options.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		candidate := s.generator.Generate(sessions, preferences)
		score := Score(candidate, preferences)

		// Replace only on strict improvement; the first candidate is always
		// installed so a projectable best exists even when every score is
		// negative. Replacement is wholesale: an aborted run never exposes a
		// partially updated best.
		if score > best.Score || best.Assignment == nil {
			best = Result{Assignment: candidate, Score: score}
		}

		if s.onEpoch != nil {
			s.onEpoch(epoch, best.Score)
		}
	}

	return best, nil
}
