package service

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aliskhannn/state-capitals-bot/internal/domain/entities"
	"github.com/aliskhannn/state-capitals-bot/internal/repository"
)

// CandidateCount is the number of options shown for a choice question.
const CandidateCount = 5

var (
	ErrInsufficientPool    = errors.New("not enough entries for a candidate set")
	ErrInvalidCorrectCount = errors.New("a question needs one or two distinct correct entries")
)

// Sampler builds the candidate sets for choice questions.
type Sampler struct {
	catalog CapitalCatalog
	rng     Rand
}

// NewSampler creates a new sampler.
func NewSampler(catalog CapitalCatalog, rng Rand) *Sampler {
	return &Sampler{
		catalog: catalog,
		rng:     rng,
	}
}

// BuildCandidates returns CandidateCount distinct entries: the correct ones
// plus distractors drawn from pool, in uniformly random order.
// The pool passed in is left untouched.
func (s *Sampler) BuildCandidates(
	pool []entities.CapitalEntry,
	correct []entities.CapitalEntry,
) ([]entities.CapitalEntry, error) {
	if len(correct) < 1 || len(correct) > 2 {
		return nil, ErrInvalidCorrectCount
	}
	if len(correct) == 2 && correct[0].Equal(correct[1]) {
		return nil, ErrInvalidCorrectCount
	}

	available := slices.Clone(pool)
	for _, c := range correct {
		available = repository.Remove(available, c)
	}

	candidates := make([]entities.CapitalEntry, 0, CandidateCount)
	candidates = append(candidates, correct...)

	for len(candidates) < CandidateCount {
		var (
			distractor entities.CapitalEntry
			err        error
		)
		distractor, available, err = s.catalog.DrawRandomAndRemove(available)
		if errors.Is(err, repository.ErrEmptyPool) {
			return nil, fmt.Errorf("%w: need %d distractors, found %d",
				ErrInsufficientPool, CandidateCount-len(correct), len(candidates)-len(correct))
		}
		if err != nil {
			return nil, fmt.Errorf("draw distractor: %w", err)
		}
		candidates = append(candidates, distractor)
	}

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	return candidates, nil
}
