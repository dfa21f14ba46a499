package youtube

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/arunsworld/nursery"
)

// ErrNoCandidates is returned when every query variant
// came back empty
var ErrNoCandidates = errors.New("no candidate found for any query variant")

// variant mutations of the base query, issued in order:
// the most promising ones first so that the early exit
// saves the remaining searches
var variantSuffixes = []string{
	" official audio",
	"",
	" official video",
	" lyrics",
	" music",
}

const (
	// a score past this point is an excellent match and
	// further variants would only cost network round trips
	earlyExitThreshold = 150.0

	defaultVariantResults = 8
)

// Selector runs the Scorer over the candidates of every
// query variant, deduplicates by identifier keeping the
// maximum score, and returns the global best.
type Selector struct {
	source  Source
	scorer  *Scorer
	results int
}

func NewSelector(source Source) *Selector {
	return &Selector{
		source:  source,
		scorer:  NewScorer(),
		results: defaultVariantResults,
	}
}

func NewSelectorWithScorer(source Source, scorer *Scorer) *Selector {
	return &Selector{
		source:  source,
		scorer:  scorer,
		results: defaultVariantResults,
	}
}

// SelectBest resolves the single best candidate for the
// given query. A failed or empty variant search is not an
// error: the next variant is tried. ErrNoCandidates is
// returned only when every variant yielded nothing.
func (selector *Selector) SelectBest(ctx context.Context, query string) (ScoredCandidate, error) {
	var (
		parsed = ParseQuery(query)
		scores = map[string]float64{}
		best   = ScoredCandidate{Score: math.Inf(-1)}
	)

	for _, suffix := range variantSuffixes {
		if err := ctx.Err(); err != nil {
			return ScoredCandidate{}, err
		}

		candidates, err := selector.source.Search(ctx, query+suffix, selector.results)
		if err != nil || len(candidates) == 0 {
			// an unreliable source is expected, move on
			continue
		}

		selector.scoreBatch(candidates, parsed, scores)
		for id, score := range scores {
			if score > best.Score {
				best = ScoredCandidate{ID: id, Score: score}
			}
		}

		if best.Score > earlyExitThreshold {
			return best, nil
		}
	}

	if len(scores) == 0 {
		return ScoredCandidate{}, ErrNoCandidates
	}
	return best, nil
}

// scoreBatch scores one variant's results concurrently,
// folding them into the identifier-to-best-score map: a
// candidate surfacing under several variants keeps only
// its maximum score
func (selector *Selector) scoreBatch(candidates []Candidate, query Query, scores map[string]float64) {
	var (
		mutex sync.Mutex
		jobs  []nursery.ConcurrentJob
	)
	for _, candidate := range candidates {
		candidate := candidate
		jobs = append(jobs, func(_ context.Context, _ chan error) {
			score, _ := selector.scorer.Score(candidate, query)

			mutex.Lock()
			defer mutex.Unlock()
			if known, ok := scores[candidate.ID]; !ok || score > known {
				scores[candidate.ID] = score
			}
		})
	}
	// scoring jobs cannot fail
	_ = nursery.RunConcurrently(jobs...)
}
