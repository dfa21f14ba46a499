package provider

import (
	"context"
	"sort"
	"sync"

	"github.com/arunsworld/nursery"
	"github.com/nk2552003/umd/entity"
)

var (
	mutex     sync.Mutex
	providers = []Provider{}
)

type Match struct {
	URL   string
	Score float64
}

type Provider interface {
	Search(ctx context.Context, track *entity.Track) ([]*Match, error)
}

// Register adds a provider to the search pool, meant to
// be called from the provider package's init
func Register(provider Provider) {
	mutex.Lock()
	defer mutex.Unlock()
	providers = append(providers, provider)
}

// Search fans the track out to every registered provider
// concurrently and returns the joint matches sorted by
// score, best first
func Search(ctx context.Context, track *entity.Track) ([]*Match, error) {
	var (
		workers []nursery.ConcurrentJob
		matches []*Match
	)
	for _, provider := range providers {
		workers = append(workers, func(p Provider) func(context.Context, chan error) {
			return func(_ context.Context, ch chan error) {
				scopedMatches, err := p.Search(ctx, track)
				if err != nil {
					ch <- err
					return
				}
				mutex.Lock()
				defer mutex.Unlock()
				matches = append(matches, scopedMatches...)
			}
		}(provider))
	}

	if err := nursery.RunConcurrently(workers...); err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches, nil
}
