package youtube

import (
	"context"
	"errors"

	"github.com/nk2552003/umd/entity"
	"github.com/nk2552003/umd/provider"
)

func init() {
	provider.Register(youTube{NewSelector(YTDLPSource{})})
}

type youTube struct {
	selector *Selector
}

// Search adapts the best-candidate selection to the
// provider contract: an exhausted variant list simply
// yields no matches, not an error
func (p youTube) Search(ctx context.Context, track *entity.Track) ([]*provider.Match, error) {
	best, err := p.selector.SelectBest(ctx, track.Query())
	if errors.Is(err, ErrNoCandidates) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []*provider.Match{{
		URL:   Candidate{ID: best.ID}.URL(),
		Score: best.Score,
	}}, nil
}
