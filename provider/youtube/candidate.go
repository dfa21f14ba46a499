package youtube

import "fmt"

// Candidate carries the metadata of a single search
// result. Numeric fields default to 0 when the source
// could not supply them: 0 always means "unknown/low",
// never an error.
type Candidate struct {
	ID          string
	Title       string
	Uploader    string
	ChannelID   string
	Duration    int // in seconds
	Views       int64
	Likes       int64
	Comments    int64
	UploadDate  string // YYYYMMDD, possibly empty
	Description string
	Subscribers int64
}

func (candidate Candidate) URL() string {
	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", candidate.ID)
}

// ScoredCandidate pairs a candidate identifier with the
// total score the Scorer assigned to it
type ScoredCandidate struct {
	ID    string
	Score float64
}

// Breakdown is the ordered list of per-category
// contributions composing a candidate's total score,
// produced fresh on every scoring call
type Breakdown struct {
	terms []Term
}

type Term struct {
	Category string
	Value    float64
}

const (
	CategoryTitle       = "title"
	CategoryArtist      = "artist"
	CategoryOfficial    = "official"
	CategoryPopularity  = "popularity"
	CategoryEngagement  = "engagement"
	CategoryDuration    = "duration"
	CategoryRecency     = "recency"
	CategoryQuality     = "quality"
	CategoryAuthority   = "authority"
	CategoryContent     = "content"
	CategoryDescription = "description"
	CategoryVelocity    = "velocity"
	CategoryConfidence  = "confidence"
	CategoryCombined    = "combined"
)

func (breakdown *Breakdown) add(category string, value float64) {
	breakdown.terms = append(breakdown.terms, Term{category, value})
}

func (breakdown Breakdown) Get(category string) float64 {
	for _, term := range breakdown.terms {
		if term.Category == category {
			return term.Value
		}
	}
	return 0
}

func (breakdown Breakdown) Terms() []Term {
	return breakdown.terms
}
