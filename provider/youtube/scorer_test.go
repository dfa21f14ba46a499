package youtube

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var frozenNow = func() time.Time {
	return time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
}

func testScorer() *Scorer {
	return NewScorerAt(frozenNow)
}

var (
	queryBlindingLights = ParseQuery("Blinding Lights - The Weeknd")

	candidateOfficial = Candidate{
		ID:          "official",
		Title:       "The Weeknd - Blinding Lights (Official Video)",
		Uploader:    "TheWeekndVEVO",
		Duration:    200,
		Views:       900_000_000,
		Likes:       9_000_000,
		UploadDate:  "20191129",
		Subscribers: 30_000_000,
	}

	candidateNightcore = Candidate{
		ID:         "nightcore",
		Title:      "Blinding Lights REMIX (Nightcore)",
		Uploader:   "randomuser123",
		Duration:   180,
		Views:      50_000,
		Likes:      200,
		UploadDate: "20220101",
	}
)

func TestScoreDeterminism(t *testing.T) {
	scorer := testScorer()
	first, firstBreakdown := scorer.Score(candidateOfficial, queryBlindingLights)
	second, secondBreakdown := scorer.Score(candidateOfficial, queryBlindingLights)
	assert.Equal(t, first, second)
	assert.Equal(t, firstBreakdown, secondBreakdown)
}

func TestScoreNonNegative(t *testing.T) {
	scorer := testScorer()
	adversarial := []Candidate{
		{},
		{Title: "ASMR gameplay reaction karaoke nightcore remix", Uploader: "x", Views: 3},
		{
			Title:       "completely unrelated interview parody vlog",
			Description: "cover karaoke remix nightcore slowed reverb gameplay",
			Duration:    4000,
			Views:       1_000_000,
		},
	}
	for _, candidate := range adversarial {
		score, _ := scorer.Score(candidate, queryBlindingLights)
		assert.GreaterOrEqual(t, score, 0.0)
	}
}

func TestScoreTitleDominance(t *testing.T) {
	var (
		scorer = testScorer()
		exact  = Candidate{
			ID: "exact", Title: "Blinding Lights",
			Views: 1_000_000, Likes: 20_000,
		}
		unrelated = Candidate{
			ID: "unrelated", Title: "Relaxing Jazz Compilation",
			Views: 1_000_000, Likes: 20_000,
		}
	)

	exactScore, exactBreakdown := scorer.Score(exact, queryBlindingLights)
	unrelatedScore, unrelatedBreakdown := scorer.Score(unrelated, queryBlindingLights)

	assert.Greater(t, exactScore, unrelatedScore)
	assert.Positive(t, exactBreakdown.Get(CategoryTitle))
	assert.Negative(t, unrelatedBreakdown.Get(CategoryTitle))
}

func TestScoreMissingFieldRobustness(t *testing.T) {
	var (
		scorer = testScorer()
		empty  = Candidate{ID: "empty", Title: "Blinding Lights"}
		solid  = Candidate{
			ID: "solid", Title: "Blinding Lights",
			Views: 50_000_000, Likes: 1_000_000, Comments: 40_000,
			UploadDate: "20191129", Subscribers: 5_000_000,
		}
	)

	assert.NotPanics(t, func() {
		scorer.Score(empty, queryBlindingLights)
	})

	emptyScore, _ := scorer.Score(empty, queryBlindingLights)
	solidScore, _ := scorer.Score(solid, queryBlindingLights)
	assert.GreaterOrEqual(t, emptyScore, 0.0)
	assert.Greater(t, solidScore, emptyScore)
}

func TestScorePopularityMonotonicity(t *testing.T) {
	var (
		scorer = testScorer()
		lower  = Candidate{
			ID: "lower", Title: "Blinding Lights",
			Views: 100_000, Likes: 500_000, Comments: 20_000,
		}
		higher = lower
	)
	higher.Views = 50_000_000

	_, lowerBreakdown := scorer.Score(lower, queryBlindingLights)
	_, higherBreakdown := scorer.Score(higher, queryBlindingLights)
	assert.GreaterOrEqual(t,
		higherBreakdown.Get(CategoryPopularity),
		lowerBreakdown.Get(CategoryPopularity))
}

func TestScoreExampleScenario(t *testing.T) {
	scorer := testScorer()
	officialScore, _ := scorer.Score(candidateOfficial, queryBlindingLights)
	nightcoreScore, _ := scorer.Score(candidateNightcore, queryBlindingLights)

	assert.Greater(t, officialScore, nightcoreScore+50)
	assert.Greater(t, officialScore, earlyExitThreshold)
}

func TestScoreBreakdownCategories(t *testing.T) {
	_, breakdown := testScorer().Score(candidateOfficial, queryBlindingLights)

	var categories []string
	for _, term := range breakdown.Terms() {
		categories = append(categories, term.Category)
	}
	assert.Equal(t, []string{
		CategoryTitle, CategoryArtist, CategoryOfficial, CategoryPopularity,
		CategoryEngagement, CategoryDuration, CategoryRecency, CategoryQuality,
		CategoryAuthority, CategoryContent, CategoryDescription, CategoryVelocity,
		CategoryConfidence, CategoryCombined,
	}, categories)
}

func TestScoreMalformedUploadDate(t *testing.T) {
	scorer := testScorer()
	for _, date := range []string{"", "2019", "not-a-date", "20191332"} {
		candidate := Candidate{Title: "Blinding Lights", Views: 1_000_000, UploadDate: date}
		_, breakdown := scorer.Score(candidate, queryBlindingLights)
		assert.Zero(t, breakdown.Get(CategoryRecency), date)
		assert.Zero(t, breakdown.Get(CategoryVelocity), date)
	}
}

func TestScoreRecencyTiers(t *testing.T) {
	scorer := testScorer()
	for date, expected := range map[string]float64{
		"20250601": 6,
		"20220101": 4,
		"20180101": 2,
		"20080101": 1,
	} {
		_, breakdown := scorer.Score(Candidate{Title: "x", UploadDate: date}, queryBlindingLights)
		assert.Equal(t, expected, breakdown.Get(CategoryRecency), date)
	}
}

func TestScoreDurationFit(t *testing.T) {
	scorer := testScorer()
	for duration, expected := range map[int]float64{
		0:    0,
		200:  10,
		400:  6,
		550:  3,
		30:   -8,
		1200: -15,
		700:  0,
	} {
		_, breakdown := scorer.Score(Candidate{Title: "x", Duration: duration}, queryBlindingLights)
		assert.Equal(t, expected, breakdown.Get(CategoryDuration), duration)
	}
}

func TestScoreConfidenceBounds(t *testing.T) {
	scorer := testScorer()
	candidates := []Candidate{
		{Title: "x"},
		{Title: "x", Views: 10_000_000},
		{Title: "x", Views: 10_000_000, Likes: 300_000, Subscribers: 100_000},
	}
	for _, candidate := range candidates {
		_, breakdown := scorer.Score(candidate, queryBlindingLights)
		confidence := breakdown.Get(CategoryConfidence)
		assert.GreaterOrEqual(t, confidence, 0.7)
		assert.LessOrEqual(t, confidence, 1.3)
	}
}

func TestScoreCombinedEngagementRequiresViews(t *testing.T) {
	scorer := testScorer()
	_, breakdown := scorer.Score(Candidate{Title: "x", Likes: 500, Subscribers: 1_000_000}, queryBlindingLights)
	assert.Zero(t, breakdown.Get(CategoryCombined))
}

func TestScoreContentPenalties(t *testing.T) {
	var (
		scorer = testScorer()
		clean  = Candidate{Title: "Blinding Lights (Official Audio)"}
		shady  = Candidate{Title: "Blinding Lights (Nightcore Remix) [slowed + reverb]"}
	)
	_, cleanBreakdown := scorer.Score(clean, queryBlindingLights)
	_, shadyBreakdown := scorer.Score(shady, queryBlindingLights)
	assert.Zero(t, cleanBreakdown.Get(CategoryContent))
	assert.Less(t, shadyBreakdown.Get(CategoryContent), -30.0)
}
