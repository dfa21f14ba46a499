package youtube

import (
	"strings"
	"time"
)

// Scorer ranks a search result against a query. Aside
// from reading the injected clock for recency and view
// velocity, scoring is a pure function of its inputs and
// safe to run concurrently for any number of candidates.
type Scorer struct {
	now func() time.Time
}

func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// NewScorerAt builds a scorer with a frozen clock,
// making recency and velocity terms deterministic
func NewScorerAt(now func() time.Time) *Scorer {
	return &Scorer{now: now}
}

const (
	// title accuracy outweighs popularity: a wrong title
	// has to lose no matter how many views it carries
	weightExactPhrase     = 25.0
	weightTitlePrefix     = 10.0
	weightFuzzyRatio      = 40.0
	weightSequentialOrder = 15.0
	weightPerWord         = 3.0
	weightEarlyWord       = 2.0
	weightArtistInTitle   = 10.0
	weightArtistPartial   = 4.0
	weightPerfectMatch    = 30.0
	weightStrippedPrefix  = 15.0
	weightLengthFit       = 5.0

	penaltyMissingWords   = 30.0
	penaltyMostlyMissing  = 25.0
	penaltyNothingMatched = 40.0
	penaltyNoExactPhrase  = 8.0
	penaltyLowSimilarity  = 20.0
	penaltyOpeningDrift   = 10.0

	minAcceptableSimilarity = 0.35

	weightViews    = 30.0
	weightLikes    = 15.0
	weightComments = 5.0

	descriptionPrefixLength = 500
)

type tier struct {
	threshold int64
	fraction  float64
}

// sorted threshold tables: the first tier whose threshold
// the metric reaches decides the fraction of the weight
var (
	viewTiers = []tier{
		{1_000_000_000, 1.0},
		{500_000_000, 0.95},
		{100_000_000, 0.9},
		{50_000_000, 0.8},
		{10_000_000, 0.7},
		{1_000_000, 0.55},
		{100_000, 0.4},
		{10_000, 0.25},
		{1_000, 0.15},
		{100, 0.05},
	}
	likeTiers = []tier{
		{50_000_000, 1.0},
		{10_000_000, 0.9},
		{5_000_000, 0.8},
		{1_000_000, 0.65},
		{100_000, 0.45},
		{10_000, 0.3},
		{1_000, 0.2},
		{100, 0.1},
	}
	commentTiers = []tier{
		{1_000_000, 1.0},
		{100_000, 0.8},
		{10_000, 0.6},
		{1_000, 0.4},
		{100, 0.2},
		{10, 0.1},
	}
	subscriberTiers = []tier{
		{10_000_000, 10},
		{1_000_000, 7},
		{100_000, 5},
		{10_000, 3},
		{1_000, 1},
	}
	velocityTiers = []tier{
		{1_000_000, 10},
		{100_000, 7},
		{10_000, 5},
		{1_000, 3},
		{100, 1},
	}
)

func scaleTiered(value int64, tiers []tier, weight float64) float64 {
	for _, t := range tiers {
		if value >= t.threshold {
			return t.fraction * weight
		}
	}
	return 0
}

var (
	officialKeywords = []string{"official", "vevo", "audio", "video", "records"}
	officialChannels = []string{"vevo", "official", "records", "music", " - topic"}
	qualityKeywords  = []string{"remastered", "explicit", "clean", "radio edit", "high quality", "1080p"}
	misleading       = []string{
		"reaction", "interview", "cover", "karaoke", "remix", "nightcore",
		"slowed", "reverb", "sped up", "gameplay", "vlog", "parody",
		"tutorial", "review", "behind the scenes", "8d audio",
	}
	distribution = []string{
		"stream", "available now", "spotify", "apple music",
		"itunes", "listen now", "out now", "download",
	}
)

// Score computes the candidate's total ranking score and
// its per-category breakdown. Base terms are summed, the
// quality-confidence multiplier is applied to that sum,
// the combined-engagement bonus is added on top, and the
// result is clamped to zero.
func (scorer *Scorer) Score(candidate Candidate, query Query) (float64, Breakdown) {
	var (
		breakdown   Breakdown
		title       = strings.ToLower(candidate.Title)
		uploader    = strings.ToLower(candidate.Uploader)
		description = strings.ToLower(prefix(candidate.Description, descriptionPrefixLength))
		primary     = strings.ToLower(query.Title)
		artist      = strings.ToLower(query.Artist)
	)

	breakdown.add(CategoryTitle, scorer.titleScore(primary, artist, title))
	breakdown.add(CategoryArtist, scorer.artistScore(artist, title, uploader, description))
	breakdown.add(CategoryOfficial, scorer.officialScore(title, uploader, description))
	breakdown.add(CategoryPopularity, scorer.popularityScore(candidate))
	breakdown.add(CategoryEngagement, scorer.engagementScore(candidate))
	breakdown.add(CategoryDuration, scorer.durationScore(candidate.Duration))
	breakdown.add(CategoryRecency, scorer.recencyScore(candidate.UploadDate))
	breakdown.add(CategoryQuality, scorer.qualityScore(title))
	breakdown.add(CategoryAuthority, scaleTiered(candidate.Subscribers, subscriberTiers, 1))
	breakdown.add(CategoryContent, scorer.contentScore(title, description))
	breakdown.add(CategoryDescription, scorer.descriptionScore(primary, artist, description))
	breakdown.add(CategoryVelocity, scorer.velocityScore(candidate))

	total := 0.0
	for _, term := range breakdown.terms {
		total += term.Value
	}

	confidence := scorer.confidence(candidate)
	breakdown.add(CategoryConfidence, confidence)
	total *= confidence

	combined := scorer.combinedEngagement(candidate)
	breakdown.add(CategoryCombined, combined)
	total += combined

	if total < 0 {
		total = 0
	}
	return total, breakdown
}

func (scorer *Scorer) titleScore(primary, artist, title string) float64 {
	if primary == "" || title == "" {
		return 0
	}

	var (
		score float64
		exact = strings.Contains(title, primary)
	)
	if exact {
		score += weightExactPhrase
		if strings.HasPrefix(title, primary) {
			score += weightTitlePrefix
		}
	}

	ratio := bestSimilarity(primary, title)
	score += ratio * weightFuzzyRatio

	words := significantWords(primary)
	score += sequentialMatchRatio(words, title) * weightSequentialOrder

	var (
		matched int
		leading = firstWords(title, 5)
	)
	for _, word := range words {
		if !strings.Contains(title, word) {
			continue
		}
		matched++
		score += weightPerWord
		if containsWord(leading, word) {
			score += weightEarlyWord
		}
	}

	if artist != "" {
		if strings.Contains(title, artist) {
			score += weightArtistInTitle
		} else if wordOverlapRatio(artist, title) > 0.5 {
			score += weightArtistPartial
		}
	}

	strippedPrimary, strippedTitle := stripPunctuation(primary), stripPunctuation(title)
	if strippedPrimary == strippedTitle {
		score += weightPerfectMatch
	} else if strings.HasPrefix(strippedTitle, strippedPrimary) {
		score += weightStrippedPrefix
	}

	if lengthRatio(primary, title) > 0.7 {
		score += weightLengthFit
	}

	// the penalty block is what keeps a wrong title from
	// being rescued by popularity further down
	if len(words) > 0 {
		missing := float64(len(words)-matched) / float64(len(words))
		score -= missing * missing * penaltyMissingWords
		if missing > 0.5 {
			score -= penaltyMostlyMissing
		}
		if matched == 0 {
			score -= penaltyNothingMatched
		}
	}
	if !exact {
		score -= penaltyNoExactPhrase
	}
	if ratio < minAcceptableSimilarity {
		score -= penaltyLowSimilarity
	}
	if ratio < 0.5 && len(words) > 0 && !openingOverlap(words, title) {
		score -= penaltyOpeningDrift
	}

	return score
}

// openingOverlap checks whether the title's first words
// bear any resemblance to the query's opening significant
// words
func openingOverlap(words []string, title string) bool {
	opening := words
	if len(opening) > 2 {
		opening = opening[:2]
	}
	leading := firstWords(title, 5)
	for _, word := range opening {
		for _, titleWord := range leading {
			if titleWord == word || similarity(word, titleWord) > 0.6 {
				return true
			}
		}
	}
	return false
}

func lengthRatio(a, b string) float64 {
	la, lb := float64(len(a)), float64(len(b))
	if la == 0 || lb == 0 {
		return 0
	}
	if la > lb {
		la, lb = lb, la
	}
	return la / lb
}

func (scorer *Scorer) artistScore(artist, title, uploader, description string) float64 {
	if artist == "" {
		return 0
	}

	var score float64
	if strings.Contains(uploader, artist) || strings.Contains(uploader, strings.ReplaceAll(artist, " ", "")) {
		score += 20
	} else if wordOverlapRatio(artist, uploader) > 0.5 {
		score += 10
	}
	if strings.Contains(title, artist) {
		score += 8
	}
	if strings.Contains(description, artist) {
		score += 4
	}
	return score
}

func (scorer *Scorer) officialScore(title, uploader, description string) float64 {
	var score float64
	for _, keyword := range officialKeywords {
		score += float64(strings.Count(title, keyword)) * 3
	}
	if score > 9 {
		score = 9
	}
	for _, keyword := range officialChannels {
		if strings.Contains(uploader, keyword) {
			score += 5
			break
		}
	}
	if strings.Contains(uploader, "vevo") || strings.Contains(title, "vevo") {
		score += 10
	}
	if index := strings.Index(description, "official"); index >= 0 && index < 200 {
		score += 2
	}
	return score
}

func (scorer *Scorer) popularityScore(candidate Candidate) float64 {
	score := scaleTiered(candidate.Views, viewTiers, weightViews) +
		scaleTiered(candidate.Likes, likeTiers, weightLikes) +
		scaleTiered(candidate.Comments, commentTiers, weightComments)

	if candidate.Views > 0 && candidate.Views < 100 {
		score -= 5
	}
	// heavy view counts with bottom-of-the-barrel likes
	// smell like bought traffic
	if candidate.Views >= 1_000_000 && candidate.Likes*100_000 < candidate.Views {
		score -= 8
	}

	return score * scorer.engagementMultiplier(candidate)
}

// engagementMultiplier maps like/comment ratios onto a
// [0.5, 1.5] factor applied to the popularity sub-score
func (scorer *Scorer) engagementMultiplier(candidate Candidate) float64 {
	if candidate.Views == 0 {
		return 1
	}

	var (
		multiplier   = 1.0
		likeRatio    = float64(candidate.Likes) / float64(candidate.Views)
		commentRatio = float64(candidate.Comments) / float64(candidate.Views)
	)
	switch {
	case likeRatio >= 0.04:
		multiplier += 0.3
	case likeRatio >= 0.02:
		multiplier += 0.2
	case likeRatio >= 0.01:
		multiplier += 0.1
	}
	switch {
	case commentRatio >= 0.004:
		multiplier += 0.2
	case commentRatio >= 0.001:
		multiplier += 0.1
	}
	if candidate.Views >= 100_000 && candidate.Likes*10_000 < candidate.Views {
		multiplier -= 0.4
	}

	return clamp(multiplier, 0.5, 1.5)
}

// engagementScore rates like and comment ratios on their
// own tiers, on top of the popularity multiplier and the
// combined bonus reading the same ratios at other scales
func (scorer *Scorer) engagementScore(candidate Candidate) float64 {
	if candidate.Views == 0 {
		return 0
	}

	var (
		score        float64
		likeRatio    = float64(candidate.Likes) / float64(candidate.Views)
		commentRatio = float64(candidate.Comments) / float64(candidate.Views)
	)
	switch {
	case likeRatio >= 0.05:
		score += 8
	case likeRatio >= 0.03:
		score += 6
	case likeRatio >= 0.015:
		score += 4
	case likeRatio >= 0.005:
		score += 2
	case likeRatio > 0:
		score++
	}
	switch {
	case commentRatio >= 0.005:
		score += 4
	case commentRatio >= 0.001:
		score += 2
	case commentRatio > 0:
		score++
	}
	return score
}

func (scorer *Scorer) durationScore(duration int) float64 {
	switch {
	case duration == 0:
		return 0
	case duration >= 120 && duration <= 300:
		return 10
	case duration >= 90 && duration <= 420:
		return 6
	case duration >= 60 && duration <= 600:
		return 3
	case duration < 60:
		return -8
	case duration > 900:
		return -15
	default:
		return 0
	}
}

func (scorer *Scorer) recencyScore(uploadDate string) float64 {
	year, ok := uploadYear(uploadDate)
	if !ok {
		return 0
	}
	switch age := scorer.now().Year() - year; {
	case age <= 2:
		return 6
	case age <= 5:
		return 4
	case age <= 10:
		return 2
	default:
		return 1
	}
}

func (scorer *Scorer) qualityScore(title string) float64 {
	var score float64
	for _, keyword := range qualityKeywords {
		if strings.Contains(title, keyword) {
			score += 2
		}
	}
	if strings.Contains(title, "official audio") || strings.Contains(title, "official video") {
		score += 4
	}
	if strings.Contains(title, "4k") || strings.Contains(title, "hd") {
		score += 2
	}
	return score
}

func (scorer *Scorer) contentScore(title, description string) float64 {
	var score float64
	for _, keyword := range misleading {
		score -= float64(strings.Count(title, keyword)) * 15
		score -= float64(strings.Count(description, keyword)) * 5
	}
	if strings.Contains(title, "lyrics") && !strings.Contains(title, "official") {
		score -= 5
	}
	if strings.Contains(title, "live") && strings.Contains(title, "performance") {
		score -= 12
	}
	if strings.Contains(title, "slowed") || strings.Contains(title, "sped up") || strings.Contains(title, "pitched") {
		score -= 10
	}
	return score
}

func (scorer *Scorer) descriptionScore(primary, artist, description string) float64 {
	if description == "" {
		return 0
	}

	var score float64
	if primary != "" && strings.Contains(description, primary) {
		score += 3
	}
	if artist != "" && strings.Contains(description, artist) {
		score += 3
	}
	var phrases float64
	for _, phrase := range distribution {
		if strings.Contains(description, phrase) {
			phrases++
		}
	}
	if phrases > 4 {
		phrases = 4
	}
	return score + phrases
}

func (scorer *Scorer) velocityScore(candidate Candidate) float64 {
	uploaded, ok := uploadTime(candidate.UploadDate)
	if !ok {
		return 0
	}
	days := scorer.now().Sub(uploaded).Hours() / 24
	if days < 1 {
		days = 1
	}
	return scaleTiered(int64(float64(candidate.Views)/days), velocityTiers, 1)
}

// confidence estimates how organic the candidate's
// numbers look and scales the whole base sum by it
func (scorer *Scorer) confidence(candidate Candidate) float64 {
	confidence := 1.0
	if candidate.Views > 0 {
		likeRatio := float64(candidate.Likes) / float64(candidate.Views)
		if likeRatio >= 0.001 && likeRatio <= 0.1 {
			confidence += 0.15
		}
		if candidate.Subscribers > 0 {
			subscriberRatio := float64(candidate.Subscribers) / float64(candidate.Views)
			if subscriberRatio >= 0.001 && subscriberRatio <= 10 {
				confidence += 0.15
			}
		}
		if candidate.Views >= 1_000_000 && candidate.Likes == 0 {
			confidence -= 0.3
		}
	}
	return clamp(confidence, 0.7, 1.3)
}

// combinedEngagement is the final additive bonus, computed
// after the multiplier step from the raw ratios plus a
// capped subscriber term
func (scorer *Scorer) combinedEngagement(candidate Candidate) float64 {
	if candidate.Views == 0 {
		return 0
	}

	var (
		likeRatio    = float64(candidate.Likes) / float64(candidate.Views)
		commentRatio = float64(candidate.Comments) / float64(candidate.Views)
		subscribers  = candidate.Subscribers
	)
	if subscribers > 10_000_000 {
		subscribers = 10_000_000
	}
	return clamp(likeRatio*400, 0, 12) +
		clamp(commentRatio*800, 0, 6) +
		float64(subscribers)/10_000_000*7
}

func uploadYear(uploadDate string) (int, bool) {
	uploaded, ok := uploadTime(uploadDate)
	if !ok {
		return 0, false
	}
	return uploaded.Year(), true
}

func uploadTime(uploadDate string) (time.Time, bool) {
	if len(uploadDate) != 8 {
		return time.Time{}, false
	}
	uploaded, err := time.Parse("20060102", uploadDate)
	if err != nil {
		return time.Time{}, false
	}
	return uploaded, true
}

func prefix(input string, length int) string {
	if len(input) <= length {
		return input
	}
	return input[:length]
}

func clamp(value, floor, ceiling float64) float64 {
	if value < floor {
		return floor
	}
	if value > ceiling {
		return ceiling
	}
	return value
}
