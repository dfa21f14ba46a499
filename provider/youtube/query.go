package youtube

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Query is the parsed form of a "<title> - <artist>"
// search string. Parsing is cheap and stateless, so a
// Query is rebuilt per scoring call rather than cached.
type Query struct {
	Raw    string
	Title  string
	Artist string
}

var (
	punctuation = regexp.MustCompile(`[^a-z0-9 ]+`)
	whitespace  = regexp.MustCompile(`\s+`)
	brackets    = regexp.MustCompile(`[([][^)\]]*[)\]]`)

	// short words are already dropped by the length guard,
	// these are the longer ones carrying no signal
	stopWords = map[string]bool{
		"the":  true,
		"and":  true,
		"for":  true,
		"feat": true,
		"with": true,
	}
)

func ParseQuery(raw string) Query {
	title, artist, _ := strings.Cut(raw, " - ")
	return Query{
		Raw:    raw,
		Title:  strings.TrimSpace(title),
		Artist: strings.TrimSpace(artist),
	}
}

// stripPunctuation lowers the input and drops anything
// besides alphanumeric words separated by single spaces
func stripPunctuation(input string) string {
	input = punctuation.ReplaceAllString(strings.ToLower(input), "")
	return strings.TrimSpace(whitespace.ReplaceAllString(input, " "))
}

// significantWords returns the words of the input worth
// matching on: longer than two characters and not a stop word
func significantWords(input string) []string {
	var words []string
	for _, word := range strings.Fields(stripPunctuation(input)) {
		if len(word) > 2 && !stopWords[word] {
			words = append(words, word)
		}
	}
	return words
}

// similarity is a normalized Levenshtein ratio in [0, 1]
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// titleForms returns the variants of a video title worth
// measuring similarity against: the title with bracketed
// decorations removed, plus either side of an
// "Artist - Song" split when one is present
func titleForms(title string) []string {
	cleaned := stripSpaces(brackets.ReplaceAllString(title, " "))
	forms := []string{cleaned}
	if before, after, found := strings.Cut(cleaned, " - "); found {
		forms = append(forms, stripSpaces(after), stripSpaces(before))
	}
	return forms
}

func stripSpaces(input string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(input, " "))
}

// bestSimilarity measures the primary text against every
// form of the title, keeping the highest ratio
func bestSimilarity(primary, title string) float64 {
	best := 0.0
	for _, form := range titleForms(title) {
		if ratio := similarity(primary, form); ratio > best {
			best = ratio
		}
	}
	return best
}

// wordOverlapRatio is the fraction of significant words
// of the needle found anywhere in the haystack
func wordOverlapRatio(needle, haystack string) float64 {
	words := significantWords(needle)
	if len(words) == 0 {
		return 0
	}
	matched := 0
	for _, word := range words {
		if strings.Contains(haystack, word) {
			matched++
		}
	}
	return float64(matched) / float64(len(words))
}

// sequentialMatchRatio verifies the given words appear in
// the title in the same relative order, gaps allowed, and
// returns the fraction matched in order
func sequentialMatchRatio(words []string, title string) float64 {
	if len(words) == 0 {
		return 0
	}
	var (
		matched int
		cursor  int
	)
	for _, word := range words {
		position := strings.Index(title[cursor:], word)
		if position < 0 {
			continue
		}
		matched++
		cursor += position + len(word)
	}
	return float64(matched) / float64(len(words))
}

func firstWords(input string, count int) []string {
	words := strings.Fields(stripPunctuation(input))
	if len(words) > count {
		words = words[:count]
	}
	return words
}

func containsWord(words []string, word string) bool {
	for _, candidate := range words {
		if candidate == word {
			return true
		}
	}
	return false
}
