package applemusic

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nk2552003/umd/entity"
	"github.com/nk2552003/umd/platform"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:126.0) Gecko/20100101 Firefox/126.0"

// Track scrapes an Apple Music song page for the little
// metadata the pipeline needs: title, artist and artwork.
// Page markup shifts often, hence the scraping stays
// narrow and tolerant.
func Track(ctx context.Context, url string) (*entity.Track, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("User-Agent", userAgent)

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response %d from apple music", response.StatusCode)
	}

	track, err := Parse(response.Body)
	if err != nil {
		return nil, err
	}
	track.ID = platform.ID(url)
	return track, nil
}

// Parse extracts track metadata out of a song page
// document, exposed on its own for testability
func Parse(body io.Reader) (*entity.Track, error) {
	document, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	title := meta(document, "og:title")
	if title == "" {
		title = strings.TrimSuffix(document.Find("title").Text(), " - Apple Music")
	}
	if title == "" {
		return nil, errors.New("song title not found in apple music page")
	}

	// og:title reads "Song by Artist", the trailing
	// " on Apple Music" suffix included at times
	title = strings.TrimSuffix(strings.TrimSpace(title), " on Apple Music")
	song, artist := splitByline(title)

	track := &entity.Track{
		Title:   song,
		Artwork: entity.Artwork{URL: meta(document, "og:image")},
	}
	if artist != "" {
		track.Artists = []string{artist}
	}
	return track, nil
}

func meta(document *goquery.Document, property string) string {
	return strings.TrimSpace(document.
		Find(fmt.Sprintf(`meta[property=%q]`, property)).
		AttrOr("content", ""))
}

// splitByline cuts "Song by Artist" on its last " by ",
// as song titles themselves may contain the word
func splitByline(title string) (string, string) {
	index := strings.LastIndex(title, " by ")
	if index < 0 {
		return title, ""
	}
	return strings.TrimSpace(title[:index]), strings.TrimSpace(title[index+4:])
}
