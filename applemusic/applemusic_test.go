package applemusic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const songPage = `<!DOCTYPE html>
<html>
<head>
	<meta property="og:title" content="Blinding Lights by The Weeknd on Apple Music">
	<meta property="og:image" content="https://is1-ssl.mzstatic.com/image/thumb/artwork.jpg">
	<title>Blinding Lights - Apple Music</title>
</head>
<body></body>
</html>`

func TestParse(t *testing.T) {
	track, err := Parse(strings.NewReader(songPage))
	assert.Nil(t, err)
	assert.Equal(t, "Blinding Lights", track.Title)
	assert.Equal(t, []string{"The Weeknd"}, track.Artists)
	assert.Equal(t, "https://is1-ssl.mzstatic.com/image/thumb/artwork.jpg", track.Artwork.URL)
}

func TestParseTitleFallback(t *testing.T) {
	page := `<html><head><title>Some Song - Apple Music</title></head></html>`
	track, err := Parse(strings.NewReader(page))
	assert.Nil(t, err)
	assert.Equal(t, "Some Song", track.Title)
	assert.Empty(t, track.Artists)
}

func TestParseBylineKeepsSongSideBy(t *testing.T) {
	page := `<html><head><meta property="og:title" content="Stand by Me by Ben E. King"></head></html>`
	track, err := Parse(strings.NewReader(page))
	assert.Nil(t, err)
	assert.Equal(t, "Stand by Me", track.Title)
	assert.Equal(t, []string{"Ben E. King"}, track.Artists)
}

func TestParseWithoutTitle(t *testing.T) {
	_, err := Parse(strings.NewReader("<html><head></head></html>"))
	assert.Error(t, err)
}
