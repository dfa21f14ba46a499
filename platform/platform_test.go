package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	for input, expected := range map[string]Kind{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":       YouTube,
		"https://youtu.be/dQw4w9WgXcQ":                      YouTube,
		"https://music.youtube.com/watch?v=abc":             YouTube,
		"https://open.spotify.com/track/0VjIjW4GlUZAMYd2vXMi3b": Spotify,
		"https://music.apple.com/us/album/song/12345":       AppleMusic,
		"https://soundcloud.com/artist/track":               SoundCloud,
		"https://example.com/media/file":                    Generic,
		"Blinding Lights - The Weeknd":                      Query,
		"not a url at all":                                  Query,
	} {
		assert.Equal(t, expected, Detect(input), input)
	}
}

func TestID(t *testing.T) {
	assert.Equal(t, "0VjIjW4GlUZAMYd2vXMi3b", ID("https://open.spotify.com/track/0VjIjW4GlUZAMYd2vXMi3b"))
	assert.Equal(t, "track", ID("https://soundcloud.com/artist/track"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "youtube", YouTube.String())
	assert.Equal(t, "query", Query.String())
}
