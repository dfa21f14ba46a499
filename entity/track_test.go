package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var track = &Track{
	ID:      "0VjIjW4GlUZAMYd2vXMi3b",
	Title:   "Blinding Lights",
	Artists: []string{"The Weeknd"},
	Album:   "After Hours",
}

func TestSong(t *testing.T) {
	assert.Equal(t, "Blinding Lights", track.Song())
	assert.Equal(t, "Name", (&Track{Title: "Name - Acoustic"}).Song())
	assert.Equal(t, "Name", (&Track{Title: "Name (Remastered 2011)"}).Song())
	assert.Equal(t, "Name", (&Track{Title: "Name [Live]"}).Song())
}

func TestArtist(t *testing.T) {
	assert.Equal(t, "The Weeknd", track.Artist())
	assert.Empty(t, (&Track{}).Artist())
}

func TestQuery(t *testing.T) {
	assert.Equal(t, "Blinding Lights - The Weeknd", track.Query())
	assert.Equal(t, "Blinding Lights", (&Track{Title: "Blinding Lights"}).Query())
}

func TestPathFinal(t *testing.T) {
	assert.Equal(t, "The Weeknd - Blinding Lights.mp3", track.Path().Final())
	assert.Equal(t, "Orphan.mp3", (&Track{Title: "Orphan"}).Path().Final())
}

func TestPathDownload(t *testing.T) {
	assert.Contains(t, track.Path().Download(), "0vjijw4gluzamyd2vxmi3b.mp3")
}
