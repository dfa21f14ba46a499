package entity

import (
	"fmt"
	"path"
	"strings"

	"github.com/gosimple/slug"
	"github.com/nk2552003/umd/util"
)

type Artwork struct {
	URL  string
	Data []byte
}

type Track struct {
	ID          string
	Title       string
	Artists     []string
	Album       string
	Artwork     Artwork
	Duration    int // in seconds
	Number      int // track number within the album
	Year        int
	UpstreamURL string // URL to the upstream blob the song's been downloaded from
}

type TrackPath struct {
	track *Track
}

const (
	TrackFormat   = "mp3"
	ArtworkFormat = "jpg"
)

// certain track titles include the variant description,
// this functions aims to strip out that part:
// > Title: Name - Acoustic
// > Song:  Name
func (track *Track) Song() (song string) {
	song = track.Title
	song = strings.Split(song+" - ", " - ")[0]
	song = strings.Split(song+" (", " (")[0]
	song = strings.Split(song+" [", " [")[0]
	return
}

// Artist returns the primary artist, or an
// empty string for artist-less tracks
func (track *Track) Artist() string {
	if len(track.Artists) == 0 {
		return ""
	}
	return track.Artists[0]
}

// Query composes the search query handed to
// the candidate provider: "<title> - <artist>"
func (track *Track) Query() string {
	if track.Artist() == "" {
		return track.Title
	}
	return fmt.Sprintf("%s - %s", track.Title, track.Artist())
}

func (track *Track) Path() TrackPath {
	return TrackPath{track}
}

func (trackPath TrackPath) Final() string {
	title := trackPath.track.Title
	if artist := trackPath.track.Artist(); artist != "" {
		title = fmt.Sprintf("%s - %s", strings.ReplaceAll(artist, ".", ""), title)
	}
	return util.LegalizeFilename(fmt.Sprintf("%s.%s", title, TrackFormat))
}

func (trackPath TrackPath) Download() string {
	return util.CacheFile(
		util.LegalizeFilename(fmt.Sprintf("%s.%s", slug.Make(trackPath.track.ID), TrackFormat)),
	)
}

func (trackPath TrackPath) Artwork() string {
	return util.CacheFile(
		util.LegalizeFilename(fmt.Sprintf("%s.%s", slug.Make(path.Base(trackPath.track.Artwork.URL)), ArtworkFormat)),
	)
}
