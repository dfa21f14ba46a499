package platform

import (
	"net/url"
	"strings"
)

type Kind int

const (
	// Query marks plain "title - artist" input which is
	// not a URL at all
	Query Kind = iota
	YouTube
	Spotify
	AppleMusic
	SoundCloud
	Generic
)

func (kind Kind) String() string {
	switch kind {
	case YouTube:
		return "youtube"
	case Spotify:
		return "spotify"
	case AppleMusic:
		return "apple music"
	case SoundCloud:
		return "soundcloud"
	case Generic:
		return "generic"
	default:
		return "query"
	}
}

// Detect classifies the input by URL host. Anything that
// does not parse as an http(s) URL is treated as a plain
// search query.
func Detect(input string) Kind {
	parsed, err := url.Parse(input)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return Query
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	switch {
	case host == "youtu.be" || host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		return YouTube
	case host == "open.spotify.com" || host == "spotify.com":
		return Spotify
	case host == "music.apple.com" || host == "itunes.apple.com":
		return AppleMusic
	case host == "soundcloud.com" || strings.HasSuffix(host, ".soundcloud.com"):
		return SoundCloud
	default:
		return Generic
	}
}

// ID extracts the trailing resource identifier of a
// platform URL, e.g. the track ID of a Spotify link
func ID(input string) string {
	parsed, err := url.Parse(input)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}
