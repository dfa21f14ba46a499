package spotify

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/nk2552003/umd/entity"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

type Client struct {
	*spotify.Client
}

// Authenticate builds an API client through the client
// credentials flow: track lookups need no user consent,
// only an application keypair from the environment
func Authenticate(ctx context.Context) (*Client, error) {
	id, secret := os.Getenv("SPOTIFY_ID"), os.Getenv("SPOTIFY_KEY")
	if id == "" || secret == "" {
		return nil, errors.New("SPOTIFY_ID and SPOTIFY_KEY environment variables must be set")
	}

	token, err := (&clientcredentials.Config{
		ClientID:     id,
		ClientSecret: secret,
		TokenURL:     spotifyauth.TokenURL,
	}).Token(ctx)
	if err != nil {
		return nil, err
	}

	return &Client{spotify.New(spotifyauth.New().Client(ctx, token))}, nil
}

// Track resolves a Spotify track ID to the local model
func (client *Client) Track(ctx context.Context, id string) (*entity.Track, error) {
	track, err := client.GetTrack(ctx, spotify.ID(id))
	if err != nil {
		return nil, err
	}
	return translate(track), nil
}

func translate(track *spotify.FullTrack) *entity.Track {
	var artists []string
	for _, artist := range track.Artists {
		artists = append(artists, artist.Name)
	}

	var artwork entity.Artwork
	if len(track.Album.Images) > 0 {
		artwork.URL = track.Album.Images[0].URL
	}

	return &entity.Track{
		ID:       track.ID.String(),
		Title:    track.Name,
		Artists:  artists,
		Album:    track.Album.Name,
		Artwork:  artwork,
		Duration: int(track.Duration / 1000),
		Number:   int(track.TrackNumber),
		Year:     releaseYear(track.Album.ReleaseDate),
	}
}

func releaseYear(date string) int {
	year, err := strconv.Atoi(strings.SplitN(date, "-", 2)[0])
	if err != nil {
		return 0
	}
	return year
}
