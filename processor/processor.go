package processor

import (
	"strconv"

	"github.com/bogem/id3v2/v2"
	"github.com/nk2552003/umd/entity"
	"github.com/nk2552003/umd/entity/id3"
)

// Do stamps the downloaded blob with the track's
// metadata so later runs recognize it as installed
func Do(track *entity.Track) error {
	tag, err := id3.Open(track.Path().Download(), id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.SetTitle(track.Title)
	tag.SetArtist(track.Artist())
	tag.SetAlbum(track.Album)
	if track.Year > 0 {
		tag.SetYear(strconv.Itoa(track.Year))
	}
	if track.Number > 0 {
		tag.AddTextFrame(tag.CommonID("Track number/Position in set"), id3v2.EncodingUTF8, strconv.Itoa(track.Number))
	}
	tag.SetTrackID(track.ID)
	tag.SetUpstreamURL(track.UpstreamURL)
	tag.SetArtworkURL(track.Artwork.URL)
	tag.SetDuration(strconv.Itoa(track.Duration))
	if len(track.Artwork.Data) > 0 {
		tag.SetAttachedPicture(track.Artwork.Data)
	}

	return tag.Save()
}
