package id3

import (
	"github.com/bogem/id3v2/v2"
)

const (
	frameTrackID     = "UMD_TRACK_ID"
	frameUpstreamURL = "UMD_UPSTREAM_URL"
	frameArtworkURL  = "UMD_ARTWORK_URL"
	frameDuration    = "UMD_DURATION"
)

// Tag wraps an ID3v2 tag adding accessors for the
// custom frames this tool relies on to recognize
// tracks it installed in previous runs
type Tag struct {
	*id3v2.Tag
}

func Open(path string, opts id3v2.Options) (*Tag, error) {
	tag, err := id3v2.Open(path, opts)
	if err != nil {
		return nil, err
	}
	return &Tag{tag}, nil
}

func (tag *Tag) userDefinedText(description string) string {
	for _, framer := range tag.GetFrames(tag.CommonID("User defined text information frame")) {
		frame, ok := framer.(id3v2.UserDefinedTextFrame)
		if !ok {
			continue
		}
		if frame.Description == description {
			return frame.Value
		}
	}
	return ""
}

func (tag *Tag) setUserDefinedText(description, value string) {
	tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: description,
		Value:       value,
	})
}

func (tag *Tag) TrackID() string {
	return tag.userDefinedText(frameTrackID)
}

func (tag *Tag) SetTrackID(id string) {
	tag.setUserDefinedText(frameTrackID, id)
}

func (tag *Tag) UpstreamURL() string {
	return tag.userDefinedText(frameUpstreamURL)
}

func (tag *Tag) SetUpstreamURL(url string) {
	tag.setUserDefinedText(frameUpstreamURL, url)
}

func (tag *Tag) ArtworkURL() string {
	return tag.userDefinedText(frameArtworkURL)
}

func (tag *Tag) SetArtworkURL(url string) {
	tag.setUserDefinedText(frameArtworkURL, url)
}

func (tag *Tag) Duration() string {
	return tag.userDefinedText(frameDuration)
}

func (tag *Tag) SetDuration(duration string) {
	tag.setUserDefinedText(frameDuration, duration)
}

func (tag *Tag) SetAttachedPicture(data []byte) {
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Picture:     data,
	})
}
