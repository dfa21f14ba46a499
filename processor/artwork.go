package processor

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

const artworkSize = 500

type Artwork struct{}

// Apply normalizes an artwork blob to a square JPEG of
// bounded size, as oversized covers inflate every tagged
// file they get embedded into
func (Artwork) Apply(data []byte) ([]byte, error) {
	decoded, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := decoded.Bounds()
	if bounds.Dx() > artworkSize || bounds.Dy() > artworkSize {
		decoded = resize.Thumbnail(artworkSize, artworkSize, decoded, resize.Lanczos3)
	}

	var buffer bytes.Buffer
	if err := jpeg.Encode(&buffer, decoded, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
