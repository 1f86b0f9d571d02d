package storage

import (
	"bytes"
	"image"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	thumbMaxWidth = 640
	thumbQuality  = 80
)

// makeThumbnail decodes the original and re-encodes a scaled-down webp
// preview. Images already narrower than the target are re-encoded as-is.
func makeThumbnail(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > thumbMaxWidth {
		height = height * thumbMaxWidth / width
		width = thumbMaxWidth
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: thumbQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
