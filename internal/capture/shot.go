package capture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
)

// Shot is one captured, grayscale, encoded still. It is immutable once built.
type Shot struct {
	Data    []byte // encoded image
	Format  string // "jpeg"
	Width   int
	Height  int
	Preview *image.NRGBA
	TakenAt time.Time
}

// DataURI renders the encoded shot as a data URI.
func (s Shot) DataURI() string {
	return "data:image/" + s.Format + ";base64," + base64.StdEncoding.EncodeToString(s.Data)
}

// Decode returns the shot's pixels.
func (s Shot) Decode() (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(s.Data))
	if err != nil {
		return nil, fmt.Errorf("decode shot: %w", err)
	}
	return imaging.Clone(img), nil
}
