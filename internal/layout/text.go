package layout

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var captionFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// faceCache hands out one font.Face per point size. Faces are not safe for
// concurrent use, so callers hold the owning composer's lock while drawing.
type faceCache struct {
	faces map[float64]font.Face
}

func (c *faceCache) face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	fnt, err := captionFont()
	if err != nil {
		return nil, fmt.Errorf("parse caption font: %w", err)
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("create %.0fpx face: %w", size, err)
	}
	if c.faces == nil {
		c.faces = make(map[float64]font.Face)
	}
	c.faces[size] = f
	return f, nil
}

// drawCentered draws s horizontally centered on cx with its baseline at y.
func drawCentered(dst *image.RGBA, face font.Face, s string, cx, y float64, c color.Color) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	width := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(cx*64) - width/2,
		Y: fixed.Int26_6(y * 64),
	}
	d.DrawString(s)
}
