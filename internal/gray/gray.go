// Package gray converts pixel buffers to grayscale using BT.709 luma weights
package gray

import (
	"image"
)

// BT.709 luma weights scaled by lumaScale so the floor is exact in integer math.
const (
	weightR   = 2126
	weightG   = 7152
	weightB   = 722
	lumaScale = 10000
)

// Luma returns floor(0.2126*r + 0.7152*g + 0.0722*b).
func Luma(r, g, b uint8) uint8 {
	return uint8((weightR*uint32(r) + weightG*uint32(g) + weightB*uint32(b)) / lumaScale)
}

// Convert replaces the R, G and B channels of every pixel in img with its luma,
// leaving alpha untouched. The buffer is mutated in place and returned.
func Convert(img *image.NRGBA) *image.NRGBA {
	if img == nil {
		return nil
	}
	b := img.Rect
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		for i := 0; i < len(row); i += 4 {
			l := Luma(row[i], row[i+1], row[i+2])
			row[i], row[i+1], row[i+2] = l, l, l
		}
	}
	return img
}

// IsGray reports whether every pixel of img has equal R, G and B channels.
func IsGray(img image.Image) bool {
	if n, ok := img.(*image.NRGBA); ok {
		return isGrayNRGBA(n)
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != g || g != bl {
				return false
			}
		}
	}
	return true
}

func isGrayNRGBA(img *image.NRGBA) bool {
	rowLen := img.Rect.Dx() * 4
	for y := 0; y < img.Rect.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		for i := 0; i < len(row); i += 4 {
			if row[i] != row[i+1] || row[i+1] != row[i+2] {
				return false
			}
		}
	}
	return true
}
