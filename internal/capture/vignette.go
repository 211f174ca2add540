package capture

import (
	"image"
	"math"
)

// Vignette darkens img toward its edges with a radial black overlay,
// composited source-over in place.
func Vignette(img *image.NRGBA) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}

	cx, cy := float64(w)/2, float64(h)/2
	r0 := VignetteInner * float64(min(w, h))
	r1 := VignetteOuter * float64(max(w, h))
	span := r1 - r0

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		dy := float64(y) + 0.5 - cy
		for x := 0; x < w; x++ {
			dx := float64(x) + 0.5 - cx
			a := overlayAlpha(math.Hypot(dx, dy), r0, span)
			if a == 0 {
				continue
			}
			blackOver(row[x*4:x*4+4], a)
		}
	}
}

// overlayAlpha maps a distance from the centre to the gradient's alpha.
func overlayAlpha(d, r0, span float64) float64 {
	if d <= r0 {
		return 0
	}
	if span <= 0 || d >= r0+span {
		return VignetteAlpha
	}
	return (d - r0) / span * VignetteAlpha
}

// blackOver composites black at alpha a over one non-premultiplied pixel.
func blackOver(px []uint8, a float64) {
	da := float64(px[3]) / 255
	outA := a + da*(1-a)
	if outA == 0 {
		return
	}
	k := da * (1 - a) / outA
	px[0] = uint8(float64(px[0])*k + 0.5)
	px[1] = uint8(float64(px[1])*k + 0.5)
	px[2] = uint8(float64(px[2])*k + 0.5)
	px[3] = uint8(outA*255 + 0.5)
}
