// Package geometry computes aspect-preserving cover and contain rectangles
package geometry

import (
	"fmt"
	"image"
	"math"
)

// Rect is an integer rectangle given by origin and size.
type Rect struct {
	X, Y, W, H int
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inset shrinks r by n pixels on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// FromImage converts an image.Rectangle to a Rect.
func FromImage(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Cover returns the largest centered source crop whose aspect ratio matches the
// destination, so that scaling it to dstW×dstH fills the destination.
func Cover(srcW, srcH, dstW, dstH int) Rect {
	mustPositive(srcW, srcH, dstW, dstH)

	srcRatio := float64(srcW) / float64(srcH)
	dstRatio := float64(dstW) / float64(dstH)

	if srcRatio > dstRatio {
		sh := srcH
		sw := round(float64(sh) * dstRatio)
		return Rect{X: round(float64(srcW-sw) / 2), Y: 0, W: sw, H: sh}
	}
	sw := srcW
	sh := round(float64(sw) / dstRatio)
	return Rect{X: 0, Y: round(float64(srcH-sh) / 2), W: sw, H: sh}
}

// Contain returns the largest centered destination rectangle that holds the
// whole source at its own aspect ratio.
func Contain(srcW, srcH, dstW, dstH int) Rect {
	mustPositive(srcW, srcH, dstW, dstH)

	srcRatio := float64(srcW) / float64(srcH)
	dstRatio := float64(dstW) / float64(dstH)

	if srcRatio > dstRatio {
		dh := round(float64(dstW) / srcRatio)
		return Rect{X: 0, Y: round(float64(dstH-dh) / 2), W: dstW, H: dh}
	}
	dw := round(float64(dstH) * srcRatio)
	return Rect{X: round(float64(dstW-dw) / 2), Y: 0, W: dw, H: dstH}
}

// round matches JavaScript Math.round: halves go toward positive infinity.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func mustPositive(srcW, srcH, dstW, dstH int) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		panic(fmt.Sprintf("geometry: dimensions must be positive (src %dx%d, dst %dx%d)", srcW, srcH, dstW, dstH))
	}
}
