package layout

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/GriffinCanCode/photobooth/internal/geometry"
	"github.com/GriffinCanCode/photobooth/internal/gray"
)

// Drawing helpers. All of them composite onto a premultiplied *image.RGBA
// canvas with the Over operator.

// bezier factor for approximating a quarter circle with one cubic
const kappa = 0.5522847

// shade is black at the given opacity.
func shade(alpha float64) color.NRGBA {
	return color.NRGBA{A: alpha8(alpha)}
}

func alpha8(a float64) uint8 {
	return uint8(math.Max(0, math.Min(1, a))*255 + 0.5)
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func fillOver(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// fillRoundRect fills r with rounded corners. The radius is clamped to half
// the shorter side.
func fillRoundRect(dst *image.RGBA, r image.Rectangle, radius float64, c color.Color) {
	w, h := float32(r.Dx()), float32(r.Dy())
	if w <= 0 || h <= 0 || !r.In(dst.Bounds()) {
		return
	}
	rr := float32(math.Min(radius, math.Min(float64(w), float64(h))/2))
	k := rr * (1 - kappa)

	var z vector.Rasterizer
	z.Reset(r.Dx(), r.Dy())
	z.MoveTo(rr, 0)
	z.LineTo(w-rr, 0)
	z.CubeTo(w-k, 0, w, k, w, rr)
	z.LineTo(w, h-rr)
	z.CubeTo(w, h-k, w-k, h, w-rr, h)
	z.LineTo(rr, h)
	z.CubeTo(k, h, 0, h-k, 0, h-rr)
	z.LineTo(0, rr)
	z.CubeTo(0, k, k, 0, rr, 0)
	z.ClosePath()
	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}

// strokeLine draws a straight segment of the given width as a filled quad.
func strokeLine(dst *image.RGBA, x0, y0, x1, y1, width float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	// half-width normal
	nx, ny := -dy/n*width/2, dx/n*width/2

	b := dst.Bounds()
	minX := math.Floor(math.Min(x0, x1) - width)
	minY := math.Floor(math.Min(y0, y1) - width)
	maxX := math.Ceil(math.Max(x0, x1) + width)
	maxY := math.Ceil(math.Max(y0, y1) + width)
	r := image.Rect(int(minX), int(minY), int(maxX), int(maxY))
	if !r.In(b) {
		return
	}

	pt := func(x, y float64) (float32, float32) { return float32(x - minX), float32(y - minY) }

	var z vector.Rasterizer
	z.Reset(r.Dx(), r.Dy())
	z.MoveTo(pt(x0+nx, y0+ny))
	z.LineTo(pt(x1+nx, y1+ny))
	z.LineTo(pt(x1-nx, y1-ny))
	z.LineTo(pt(x0-nx, y0-ny))
	z.ClosePath()
	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}

// strokeInside draws a frame of width w along the inner edge of r, without
// overlapping the corners.
func strokeInside(dst *image.RGBA, r image.Rectangle, w int, c color.Color) {
	if r.Dx() < 2*w || r.Dy() < 2*w {
		fillOver(dst, r, c)
		return
	}
	fillOver(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), c)
	fillOver(dst, image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), c)
	fillOver(dst, image.Rect(r.Min.X, r.Min.Y+w, r.Min.X+w, r.Max.Y-w), c)
	fillOver(dst, image.Rect(r.Max.X-w, r.Min.Y+w, r.Max.X, r.Max.Y-w), c)
}

// dropShadow paints a blurred black rectangle of r's size, shifted down by
// offY, beneath whatever is drawn at r afterwards.
func dropShadow(dst *image.RGBA, r image.Rectangle, blur float64, offY int, alpha float64) {
	sigma := blur / 2
	m := int(math.Ceil(3 * sigma))

	layer := image.NewNRGBA(image.Rect(0, 0, r.Dx()+2*m, r.Dy()+2*m))
	draw.Draw(layer, image.Rect(m, m, m+r.Dx(), m+r.Dy()), image.NewUniform(shade(alpha)), image.Point{}, draw.Src)
	soft := imaging.Blur(layer, sigma)

	at := soft.Bounds().Add(image.Pt(r.Min.X-m, r.Min.Y+offY-m))
	draw.Draw(dst, at, soft, image.Point{}, draw.Over)
}

// paperTint darkens the whole canvas with a linear black gradient running
// from the top-left corner (alpha a0) to the bottom-right corner (alpha a1).
func paperTint(dst *image.RGBA, a0, a1 float64) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	den := w*w + h*h
	if den == 0 {
		return
	}

	for y := 0; y < b.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()*4]
		fy := float64(y) + 0.5
		for x := 0; x < b.Dx(); x++ {
			t := ((float64(x)+0.5)*w + fy*h) / den
			t = math.Max(0, math.Min(1, t))
			a := float64(alpha8(a0+(a1-a0)*t)) / 255
			px := row[x*4 : x*4+4]
			// premultiplied black over
			px[0] = uint8(float64(px[0])*(1-a) + 0.5)
			px[1] = uint8(float64(px[1])*(1-a) + 0.5)
			px[2] = uint8(float64(px[2])*(1-a) + 0.5)
			px[3] = uint8(a*255 + float64(px[3])*(1-a) + 0.5)
		}
	}
}

// coverGray resamples the centered cover crop of src to exactly w×h and
// converts the result to grayscale.
func coverGray(src image.Image, w, h int) *image.NRGBA {
	sb := src.Bounds()
	crop := geometry.Cover(sb.Dx(), sb.Dy(), w, h).Offset(sb.Min.X, sb.Min.Y)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), src, crop.Image(), draw.Src, nil)
	return gray.Convert(out)
}
