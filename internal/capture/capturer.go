package capture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/GriffinCanCode/photobooth/internal/camera"
	apperr "github.com/GriffinCanCode/photobooth/internal/errors"
	"github.com/GriffinCanCode/photobooth/internal/gray"
	"github.com/GriffinCanCode/photobooth/internal/trace"
)

// Capturer grabs single frames from a camera source and turns them into shots.
type Capturer struct {
	source  camera.Source
	quality int
	now     func() time.Time
}

// NewCapturer creates a capturer reading from src. A quality outside 1-100
// falls back to DefaultJPEGQuality.
func NewCapturer(src camera.Source, quality int) *Capturer {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &Capturer{source: src, quality: quality, now: time.Now}
}

// Capture reads the current frame, mirrors it, converts it to grayscale,
// applies the vignette and encodes it. A source without a frame yields a
// black shot rather than an error.
func (c *Capturer) Capture(ctx context.Context) (Shot, error) {
	ctx, span := trace.StartSpan(ctx, "capture_frame")
	defer span.End()
	log := trace.Logger(ctx)

	frame, err := c.source.Frame(ctx)

	// A webcam reports its size only after the first read; until then the
	// frame itself is the best guide.
	w, h := c.source.Size()
	if w <= 0 || h <= 0 {
		w, h = FallbackWidth, FallbackHeight
		if err == nil && frame != nil && !frame.Bounds().Empty() {
			w, h = frame.Bounds().Dx(), frame.Bounds().Dy()
		}
	}

	var buf *image.NRGBA
	switch {
	case errors.Is(err, camera.ErrNoFrame) || (err == nil && frame == nil):
		log.Warn("camera has no frame yet, capturing black", "width", w, "height", h)
		buf = imaging.New(w, h, color.NRGBA{A: 255})
	case err != nil:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Shot{}, ctxErr
		}
		return Shot{}, apperr.Wrap(err, apperr.CodeCaptureFailed, "read camera frame")
	default:
		buf = mirror(frame, w, h)
	}

	gray.Convert(buf)
	Vignette(buf)

	var out bytes.Buffer
	if err := imaging.Encode(&out, buf, imaging.JPEG, imaging.JPEGQuality(c.quality)); err != nil {
		return Shot{}, apperr.Wrap(err, apperr.CodeCaptureFailed, "encode shot")
	}

	shot := Shot{
		Data:    out.Bytes(),
		Format:  "jpeg",
		Width:   w,
		Height:  h,
		Preview: preview(buf),
		TakenAt: c.now(),
	}
	span.SetAttr("bytes", len(shot.Data))
	span.End()
	log.Debug("frame captured", "span", span, "width", w, "height", h)
	return shot, nil
}

// mirror draws frame flipped horizontally onto a w×h buffer, scaling it if
// the frame does not match the working size.
func mirror(frame image.Image, w, h int) *image.NRGBA {
	b := frame.Bounds()
	if b.Dx() != w || b.Dy() != h {
		frame = imaging.Resize(frame, w, h, imaging.Linear)
	}
	return imaging.FlipH(frame)
}

func preview(img *image.NRGBA) *image.NRGBA {
	thumb := resize.Thumbnail(PreviewMaxWidth, PreviewMaxHeight, img, resize.Bilinear)
	return imaging.Clone(thumb)
}
