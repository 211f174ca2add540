package layout

import (
	"context"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	apperr "github.com/GriffinCanCode/photobooth/internal/errors"
)

// Overlay is a static graphic that loads in the background. It resolves
// once; every Wait after that returns the same result.
type Overlay struct {
	path string
	done chan struct{}
	img  image.Image
	err  error
}

// PreloadOverlay starts loading the image at path and returns immediately.
func PreloadOverlay(path string) *Overlay {
	o := &Overlay{path: path, done: make(chan struct{})}
	go func() {
		defer close(o.done)
		img, err := imaging.Open(path)
		if err != nil {
			o.err = apperr.Wrapf(err, apperr.CodeOverlayMissing, "load overlay %s", path)
			slog.Debug("overlay not loaded", "path", path, "error", err)
			return
		}
		o.img = img
		slog.Debug("overlay loaded", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	}()
	return o
}

// StaticOverlay returns an already resolved overlay. A nil img behaves like
// a missing file.
func StaticOverlay(img image.Image) *Overlay {
	o := &Overlay{path: "<memory>", done: make(chan struct{}), img: img}
	if img == nil {
		o.err = apperr.New(apperr.CodeOverlayMissing, "no overlay image")
	}
	close(o.done)
	return o
}

// Wait blocks until the overlay has loaded or failed, or ctx ends. A nil
// Overlay reports OVERLAY_MISSING.
func (o *Overlay) Wait(ctx context.Context) (image.Image, error) {
	if o == nil {
		return nil, apperr.New(apperr.CodeOverlayMissing, "no overlay configured")
	}
	select {
	case <-o.done:
		return o.img, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Path returns the file the overlay was loaded from.
func (o *Overlay) Path() string {
	if o == nil {
		return ""
	}
	return o.path
}
