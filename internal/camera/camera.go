// Package camera provides live and synthetic video sources for the booth
package camera

import (
	"context"
	"errors"
	"image"
)

var (
	// ErrNoFrame is returned when a source has not produced a frame yet.
	ErrNoFrame = errors.New("camera: no frame available")

	// ErrUnavailable is returned when no camera can be opened (no device or
	// permission denied).
	ErrUnavailable = errors.New("camera: unavailable")
)

// Source yields the current frame of a video feed.
type Source interface {
	// Frame returns the most recent frame at the source's native size.
	Frame(ctx context.Context) (image.Image, error)
	// Size reports the native frame size, or zeros if it is not known yet.
	Size() (width, height int)
	Close() error
}
