package camera

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/disintegration/imaging"
)

// Still is a source that always returns the same image.
type Still struct {
	img image.Image
}

// NewStill creates a source serving img on every read.
func NewStill(img image.Image) *Still {
	return &Still{img: img}
}

// Solid creates a still source filled with one colour.
func Solid(width, height int, c color.Color) *Still {
	return NewStill(imaging.New(width, height, c))
}

func (s *Still) Frame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.img, nil
}

func (s *Still) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Still) Close() error { return nil }

// Sequence cycles through a fixed list of frames, one per read.
type Sequence struct {
	mu     sync.Mutex
	frames []image.Image
	next   int
}

// NewSequence creates a source that returns frames in order, wrapping around.
func NewSequence(frames ...image.Image) *Sequence {
	return &Sequence{frames: frames}
}

// LoadSequence opens image files from disk as a frame sequence.
func LoadSequence(paths ...string) (*Sequence, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("camera: no frame files given: %w", ErrUnavailable)
	}
	frames := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := imaging.Open(p, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("camera: open frame %s: %w", p, err)
		}
		frames = append(frames, img)
	}
	return NewSequence(frames...), nil
}

func (s *Sequence) Frame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return nil, ErrNoFrame
	}
	img := s.frames[s.next%len(s.frames)]
	s.next++
	return img, nil
}

// Size reports the size of the frame the next read will return.
func (s *Sequence) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.frames) == 0 {
		return 0, 0
	}
	b := s.frames[s.next%len(s.frames)].Bounds()
	return b.Dx(), b.Dy()
}

func (s *Sequence) Close() error { return nil }

// Blank is a source whose feed never delivers a frame.
type Blank struct {
	width, height int
}

// NewBlank creates a source that reports the given size but has no frames.
func NewBlank(width, height int) *Blank {
	return &Blank{width: width, height: height}
}

func (b *Blank) Frame(context.Context) (image.Image, error) { return nil, ErrNoFrame }
func (b *Blank) Size() (int, int)                           { return b.width, b.height }
func (b *Blank) Close() error                               { return nil }
