// Package webcam reads frames from a local camera through OpenCV
package webcam

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"gocv.io/x/gocv"

	"github.com/GriffinCanCode/photobooth/internal/camera"
	apperr "github.com/GriffinCanCode/photobooth/internal/errors"
)

// Webcam is a camera.Source backed by an OpenCV VideoCapture.
type Webcam struct {
	mu     sync.Mutex
	vc     *gocv.VideoCapture
	frame  gocv.Mat
	width  int
	height int
}

// Open opens the camera with the given device index and requests the ideal
// frame size. The device may negotiate a different size.
func Open(device, idealWidth, idealHeight int) (*Webcam, error) {
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, apperr.Wrapf(fmt.Errorf("%w: %v", camera.ErrUnavailable, err), apperr.CodeCameraUnavailable,
			"open camera %d", device)
	}
	if !vc.IsOpened() {
		_ = vc.Close()
		return nil, apperr.Wrapf(camera.ErrUnavailable, apperr.CodeCameraUnavailable, "camera %d not opened", device)
	}

	vc.Set(gocv.VideoCaptureFrameWidth, float64(idealWidth))
	vc.Set(gocv.VideoCaptureFrameHeight, float64(idealHeight))

	w := &Webcam{
		vc:     vc,
		frame:  gocv.NewMat(),
		width:  int(vc.Get(gocv.VideoCaptureFrameWidth)),
		height: int(vc.Get(gocv.VideoCaptureFrameHeight)),
	}
	slog.Info("camera opened", "device", device, "width", w.width, "height", w.height)
	return w, nil
}

// Frame grabs the current frame. An empty read maps to camera.ErrNoFrame.
func (w *Webcam) Frame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if ok := w.vc.Read(&w.frame); !ok || w.frame.Empty() {
		return nil, camera.ErrNoFrame
	}
	w.width, w.height = w.frame.Cols(), w.frame.Rows()

	img, err := w.frame.ToImage()
	if err != nil {
		return nil, fmt.Errorf("webcam: convert frame: %w", err)
	}
	return img, nil
}

// Size reports the negotiated frame size.
func (w *Webcam) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Close releases the frame buffer and the device.
func (w *Webcam) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.frame.Close()
	return w.vc.Close()
}

var _ camera.Source = (*Webcam)(nil)
