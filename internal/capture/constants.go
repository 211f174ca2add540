// Package capture turns live camera frames into grayscale still shots
package capture

// Capture constants
const (
	// Frame size used when the source has not reported one
	FallbackWidth  = 1280
	FallbackHeight = 720

	// Lossy encoding quality (1-100)
	DefaultJPEGQuality = 92

	// Vignette: transparent inside VignetteInner*min(w,h), VignetteAlpha black
	// beyond VignetteOuter*max(w,h), linear in between
	VignetteInner = 0.18
	VignetteOuter = 0.68
	VignetteAlpha = 0.28

	// Bounding box for per-shot preview thumbnails
	PreviewMaxWidth  = 320
	PreviewMaxHeight = 180
)
