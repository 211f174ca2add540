// Package booth runs the capture, compose and export sequence of a photo booth
package booth

import "time"

// Session timing
const (
	Countdown     = 3 // countdown starts here and ticks down to 1
	CountdownTick = 750 * time.Millisecond

	// Pause after the last tick. The card flow holds longer on "Smile…".
	CountdownHold     = 180 * time.Millisecond
	CardCountdownHold = 520 * time.Millisecond

	FlashDelay   = 120 * time.Millisecond // flash cue to capture
	SettleDelay  = 60 * time.Millisecond  // after a shot lands
	ShotGap      = 420 * time.Millisecond // before the next countdown
	DevelopDelay = 850 * time.Millisecond // card flow only

	// Export animation, both measured from its start. The file is saved
	// before the booth resets.
	DownloadDelay = 1750 * time.Millisecond
	ResetDelay    = 2300 * time.Millisecond

	// Fade before a retake on the card flow
	RetakeFade = 300 * time.Millisecond
)

// Status lines shown to the guest
const (
	StatusReady       = "Ready? Smile."
	StatusGetReady    = "Get ready… 3 photos coming up."
	StatusPhoto       = "Photo %d of %d"
	StatusDeveloping  = "Developing your film…"
	StatusStripBuild  = "Building your strip…"
	StatusCardBuild   = "Building your card…"
	StatusStripDone   = "Your strip is ready. Press PRINT PHOTO."
	StatusFailed      = "Something went wrong. Please try again."
	StatusResetting   = "Resetting the Portrait Room…"
	StatusCameraError = "Camera blocked. Please allow camera permission and reload."
)

const (
	// EventBuffer is the capacity of the events channel; events past it
	// are dropped rather than blocking the session.
	EventBuffer = 64

	// JournalSize is how many finished prints the booth remembers.
	JournalSize = 20
)
