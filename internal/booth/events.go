package booth

import (
	"fmt"
	"image"
	"time"
)

// State is a step of the booth's session flow.
type State int

const (
	StateIdle State = iota
	StateCapturing
	StateComposing
	StateReady
	StateExporting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateComposing:
		return "composing"
	case StateReady:
		return "ready"
	case StateExporting:
		return "exporting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// EventKind identifies what a UI should do with an Event.
type EventKind string

const (
	EventStatus    EventKind = "status"    // new status line in Text
	EventCountdown EventKind = "countdown" // countdown label in Text, "" hides it
	EventFlash     EventKind = "flash"
	EventShot      EventKind = "shot" // Shot and Preview are set
	EventComposed  EventKind = "composed"
	EventEjecting  EventKind = "ejecting" // export animation started
	EventSaved     EventKind = "saved"    // Path is set
	EventEjected   EventKind = "ejected"  // export animation finished
	EventReset     EventKind = "reset"    // shots and previews cleared
	EventError     EventKind = "error"    // Err is set
)

// Event tells the UI layer about progress in the booth.
type Event struct {
	Kind    EventKind
	Text    string
	Shot    int // 1-based
	Preview *image.NRGBA
	Path    string
	Err     error
	At      time.Time
}

// Snapshot is a point-in-time view of the session.
type Snapshot struct {
	SessionID string
	State     State
	Busy      bool
	Shots     int
	HasOutput bool
	Disabled  bool // camera unavailable, Start is refused
}
