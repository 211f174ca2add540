package booth

import (
	"context"
	"fmt"
	"image"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/GriffinCanCode/photobooth/internal/capture"
	"github.com/GriffinCanCode/photobooth/internal/config"
	apperr "github.com/GriffinCanCode/photobooth/internal/errors"
	"github.com/GriffinCanCode/photobooth/internal/layout"
	"github.com/GriffinCanCode/photobooth/internal/syncx"
	"github.com/GriffinCanCode/photobooth/internal/trace"
)

// Capturer takes a single shot.
type Capturer interface {
	Capture(ctx context.Context) (capture.Shot, error)
}

// Config wires a booth together. Clock, Saver and Journal are optional.
type Config struct {
	Capturer  Capturer
	Composer  layout.Composer
	Saver     Saver
	Clock     Clock
	Variant   string // config.VariantStrip or config.VariantGrid
	Script    Script // zero value means ScriptFor(Variant)
	ShareText string
	Journal   *Journal
}

type session struct {
	id        string
	shots     []capture.Shot
	busy      bool
	state     State
	output    *image.NRGBA
	cameraErr error // set once the camera is known to be unusable
}

// Booth runs one session at a time: three timed shots, a composed print,
// and an animated export. Any method may be called from any goroutine; an
// operation that finds the booth busy changes nothing.
type Booth struct {
	capturer Capturer
	composer layout.Composer
	saver    Saver
	clock    Clock
	variant  string
	script   Script
	share    string
	journal  *Journal

	state  *syncx.RWGuard[session]
	events chan Event
}

// New creates an idle booth.
func New(cfg Config) *Booth {
	b := &Booth{
		capturer: cfg.Capturer,
		composer: cfg.Composer,
		saver:    cfg.Saver,
		clock:    cfg.Clock,
		variant:  cfg.Variant,
		script:   cfg.Script,
		share:    cfg.ShareText,
		journal:  cfg.Journal,
		state:    syncx.NewGuard(session{state: StateIdle}),
		events:   make(chan Event, EventBuffer),
	}
	if b.variant == "" {
		b.variant = config.VariantStrip
	}
	if b.script == (Script{}) {
		b.script = ScriptFor(b.variant)
	}
	if b.clock == nil {
		b.clock = SystemClock()
	}
	if b.saver == nil {
		b.saver = DirSaver{Dir: "."}
	}
	if b.journal == nil {
		b.journal = NewJournal(JournalSize)
	}
	return b
}

// Events returns the channel of UI events. Sends never block; events are
// dropped while the channel is full.
func (b *Booth) Events() <-chan Event {
	return b.events
}

// ShareText returns the text offered by the copy-share action.
func (b *Booth) ShareText() string { return b.share }

// Journal returns the prints made by this booth.
func (b *Booth) Journal() *Journal { return b.journal }

// Snapshot reports the current session state.
func (b *Booth) Snapshot() Snapshot {
	return syncx.View(b.state, func(s *session) Snapshot {
		return Snapshot{
			SessionID: s.id,
			State:     s.state,
			Busy:      s.busy,
			Shots:     len(s.shots),
			HasOutput: s.output != nil,
			Disabled:  s.cameraErr != nil,
		}
	})
}

// Shots returns the shots of the current session.
func (b *Booth) Shots() []capture.Shot {
	return syncx.View(b.state, func(s *session) []capture.Shot { return slices.Clone(s.shots) })
}

// Output returns the last composed canvas, which is the empty layout while
// no session has finished.
func (b *Booth) Output() *image.NRGBA {
	return syncx.View(b.state, func(s *session) *image.NRGBA { return s.output })
}

// Prepare builds the empty layout so a preview exists before the first
// session.
func (b *Booth) Prepare(ctx context.Context) error {
	if !b.state.WriteIf(notBusy, func(s *session) { s.busy = true }) {
		return errBusy()
	}
	defer b.release()

	ctx, _ = trace.EnsureContext(ctx)
	if err := b.composeEmpty(ctx); err != nil {
		return err
	}
	trace.Logger(ctx).Debug("empty layout ready", "layout", b.variant)
	b.status(b.idleStatus())
	return nil
}

// CameraFailed disables the booth after the camera could not be opened.
// The guest sees the camera message and Start is refused from then on.
func (b *Booth) CameraFailed(ctx context.Context, err error) {
	if err == nil {
		return
	}
	b.state.Write(func(s *session) { s.cameraErr = err })

	ctx, _ = trace.EnsureContext(ctx)
	trace.Logger(ctx).Error("camera unavailable, start disabled", "error", err)
	b.status(StatusCameraError)
	b.emit(Event{Kind: EventError, Err: err})
}

// Start runs a capture session: three countdowns and shots, then the
// composed print. On failure the partial session is discarded. Once the
// camera has failed, Start returns CAMERA_UNAVAILABLE without capturing.
func (b *Booth) Start(ctx context.Context) error {
	id := uuid.NewString()
	var camErr error
	if !b.state.WriteIf(
		func(s *session) bool {
			camErr = s.cameraErr
			return !s.busy && s.cameraErr == nil
		},
		func(s *session) {
			s.id = id
			s.busy = true
			s.shots = nil
			s.output = nil
			s.state = StateCapturing
		}) {
		if camErr != nil {
			return apperr.Wrap(camErr, apperr.CodeCameraUnavailable, "camera unavailable")
		}
		return errBusy()
	}
	defer b.release()

	ctx = trace.WithSession(ctx, id)
	ctx, span := trace.StartSpan(ctx, "session")
	defer span.End()
	log := trace.Logger(ctx)

	log.Info("session started", "layout", b.variant)
	b.emit(Event{Kind: EventReset})
	b.status(StatusGetReady)

	if err := b.run(ctx); err != nil {
		camLost := apperr.IsCode(err, apperr.CodeCameraUnavailable)
		b.state.Write(func(s *session) {
			s.shots = nil
			s.output = nil
			s.state = StateIdle
			if camLost {
				s.cameraErr = err
			}
		})
		log.Error("session failed", "error", err)
		if camLost {
			b.status(StatusCameraError)
		} else {
			b.status(StatusFailed)
		}
		b.emit(Event{Kind: EventError, Err: err})
		b.emit(Event{Kind: EventReset})
		return apperr.Wrap(err, apperr.CodeSessionFailed, "capture session")
	}

	span.End()
	log.Info("session ready", "span", span)
	return nil
}

func (b *Booth) run(ctx context.Context) error {
	for i := 1; i <= layout.MaxShots; i++ {
		b.status(fmt.Sprintf(StatusPhoto, i, layout.MaxShots))
		if err := b.countdown(ctx); err != nil {
			return err
		}

		b.emit(Event{Kind: EventFlash})
		if err := b.wait(ctx, FlashDelay); err != nil {
			return err
		}

		shot, err := b.capturer.Capture(ctx)
		if err != nil {
			return err
		}
		b.state.Write(func(s *session) { s.shots = append(s.shots, shot) })
		b.emit(Event{Kind: EventShot, Shot: i, Preview: shot.Preview})

		if err := b.wait(ctx, SettleDelay); err != nil {
			return err
		}
		if err := b.wait(ctx, ShotGap); err != nil {
			return err
		}
	}

	b.state.Write(func(s *session) { s.state = StateComposing })
	if b.script.Develop > 0 {
		b.status(StatusDeveloping)
		if err := b.wait(ctx, b.script.Develop); err != nil {
			return err
		}
	}

	b.status(b.script.Building)
	out, err := b.composer.Compose(ctx, b.Shots())
	if err != nil {
		return err
	}
	b.state.Write(func(s *session) {
		s.output = out
		s.state = StateReady
	})
	b.status(b.script.Done)
	b.emit(Event{Kind: EventComposed})
	return nil
}

func (b *Booth) countdown(ctx context.Context) error {
	for n := Countdown; n >= 1; n-- {
		b.emit(Event{Kind: EventCountdown, Text: strconv.Itoa(n)})
		if err := b.wait(ctx, CountdownTick); err != nil {
			return err
		}
	}
	b.emit(Event{Kind: EventCountdown, Text: b.script.HoldText})
	if err := b.wait(ctx, b.script.Hold); err != nil {
		return err
	}
	b.emit(Event{Kind: EventCountdown})
	return nil
}

// Export rebuilds the print, plays the eject animation and saves the file
// partway through it. When the animation ends the booth resets. It returns
// the saved path.
func (b *Booth) Export(ctx context.Context) (string, error) {
	var (
		id    string
		shots []capture.Shot
	)
	ok := b.state.WriteIf(
		func(s *session) bool { return !s.busy && s.state == StateReady },
		func(s *session) {
			s.busy = true
			s.state = StateExporting
			id = s.id
			shots = slices.Clone(s.shots)
		})
	if !ok {
		if b.Snapshot().Busy {
			return "", errBusy()
		}
		return "", apperr.New(apperr.CodeNotReady, "nothing to print yet")
	}
	defer b.release()

	ctx = trace.WithSession(ctx, id)
	ctx, span := trace.StartSpan(ctx, "export")
	defer span.End()
	log := trace.Logger(ctx)

	out, err := b.composer.Compose(ctx, shots)
	if err != nil {
		return "", b.exportFailed(ctx, err, "rebuild print")
	}
	b.state.Write(func(s *session) { s.output = out })

	b.emit(Event{Kind: EventEjecting})
	if err := b.wait(ctx, DownloadDelay); err != nil {
		return "", b.exportFailed(ctx, err, "export interrupted")
	}

	path, err := b.saver.Save(ctx, b.composer.Filename(), out)
	if err != nil {
		return "", b.exportFailed(ctx, err, "save print")
	}
	b.journal.Add(Print{SessionID: id, Path: path, Layout: b.variant, At: b.clock.Now()})
	b.emit(Event{Kind: EventSaved, Path: path})

	if err := b.wait(ctx, ResetDelay-DownloadDelay); err != nil {
		log.Debug("eject animation cut short", "error", err)
	}
	b.emit(Event{Kind: EventEjected})
	b.clear(ctx)

	span.SetAttr("path", path)
	span.End()
	log.Info("print exported", "span", span)
	return path, nil
}

func (b *Booth) exportFailed(ctx context.Context, err error, msg string) error {
	b.state.Write(func(s *session) { s.state = StateReady })
	trace.Logger(ctx).Error("export failed", "error", err)
	b.emit(Event{Kind: EventError, Err: err})
	return apperr.Wrap(err, apperr.CodeExportFailed, msg)
}

// Reset is the retake action: it drops the session's shots and previews
// and returns to idle.
func (b *Booth) Reset(ctx context.Context) error {
	if !b.state.WriteIf(notBusy, func(s *session) { s.busy = true }) {
		return errBusy()
	}
	defer b.release()

	ctx, _ = trace.EnsureContext(ctx)
	if b.script.RetakeFade > 0 {
		b.status(StatusResetting)
		if err := b.wait(ctx, b.script.RetakeFade); err != nil {
			return err
		}
	}
	b.clear(ctx)
	return nil
}

// clear empties the session and shows the empty layout again.
func (b *Booth) clear(ctx context.Context) {
	b.state.Write(func(s *session) {
		s.shots = nil
		s.output = nil
		s.state = StateIdle
	})
	b.emit(Event{Kind: EventReset})
	if err := b.composeEmpty(ctx); err != nil {
		trace.Logger(ctx).Warn("empty layout not rebuilt", "error", err)
	}
	b.status(b.idleStatus())
}

// idleStatus is the status line of an idle booth.
func (b *Booth) idleStatus() string {
	if syncx.View(b.state, func(s *session) bool { return s.cameraErr != nil }) {
		return StatusCameraError
	}
	return StatusReady
}

func (b *Booth) composeEmpty(ctx context.Context) error {
	out, err := b.composer.Compose(ctx, nil)
	if err != nil {
		return err
	}
	b.state.Write(func(s *session) { s.output = out })
	return nil
}

func (b *Booth) release() {
	b.state.Write(func(s *session) { s.busy = false })
}

// wait blocks for d on the booth clock, or until ctx ends.
func (b *Booth) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	select {
	case <-b.clock.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Booth) status(text string) {
	b.emit(Event{Kind: EventStatus, Text: text})
}

func (b *Booth) emit(e Event) {
	e.At = b.clock.Now()
	select {
	case b.events <- e:
	default:
	}
}

func notBusy(s *session) bool { return !s.busy }

func errBusy() error {
	return apperr.New(apperr.CodeSessionBusy, "booth is busy")
}
