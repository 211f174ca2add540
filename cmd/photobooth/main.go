// Photo booth kiosk - runs capture sessions against a camera and writes the
// composed prints to disk
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/GriffinCanCode/photobooth/internal/booth"
	"github.com/GriffinCanCode/photobooth/internal/camera"
	"github.com/GriffinCanCode/photobooth/internal/camera/webcam"
	"github.com/GriffinCanCode/photobooth/internal/capture"
	"github.com/GriffinCanCode/photobooth/internal/config"
	"github.com/GriffinCanCode/photobooth/internal/layout"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML configuration file")
		variant    = flag.String("layout", "", "layout variant: strip or grid")
		frames     = flag.String("frames", "", "comma-separated images to use instead of a camera")
		outDir     = flag.String("out", "", "directory for finished prints")
		device     = flag.Int("device", -1, "camera device index")
		sessions   = flag.Int("sessions", 1, "number of sessions to run before exiting")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "photobooth:", err)
		os.Exit(1)
	}
	if *variant != "" {
		cfg.Layout.Variant = strings.ToLower(*variant)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *device >= 0 {
		cfg.Camera.Device = *device
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "photobooth:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel(cfg.Logging.Level)}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *frames, *sessions); err != nil {
		slog.Error("photobooth stopped", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load(), nil
	}
	return config.LoadFile(path)
}

func logLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func openSource(cfg *config.Config, frames string) (camera.Source, error) {
	if frames != "" {
		return camera.LoadSequence(strings.Split(frames, ",")...)
	}
	return webcam.Open(cfg.Camera.Device, cfg.Camera.IdealWidth, cfg.Camera.IdealHeight)
}

func run(ctx context.Context, cfg *config.Config, frames string, sessions int) error {
	var (
		monitor  *camera.Monitor
		capturer booth.Capturer
	)
	src, camErr := openSource(cfg, frames)
	if camErr != nil && frames != "" {
		return camErr
	}
	if camErr == nil {
		monitor = camera.NewMonitor(src)
		defer func() { _ = monitor.Close() }()
		capturer = capture.NewCapturer(monitor, cfg.Capture.JPEGQuality)
	}

	composer, err := layout.New(cfg)
	if err != nil {
		return err
	}

	b := booth.New(booth.Config{
		Capturer:  capturer,
		Composer:  composer,
		Saver:     booth.DirSaver{Dir: cfg.Output.Dir},
		Variant:   cfg.Layout.Variant,
		ShareText: cfg.Caption.ShareText,
	})

	evCtx, stopEvents := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		printEvents(evCtx, b.Events())
	}()
	defer func() {
		stopEvents()
		<-done
	}()

	if camErr != nil {
		b.CameraFailed(ctx, camErr)
	}
	if err := b.Prepare(ctx); err != nil {
		return err
	}
	slog.Info("photobooth ready", "layout", cfg.Layout.Variant, "output", cfg.Output.Dir, "sessions", sessions)

	for i := 0; i < sessions && ctx.Err() == nil; i++ {
		if err := b.Start(ctx); err != nil {
			if b.Snapshot().Disabled {
				slog.Error("start disabled", "error", err)
				break
			}
			slog.Warn("session failed", "session", i+1, "error", err)
			continue
		}
		if monitor.Frozen() {
			slog.Warn("camera feed looks frozen")
		}
		if _, err := b.Export(ctx); err != nil {
			slog.Warn("export failed", "session", i+1, "error", err)
		}
	}

	prints := b.Journal().Recent(0)
	for _, p := range prints {
		fmt.Printf("%s  %s  %s\n", p.At.Format("15:04:05"), p.Layout, p.Path)
	}
	slog.Info("photobooth finished", "prints", len(prints), "share", b.ShareText())
	return nil
}

func printEvents(ctx context.Context, events <-chan booth.Event) {
	for {
		select {
		case <-ctx.Done():
			// flush what the booth already sent
			for {
				select {
				case e := <-events:
					printEvent(e)
				default:
					return
				}
			}
		case e := <-events:
			printEvent(e)
		}
	}
}

func printEvent(e booth.Event) {
	switch e.Kind {
	case booth.EventStatus:
		if e.Text != "" {
			fmt.Println(e.Text)
		}
	case booth.EventCountdown:
		if e.Text != "" {
			fmt.Printf("  %s\n", e.Text)
		}
	case booth.EventShot:
		fmt.Printf("  [shot %d]\n", e.Shot)
	case booth.EventSaved:
		fmt.Printf("saved %s\n", e.Path)
	case booth.EventError:
		fmt.Printf("error: %v\n", e.Err)
	}
}
