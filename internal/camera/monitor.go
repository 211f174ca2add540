package camera

import (
	"context"
	"image"
	"log/slog"
	"sync"

	"github.com/corona10/goimagehash"
)

// Monitor wraps a source and flags a frozen feed, i.e. a camera that keeps
// returning the same picture. It never blocks or alters frames.
type Monitor struct {
	Source

	mu        sync.Mutex
	lastHash  *goimagehash.ImageHash
	identical int
	frozen    bool
}

// NewMonitor wraps src with frozen-feed detection.
func NewMonitor(src Source) *Monitor {
	return &Monitor{Source: src}
}

// Frame reads from the wrapped source and updates the frozen state.
func (m *Monitor) Frame(ctx context.Context) (image.Image, error) {
	img, err := m.Source.Frame(ctx)
	if err != nil || img == nil {
		return img, err
	}
	m.observe(img)
	return img, nil
}

// Frozen reports whether the last FrozenFrameThreshold comparisons matched.
func (m *Monitor) Frozen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frozen
}

func (m *Monitor) observe(img image.Image) {
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		slog.Debug("frame hash failed", "error", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastHash == nil {
		m.lastHash = hash
		return
	}

	dist, err := m.lastHash.Distance(hash)
	m.lastHash = hash
	if err != nil || dist > MaxHashDistance {
		m.identical = 0
		m.frozen = false
		return
	}

	m.identical++
	if m.identical >= FrozenFrameThreshold && !m.frozen {
		m.frozen = true
		slog.Warn("camera feed looks frozen", "identical_frames", m.identical+1)
	}
}
