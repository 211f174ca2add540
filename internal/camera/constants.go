package camera

// Frozen feed detection
const (
	// Max perceptual hash distance for two frames to count as identical
	MaxHashDistance = 0

	// Consecutive identical frames before the feed is reported frozen
	FrozenFrameThreshold = 2
)
