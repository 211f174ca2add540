// Package layout composes captured shots into printable strip and card images
package layout

// MaxShots is the number of photo cells in every layout.
const MaxShots = 3

// Output filenames
const (
	StripFilename = "photo-strip.png"
	GridFilename  = "wedding-photo-card.png"
)

// Strip geometry
const (
	StripWidth      = 600
	StripHeight     = 1800
	StripPad        = 28
	StripGap        = 12
	StripTopExtra   = 30
	StripBottomArea = 320

	CellRadius        = 10 // white backing behind a photo
	PlaceholderRadius = 12
	PhotoInset        = 8

	PlaceholderAlpha = 0.03
	BorderWidth      = 2
	BorderAlpha      = 0.12

	// Drop shadow under each photo. ShadowBlur is a blur radius; the
	// Gaussian sigma is half of it.
	ShadowBlur    = 14
	ShadowOffsetY = 8
	ShadowAlpha   = 0.18

	// Diagonal paper tint from the top-left to the bottom-right corner
	PaperAlphaStart = 0.025
	PaperAlphaEnd   = 0.01
)

// Strip caption text sizes and alphas
const (
	DateSize     = 22
	NamesSize    = 25
	DateAlpha    = 0.55
	InitialAlpha = 0.88
	SlashAlpha   = 0.75
	NamesAlpha   = 0.60
	DividerAlpha = 0.18
	StrokeWidth  = 2
)

// Grid defaults, used when the configuration leaves a field unset
const (
	DefaultGridWidth  = 1200
	DefaultGridHeight = 1500
	DefaultGridPad    = 28
	DefaultGridGap    = 16
)
