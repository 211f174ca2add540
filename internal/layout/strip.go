package layout

import (
	"context"
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/GriffinCanCode/photobooth/internal/capture"
	"github.com/GriffinCanCode/photobooth/internal/config"
	apperr "github.com/GriffinCanCode/photobooth/internal/errors"
	"github.com/GriffinCanCode/photobooth/internal/geometry"
	"github.com/GriffinCanCode/photobooth/internal/trace"
)

// StripCaption is the text block under the strip's photos. Offsets are in
// pixels; vertical ones are measured up from the strip's bottom padding.
type StripCaption struct {
	Date         string
	Names        string
	InitialLeft  string
	InitialRight string

	InitialsFromBottom float64 // initials baseline above H-pad
	DateAbove          float64 // date baseline above the initials baseline
	NamesFromBottom    float64 // names baseline above H-pad

	LetterSize    float64
	LetterSpacing float64 // distance of each initial from the centre
	LetterLift    float64 // left initial raised by this much
	LetterDrop    float64 // right initial lowered by this much

	SlashHeight float64
	SlashTilt   float64
	SlashAbove  float64 // slash centre above the initials baseline

	DividerHalf  float64
	DividerBelow float64 // divider below the names baseline
}

// CaptionFromConfig fills the caption text from cfg and uses the stock
// offsets.
func CaptionFromConfig(cfg config.CaptionConfig) StripCaption {
	return StripCaption{
		Date:               cfg.Date,
		Names:              cfg.Names,
		InitialLeft:        cfg.InitialLeft,
		InitialRight:       cfg.InitialRight,
		InitialsFromBottom: 110,
		DateAbove:          145,
		NamesFromBottom:    34,
		LetterSize:         120,
		LetterSpacing:      70,
		LetterLift:         20,
		LetterDrop:         10,
		SlashHeight:        120,
		SlashTilt:          35,
		SlashAbove:         40,
		DividerHalf:        180,
		DividerBelow:       22,
	}
}

// Strip is the vertical three-photo layout with a caption block.
type Strip struct {
	caption StripCaption

	mu    sync.Mutex // guards faces
	faces faceCache
}

// NewStrip creates a strip composer.
func NewStrip(caption StripCaption) *Strip {
	return &Strip{caption: caption}
}

func (s *Strip) Size() image.Point { return image.Pt(StripWidth, StripHeight) }
func (s *Strip) Filename() string  { return StripFilename }

// StripCells returns the three photo cells, top to bottom.
func StripCells() [MaxShots]geometry.Rect {
	cellW := StripWidth - 2*StripPad
	cellH := (StripHeight - 2*StripPad - StripTopExtra - StripBottomArea - 2*StripGap) / 3

	var cells [MaxShots]geometry.Rect
	for i := range cells {
		cells[i] = geometry.Rect{
			X: StripPad,
			Y: StripPad + StripTopExtra + i*(cellH+StripGap),
			W: cellW,
			H: cellH,
		}
	}
	return cells
}

// Compose draws the strip. Cells without a shot get a flat placeholder.
func (s *Strip) Compose(ctx context.Context, shots []capture.Shot) (*image.NRGBA, error) {
	ctx, span := trace.StartSpan(ctx, "compose_strip")
	defer span.End()

	imgs, err := decodeShots(ctx, shots)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	canvas := image.NewRGBA(image.Rect(0, 0, StripWidth, StripHeight))
	fill(canvas, canvas.Bounds(), image.White)
	paperTint(canvas, PaperAlphaStart, PaperAlphaEnd)

	for i, cell := range StripCells() {
		if i < len(imgs) {
			drawStripPhoto(canvas, imgs[i], cell)
			continue
		}
		fillRoundRect(canvas, cell.Image(), PlaceholderRadius, shade(PlaceholderAlpha))
	}

	if err := s.drawCaption(canvas); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeComposeFailed, "draw caption")
	}

	out := imaging.Clone(canvas)
	logComposed(ctx, span, out, len(imgs))
	return out, nil
}

// drawStripPhoto draws one photo on its white card: backing, shadow, the
// cover-fitted grayscale photo, then a thin border on top.
func drawStripPhoto(canvas *image.RGBA, img image.Image, cell geometry.Rect) {
	fillRoundRect(canvas, cell.Image(), CellRadius, image.White)

	in := cell.Inset(PhotoInset)
	photo := coverGray(img, in.W, in.H)

	dropShadow(canvas, in.Image(), ShadowBlur, ShadowOffsetY, ShadowAlpha)
	draw.Draw(canvas, in.Image(), photo, image.Point{}, draw.Over)
	strokeInside(canvas, in.Image(), BorderWidth, shade(BorderAlpha))
}

func (s *Strip) drawCaption(canvas *image.RGBA) error {
	c := s.caption
	cx := float64(StripWidth) / 2
	bottom := float64(StripHeight - StripPad)

	initialsY := bottom - c.InitialsFromBottom
	dateY := initialsY - c.DateAbove
	namesY := bottom - c.NamesFromBottom

	dateFace, err := s.faces.face(DateSize)
	if err != nil {
		return err
	}
	drawCentered(canvas, dateFace, c.Date, cx, dateY, shade(DateAlpha))

	letterFace, err := s.faces.face(c.LetterSize)
	if err != nil {
		return err
	}
	drawCentered(canvas, letterFace, c.InitialLeft, cx-c.LetterSpacing, initialsY-c.LetterLift, shade(InitialAlpha))
	drawCentered(canvas, letterFace, c.InitialRight, cx+c.LetterSpacing, initialsY+c.LetterDrop, shade(InitialAlpha))

	slashY := initialsY - c.SlashAbove
	strokeLine(canvas,
		cx+c.SlashTilt, slashY-c.SlashHeight/2,
		cx-c.SlashTilt, slashY+c.SlashHeight/2,
		StrokeWidth, shade(SlashAlpha))

	namesFace, err := s.faces.face(NamesSize)
	if err != nil {
		return err
	}
	drawCentered(canvas, namesFace, c.Names, cx, namesY, shade(NamesAlpha))

	dividerY := namesY + c.DividerBelow
	strokeLine(canvas, cx-c.DividerHalf, dividerY, cx+c.DividerHalf, dividerY, StrokeWidth, shade(DividerAlpha))
	return nil
}
