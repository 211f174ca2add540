package layout

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/GriffinCanCode/photobooth/internal/capture"
	"github.com/GriffinCanCode/photobooth/internal/config"
	"github.com/GriffinCanCode/photobooth/internal/geometry"
	"github.com/GriffinCanCode/photobooth/internal/trace"
)

// GridOptions sizes the 2×2 card.
type GridOptions struct {
	Width, Height int
	Pad, Gap      int
	CellInset     int    // inner padding of the overlay cell
	Fit           string // config.FitContain or config.FitCover
}

// GridFromConfig converts the layout section of the configuration, using the
// stock size for anything unset.
func GridFromConfig(cfg config.LayoutConfig) GridOptions {
	o := GridOptions{
		Width:     cfg.GridWidth,
		Height:    cfg.GridHeight,
		Pad:       cfg.GridPad,
		Gap:       cfg.GridGap,
		CellInset: max(0, cfg.CellInset),
		Fit:       cfg.OverlayFit,
	}
	if o.Width <= 0 {
		o.Width = DefaultGridWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultGridHeight
	}
	if o.Fit != config.FitCover {
		o.Fit = config.FitContain
	}
	return o
}

// Grid is the 2×2 card: three photos and an overlay graphic in the last cell.
type Grid struct {
	opts    GridOptions
	overlay *Overlay
}

// NewGrid creates a grid composer. overlay may be nil, in which case the
// fourth cell stays white.
func NewGrid(opts GridOptions, overlay *Overlay) *Grid {
	return &Grid{opts: opts, overlay: overlay}
}

func (g *Grid) Size() image.Point { return image.Pt(g.opts.Width, g.opts.Height) }
func (g *Grid) Filename() string  { return GridFilename }

// Cells returns the four cells in reading order.
func (g *Grid) Cells() [4]geometry.Rect {
	o := g.opts
	cellW := (o.Width - 2*o.Pad - o.Gap) / 2
	cellH := (o.Height - 2*o.Pad - o.Gap) / 2
	x1, y1 := o.Pad, o.Pad
	x2, y2 := o.Pad+cellW+o.Gap, o.Pad+cellH+o.Gap

	return [4]geometry.Rect{
		{X: x1, Y: y1, W: cellW, H: cellH},
		{X: x2, Y: y1, W: cellW, H: cellH},
		{X: x1, Y: y2, W: cellW, H: cellH},
		{X: x2, Y: y2, W: cellW, H: cellH},
	}
}

// Compose draws the card. Missing shots leave their cell white, and so does
// an overlay that failed to load.
func (g *Grid) Compose(ctx context.Context, shots []capture.Shot) (*image.NRGBA, error) {
	ctx, span := trace.StartSpan(ctx, "compose_grid")
	defer span.End()

	imgs, err := decodeShots(ctx, shots)
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, g.opts.Width, g.opts.Height))
	fill(canvas, canvas.Bounds(), image.White)

	cells := g.Cells()
	for i, img := range imgs {
		cell := cells[i]
		photo := coverGray(img, cell.W, cell.H)
		draw.Draw(canvas, cell.Image(), photo, image.Point{}, draw.Src)
	}

	overlay, err := g.overlay.Wait(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		trace.Logger(ctx).Debug("overlay cell left blank", "path", g.overlay.Path(), "error", err)
	}
	g.drawOverlay(canvas, overlay, cells[3])

	out := imaging.Clone(canvas)
	logComposed(ctx, span, out, len(imgs))
	return out, nil
}

func (g *Grid) drawOverlay(canvas *image.RGBA, overlay image.Image, cell geometry.Rect) {
	fill(canvas, cell.Image(), image.White)
	if overlay == nil {
		return
	}

	area := cell.Inset(g.opts.CellInset)
	src := geometry.FromImage(overlay.Bounds())
	if area.W <= 0 || area.H <= 0 || src.W <= 0 || src.H <= 0 {
		return
	}

	if g.opts.Fit == config.FitCover {
		crop := geometry.Cover(src.W, src.H, area.W, area.H).Offset(src.X, src.Y)
		draw.CatmullRom.Scale(canvas, area.Image(), overlay, crop.Image(), draw.Over, nil)
		return
	}
	place := geometry.Contain(src.W, src.H, area.W, area.H).Offset(area.X, area.Y)
	draw.CatmullRom.Scale(canvas, place.Image(), overlay, src.Image(), draw.Over, nil)
}
