package layout

import (
	"context"
	"image"
	"log/slog"
	"strconv"

	"github.com/GriffinCanCode/photobooth/internal/capture"
	"github.com/GriffinCanCode/photobooth/internal/config"
	apperr "github.com/GriffinCanCode/photobooth/internal/errors"
	"github.com/GriffinCanCode/photobooth/internal/gray"
	"github.com/GriffinCanCode/photobooth/internal/trace"
)

// Composer renders up to MaxShots shots onto a fixed-size canvas. Every call
// redraws the whole canvas, so equal input gives pixel-identical output.
type Composer interface {
	Compose(ctx context.Context, shots []capture.Shot) (*image.NRGBA, error)
	Size() image.Point
	Filename() string
}

// New builds the composer selected by cfg.Layout.Variant. The grid variant
// starts loading its overlay right away.
func New(cfg *config.Config) (Composer, error) {
	switch cfg.Layout.Variant {
	case config.VariantStrip:
		return NewStrip(CaptionFromConfig(cfg.Caption)), nil
	case config.VariantGrid:
		return NewGrid(GridFromConfig(cfg.Layout), PreloadOverlay(cfg.Layout.OverlayPath)), nil
	default:
		return nil, apperr.Newf(apperr.CodeConfigInvalid, "unknown layout variant %q", cfg.Layout.Variant)
	}
}

// decodeShots checks the shot count and decodes each shot in order.
func decodeShots(ctx context.Context, shots []capture.Shot) ([]*image.NRGBA, error) {
	if len(shots) > MaxShots {
		return nil, apperr.Newf(apperr.CodeInvalidArgument, "got %d shots, layouts hold %d", len(shots), MaxShots)
	}
	imgs := make([]*image.NRGBA, 0, len(shots))
	for i, s := range shots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := s.Decode()
		if err != nil {
			return nil, apperr.Wrap(err, apperr.CodeComposeFailed, "decode shot").
				WithMetadata("shot", strconv.Itoa(i+1))
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

func logComposed(ctx context.Context, span *trace.Span, out *image.NRGBA, shots int) {
	span.SetAttr("shots", shots)
	span.End()
	log := trace.Logger(ctx)
	if log.Enabled(ctx, slog.LevelDebug) {
		log.Debug("layout composed", "span", span, "grayscale", gray.IsGray(out))
	}
}
