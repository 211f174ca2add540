package booth

import (
	"time"

	"github.com/GriffinCanCode/photobooth/internal/config"
)

// Script holds the parts of the session flow that differ between the strip
// and the card booth.
type Script struct {
	HoldText   string        // countdown label after the last tick
	Hold       time.Duration // how long HoldText stays up
	Develop    time.Duration // pause before composing
	Building   string        // status while composing
	Done       string        // status once the print is ready
	RetakeFade time.Duration
}

// ScriptFor returns the flow for a layout variant.
func ScriptFor(variant string) Script {
	if variant == config.VariantGrid {
		return Script{
			HoldText:   "Smile…",
			Hold:       CardCountdownHold,
			Develop:    DevelopDelay,
			Building:   StatusCardBuild,
			RetakeFade: RetakeFade,
		}
	}
	return Script{
		HoldText: "•",
		Hold:     CountdownHold,
		Building: StatusStripBuild,
		Done:     StatusStripDone,
	}
}
