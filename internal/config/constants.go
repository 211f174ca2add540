package config

// defaultConfig holds the stock values used when neither the file nor the
// environment sets a field.
var defaultConfig = Config{
	Camera: CameraConfig{
		Device:      0,
		IdealWidth:  1280,
		IdealHeight: 720,
	},
	Capture: CaptureConfig{
		JPEGQuality: 92,
	},
	Layout: LayoutConfig{
		Variant:     VariantStrip,
		GridWidth:   1200,
		GridHeight:  1500,
		GridPad:     28,
		GridGap:     16,
		CellInset:   0,
		OverlayPath: "assets/wedding-text.png",
		OverlayFit:  FitContain,
	},
	Caption: CaptionConfig{
		Date:         "21.04.2029",
		Names:        "SHREK • FIONA",
		InitialLeft:  "S",
		InitialRight: "F",
		ShareText:    "#EverAndAlways",
	},
	Output: OutputConfig{
		Dir: ".",
	},
	Logging: LoggingConfig{
		Level: "info",
	},
}
