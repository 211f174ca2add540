// Package config handles booth configuration
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	apperr "github.com/GriffinCanCode/photobooth/internal/errors"
)

// Layout variants.
const (
	VariantStrip = "strip"
	VariantGrid  = "grid"
)

// Overlay fit modes for the grid's fourth cell.
const (
	FitContain = "contain"
	FitCover   = "cover"
)

type Config struct {
	Camera  CameraConfig  `yaml:"camera"`
	Capture CaptureConfig `yaml:"capture"`
	Layout  LayoutConfig  `yaml:"layout"`
	Caption CaptionConfig `yaml:"caption"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type CameraConfig struct {
	Device      int `yaml:"device"`
	IdealWidth  int `yaml:"ideal_width"`
	IdealHeight int `yaml:"ideal_height"`
}

type CaptureConfig struct {
	JPEGQuality int `yaml:"jpeg_quality"` // 1-100
}

type LayoutConfig struct {
	Variant     string `yaml:"variant"` // "strip" or "grid"
	GridWidth   int    `yaml:"grid_width"`
	GridHeight  int    `yaml:"grid_height"`
	GridPad     int    `yaml:"grid_pad"`
	GridGap     int    `yaml:"grid_gap"`
	CellInset   int    `yaml:"cell_inset"`
	OverlayPath string `yaml:"overlay_path"`
	OverlayFit  string `yaml:"overlay_fit"` // "contain" or "cover"
}

type CaptionConfig struct {
	Date         string `yaml:"date"`
	Names        string `yaml:"names"`
	InitialLeft  string `yaml:"initial_left"`
	InitialRight string `yaml:"initial_right"`
	ShareText    string `yaml:"share_text"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load builds a configuration from defaults and environment variables.
func Load() *Config {
	cfg := Defaults()
	cfg.applyEnv()
	return cfg
}

// LoadFile reads a YAML configuration file, then applies environment
// overrides and fills in defaults for anything left unset.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys missing from the file keep their stock value, so an explicit
	// zero such as grid_pad: 0 survives.
	cfg := defaultConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeConfigInvalid, "failed to parse config")
	}

	cfg.fillDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

// Defaults returns the stock booth configuration.
func Defaults() *Config {
	cfg := defaultConfig
	return &cfg
}

// fillDefaults restores fields a file explicitly set to an empty value.
// Pad and gap are exempt because zero is a valid choice for them.
func (c *Config) fillDefaults() {
	d := defaultConfig
	if c.Camera.IdealWidth == 0 {
		c.Camera.IdealWidth = d.Camera.IdealWidth
	}
	if c.Camera.IdealHeight == 0 {
		c.Camera.IdealHeight = d.Camera.IdealHeight
	}
	if c.Capture.JPEGQuality == 0 {
		c.Capture.JPEGQuality = d.Capture.JPEGQuality
	}
	if c.Layout.Variant == "" {
		c.Layout.Variant = d.Layout.Variant
	}
	if c.Layout.GridWidth == 0 {
		c.Layout.GridWidth = d.Layout.GridWidth
	}
	if c.Layout.GridHeight == 0 {
		c.Layout.GridHeight = d.Layout.GridHeight
	}
	if c.Layout.OverlayPath == "" {
		c.Layout.OverlayPath = d.Layout.OverlayPath
	}
	if c.Layout.OverlayFit == "" {
		c.Layout.OverlayFit = d.Layout.OverlayFit
	}
	if c.Caption.Date == "" {
		c.Caption.Date = d.Caption.Date
	}
	if c.Caption.Names == "" {
		c.Caption.Names = d.Caption.Names
	}
	if c.Caption.InitialLeft == "" {
		c.Caption.InitialLeft = d.Caption.InitialLeft
	}
	if c.Caption.InitialRight == "" {
		c.Caption.InitialRight = d.Caption.InitialRight
	}
	if c.Caption.ShareText == "" {
		c.Caption.ShareText = d.Caption.ShareText
	}
	if c.Output.Dir == "" {
		c.Output.Dir = d.Output.Dir
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
}

func (c *Config) applyEnv() {
	c.Camera.Device = getEnvInt("PHOTOBOOTH_CAMERA_DEVICE", c.Camera.Device)
	c.Capture.JPEGQuality = getEnvInt("PHOTOBOOTH_JPEG_QUALITY", c.Capture.JPEGQuality)
	c.Layout.Variant = strings.ToLower(getEnv("PHOTOBOOTH_LAYOUT", c.Layout.Variant))
	c.Layout.OverlayPath = getEnv("PHOTOBOOTH_OVERLAY", c.Layout.OverlayPath)
	c.Layout.OverlayFit = strings.ToLower(getEnv("PHOTOBOOTH_OVERLAY_FIT", c.Layout.OverlayFit))
	c.Caption.Date = getEnv("PHOTOBOOTH_CAPTION_DATE", c.Caption.Date)
	c.Caption.Names = getEnv("PHOTOBOOTH_CAPTION_NAMES", c.Caption.Names)
	if initials := getEnvList("PHOTOBOOTH_INITIALS", nil); len(initials) == 2 {
		c.Caption.InitialLeft, c.Caption.InitialRight = initials[0], initials[1]
	}
	c.Caption.ShareText = getEnv("PHOTOBOOTH_SHARE_TEXT", c.Caption.ShareText)
	c.Output.Dir = getEnv("PHOTOBOOTH_OUTPUT_DIR", c.Output.Dir)
	c.Logging.Level = getEnv("PHOTOBOOTH_LOG_LEVEL", c.Logging.Level)
}

// Validate rejects configurations the pipeline cannot render.
func (c *Config) Validate() error {
	switch c.Layout.Variant {
	case VariantStrip, VariantGrid:
	default:
		return apperr.Newf(apperr.CodeConfigInvalid, "unknown layout variant %q", c.Layout.Variant)
	}
	switch c.Layout.OverlayFit {
	case FitContain, FitCover:
	default:
		return apperr.Newf(apperr.CodeConfigInvalid, "unknown overlay fit %q", c.Layout.OverlayFit)
	}
	if c.Camera.IdealWidth <= 0 || c.Camera.IdealHeight <= 0 {
		return apperr.Newf(apperr.CodeConfigInvalid, "camera size must be positive, got %dx%d", c.Camera.IdealWidth, c.Camera.IdealHeight)
	}
	if c.Capture.JPEGQuality < 1 || c.Capture.JPEGQuality > 100 {
		return apperr.Newf(apperr.CodeConfigInvalid, "jpeg quality must be 1-100, got %d", c.Capture.JPEGQuality)
	}
	innerW := c.Layout.GridWidth - 2*c.Layout.GridPad - c.Layout.GridGap
	innerH := c.Layout.GridHeight - 2*c.Layout.GridPad - c.Layout.GridGap
	if innerW < 2 || innerH < 2 || c.Layout.GridPad < 0 || c.Layout.GridGap < 0 {
		return apperr.Newf(apperr.CodeConfigInvalid, "grid %dx%d leaves no room for cells", c.Layout.GridWidth, c.Layout.GridHeight)
	}
	if c.Layout.CellInset < 0 || 2*c.Layout.CellInset >= innerW/2 || 2*c.Layout.CellInset >= innerH/2 {
		return apperr.Newf(apperr.CodeConfigInvalid, "cell inset %d too large", c.Layout.CellInset)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.TrimSpace(p); t != "" {
				result = append(result, t)
			}
		}
		return result
	}
	return def
}
