package config

import (
	"fmt"
	"strings"

	"atcsubs/internal/colorspec"
	"atcsubs/internal/logging"
)

// normalize trims string fields, fills empty values from the defaults, and
// clamps the wrap ratio into its supported range.
func (c *Config) normalize() {
	defaults := Default()

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}

	if c.Render.PlayResX <= 0 {
		c.Render.PlayResX = defaults.Render.PlayResX
	}
	if c.Render.PlayResY <= 0 {
		c.Render.PlayResY = defaults.Render.PlayResY
	}
	if c.Render.WrapWidthRatio == 0 {
		c.Render.WrapWidthRatio = defaults.Render.WrapWidthRatio
	}
	c.Render.WrapWidthRatio = ClampWrapRatio(c.Render.WrapWidthRatio)
	c.Render.AlphaOrder = strings.ToLower(strings.TrimSpace(c.Render.AlphaOrder))
	if c.Render.AlphaOrder == "" {
		c.Render.AlphaOrder = defaults.Render.AlphaOrder
	}

	c.Burn.FFmpegBinary = strings.TrimSpace(c.Burn.FFmpegBinary)
	if c.Burn.FFmpegBinary == "" {
		c.Burn.FFmpegBinary = defaults.Burn.FFmpegBinary
	}
	if c.Burn.Framerate <= 0 {
		c.Burn.Framerate = defaults.Burn.Framerate
	}
	if c.Burn.CRF <= 0 {
		c.Burn.CRF = defaults.Burn.CRF
	}
}

// Validate checks enum-valued fields.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if _, err := colorspec.ParseAlphaOrder(c.Render.AlphaOrder); err != nil {
		return fmt.Errorf("render.%w", err)
	}
	return nil
}

// AlphaOrder returns the parsed hex-alpha convention.
func (c *Config) AlphaOrder() colorspec.AlphaOrder {
	order, _ := colorspec.ParseAlphaOrder(c.Render.AlphaOrder)
	return order
}

// LoggingOptions maps config values onto logger construction options.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
	}
}

// ClampWrapRatio bounds a wrap-width ratio to the renderable range.
func ClampWrapRatio(ratio float64) float64 {
	if ratio < 0.10 {
		return 0.10
	}
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}
