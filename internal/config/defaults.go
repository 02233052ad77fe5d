package config

// Default returns the repository default configuration.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
		Render: Render{
			PlayResX:       1920,
			PlayResY:       1080,
			WrapWidthRatio: 0.75,
			AlphaOrder:     "trailing",
		},
		Burn: Burn{
			FFmpegBinary: "ffmpeg",
			Framerate:    30,
			CRF:          30,
		},
	}
}
