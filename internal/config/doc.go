// Package config loads, normalizes, and validates tool-level settings.
//
// These are the knobs that apply across projects: log format and level,
// default render geometry, and the ffmpeg invocation used for burn-in. The
// per-project [render] section in a comms file overrides the defaults here.
// Settings live in TOML at ~/.config/atcsubs/config.toml, with a project
// local atcsubs.toml as fallback.
package config
