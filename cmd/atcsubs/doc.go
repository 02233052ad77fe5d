// Package main hosts the atcsubs CLI entrypoint and command graph.
//
// The Cobra-based command tree compiles comms transcript projects into ASS
// subtitle timelines, scaffolds starter projects and configuration, inspects
// resolved speaker styling, and drives ffmpeg burn-in renders. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
