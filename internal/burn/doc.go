// Package burn renders a compiled subtitle timeline onto video with ffmpeg.
//
// Three modes are supported: "default" burns the timeline over a source
// video, "trim" additionally cuts the output to the timeline's first and
// last event, and "transparent" renders the timeline alone over a
// transparent canvas as a VP9 overlay. The compiled document is written to
// a temporary ASS file named after the SHA-1 of the project source so
// repeated runs of the same project reuse a stable path.
package burn
