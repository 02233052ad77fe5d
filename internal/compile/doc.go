// Package compile runs the full pipeline from a parsed comms document to a
// rendered subtitle timeline.
//
// The pass is strictly sequential: profiles resolve first (any configuration
// problem aborts before timing or wrapping runs), then each transcript entry
// is normalized, timed, wrapped, and emitted in source order. No partial
// output is ever produced; a failed validation returns an error instead of a
// truncated timeline.
package compile
