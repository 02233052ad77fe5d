// Package timing parses transcript timestamp anchors and assigns start and
// end times to the messages between them.
//
// The allocator is a single sequential pass: each anchor closes the current
// window and opens the next, and the messages inside a window receive their
// estimated spoken duration, scaled down proportionally when the window is
// too small to hold them all. Message order is significant; re-ordering
// entries changes the computed start times.
package timing
