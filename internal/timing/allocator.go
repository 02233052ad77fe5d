package timing

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

var (
	// ErrMissingLeadingAnchor marks transcripts whose first entry is not a
	// timestamp anchor.
	ErrMissingLeadingAnchor = errors.New("transcript must begin with a timestamp anchor")
	// ErrAnchorOrder marks anchors that are not in chronological order.
	ErrAnchorOrder = errors.New("timestamp anchors out of chronological order")
)

// MinEventDuration is the floor applied to events that would otherwise be
// zero-length and unrenderable after centisecond quantization.
const MinEventDuration = 10 * time.Millisecond

// Entry is one ordered transcript record handed to the allocator: either an
// anchor opening a window or a message to be timed inside the current one.
type Entry struct {
	Key    string
	Index  int // position in the source transcript, for error reporting
	Anchor bool

	// Anchor fields.
	At  time.Duration
	CPS float64

	// Message fields.
	Text  string // normalized text
	Layer int    // emission rail: 0 for speakers, 1 for meta commentary
}

// Event is a timed message ready for wrapping and emission.
type Event struct {
	Key   string
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
	Layer int
}

// Warning records a non-fatal estimation issue. Compilation proceeds using
// the fallback floor.
type Warning struct {
	Index   int
	Message string
}

// Estimate returns the spoken duration of normalized text at the given
// characters-per-second rate.
func Estimate(text string, cps float64) time.Duration {
	if cps <= 0 {
		cps = 0.001
	}
	seconds := float64(utf8.RuneCountInString(text)) / cps
	return time.Duration(seconds * float64(time.Second)).Truncate(time.Millisecond)
}

// Allocate walks the transcript entries in order and assigns start and end
// times to every message. Messages on different layers are timed on
// independent rails so commentary can run alongside speech.
func Allocate(entries []Entry) ([]Event, []Warning, error) {
	if len(entries) == 0 {
		return nil, nil, nil
	}
	if !entries[0].Anchor {
		return nil, nil, fmt.Errorf("%w (entry %d is %q)", ErrMissingLeadingAnchor, entries[0].Index, entries[0].Key)
	}

	var events []Event
	var warnings []Warning

	i := 0
	for i < len(entries) {
		anchor := entries[i]

		j := i + 1
		var pending []Entry
		for j < len(entries) && !entries[j].Anchor {
			pending = append(pending, entries[j])
			j++
		}

		var next *Entry
		if j < len(entries) {
			next = &entries[j]
			if next.At < anchor.At {
				return nil, nil, fmt.Errorf("%w: anchor at entry %d precedes anchor at entry %d", ErrAnchorOrder, next.Index, anchor.Index)
			}
		}

		for layer := 0; layer <= 1; layer++ {
			var rail []Entry
			for _, msg := range pending {
				if msg.Layer == layer {
					rail = append(rail, msg)
				}
			}
			railEvents, railWarnings := allocateRail(rail, anchor, next)
			events = append(events, railEvents...)
			warnings = append(warnings, railWarnings...)
		}

		i = j
	}

	return events, warnings, nil
}

func allocateRail(rail []Entry, anchor Entry, next *Entry) ([]Event, []Warning) {
	if len(rail) == 0 {
		return nil, nil
	}

	estimates := make([]time.Duration, len(rail))
	var sum time.Duration
	for k, msg := range rail {
		estimates[k] = Estimate(msg.Text, anchor.CPS)
		sum += estimates[k]
	}

	durations := estimates
	if next != nil {
		span := next.At - anchor.At
		if sum > span {
			durations = scaleToFit(estimates, sum, span)
		}
	}

	var events []Event
	var warnings []Warning
	cursor := anchor.At
	for k, msg := range rail {
		dur := durations[k]
		if dur <= 0 {
			if msg.Text == "" {
				warnings = append(warnings, Warning{Index: msg.Index, Message: "zero-length estimated text, using fallback floor"})
			} else {
				warnings = append(warnings, Warning{Index: msg.Index, Message: "duration compressed to zero, using fallback floor"})
			}
			dur = MinEventDuration
		} else if dur < MinEventDuration {
			warnings = append(warnings, Warning{Index: msg.Index, Message: "duration compressed below floor"})
		}
		events = append(events, Event{
			Key:   msg.Key,
			Index: msg.Index,
			Start: cursor,
			End:   cursor + dur,
			Text:  msg.Text,
			Layer: msg.Layer,
		})
		cursor += dur
	}
	return events, warnings
}

// scaleToFit shrinks estimated durations proportionally so their sum equals
// the window span while preserving each message's relative share.
func scaleToFit(estimates []time.Duration, sum, span time.Duration) []time.Duration {
	scaled := make([]time.Duration, len(estimates))
	if span <= 0 {
		return scaled
	}
	ratio := float64(span) / float64(sum)
	for k, est := range estimates {
		scaled[k] = time.Duration(float64(est) * ratio)
	}
	return scaled
}
