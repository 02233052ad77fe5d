package ass

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Style is one [V4+ Styles] record.
type Style struct {
	Name          string
	PrimaryColour string
	BackColour    string
	Alignment     int
	MarginL       int
	MarginR       int
	MarginV       int
}

// Event is one [Events] dialogue record. Rank orders events that share a
// start time: background boxes carry a negative rank so they render beneath
// the text they back.
type Event struct {
	Rank  int
	Layer int
	Start time.Duration
	End   time.Duration
	Style string
	Name  string
	Text  string
}

// Document is a complete ASS script ready for serialization.
type Document struct {
	Title    string
	PlayResX int
	PlayResY int
	FontSize int
	Styles   []Style
	Events   []Event
}

// AddStyle appends a style record, dropping exact duplicates.
func (d *Document) AddStyle(s Style) {
	for _, existing := range d.Styles {
		if existing == s {
			return
		}
	}
	d.Styles = append(d.Styles, s)
}

// AddEvent appends an event record.
func (d *Document) AddEvent(e Event) {
	d.Events = append(d.Events, e)
}

const stylesFormat = "Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding"

const eventsFormat = "Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text"

// Render serializes the document. Events are sorted by start time, then
// rank, preserving insertion order for ties.
func (d *Document) Render() string {
	var b strings.Builder

	title := d.Title
	if title == "" {
		title = "Comms Subtitles"
	}
	fontSize := d.FontSize
	if fontSize <= 0 {
		fontSize = 56
	}

	b.WriteString("[Script Info]\n")
	fmt.Fprintf(&b, "Title: %s\n", title)
	b.WriteString("ScriptType: v4.00+\n")
	b.WriteString("WrapStyle: 2\n")
	fmt.Fprintf(&b, "PlayResX: %d\n", d.PlayResX)
	fmt.Fprintf(&b, "PlayResY: %d\n", d.PlayResY)
	b.WriteString("\n")

	b.WriteString("[V4+ Styles]\n")
	b.WriteString(stylesFormat + "\n")
	fmt.Fprintf(&b,
		"Style: Default,Arial,%d,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,1,10,10,10,1\n",
		fontSize)
	for _, s := range d.Styles {
		fmt.Fprintf(&b,
			"Style: %s,Arial,%d,%s,&H000000FF,&H00000000,%s,0,0,0,0,100,100,0,0,1,2,2,%d,%d,%d,%d,1\n",
			s.Name, fontSize, s.PrimaryColour, s.BackColour, s.Alignment, s.MarginL, s.MarginR, s.MarginV)
	}
	b.WriteString("\n")

	b.WriteString("[Events]\n")
	b.WriteString(eventsFormat + "\n")

	events := make([]Event, len(d.Events))
	copy(events, d.Events)
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Start != events[j].Start {
			return events[i].Start < events[j].Start
		}
		return events[i].Rank < events[j].Rank
	})
	for _, e := range events {
		fmt.Fprintf(&b, "Dialogue: %d,%s,%s,%s,%s,0,0,0,,%s\n",
			e.Layer, FormatTime(e.Start), FormatTime(e.End), e.Style, e.Name, e.Text)
	}

	return b.String()
}
