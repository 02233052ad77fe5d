package layout

import "strings"

// Layout constants shared by the style table and the box geometry.
const (
	FontSize = 56
	MarginL  = 20
	MarginR  = 20
	MarginV  = 20
)

// LineBreak is the explicit ASS line-break marker.
const LineBreak = `\N`

// charUnits estimates a character's advance width as a fraction of the font
// size. The buckets come from eyeballing Arial at subtitle sizes.
func charUnits(ch rune) float64 {
	switch {
	case strings.ContainsRune(" .,:;!|'`", ch):
		return 0.24
	case strings.ContainsRune("ilI1[]()", ch):
		return 0.30
	case strings.ContainsRune("MW@#%", ch):
		return 0.85
	case (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9'):
		return 0.62
	default:
		return 0.46
	}
}

func wordUnits(word string) float64 {
	var units float64
	for _, ch := range word {
		units += charUnits(ch)
	}
	return units
}

// MaxUnitsPerLine derives the wrap budget from the canvas width and the
// configured wrap-width ratio.
func MaxUnitsPerLine(playResX int, wrapRatio float64) float64 {
	usable := playResX - MarginL - MarginR
	if usable < 1 {
		usable = 1
	}
	target := int(float64(usable) * wrapRatio)
	if target < 1 {
		target = 1
	}
	return float64(target) / FontSize
}

// Wrapped is the result of wrapping one message.
type Wrapped struct {
	Lines    []string
	Text     string // lines joined with LineBreak
	MaxUnits float64
}

// LineCount returns the number of wrapped lines, at least 1.
func (w Wrapped) LineCount() int {
	if len(w.Lines) == 0 {
		return 1
	}
	return len(w.Lines)
}

// Wrap greedily fills lines with whitespace-delimited words under the unit
// budget. Concatenating the lines with single spaces reproduces the input
// exactly.
func Wrap(text string, maxUnits float64) Wrapped {
	words := strings.Fields(text)
	if len(words) == 0 {
		return Wrapped{Lines: []string{""}, Text: ""}
	}

	spaceUnits := charUnits(' ')
	var lines []string
	var maxSeen float64

	current := []string{words[0]}
	currentUnits := wordUnits(words[0])

	for _, word := range words[1:] {
		units := wordUnits(word)
		if currentUnits+spaceUnits+units <= maxUnits {
			current = append(current, word)
			currentUnits += spaceUnits + units
			continue
		}
		lines = append(lines, strings.Join(current, " "))
		if currentUnits > maxSeen {
			maxSeen = currentUnits
		}
		current = []string{word}
		currentUnits = units
	}
	lines = append(lines, strings.Join(current, " "))
	if currentUnits > maxSeen {
		maxSeen = currentUnits
	}

	return Wrapped{
		Lines:    lines,
		Text:     strings.Join(lines, LineBreak),
		MaxUnits: maxSeen,
	}
}

// ShowBox reports whether a background box is drawn: a background must be
// configured and the wrapped line count must reach the threshold.
func ShowBox(hasBackground bool, lineCount, threshold int) bool {
	return hasBackground && lineCount >= threshold
}
