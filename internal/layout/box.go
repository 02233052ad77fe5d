package layout

import "fmt"

// Background box geometry constants.
const (
	bgLineHeight = FontSize + FontSize/10 // 1.10 line spacing, truncated
	bgPadX       = 20
	bgPadY       = 15
	bgCornerR    = 18
)

// BoxHeight returns the background box height in pixels for a line count.
func BoxHeight(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return lineCount*bgLineHeight + 2*bgPadY
}

// TextCoreWidth converts the widest wrapped line's units into pixels.
func TextCoreWidth(maxUnits float64) int {
	if maxUnits < 0 {
		maxUnits = 0
	}
	width := int(maxUnits * FontSize)
	if width < 1 {
		width = 1
	}
	return width
}

// BoxTop computes the box's top edge from the ASS alignment row.
// Rows: 7,8,9 top; 4,5,6 middle; 1,2,3 bottom.
func BoxTop(alignment, height, playResY int) int {
	switch {
	case alignment >= 7:
		return MarginV - bgPadY
	case alignment >= 4:
		return playResY/2 - height/2
	default:
		return playResY - MarginV + bgPadY - height
	}
}

// BoxX computes the box's left edge and width from the ASS alignment column,
// clamping the box inside the frame. Columns: 1,4,7 left; 2,5,8 center;
// 3,6,9 right.
func BoxX(alignment, textWidth, playResX int) (left, width int) {
	var textLeft int
	switch alignment % 3 {
	case 1:
		textLeft = MarginL
	case 2:
		textLeft = playResX/2 - textWidth/2
	default:
		textLeft = playResX - MarginR - textWidth
	}

	boxLeft := textLeft - bgPadX
	boxRight := textLeft + textWidth + bgPadX

	if boxRight > playResX {
		shift := boxRight - playResX
		boxLeft -= shift
		boxRight = playResX
	}
	if boxLeft < 0 {
		shift := -boxLeft
		boxLeft = 0
		boxRight = min(playResX, boxRight+shift)
	}

	width = boxRight - boxLeft
	if width < 1 {
		width = 1
	}
	if boxLeft > playResX-width {
		boxLeft = playResX - width
	}
	if boxLeft < 0 {
		boxLeft = 0
	}
	return boxLeft, width
}

// RoundedRectPath builds an ASS drawing path for a rounded rectangle, with
// bezier arcs approximating the corners.
func RoundedRectPath(width, height int) string {
	r := bgCornerR
	if r > width/2 {
		r = width / 2
	}
	if r > height/2 {
		r = height / 2
	}
	if r <= 0 {
		return fmt.Sprintf("m 0 0 l %d 0 l %d %d l 0 %d l 0 0", width, width, height, height)
	}

	k := int(float64(r)*0.5522847498 + 0.5)

	return fmt.Sprintf(
		"m %d 0 "+
			"l %d 0 "+
			"b %d 0 %d %d %d %d "+
			"l %d %d "+
			"b %d %d %d %d %d %d "+
			"l %d %d "+
			"b %d %d 0 %d 0 %d "+
			"l 0 %d "+
			"b 0 %d %d 0 %d 0",
		r,
		width-r,
		width-r+k, width, r-k, width, r,
		width, height-r,
		width, height-r+k, width-r+k, height, width-r, height,
		r, height,
		r-k, height, height-r+k, height-r,
		r,
		r-k, r-k, r,
	)
}
