package profile

import "strings"

// defaultPosition is the baseline screen anchor when neither the entity nor
// its type declares one.
const defaultPosition = "bottom-center"

var verticalTokens = map[string]string{
	"top":    "top",
	"middle": "middle",
	"center": "middle",
	"bottom": "bottom",
}

var horizontalTokens = map[string]string{
	"left":   "left",
	"center": "center",
	"right":  "right",
	"middle": "center",
}

var alignments = map[string]int{
	"bottom-left":   1,
	"bottom-center": 2,
	"bottom-right":  3,
	"middle-left":   4,
	"middle-center": 5,
	"middle-right":  6,
	"top-left":      7,
	"top-center":    8,
	"top-right":     9,
}

// NormalizePosition maps a user-facing position token onto the nine-anchor
// grid. A lone horizontal token sits on the bottom row, a lone vertical token
// in the center column, and reversed order ("left-top") is accepted.
func NormalizePosition(pos string) string {
	p := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(pos)), "_", "-")
	if p == "" {
		return defaultPosition
	}

	parts := make([]string, 0, 2)
	for _, part := range strings.Split(p, "-") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	switch len(parts) {
	case 0:
		return defaultPosition
	case 1:
		// A lone token keeps its primary meaning: "middle" is a row,
		// "center" a column. The cross aliases apply only in pairs.
		switch token := parts[0]; token {
		case "top", "middle", "bottom":
			return token + "-center"
		case "left", "center", "right":
			return "bottom-" + token
		default:
			return defaultPosition
		}
	}

	if v, ok := verticalTokens[parts[0]]; ok {
		if h, ok := horizontalTokens[parts[1]]; ok {
			return v + "-" + h
		}
	}
	if v, ok := verticalTokens[parts[1]]; ok {
		if h, ok := horizontalTokens[parts[0]]; ok {
			return v + "-" + h
		}
	}
	return defaultPosition
}

// Alignment maps a position token to the ASS alignment code (1-9).
func Alignment(pos string) int {
	if code, ok := alignments[NormalizePosition(pos)]; ok {
		return code
	}
	return alignments[defaultPosition]
}
