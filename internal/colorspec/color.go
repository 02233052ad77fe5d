package colorspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor marks tokens that match neither a hex pattern nor a known
// color name.
var ErrInvalidColor = errors.New("invalid color")

// AlphaOrder selects where the alpha byte sits in 8-digit hex tokens.
type AlphaOrder int

const (
	// AlphaTrailing reads #RRGGBBAA.
	AlphaTrailing AlphaOrder = iota
	// AlphaLeading reads #AARRGGBB.
	AlphaLeading
)

// ParseAlphaOrder maps a config token to an AlphaOrder.
func ParseAlphaOrder(value string) (AlphaOrder, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "trailing":
		return AlphaTrailing, nil
	case "leading":
		return AlphaLeading, nil
	default:
		return AlphaTrailing, fmt.Errorf("alpha order: unsupported value %q", value)
	}
}

// RGBA is a resolved color. Alpha follows the common convention where 255 is
// fully opaque.
type RGBA struct {
	R, G, B, A uint8
}

// Resolve converts a color token into an RGBA value. Alpha defaults to fully
// opaque when the token does not carry one.
func Resolve(token string, order AlphaOrder) (RGBA, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return RGBA{}, fmt.Errorf("%w: empty token", ErrInvalidColor)
	}

	if strings.HasPrefix(s, "#") {
		return resolveHex(s[1:], order)
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}, nil
	}

	return RGBA{}, fmt.Errorf("%w: unknown color %q", ErrInvalidColor, token)
}

func resolveHex(hexv string, order AlphaOrder) (RGBA, error) {
	alpha := uint8(0xFF)

	switch len(hexv) {
	case 8:
		var alphaPart, rgbPart string
		if order == AlphaLeading {
			alphaPart, rgbPart = hexv[0:2], hexv[2:8]
		} else {
			alphaPart, rgbPart = hexv[6:8], hexv[0:6]
		}
		a, err := strconv.ParseUint(alphaPart, 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("%w: bad hex alpha %q", ErrInvalidColor, hexv)
		}
		alpha = uint8(a)
		hexv = rgbPart
	case 6:
	default:
		return RGBA{}, fmt.Errorf("%w: hex color must be 6 or 8 digits, got %q", ErrInvalidColor, hexv)
	}

	value, err := strconv.ParseUint(hexv, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidColor, hexv)
	}
	return RGBA{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
		A: alpha,
	}, nil
}

// Text renders the color for an ASS text field (&H00BBGGRR). Alpha is always
// forced opaque for readable dialogue.
func (c RGBA) Text() string {
	return fmt.Sprintf("&H00%02X%02X%02X", c.B, c.G, c.R)
}

// Background renders the color for an ASS background field (&HAABBGGRR).
// ASS alpha is inverted relative to RGBA: 00 is opaque, FF transparent.
func (c RGBA) Background() string {
	return fmt.Sprintf("&H%02X%02X%02X%02X", 0xFF-c.A, c.B, c.G, c.R)
}

// SplitBackground returns the ASS alpha and BBGGRR components separately, for
// use in override tags such as \1a&HAA& and \1c&HBBGGRR&.
func (c RGBA) SplitBackground() (alpha string, bgr string) {
	return fmt.Sprintf("%02X", 0xFF-c.A), fmt.Sprintf("%02X%02X%02X", c.B, c.G, c.R)
}
