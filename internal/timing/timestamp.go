package timing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Format describes how a timestamp anchor value is written in the transcript.
type Format int

const (
	// FormatSeconds parses bare seconds ("95").
	FormatSeconds Format = iota
	// FormatMinSec parses minutes and seconds ("12:34").
	FormatMinSec
	// FormatHourMinSec parses hours, minutes, and seconds ("1:02:03").
	FormatHourMinSec
)

// ParseFormat maps a config token to a Format.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ss":
		return FormatSeconds, nil
	case "mm:ss", "":
		return FormatMinSec, nil
	case "hh:mm:ss":
		return FormatHourMinSec, nil
	default:
		return FormatMinSec, fmt.Errorf("timestamp format: unsupported value %q", value)
	}
}

// String returns the config token for the format.
func (f Format) String() string {
	switch f {
	case FormatSeconds:
		return "ss"
	case FormatHourMinSec:
		return "hh:mm:ss"
	default:
		return "mm:ss"
	}
}

// ParseTimestamp parses an anchor value according to the declared format. An
// optional fractional suffix is read as milliseconds, truncated or padded to
// three digits.
func ParseTimestamp(value string, format Format) (time.Duration, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	var millis int
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		frac := strings.TrimSpace(s[idx+1:])
		s = s[:idx]
		for _, ch := range frac {
			if ch < '0' || ch > '9' {
				return 0, fmt.Errorf("timestamp %q: bad fractional part", value)
			}
		}
		if frac != "" {
			if len(frac) > 3 {
				frac = frac[:3]
			}
			for len(frac) < 3 {
				frac += "0"
			}
			parsed, err := strconv.Atoi(frac)
			if err != nil {
				return 0, fmt.Errorf("timestamp %q: bad fractional part", value)
			}
			millis = parsed
		}
	}

	parts := strings.Split(s, ":")
	fields := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("timestamp %q does not match format %q", value, format)
		}
		fields = append(fields, n)
	}

	var total time.Duration
	switch format {
	case FormatSeconds:
		if len(fields) != 1 {
			return 0, fmt.Errorf("timestamp %q does not match format %q", value, format)
		}
		total = time.Duration(fields[0]) * time.Second
	case FormatMinSec:
		if len(fields) != 2 {
			return 0, fmt.Errorf("timestamp %q does not match format %q", value, format)
		}
		total = time.Duration(fields[0])*time.Minute + time.Duration(fields[1])*time.Second
	case FormatHourMinSec:
		if len(fields) != 3 {
			return 0, fmt.Errorf("timestamp %q does not match format %q", value, format)
		}
		total = time.Duration(fields[0])*time.Hour + time.Duration(fields[1])*time.Minute + time.Duration(fields[2])*time.Second
	default:
		return 0, fmt.Errorf("unsupported timestamp format %d", format)
	}

	return total + time.Duration(millis)*time.Millisecond, nil
}
