package style

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

var colorPattern = regexp.MustCompile(`rgba?\(([^)]*)\)`)

// ParseColor parses a textual rgb()/rgba() triple into channel values.
// A string that fails to parse falls back to opaque white; this is the
// documented fallback policy, not an error condition.
func ParseColor(s string) color.NRGBA {
	if c, ok := parseColor(s); ok {
		return c
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

func parseColor(s string) (color.NRGBA, bool) {
	m := colorPattern.FindStringSubmatch(s)
	if m == nil {
		return color.NRGBA{}, false
	}

	parts := strings.Split(m[1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, false
		}
		channels[i] = uint8(v)
	}

	alpha := uint8(255)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, false
		}
		alpha = uint8(a*255 + 0.5)
	}

	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, true
}

// ParseLength parses a pixel length such as "24px" or "16.5px".
// Returns 0 when the value is missing or malformed.
func ParseLength(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ExtractTintStops extracts the first two color occurrences from a
// declared background value (typically a linear-gradient shorthand).
// Returns nil unless two colors are present.
func ExtractTintStops(background string) []color.NRGBA {
	matches := colorPattern.FindAllString(background, 2)
	if len(matches) < 2 {
		return nil
	}

	stops := make([]color.NRGBA, 0, 2)
	for _, m := range matches {
		c, ok := parseColor(m)
		if !ok {
			return nil
		}
		stops = append(stops, c)
	}
	return stops
}
