package slider

import (
	"fmt"
	"strings"
)

// Style selects how the slider track and its filled portion are shaped.
type Style int

const (
	// Circle draws the track as a ring and the filled portion as an arc.
	Circle Style = iota
	// Pie draws the track as a disc and the filled portion as a sector.
	Pie
)

func (s Style) String() string {
	switch s {
	case Circle:
		return "circle"
	case Pie:
		return "pie"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle returns the Style named by s. Matching is case insensitive.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle", "":
		return Circle, nil
	case "pie":
		return Pie, nil
	}
	return Circle, fmt.Errorf("unknown slider style %q", s)
}

// Hit classifies a point against the slider geometry.
type Hit int

const (
	HitNone Hit = iota
	HitTrack
	HitThumb
)

func (h Hit) String() string {
	switch h {
	case HitNone:
		return "none"
	case HitTrack:
		return "track"
	case HitThumb:
		return "thumb"
	}
	return fmt.Sprintf("Hit(%d)", int(h))
}
