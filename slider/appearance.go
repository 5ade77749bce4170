package slider

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
)

// Appearance holds the tints and thumb image of a slider. Nothing here is
// drawn by this package; it is handed to whatever renders the Layout.
type Appearance struct {
	// MinimumTrackTint colors the filled portion of the track.
	MinimumTrackTint fauxgl.Color
	// MaximumTrackTint colors the portion of the track past the value.
	MaximumTrackTint fauxgl.Color
	// ThumbTint colors the thumb when no thumb image is set.
	ThumbTint fauxgl.Color

	thumbSource image.Image
	thumbImage  image.Image
	thumbSize   uint
}

func defaultAppearance() Appearance {
	return Appearance{
		MinimumTrackTint: fauxgl.HexColor("#007AFF"),
		MaximumTrackTint: fauxgl.HexColor("#B7B7B7"),
		ThumbTint:        fauxgl.HexColor("#FFFFFF"),
	}
}

// ParseTint parses a #RGB or #RRGGBB hex color.
func ParseTint(hex string) (fauxgl.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 3 && len(h) != 6 {
		return fauxgl.Color{}, fmt.Errorf("tint %q: want #RGB or #RRGGBB", hex)
	}
	for _, c := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return fauxgl.Color{}, fmt.Errorf("tint %q: invalid hex digit %q", hex, c)
		}
	}
	return fauxgl.HexColor(h), nil
}

// ThumbImage returns the thumb image scaled to the thumb diameter, or nil.
func (a *Appearance) ThumbImage() image.Image { return a.thumbImage }

// ThumbUsesImage reports whether the thumb image takes precedence over ThumbTint.
func (a *Appearance) ThumbUsesImage() bool { return a.thumbImage != nil }

// fitThumbImage rescales the thumb image when the thumb diameter changes.
func (a *Appearance) fitThumbImage(thumbRadius float64) {
	if a.thumbSource == nil {
		a.thumbImage = nil
		a.thumbSize = 0
		return
	}
	size := uint(math.Max(1, math.Ceil(2*thumbRadius)))
	if a.thumbImage != nil && size == a.thumbSize {
		return
	}
	a.thumbImage = resize.Resize(size, size, a.thumbSource, resize.Lanczos3)
	a.thumbSize = size
}

// Appearance returns the slider tints and thumb image.
func (s *Slider) Appearance() *Appearance { return &s.appearance }

// SetMinimumTrackTint sets the color of the filled portion of the track.
func (s *Slider) SetMinimumTrackTint(c fauxgl.Color) { s.appearance.MinimumTrackTint = c }

// SetMaximumTrackTint sets the color of the unfilled portion of the track.
func (s *Slider) SetMaximumTrackTint(c fauxgl.Color) { s.appearance.MaximumTrackTint = c }

// SetThumbTint sets the thumb color.
func (s *Slider) SetThumbTint(c fauxgl.Color) { s.appearance.ThumbTint = c }

// SetThumbImage sets the image used for the thumb. It takes precedence over
// the thumb tint. A nil image restores the tinted thumb.
func (s *Slider) SetThumbImage(img image.Image) {
	s.appearance.thumbSource = img
	s.appearance.thumbImage = nil
	s.recomputeGeometry()
}
