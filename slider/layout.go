package slider

import (
	"github.com/soypat/circslider"
	"github.com/soypat/circslider/form2"
	"github.com/soypat/circslider/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Layout is the slider geometry for its current value, style and frame.
// Shapes are in view coordinates.
type Layout struct {
	Center r2.Vec
	Radius float64
	// FillAngle is the clockwise angle from 12 o'clock covered by the value.
	FillAngle float64
	// ThumbCenter is where the thumb sits on the track.
	ThumbCenter r2.Vec

	// Track is the whole track: a ring for Circle, a disc for Pie.
	Track circslider.SDF2
	// Fill is the part of the track between the minimum and the value.
	Fill  circslider.SDF2
	Thumb circslider.SDF2
}

// Layout returns the geometry computed after the last change to the slider.
func (s *Slider) Layout() (Layout, error) {
	return s.layout, s.layoutErr
}

// HitTest reports which part of the slider, if any, lies under p.
// The thumb takes precedence over the track.
func (s *Slider) HitTest(p r2.Vec) Hit {
	if s.layoutErr != nil {
		return HitNone
	}
	slop := s.frame.TouchSlop
	switch {
	case circslider.Contains(circslider.Offset2D(s.layout.Thumb, slop), p):
		return HitThumb
	case circslider.Contains(circslider.Offset2D(s.layout.Track, slop), p):
		return HitTrack
	}
	return HitNone
}

// recomputeGeometry refreshes the cached layout and thumb image. It must be
// called after every change to value, bounds, style or frame.
func (s *Slider) recomputeGeometry() {
	s.layout, s.layoutErr = buildLayout(s.frame, s.style, s.AngleForValue(s.value))
	s.appearance.fitThumbImage(s.frame.ThumbRadius)
}

func buildLayout(f Frame, style Style, angle float64) (Layout, error) {
	angle = circslider.Clamp(angle, 0, fullTurn)
	l := Layout{
		Center:      f.Center,
		Radius:      f.Radius,
		FillAngle:   angle,
		ThumbCenter: r2.Add(f.Center, d2.ClockPoint(f.Radius, angle)),
	}
	var err error
	var track, fill circslider.SDF2
	switch style {
	case Pie:
		track, err = form2.Circle(f.Radius)
		if err == nil {
			fill, err = form2.Pie(f.Radius, angle)
		}
	default:
		track, err = form2.Annulus(f.Radius, f.TrackWidth)
		if err == nil {
			fill, err = form2.Arc(f.Radius, f.TrackWidth, angle)
		}
	}
	if err != nil {
		return Layout{}, err
	}
	thumb, err := form2.Circle(f.ThumbRadius)
	if err != nil {
		return Layout{}, err
	}
	toView := circslider.Translate2D(f.Center)
	l.Track = circslider.Transform2D(track, toView)
	l.Fill = circslider.Transform2D(fill, toView)
	l.Thumb = circslider.Transform2D(thumb, circslider.Translate2D(l.ThumbCenter))
	return l, nil
}
