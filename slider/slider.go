// Package slider implements the state of a circular slider control: a value
// bounded by a minimum and maximum, selected by dragging a thumb around a
// circle or pie.
//
// Coordinates are view coordinates with y growing downward. Angles are
// measured clockwise from 12 o'clock and a full turn spans the whole
// [minimum, maximum] range.
package slider

import (
	"errors"
	"math"

	"github.com/soypat/circslider"
	"gonum.org/v1/gonum/spatial/r2"
)

const fullTurn = 2 * math.Pi

// Frame places the slider in view coordinates.
type Frame struct {
	Center r2.Vec
	// Radius is the distance from Center to the middle of the track.
	Radius float64
	// TrackWidth is the width of the ring in the Circle style.
	TrackWidth float64
	// ThumbRadius is the radius of the thumb.
	ThumbRadius float64
	// TouchSlop grows the touchable area of the track and thumb.
	TouchSlop float64
}

// DefaultFrame fits a slider in a 100x100 view.
var DefaultFrame = Frame{
	Center:      r2.Vec{X: 50, Y: 50},
	Radius:      38,
	TrackWidth:  8,
	ThumbRadius: 10,
	TouchSlop:   4,
}

func (f Frame) validate() error {
	switch {
	case f.Radius <= 0:
		return errors.New("slider radius must be positive")
	case f.TrackWidth <= 0:
		return errors.New("track width must be positive")
	case f.TrackWidth > 2*f.Radius:
		return errors.New("track wider than slider")
	case f.ThumbRadius <= 0:
		return errors.New("thumb radius must be positive")
	case f.TouchSlop < 0:
		return errors.New("negative touch slop")
	}
	return nil
}

// Slider holds the state of a circular slider. The zero value is not usable,
// create sliders with New.
type Slider struct {
	value      float64
	min, max   float64
	style      Style
	continuous bool
	frame      Frame

	appearance Appearance
	layout     Layout
	layoutErr  error

	tracking trackState
	handlers []func(value float64)
}

// New returns a slider placed in frame with value 0, minimum 0, maximum 1,
// Circle style and continuous updates.
func New(frame Frame) (*Slider, error) {
	if err := frame.validate(); err != nil {
		return nil, err
	}
	s := &Slider{
		max:        1,
		continuous: true,
		frame:      frame,
		appearance: defaultAppearance(),
	}
	s.recomputeGeometry()
	return s, nil
}

// Value returns the current value of the slider.
func (s *Slider) Value() float64 { return s.value }

// Minimum returns the minimum value of the slider.
func (s *Slider) Minimum() float64 { return s.min }

// Maximum returns the maximum value of the slider.
func (s *Slider) Maximum() float64 { return s.max }

// Style returns the current style of the slider.
func (s *Slider) Style() Style { return s.style }

// Continuous reports whether value changed handlers fire during a drag
// or only once it ends.
func (s *Slider) Continuous() bool { return s.continuous }

// Frame returns the frame the slider is placed in.
func (s *Slider) Frame() Frame { return s.frame }

// SetValue sets the value of the slider. Values outside [minimum, maximum]
// are clamped and NaN keeps the current value. Handlers are not notified.
func (s *Slider) SetValue(v float64) {
	s.setValue(v)
	s.recomputeGeometry()
}

// SetMinimum sets the minimum value. The current value is raised to the new
// minimum if needed. A minimum above the maximum raises the maximum too.
// NaN is ignored.
func (s *Slider) SetMinimum(m float64) {
	if math.IsNaN(m) {
		return
	}
	s.min = m
	if s.max < m {
		s.max = m
	}
	s.setValue(s.value)
	s.recomputeGeometry()
}

// SetMaximum sets the maximum value. The current value is lowered to the new
// maximum if needed. A maximum below the minimum lowers the minimum too.
// NaN is ignored.
func (s *Slider) SetMaximum(m float64) {
	if math.IsNaN(m) {
		return
	}
	s.max = m
	if s.min > m {
		s.min = m
	}
	s.setValue(s.value)
	s.recomputeGeometry()
}

// SetStyle sets the slider style.
func (s *Slider) SetStyle(style Style) {
	s.style = style
	s.recomputeGeometry()
}

// SetContinuous sets whether value changed handlers fire during a drag.
func (s *Slider) SetContinuous(continuous bool) {
	s.continuous = continuous
}

// SetFrame moves or resizes the slider.
func (s *Slider) SetFrame(frame Frame) error {
	if err := frame.validate(); err != nil {
		return err
	}
	s.frame = frame
	s.recomputeGeometry()
	return nil
}

// OnValueChanged registers fn to be called when a drag changes the value.
func (s *Slider) OnValueChanged(fn func(value float64)) {
	s.handlers = append(s.handlers, fn)
}

func (s *Slider) setValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	s.value = circslider.Clamp(v, s.min, s.max)
}

func (s *Slider) notify() {
	for _, fn := range s.handlers {
		fn(s.value)
	}
}

// AngleForValue returns the clockwise angle from 12 o'clock at which the
// thumb sits for value v. A slider with minimum == maximum always returns 0.
func (s *Slider) AngleForValue(v float64) float64 {
	a, err := circslider.Translate(v, s.min, s.max, 0, fullTurn)
	if err != nil {
		return 0
	}
	return a
}

// ValueForAngle returns the value corresponding to the clockwise angle from
// 12 o'clock. The result is not clamped.
func (s *Slider) ValueForAngle(angle float64) float64 {
	v, _ := circslider.Translate(angle, 0, fullTurn, s.min, s.max) // [0, 2π] is never degenerate.
	return v
}
