package slider

import (
	"errors"
	"math"

	"github.com/soypat/circslider"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrNotTracking is returned when a touch update arrives outside of a drag.
var ErrNotTracking = errors.New("slider is not tracking a touch")

type trackState struct {
	active bool
	// angle is the unwrapped thumb angle. It leaves [0, 2π] while the touch
	// is past 12 o'clock and the thumb is pinned.
	angle float64
	// raw is the last touch angle, in [0, 2π).
	raw        float64
	startValue float64
}

// follow returns the thumb angle for a raw touch angle. The touch is assumed
// to move less than half a turn between updates. Moving past 12 o'clock pins
// the thumb at the end it crossed until the touch winds back by as much as
// it went past.
func (ts *trackState) follow(raw float64) float64 {
	d := circslider.WrapAngle(raw - ts.raw)
	if d > math.Pi {
		d -= fullTurn
	}
	ts.raw = raw
	ts.angle += d
	return circslider.Clamp(ts.angle, 0, fullTurn)
}

// Tracking reports whether a drag is in progress.
func (s *Slider) Tracking() bool { return s.tracking.active }

// TouchAngle returns the clockwise angle from 12 o'clock of the ray from the
// slider center to p, in [0, 2π).
func (s *Slider) TouchAngle(p r2.Vec) (float64, error) {
	c := s.frame.Center
	top := r2.Vec{X: c.X, Y: c.Y - s.frame.Radius}
	a, err := circslider.AngleBetween(c, top, p)
	if err != nil {
		return 0, err
	}
	if p.X < c.X {
		a = fullTurn - a
	}
	return a, nil
}

// BeginTracking starts a drag if p touches the track or the thumb and
// reports whether it did. A touch on the track moves the thumb under it.
func (s *Slider) BeginTracking(p r2.Vec) bool {
	if s.HitTest(p) == HitNone {
		return false
	}
	cur := s.AngleForValue(s.value)
	s.tracking = trackState{
		active:     true,
		angle:      cur,
		raw:        cur,
		startValue: s.value,
	}
	if a, err := s.TouchAngle(p); err == nil {
		s.tracking.angle = a
		s.tracking.raw = a
		s.moveTo(a)
	}
	return true
}

// ContinueTracking moves the thumb to follow a touch at p.
// A touch exactly at the slider center has no direction and returns an
// error wrapping circslider.ErrDegenerateGeometry, leaving the value as is.
func (s *Slider) ContinueTracking(p r2.Vec) error {
	if !s.tracking.active {
		return ErrNotTracking
	}
	a, err := s.TouchAngle(p)
	if err != nil {
		return err
	}
	s.moveTo(s.tracking.follow(a))
	return nil
}

// EndTracking applies the final touch at p and ends the drag. Sliders that
// are not continuous notify their handlers here if the drag changed the value.
func (s *Slider) EndTracking(p r2.Vec) error {
	err := s.ContinueTracking(p)
	if errors.Is(err, ErrNotTracking) {
		return err
	}
	start := s.tracking.startValue
	s.tracking = trackState{}
	if !s.continuous && s.value != start {
		s.notify()
	}
	return err
}

// CancelTracking ends a drag without notifying handlers. The value reached
// so far is kept.
func (s *Slider) CancelTracking() {
	s.tracking = trackState{}
}

func (s *Slider) moveTo(angle float64) {
	prev := s.value
	s.setValue(s.ValueForAngle(angle))
	if s.value == prev {
		return
	}
	s.recomputeGeometry()
	if s.continuous {
		s.notify()
	}
}
