package slider

import (
	"math"
	"testing"

	"github.com/soypat/circslider"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestLayoutThumbFollowsValue(t *testing.T) {
	s := newTestSlider(t)
	f := s.Frame()
	for _, test := range []struct {
		value float64
		want  r2.Vec
	}{
		{0, r2.Vec{X: f.Center.X, Y: f.Center.Y - f.Radius}},
		{0.25, r2.Vec{X: f.Center.X + f.Radius, Y: f.Center.Y}},
		{0.5, r2.Vec{X: f.Center.X, Y: f.Center.Y + f.Radius}},
		{0.75, r2.Vec{X: f.Center.X - f.Radius, Y: f.Center.Y}},
	} {
		s.SetValue(test.value)
		l, err := s.Layout()
		if err != nil {
			t.Fatal(err)
		}
		if !circslider.EqualPoint(l.ThumbCenter, test.want, 1e-9) {
			t.Errorf("value %g: thumb at %v. want %v", test.value, l.ThumbCenter, test.want)
		}
		if got := l.FillAngle; math.Abs(got-2*math.Pi*test.value) > 1e-12 {
			t.Errorf("value %g: fill angle %g", test.value, got)
		}
	}
}

func TestLayoutFill(t *testing.T) {
	for _, style := range []Style{Circle, Pie} {
		s := newTestSlider(t)
		s.SetStyle(style)
		s.SetValue(0.5) // right half filled.
		l, err := s.Layout()
		if err != nil {
			t.Fatal(err)
		}
		if !circslider.Contains(l.Fill, atScaled(s, 0.95, math.Pi/2)) {
			t.Errorf("%v: fill should cover 3 o'clock", style)
		}
		if circslider.Contains(l.Fill, atScaled(s, 0.95, 3*math.Pi/2)) {
			t.Errorf("%v: fill should not cover 9 o'clock", style)
		}
		if !circslider.Contains(l.Track, atScaled(s, 0.95, 3*math.Pi/2)) {
			t.Errorf("%v: track should cover 9 o'clock", style)
		}
		s.SetValue(1)
		l, err = s.Layout()
		if err != nil {
			t.Fatal(err)
		}
		if !circslider.Contains(l.Fill, atScaled(s, 0.95, 3*math.Pi/2)) {
			t.Errorf("%v: full fill should cover 9 o'clock", style)
		}
	}
}

func TestHitTest(t *testing.T) {
	s := newTestSlider(t)
	s.SetValue(0.25)
	f := s.Frame()
	for _, test := range []struct {
		style Style
		p     r2.Vec
		want  Hit
	}{
		{Circle, at(s, math.Pi/2), HitThumb},
		{Circle, at(s, math.Pi), HitTrack},
		{Circle, f.Center, HitNone},
		{Circle, r2.Vec{X: -100, Y: -100}, HitNone},
		{Pie, f.Center, HitTrack},
		{Pie, at(s, math.Pi/2), HitThumb},
		{Pie, r2.Add(f.Center, r2.Vec{X: f.Radius + f.ThumbRadius + f.TouchSlop + 1}), HitNone},
	} {
		s.SetStyle(test.style)
		if got := s.HitTest(test.p); got != test.want {
			t.Errorf("%v: HitTest(%v) got %v. want %v", test.style, test.p, got, test.want)
		}
	}
}
