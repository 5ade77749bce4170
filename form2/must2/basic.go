package must2

import (
	"math"

	"github.com/soypat/circslider/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// All shapes are centered on the origin in screen coordinates (y down).
// Angular shapes are symmetric about the ray pointing to 12 o'clock.

// 2D Circle

// circle is the 2d signed distance object for a circle.
type circle struct {
	radius float64
	bb     r2.Box
}

// Circle returns the SDF2 for a 2d circle.
func Circle(radius float64) *circle {
	if radius < 0 {
		panic("radius < 0")
	}
	s := circle{}
	s.radius = radius
	s.bb = squareBounds(radius)
	return &s
}

// Evaluate returns the minimum distance to a 2d circle.
func (s *circle) Evaluate(p r2.Vec) float64 {
	return r2.Norm(p) - s.radius
}

// Bounds returns the bounding box of a 2d circle.
func (s *circle) Bounds() r2.Box {
	return s.bb
}

// 2D Annulus (ring)

type annulus struct {
	radius, halfWidth float64
	bb                r2.Box
}

// Annulus returns a ring of mean radius r and a total width w.
func Annulus(r, w float64) *annulus {
	switch {
	case w <= 0:
		panic("ring width <= 0")
	case r < w/2:
		panic("ring radius smaller than half its width")
	}
	return &annulus{
		radius:    r,
		halfWidth: w / 2,
		bb:        squareBounds(r + w/2),
	}
}

// Evaluate returns the minimum distance to a ring.
func (s *annulus) Evaluate(p r2.Vec) float64 {
	return math.Abs(r2.Norm(p)-s.radius) - s.halfWidth
}

// Bounds returns the bounding box of a ring.
func (s *annulus) Bounds() r2.Box {
	return s.bb
}

// 2D Arc with round caps

type arc struct {
	sc     r2.Vec // sine/cosine of half the aperture.
	radius float64
	round  float64
	bb     r2.Box
}

// Arc returns a ring segment of radius r and thickness 2*round spanning
// the angle aperture, centered on 12 o'clock. Ends are rounded.
func Arc(r, aperture, round float64) *arc {
	switch {
	case r <= 0:
		panic("arc radius <= 0")
	case round <= 0:
		panic("arc round <= 0")
	case aperture < 0 || aperture > 2*math.Pi:
		panic("arc aperture out of [0, 2π]")
	}
	s, c := math.Sincos(aperture / 2)
	return &arc{
		sc:     r2.Vec{X: s, Y: c},
		radius: r,
		round:  round,
		bb:     squareBounds(r + round),
	}
}

// Evaluate returns the minimum distance to an arc.
func (s *arc) Evaluate(p r2.Vec) float64 {
	q := r2.Vec{X: math.Abs(p.X), Y: -p.Y}
	if s.sc.Y*q.X > s.sc.X*q.Y {
		// past the end cap.
		return r2.Norm(r2.Sub(q, r2.Scale(s.radius, s.sc))) - s.round
	}
	return math.Abs(r2.Norm(q)-s.radius) - s.round
}

// Bounds returns the bounding box of an arc.
func (s *arc) Bounds() r2.Box {
	return s.bb
}

// 2D Pie (circular sector)

type pie struct {
	c      r2.Vec // sine/cosine of half the aperture.
	radius float64
	bb     r2.Box
}

// Pie returns a circular sector of radius r spanning the angle aperture,
// centered on 12 o'clock.
func Pie(r, aperture float64) *pie {
	switch {
	case r <= 0:
		panic("pie radius <= 0")
	case aperture < 0 || aperture > 2*math.Pi:
		panic("pie aperture out of [0, 2π]")
	}
	s, c := math.Sincos(aperture / 2)
	return &pie{
		c:      r2.Vec{X: s, Y: c},
		radius: r,
		bb:     squareBounds(r),
	}
}

// Evaluate returns the minimum distance to a pie.
func (s *pie) Evaluate(p r2.Vec) float64 {
	q := r2.Vec{X: math.Abs(p.X), Y: -p.Y}
	l := r2.Norm(q) - s.radius
	m := r2.Norm(r2.Sub(q, r2.Scale(clamp(r2.Dot(q, s.c), 0, s.radius), s.c)))
	return math.Max(l, m*sign(s.c.Y*q.X-s.c.X*q.Y))
}

// Bounds returns the bounding box of a pie.
func (s *pie) Bounds() r2.Box {
	return s.bb
}

func squareBounds(half float64) r2.Box {
	d := d2.Elem(half)
	return r2.Box{Min: r2.Scale(-1, d), Max: d}
}

func clamp(x, a, b float64) float64 {
	return math.Min(b, math.Max(x, a))
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
