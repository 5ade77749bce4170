package circslider

import (
	"github.com/soypat/circslider/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// 2D signed distance functions describing slider geometry.

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate takes a point in 2D space as input and returns
	// the minimum distance of the SDF2 to the point. The distance
	// is negative if the point is contained within the SDF2.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the SDF2.
	Bounds() r2.Box
}

// Contains reports whether p lies inside or on the boundary of s.
func Contains(s SDF2, p r2.Vec) bool {
	return s.Evaluate(p) <= tolerance
}

// m33 is a 2d homogeneous transformation matrix.
type m33 = d2.Transform

// Translate2D returns a 3x3 translation matrix.
func Translate2D(v r2.Vec) m33 { return d2.TranslateTransform(v) }

// Rotate2D returns a 3x3 rotation matrix. Positive angles rotate clockwise
// in screen coordinates.
func Rotate2D(a float64) m33 { return d2.RotateTransform(a) }

// Transform SDF2 (rotation and translation are distance preserving)

// TransformSDF2 transforms an SDF2 with rotation and translation.
type TransformSDF2 struct {
	sdf  SDF2
	mInv m33
	bb   r2.Box
}

// Transform2D applies a transformation matrix to an SDF2.
// Distance is *not* preserved with scaling.
func Transform2D(sdf SDF2, m m33) SDF2 {
	s := TransformSDF2{}
	s.sdf = sdf
	s.mInv = m.Inverse()
	s.bb = r2.Box(m.ApplyBox(d2.Box(sdf.Bounds())))
	return &s
}

// Evaluate returns the minimum distance to a transformed SDF2.
func (s *TransformSDF2) Evaluate(p r2.Vec) float64 {
	q := s.mInv.ApplyPos(p)
	return s.sdf.Evaluate(q)
}

// Bounds returns the bounding box of a transformed SDF2.
func (s *TransformSDF2) Bounds() r2.Box {
	return s.bb
}

// offset2 offsets the distance function of an existing SDF2.
type offset2 struct {
	sdf    SDF2
	offset float64
	bb     r2.Box
}

// Offset2D returns an SDF2 that offsets the distance function of another SDF2.
// Positive offsets grow the shape.
func Offset2D(sdf SDF2, offset float64) SDF2 {
	s := offset2{}
	s.sdf = sdf
	s.offset = offset
	// work out the bounding box
	bb := d2.Box(sdf.Bounds())
	s.bb = r2.Box(d2.NewBox2(bb.Center(), r2.Add(bb.Size(), d2.Elem(2*offset))))
	return &s
}

// Evaluate returns the minimum distance to an offset SDF2.
func (s *offset2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(p) - s.offset
}

// Bounds returns the bounding box of an offset SDF2.
func (s *offset2) Bounds() r2.Box {
	return s.bb
}
