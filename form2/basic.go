package form2

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/circslider"
	"github.com/soypat/circslider/form2/must2"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Circle returns the SDF2 for a 2d circle.
func Circle(radius float64) (s circslider.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Circle(radius), err
}

// Annulus returns a ring of radius r and total width w.
func Annulus(r, w float64) (s circslider.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return must2.Annulus(r, w), err
}

// Arc returns a round capped ring segment of radius r and total width w
// spanning aperture radians clockwise from 12 o'clock.
func Arc(r, w, aperture float64) (s circslider.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return startAtTop(must2.Arc(r, aperture, w/2), aperture), err
}

// Pie returns a circular sector of radius r spanning aperture radians
// clockwise from 12 o'clock.
func Pie(r, aperture float64) (s circslider.SDF2, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return startAtTop(must2.Pie(r, aperture), aperture), err
}

// startAtTop rotates a shape symmetric about 12 o'clock so it begins there.
func startAtTop(s circslider.SDF2, aperture float64) circslider.SDF2 {
	if aperture == 0 {
		return s
	}
	return circslider.Transform2D(s, circslider.Rotate2D(aperture/2))
}
