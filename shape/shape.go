// Package shape models a shape by where its centre is and which way it faces.
package shape

import "math"

// HalfTurn is the angle, in degrees, a shape is usually rotated by.
const HalfTurn = 180.0

type Point struct {
	X, Y float64
}

// Shape has no outline of its own; it only tracks a centre and an
// orientation in degrees within [0, 360).
type Shape struct {
	centre      Point
	orientation float64
}

type Option func(*Shape)

func WithCentre(p Point) Option {
	return func(s *Shape) { s.centre = p }
}

func WithOrientation(degrees float64) Option {
	return func(s *Shape) { s.orientation = normalise(degrees) }
}

// New returns a Shape centred on the origin and facing 0 degrees unless
// told otherwise.
func New(opts ...Option) *Shape {
	s := &Shape{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Shape) Centre() Point { return s.centre }

func (s *Shape) Orientation() float64 { return s.orientation }

func (s *Shape) MoveTo(p Point) {
	s.centre = p
}

// Rotate turns the shape in place.
func (s *Shape) Rotate(degrees float64) {
	s.RotateAbout(s.centre, degrees)
}

// RotateAbout turns the shape counter-clockwise around pivot. The centre
// moves along the circle around pivot and the orientation follows.
func (s *Shape) RotateAbout(pivot Point, degrees float64) {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := s.centre.X-pivot.X, s.centre.Y-pivot.Y
	s.centre = Point{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
	s.orientation = normalise(s.orientation + degrees)
}

func normalise(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return d
}
