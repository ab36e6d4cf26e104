package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tkdn/thinkgo/shape"
)

const delta = 1e-9

func assertPoint(t *testing.T, want, got shape.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X")
	assert.InDelta(t, want.Y, got.Y, delta, "Y")
}

func TestNew_Defaults(t *testing.T) {
	s := shape.New()
	assert.Equal(t, shape.Point{}, s.Centre())
	assert.Zero(t, s.Orientation())
}

func TestNew_Options(t *testing.T) {
	s := shape.New(shape.WithCentre(shape.Point{X: 2, Y: 3}), shape.WithOrientation(-90))
	assert.Equal(t, shape.Point{X: 2, Y: 3}, s.Centre())
	assert.Equal(t, 270.0, s.Orientation())
}

func TestMoveTo(t *testing.T) {
	s := shape.New(shape.WithOrientation(45))
	s.MoveTo(shape.Point{X: -1, Y: 4})
	assert.Equal(t, shape.Point{X: -1, Y: 4}, s.Centre())
	assert.Equal(t, 45.0, s.Orientation(), "moving must not turn the shape")
}

func TestRotate_InPlace(t *testing.T) {
	s := shape.New(shape.WithCentre(shape.Point{X: 5, Y: 5}))
	s.Rotate(shape.HalfTurn)
	assertPoint(t, shape.Point{X: 5, Y: 5}, s.Centre())
	assert.Equal(t, 180.0, s.Orientation())

	s.Rotate(shape.HalfTurn)
	assert.Equal(t, 0.0, s.Orientation())
}

func TestRotateAbout(t *testing.T) {
	tests := []struct {
		name            string
		centre          shape.Point
		pivot           shape.Point
		degrees         float64
		wantCentre      shape.Point
		wantOrientation float64
	}{
		{
			name:            "quarter turn around origin",
			centre:          shape.Point{X: 1, Y: 0},
			degrees:         90,
			wantCentre:      shape.Point{X: 0, Y: 1},
			wantOrientation: 90,
		},
		{
			name:            "half turn around a pivot",
			centre:          shape.Point{X: 3, Y: 1},
			pivot:           shape.Point{X: 1, Y: 1},
			degrees:         shape.HalfTurn,
			wantCentre:      shape.Point{X: -1, Y: 1},
			wantOrientation: 180,
		},
		{
			name:            "clockwise wraps",
			centre:          shape.Point{X: 0, Y: 2},
			degrees:         -90,
			wantCentre:      shape.Point{X: 2, Y: 0},
			wantOrientation: 270,
		},
		{
			name:            "full turns",
			centre:          shape.Point{X: 1, Y: 1},
			degrees:         720,
			wantCentre:      shape.Point{X: 1, Y: 1},
			wantOrientation: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := shape.New(shape.WithCentre(tt.centre))
			s.RotateAbout(tt.pivot, tt.degrees)
			assertPoint(t, tt.wantCentre, s.Centre())
			assert.InDelta(t, tt.wantOrientation, s.Orientation(), delta)
		})
	}
}
