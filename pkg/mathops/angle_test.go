package mathops

import (
	"errors"
	"math"
	"testing"
)

func TestConvertAngle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v        float64
		from, to string
		want     float64
	}{
		{180, "deg", "rad", math.Pi},
		{math.Pi, "rad", "deg", 180},
		{200, "grad", "deg", 180},
		{90, "deg", "grad", 100},
		{math.Pi / 2, "rad", "grad", 100},
		{45, "deg", "deg", 45},
	}
	for _, c := range cases {
		got, err := ConvertAngle(c.v, c.from, c.to)
		if err != nil {
			t.Errorf("ConvertAngle(%v, %q, %q): %v", c.v, c.from, c.to, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-10 {
			t.Errorf("ConvertAngle(%v, %q, %q) = %v, want %v", c.v, c.from, c.to, got, c.want)
		}
	}
}

func TestConvertAngleInvalidUnit(t *testing.T) {
	t.Parallel()

	var de *DomainError
	if _, err := ConvertAngle(1, "turns", "rad"); !errors.As(err, &de) {
		t.Errorf("invalid from unit: want *DomainError, got %v", err)
	}
	if _, err := ConvertAngle(1, "rad", "turns"); !errors.As(err, &de) {
		t.Errorf("invalid to unit: want *DomainError, got %v", err)
	}
}

func TestTrig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		angle float64
		op    string
		want  float64
	}{
		{0, "sin", 0},
		{0, "cos", 1},
		{math.Pi / 4, "tan", 1},
		{0, "sinh", 0},
		{0, "cosh", 1},
		{0, "tanh", 0},
	}
	for _, c := range cases {
		got, err := Trig(c.angle, c.op)
		if err != nil {
			t.Errorf("Trig(%v, %q): %v", c.angle, c.op, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Trig(%v, %q) = %v, want %v", c.angle, c.op, got, c.want)
		}
	}
}

func TestTrigInvalidOp(t *testing.T) {
	t.Parallel()

	var de *DomainError
	if _, err := Trig(1, "sec"); !errors.As(err, &de) {
		t.Errorf("want *DomainError, got %v", err)
	}
}
