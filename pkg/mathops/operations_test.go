package mathops

import (
	"errors"
	"math"
	"testing"
)

func TestBinary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b float64
		op   string
		want float64
	}{
		{5, 3, "+", 8},
		{10, 4, "-", 6},
		{6, 7, "*", 42},
		{20, 5, "/", 4},
		{2, 8, "**", 256},
		{2, 8, "log", 3},
		{10, 1000, "log", 3},
	}
	for _, c := range cases {
		got, err := Binary(c.a, c.b, c.op)
		if err != nil {
			t.Errorf("Binary(%v, %v, %q): %v", c.a, c.b, c.op, err)
			continue
		}
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Binary(%v, %v, %q) = %v, want %v", c.a, c.b, c.op, got, c.want)
		}
	}
}

func TestBinaryDivisionByZero(t *testing.T) {
	t.Parallel()

	_, err := Binary(10, 0, "/")
	var dz *DivisionByZeroError
	if !errors.As(err, &dz) {
		t.Fatalf("want *DivisionByZeroError, got %v", err)
	}
}

func TestBinaryInvalidOp(t *testing.T) {
	t.Parallel()

	for _, op := range []string{"%", "^", "", "pow"} {
		_, err := Binary(1, 2, op)
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("Binary(1, 2, %q): want *DomainError, got %v", op, err)
		}
	}
}

func TestBinaryLogDomain(t *testing.T) {
	t.Parallel()

	cases := []struct{ a, b float64 }{
		{1, 10},  // base 1
		{0, 10},  // base 0
		{-2, 10}, // negative base
		{2, 0},   // log of 0
		{2, -5},  // log of negative
	}
	for _, c := range cases {
		_, err := Binary(c.a, c.b, "log")
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("Binary(%v, %v, log): want *DomainError, got %v", c.a, c.b, err)
		}
	}
}

func TestUnarySqrt(t *testing.T) {
	t.Parallel()

	got, err := Unary(144, "sqrt")
	if err != nil {
		t.Fatalf("Unary: %v", err)
	}
	if got != 12 {
		t.Errorf("sqrt(144) = %v, want 12", got)
	}

	_, err = Unary(-1, "sqrt")
	var de *DomainError
	if !errors.As(err, &de) {
		t.Errorf("sqrt(-1): want *DomainError, got %v", err)
	}
}

func TestPower(t *testing.T) {
	t.Parallel()

	if v, err := Power(2, -3); err != nil || v != 0.125 {
		t.Errorf("Power(2, -3) = %v, %v; want 0.125", v, err)
	}
	if v, err := Power(4, 0.5); err != nil || v != 2 {
		t.Errorf("Power(4, 0.5) = %v, %v; want 2", v, err)
	}

	var de *DomainError
	if _, err := Power(-8, 0.5); !errors.As(err, &de) {
		t.Errorf("Power(-8, 0.5): want *DomainError, got %v", err)
	}
	var dz *DivisionByZeroError
	if _, err := Power(0, -1); !errors.As(err, &dz) {
		t.Errorf("Power(0, -1): want *DivisionByZeroError, got %v", err)
	}
}

func TestResolveOperand(t *testing.T) {
	t.Parallel()

	if v, err := ResolveOperand(2.5); err != nil || v != 2.5 {
		t.Errorf("ResolveOperand(2.5) = %v, %v", v, err)
	}
	if v, err := ResolveOperand("pi"); err != nil || v != math.Pi {
		t.Errorf("ResolveOperand(pi) = %v, %v", v, err)
	}
	if v, err := ResolveOperand("e"); err != nil || v != math.E {
		t.Errorf("ResolveOperand(e) = %v, %v", v, err)
	}

	var de *DomainError
	if _, err := ResolveOperand("tau"); !errors.As(err, &de) {
		t.Errorf("ResolveOperand(tau): want *DomainError, got %v", err)
	}
	if _, err := ResolveOperand(true); !errors.As(err, &de) {
		t.Errorf("ResolveOperand(true): want *DomainError, got %v", err)
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{120, "120"},
		{-4, "-4"},
		{0, "0"},
		{0.25, "0.25"},
		{math.Pi, "3.141592653589793"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
