package mathops

import (
	"errors"
	"testing"
)

func TestFactorial(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		want float64
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{10, 3628800},
	}
	for _, c := range cases {
		got, err := Factorial(c.n)
		if err != nil {
			t.Errorf("Factorial(%d): %v", c.n, err)
			continue
		}
		if got != c.want {
			t.Errorf("Factorial(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestFactorialBounds(t *testing.T) {
	t.Parallel()

	var de *DomainError
	if _, err := Factorial(-5); !errors.As(err, &de) {
		t.Errorf("Factorial(-5): want *DomainError, got %v", err)
	}
	if _, err := Factorial(171); !errors.As(err, &de) {
		t.Errorf("Factorial(171): want *DomainError, got %v", err)
	}
	// 170! is the largest finite factorial in float64 and must succeed.
	if _, err := Factorial(170); err != nil {
		t.Errorf("Factorial(170): %v", err)
	}
}

func TestFibonacci(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		want float64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 55},
		{20, 6765},
		{78, 8944394323791464},
	}
	for _, c := range cases {
		got, err := Fibonacci(c.n)
		if err != nil {
			t.Errorf("Fibonacci(%d): %v", c.n, err)
			continue
		}
		if got != c.want {
			t.Errorf("Fibonacci(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestFibonacciBounds(t *testing.T) {
	t.Parallel()

	var de *DomainError
	if _, err := Fibonacci(-1); !errors.As(err, &de) {
		t.Errorf("Fibonacci(-1): want *DomainError, got %v", err)
	}
	if _, err := Fibonacci(79); !errors.As(err, &de) {
		t.Errorf("Fibonacci(79): want *DomainError, got %v", err)
	}
}
