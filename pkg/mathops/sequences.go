package mathops

import "github.com/mathmcp/mathmcp/pkg/defaults"

// Factorial returns n! for a non-negative integer n. Inputs above
// defaults.MaxFactorial are rejected because the result overflows float64.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, domainErrf("factorial", "not defined for negative numbers (got %d)", n)
	}
	if n > defaults.MaxFactorial {
		return 0, domainErrf("factorial", "%d exceeds the maximum supported input %d", n, defaults.MaxFactorial)
	}
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result, nil
}

// Fibonacci returns the nth Fibonacci number (fib(0)=0, fib(1)=1).
// Inputs above defaults.MaxFibonacci are rejected because the result can no
// longer be represented exactly in float64.
func Fibonacci(n int) (float64, error) {
	if n < 0 {
		return 0, domainErrf("fibonacci", "not defined for negative indices (got %d)", n)
	}
	if n > defaults.MaxFibonacci {
		return 0, domainErrf("fibonacci", "%d exceeds the maximum supported index %d", n, defaults.MaxFibonacci)
	}
	if n <= 1 {
		return float64(n), nil
	}
	a, b := 0.0, 1.0
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b, nil
}
