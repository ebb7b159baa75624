package mathops

import "math"

// QuadraticRoots holds the solutions of ax² + bx + c = 0. When the
// discriminant is negative the roots are complex conjugates and IsComplex
// is true.
type QuadraticRoots struct {
	Discriminant float64
	X1, X2       complex128
	IsComplex    bool
}

// SolveQuadratic solves ax² + bx + c = 0. A zero leading coefficient is a
// *DomainError because the equation degenerates to a linear one.
func SolveQuadratic(a, b, c float64) (QuadraticRoots, error) {
	if a == 0 {
		return QuadraticRoots{}, domainErrf("quadratic", "coefficient 'a' cannot be zero in a quadratic equation")
	}

	disc := b*b - 4*a*c
	r := QuadraticRoots{Discriminant: disc}

	if disc >= 0 {
		sq := math.Sqrt(disc)
		r.X1 = complex((-b+sq)/(2*a), 0)
		r.X2 = complex((-b-sq)/(2*a), 0)
		return r, nil
	}

	re := -b / (2 * a)
	im := math.Sqrt(-disc) / (2 * a)
	r.X1 = complex(re, im)
	r.X2 = complex(re, -im)
	r.IsComplex = true
	return r, nil
}
