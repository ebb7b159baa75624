package mathops

import "math"

// Angle units accepted by ConvertAngle.
const (
	UnitDegrees  = "deg"
	UnitRadians  = "rad"
	UnitGradians = "grad"
)

// ConvertAngle converts an angle between degrees, radians, and gradians.
// The value is converted to radians first, then to the target unit, so
// deg→grad round-trips agree with deg→rad→grad.
func ConvertAngle(angle float64, from, to string) (float64, error) {
	rad, err := toRadians(angle, from)
	if err != nil {
		return 0, err
	}
	switch to {
	case UnitDegrees:
		return rad * (180 / math.Pi), nil
	case UnitGradians:
		return rad * (200 / math.Pi), nil
	case UnitRadians:
		return rad, nil
	default:
		return 0, domainErrf("angle_convert", "invalid unit %q (expected deg, rad, or grad)", to)
	}
}

func toRadians(angle float64, from string) (float64, error) {
	switch from {
	case UnitDegrees:
		return angle * (math.Pi / 180), nil
	case UnitGradians:
		return angle * (math.Pi / 200), nil
	case UnitRadians:
		return angle, nil
	default:
		return 0, domainErrf("angle_convert", "invalid unit %q (expected deg, rad, or grad)", from)
	}
}

// Trig applies a trigonometric or hyperbolic function to an angle in
// radians. Supported operations: sin, cos, tan, sinh, cosh, tanh.
func Trig(angle float64, op string) (float64, error) {
	switch op {
	case "sin":
		return math.Sin(angle), nil
	case "cos":
		return math.Cos(angle), nil
	case "tan":
		return math.Tan(angle), nil
	case "sinh":
		return math.Sinh(angle), nil
	case "cosh":
		return math.Cosh(angle), nil
	case "tanh":
		return math.Tanh(angle), nil
	default:
		return 0, domainErrf("trig", "invalid operation %q (expected sin, cos, tan, sinh, cosh, or tanh)", op)
	}
}
