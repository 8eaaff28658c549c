package domain

import "math"

// Angle is a radians-backed angle value. It never normalizes: values outside
// [0, 2π) are legal and meaningful (accumulated offsets), and the sign of the
// raw radian value is significant to the hour-angle convention.
type Angle float64

// AngleFromRad constructs an Angle from radians.
func AngleFromRad(rad float64) Angle {
	return Angle(rad)
}

// AngleFromDeg constructs an Angle from degrees.
func AngleFromDeg(deg float64) Angle {
	return Angle(deg * math.Pi / 180.0)
}

// Rad returns the angle in radians.
func (a Angle) Rad() float64 {
	return float64(a)
}

// Deg returns the angle in degrees.
func (a Angle) Deg() float64 {
	return float64(a) * 180.0 / math.Pi
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 { return math.Sin(float64(a)) }

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 { return math.Cos(float64(a)) }

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 { return math.Tan(float64(a)) }

// Add returns a + b.
func (a Angle) Add(b Angle) Angle { return a + b }

// Sub returns a - b.
func (a Angle) Sub(b Angle) Angle { return a - b }

// Mul scales the angle by a unitless factor.
func (a Angle) Mul(k float64) Angle { return Angle(float64(a) * k) }

// Div divides the angle by a unitless factor.
func (a Angle) Div(k float64) Angle { return Angle(float64(a) / k) }
