package vector

import "math"

type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func FromPolar(angle, magnitude float64) Vector2 {
	return Vector2{magnitude * math.Cos(angle), magnitude * math.Sin(angle)}
}

func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle in radians, counter-clockwise from the positive x axis
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Unit returns the zero vector for a zero-length input
func (v Vector2) Unit() Vector2 {
	m := v.Magnitude()
	if m == 0 {
		return Vector2{}
	}
	return Vector2{v.X / m, v.Y / m}
}

type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Unit returns the zero vector for a zero-length input
func (v Vector3) Unit() Vector3 {
	m := v.Magnitude()
	if m == 0 {
		return Vector3{}
	}
	return Vector3{v.X / m, v.Y / m, v.Z / m}
}
