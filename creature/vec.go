package creature

import "math"

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float32
}

// V returns a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// LengthSquared returns the squared Euclidean norm.
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean norm.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// NormalizeOrZero returns the unit vector in the direction of v,
// or the zero vector when v has no length.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Length()
	if l == 0 || isNaN(l) {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func isNaN(f float32) bool {
	return f != f
}
