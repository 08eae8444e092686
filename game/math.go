package game

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Vec2 is a 2D position or offset in world meters.
type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Mul(f float32) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

func (v Vec2) Div(f float32) Vec2 { return Vec2{X: v.X / f, Y: v.Y / f} }

func (v Vec2) Neg() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) LengthSquared() float32 { return v.X*v.X + v.Y*v.Y }

func (v Vec2) Length() float32 { return math32.Sqrt(v.LengthSquared()) }

// DistanceSquared avoids the square root for nearest-object searches.
func (v Vec2) DistanceSquared(o Vec2) float32 { return v.Sub(o).LengthSquared() }

func (v Vec2) Distance(o Vec2) float32 { return math32.Sqrt(v.DistanceSquared(o)) }

// Angle returns the direction of v. The zero vector points along +X.
func (v Vec2) Angle() Angle {
	return Angle(math32.Atan2(v.Y, v.X))
}

// Rotate rotates v counter-clockwise by a.
func (v Vec2) Rotate(a Angle) Vec2 {
	sin, cos := math32.Sincos(float32(a))
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Angle is a direction in radians, kept in [-π, π).
type Angle float32

const (
	AngleZero Angle = 0
	AngleMax  Angle = Angle(math32.Pi)
)

// ToAngle normalizes radians into [-π, π).
func ToAngle(radians float32) Angle {
	if radians >= -math32.Pi && radians < math32.Pi {
		return Angle(radians)
	}
	r := math32.Mod(radians+math32.Pi, 2*math32.Pi)
	if r < 0 {
		r += 2 * math32.Pi
	}
	return Angle(r - math32.Pi)
}

// FromDegrees converts degrees to a normalized Angle.
func FromDegrees(deg float32) Angle {
	return ToAngle(deg * math32.Pi / 180)
}

func (a Angle) Add(b Angle) Angle { return ToAngle(float32(a) + float32(b)) }

// Sub returns the signed shortest rotation from b to a.
func (a Angle) Sub(b Angle) Angle { return ToAngle(float32(a) - float32(b)) }

func (a Angle) Neg() Angle { return ToAngle(-float32(a)) }

func (a Angle) Abs() Angle { return Angle(math32.Abs(float32(a))) }

func (a Angle) Radians() float32 { return float32(a) }

func (a Angle) Degrees() float32 { return float32(a) * 180 / math32.Pi }

// Vec2 returns the unit vector pointing in direction a.
func (a Angle) Vec2() Vec2 {
	sin, cos := math32.Sincos(float32(a))
	return Vec2{X: cos, Y: sin}
}

// Transform is a position and facing.
type Transform struct {
	Position  Vec2  `json:"position"`
	Direction Angle `json:"direction"`
}

// Add composes o, expressed relative to t, onto t.
func (t Transform) Add(o Transform) Transform {
	return Transform{
		Position:  t.Position.Add(o.Position.Rotate(t.Direction)),
		Direction: t.Direction.Add(o.Direction),
	}
}

// RandomInDisk returns a point uniformly distributed within a disk of the given radius.
func RandomInDisk(r *rand.Rand, radius float32) Vec2 {
	dist := math32.Sqrt(r.Float32()) * radius
	return ToAngle(r.Float32() * 2 * math32.Pi).Vec2().Mul(dist)
}
