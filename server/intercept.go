package server

import (
	"github.com/chewxy/math32"
	"github.com/lab1702/seabots/game"
)

// InterceptSolution contains the result of an intercept calculation
type InterceptSolution struct {
	Direction       game.Angle // Direction to launch in
	TimeToIntercept float32    // Seconds until the projectile reaches the target
	InterceptPoint  game.Vec2  // Where the intercept will occur
}

// InterceptDirection calculates the direction to launch a projectile to intercept a moving target.
// This is a pure mathematical function using the standard 2D intercept formula.
//
// Parameters:
//
//	shooterPos: Position of the shooter (meters)
//	targetPos: Position of the target (meters)
//	targetVel: Velocity of the target (meters per second)
//	projSpeed: Speed of the projectile (meters per second)
//
// Returns false if the projectile can never catch the target.
func InterceptDirection(shooterPos, targetPos, targetVel game.Vec2, projSpeed float32) (InterceptSolution, bool) {
	if projSpeed <= 0 {
		return InterceptSolution{}, false
	}

	rel := targetPos.Sub(shooterPos)
	distSq := rel.LengthSquared()
	if distSq < 1e-9 {
		// Target is essentially at the shooter
		return InterceptSolution{TimeToIntercept: 1e-6, InterceptPoint: shooterPos}, true
	}

	velSq := targetVel.LengthSquared()
	if velSq < 1e-9 {
		// Stationary target, fire directly at it
		return InterceptSolution{
			Direction:       rel.Angle(),
			TimeToIntercept: math32.Sqrt(distSq) / projSpeed,
			InterceptPoint:  targetPos,
		}, true
	}

	// Solve |rel + targetVel*t| = projSpeed*t for the smallest positive t:
	// (velSq - projSpeed²)t² + 2(rel·targetVel)t + distSq = 0
	a := velSq - projSpeed*projSpeed
	b := 2 * rel.Dot(targetVel)
	c := distSq

	var t float32
	if math32.Abs(a) < 1e-6 {
		// Equal speeds: linear equation
		if b >= 0 {
			return InterceptSolution{}, false
		}
		t = -c / b
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return InterceptSolution{}, false
		}
		sqrtDisc := math32.Sqrt(disc)
		t1 := (-b - sqrtDisc) / (2 * a)
		t2 := (-b + sqrtDisc) / (2 * a)
		switch {
		case t1 > 0 && t2 > 0:
			t = math32.Min(t1, t2)
		case t1 > 0:
			t = t1
		case t2 > 0:
			t = t2
		default:
			return InterceptSolution{}, false
		}
	}

	point := targetPos.Add(targetVel.Mul(t))
	return InterceptSolution{
		Direction:       point.Sub(shooterPos).Angle(),
		TimeToIntercept: t,
		InterceptPoint:  point,
	}, true
}

// leadDirection returns the launch direction toward target, leading it when
// an intercept exists and aiming directly otherwise.
func leadDirection(from game.Vec2, target *entity, projSpeed float32) game.Angle {
	vel := target.transform.Direction.Vec2().Mul(target.velocity)
	if sol, ok := InterceptDirection(from, target.transform.Position, vel, projSpeed); ok {
		return sol.Direction
	}
	return target.transform.Position.Sub(from).Angle()
}
