package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max]. A max of zero or less disables the clamp.
func ClampSpeed(speed, max float64) float64 {
	if max <= 0 {
		return speed
	}
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Integrate advances one axis of kinematic state by dt frames and returns the
// new velocity and the distance covered.
//
// Deceleration acts against a nonzero velocity unless accel already pushes
// along it. A velocity carried through zero by deceleration alone stops at zero.
// Whenever the net acceleration is nonzero the distance is the exact
// constant-acceleration distance (v'^2 - v^2) / 2a, so large dt values never
// overshoot the stopping point.
func Integrate(velocity, accel, decel, dt float64) (float64, float64) {
	a := accel
	decelerating := decel != 0 && velocity != 0 && (accel == 0 || sign(accel) != sign(velocity))
	if decelerating {
		a -= sign(velocity) * math.Abs(decel)
	}
	if a == 0 {
		return velocity, velocity * dt
	}

	next := velocity + a*dt
	if decelerating && accel == 0 && sign(next) != sign(velocity) {
		next = 0
	}

	return next, (next*next - velocity*velocity) / (2 * a)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
