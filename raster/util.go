package raster

import "math"

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Round half up. Half values always go toward +Inf, including negative ones.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
