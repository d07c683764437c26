package math

// Clamp01 clamps v to [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp interpolates linearly from a to b. t is not clamped.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Abs returns the absolute value of v.
func Abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float32) bool {
	return Abs(a-b) <= eps
}

// ApproxEqualVec3 reports whether every component of a and b differs by at most eps.
func ApproxEqualVec3(a, b Vec3, eps float32) bool {
	return ApproxEqual(a.X, b.X, eps) && ApproxEqual(a.Y, b.Y, eps) && ApproxEqual(a.Z, b.Z, eps)
}
