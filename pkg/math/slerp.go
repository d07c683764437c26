package math

import "math"

const (
	// slerpMinLength is the magnitude below which a vector has no usable direction.
	slerpMinLength = 1e-6
	// slerpParallel is how close the direction cosine may get to ±1 before
	// the general formula loses precision.
	slerpParallel = 1e-5
)

// Slerp interpolates spherically from a to b.
//
// The direction rotates from a's toward b's through t of the angle between
// them while the magnitude moves linearly from |a| to |b|. t is clamped to
// [0, 1]; the endpoints are returned exactly. Vectors with no length, or
// pointing the same way, fall back to linear interpolation. Opposite vectors
// rotate about an arbitrary axis orthogonal to a.
//
// Follow offsets are blended with this, so the ease shape of a change to a
// single component depends on the other two.
func Slerp(a, b Vec3, t float32) Vec3 {
	t = Clamp01(t)
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}

	magA := float64(a.Length())
	magB := float64(b.Length())
	if magA < slerpMinLength || magB < slerpMinLength {
		return LerpVec3(a, b, t)
	}

	tt := float64(t)
	mag := magA + tt*(magB-magA)

	ax, ay, az := float64(a.X)/magA, float64(a.Y)/magA, float64(a.Z)/magA
	bx, by, bz := float64(b.X)/magB, float64(b.Y)/magB, float64(b.Z)/magB

	dot := ax*bx + ay*by + az*bz
	if dot > 1-slerpParallel {
		return LerpVec3(a, b, t)
	}

	var dx, dy, dz float64
	if dot < -1+slerpParallel {
		kx, ky, kz := orthogonal(ax, ay, az)
		dx, dy, dz = rotate(ax, ay, az, kx, ky, kz, tt*math.Pi)
	} else {
		theta := math.Acos(dot)
		sinTheta := math.Sin(theta)
		wa := math.Sin((1-tt)*theta) / sinTheta
		wb := math.Sin(tt*theta) / sinTheta
		dx = ax*wa + bx*wb
		dy = ay*wa + by*wb
		dz = az*wa + bz*wb
	}

	return Vec3{
		X: float32(dx * mag),
		Y: float32(dy * mag),
		Z: float32(dz * mag),
	}
}

// orthogonal returns a unit axis perpendicular to the unit vector (x, y, z).
func orthogonal(x, y, z float64) (float64, float64, float64) {
	// Cross with +X, or with +Y when v is nearly along X.
	kx, ky, kz := 0.0, z, -y
	if math.Abs(x) > 0.9 {
		kx, ky, kz = -z, 0, x
	}
	l := math.Sqrt(kx*kx + ky*ky + kz*kz)
	return kx / l, ky / l, kz / l
}

// rotate turns v about the unit axis k by angle radians (Rodrigues).
func rotate(vx, vy, vz, kx, ky, kz, angle float64) (float64, float64, float64) {
	c := math.Cos(angle)
	s := math.Sin(angle)
	kdv := kx*vx + ky*vy + kz*vz
	cx := ky*vz - kz*vy
	cy := kz*vx - kx*vz
	cz := kx*vy - ky*vx
	return vx*c + cx*s + kx*kdv*(1-c),
		vy*c + cy*s + ky*kdv*(1-c),
		vz*c + cz*s + kz*kdv*(1-c)
}
