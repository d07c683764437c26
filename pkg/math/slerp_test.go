package math

import (
	gomath "math"
	"testing"
)

const eps = 1e-4

func angleBetween(a, b Vec3) float64 {
	d := float64(a.Normalize().Dot(b.Normalize()))
	if d > 1 {
		d = 1
	}
	if d < -1 {
		d = -1
	}
	return gomath.Acos(d)
}

func TestSlerpEndpoints(t *testing.T) {
	a := Vec3{0, 10, -10}
	b := Vec3{0, 7.5, -10}

	if got := Slerp(a, b, 0); got != a {
		t.Errorf("Slerp(t=0) = %v, want %v", got, a)
	}
	if got := Slerp(a, b, 1); got != b {
		t.Errorf("Slerp(t=1) = %v, want %v", got, b)
	}
	if got := Slerp(a, b, -3); got != a {
		t.Errorf("Slerp(t<0) = %v, want %v", got, a)
	}
	if got := Slerp(a, b, 42); got != b {
		t.Errorf("Slerp(t>1) = %v, want %v", got, b)
	}
}

func TestSlerpMidpoint(t *testing.T) {
	a := Vec3{0, 10, -10}
	b := Vec3{0, 7.5, -10}
	got := Slerp(a, b, 0.5)

	wantLen := (a.Length() + b.Length()) / 2
	if !ApproxEqual(got.Length(), wantLen, eps) {
		t.Errorf("Slerp midpoint length = %v, want %v", got.Length(), wantLen)
	}

	total := angleBetween(a, b)
	half := angleBetween(a, got)
	if gomath.Abs(half-total/2) > 1e-4 {
		t.Errorf("Slerp midpoint angle = %v, want %v", half, total/2)
	}

	// Shares the plane of a and b, so X stays zero.
	if !ApproxEqual(got.X, 0, eps) {
		t.Errorf("Slerp midpoint X = %v, want 0", got.X)
	}
}

func TestSlerpDiffersFromLerp(t *testing.T) {
	a := Vec3{0, 10, -10}
	b := Vec3{10, 10, 0}
	s := Slerp(a, b, 0.5)
	l := LerpVec3(a, b, 0.5)
	if ApproxEqualVec3(s, l, 1e-3) {
		t.Errorf("Slerp(%v, %v, 0.5) = %v, expected it to differ from Lerp %v", a, b, s, l)
	}
}

func TestSlerpParallel(t *testing.T) {
	a := Vec3{0, 2, 0}
	b := Vec3{0, 6, 0}
	got := Slerp(a, b, 0.25)
	want := Vec3{0, 3, 0}
	if !ApproxEqualVec3(got, want, eps) {
		t.Errorf("Slerp parallel = %v, want %v", got, want)
	}
}

func TestSlerpZeroLength(t *testing.T) {
	got := Slerp(Vec3{}, Vec3{4, 0, 0}, 0.5)
	want := Vec3{2, 0, 0}
	if !ApproxEqualVec3(got, want, eps) {
		t.Errorf("Slerp from zero = %v, want %v", got, want)
	}
}

func TestSlerpOpposite(t *testing.T) {
	a := Vec3{10, 5, 0}
	b := Vec3{-10, -5, 0}
	got := Slerp(a, b, 0.5)

	if !ApproxEqual(got.Length(), a.Length(), eps) {
		t.Errorf("Slerp opposite length = %v, want %v", got.Length(), a.Length())
	}
	if d := angleBetween(a, got); gomath.Abs(d-gomath.Pi/2) > 1e-4 {
		t.Errorf("Slerp opposite midpoint angle = %v, want pi/2", d)
	}
}

func TestSlerpRotationConverges(t *testing.T) {
	start := Vec3{0, 10, -10}
	target := Vec3{10, 10, 0}
	cur := start
	for i := 1; i <= 10; i++ {
		cur = Slerp(cur, target, float32(i)/10)
	}
	if cur != target {
		t.Errorf("Slerp did not converge: got %v, want %v", cur, target)
	}
}
