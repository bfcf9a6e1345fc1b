package scene

import (
	"math"
	"testing"

	"github.com/achilleasa/spheretrace/types"
)

const floatCmpEpsilon = 1e-5

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < floatCmpEpsilon
}

func approxEqualVec(a, b types.Vec3) bool {
	return approxEqual(a[0], b[0]) && approxEqual(a[1], b[1]) && approxEqual(a[2], b[2])
}

func TestSphereHitFromOutside(t *testing.T) {
	for _, radius := range []float32{0.5, 1, 2.5} {
		sphere := NewSphere(types.Vec3{}, radius, NewDiffuse(types.XYZ(0.5, 0.5, 0.5)))
		r := types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1))

		hit, ok := sphere.Hit(r, 0.001, float32(math.Inf(1)))
		if !ok {
			t.Fatalf("[radius %f] expected ray to hit sphere", radius)
		}
		if !approxEqual(hit.T, 5-radius) {
			t.Fatalf("[radius %f] expected t = %f; got %f", radius, 5-radius, hit.T)
		}
		if !approxEqualVec(hit.Normal, types.XYZ(0, 0, 1)) {
			t.Fatalf("[radius %f] expected normal (0, 0, 1); got %v", radius, hit.Normal)
		}
		if !hit.FrontFace {
			t.Fatalf("[radius %f] expected front face hit", radius)
		}
		if !approxEqualVec(hit.Point, types.XYZ(0, 0, radius)) {
			t.Fatalf("[radius %f] expected hit point (0, 0, %f); got %v", radius, radius, hit.Point)
		}
		if hit.Material != &sphere.Material {
			t.Fatalf("[radius %f] expected intersection to reference the sphere material", radius)
		}
	}
}

func TestSphereHitFromInside(t *testing.T) {
	sphere := NewSphere(types.Vec3{}, 1, NewDielectric(1.5))
	r := types.NewRay(types.Vec3{}, types.XYZ(0, 0, -2))

	hit, ok := sphere.Hit(r, 0.001, float32(math.Inf(1)))
	if !ok {
		t.Fatal("expected ray to hit sphere")
	}

	// direction is not normalized so t is measured in units of |dir|
	if !approxEqual(hit.T, 0.5) {
		t.Fatalf("expected t = 0.5; got %f", hit.T)
	}
	if hit.FrontFace {
		t.Fatal("expected back face hit")
	}
	if !approxEqualVec(hit.Normal, types.XYZ(0, 0, 1)) {
		t.Fatalf("expected normal to point against the ray; got %v", hit.Normal)
	}
}

func TestSphereWithNegativeRadiusFlipsNormals(t *testing.T) {
	sphere := NewSphere(types.Vec3{}, -1, NewDielectric(1.5))
	r := types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1))

	hit, ok := sphere.Hit(r, 0.001, float32(math.Inf(1)))
	if !ok {
		t.Fatal("expected ray to hit sphere")
	}
	if !approxEqual(hit.T, 4) {
		t.Fatalf("expected t = 4; got %f", hit.T)
	}
	if hit.FrontFace {
		t.Fatal("expected a hollow sphere to report a back face hit from outside")
	}
	if !approxEqualVec(hit.Normal, types.XYZ(0, 0, 1)) {
		t.Fatalf("expected normal (0, 0, 1); got %v", hit.Normal)
	}
}

func TestSphereMiss(t *testing.T) {
	sphere := NewSphere(types.Vec3{}, 1, NewDiffuse(types.XYZ(1, 1, 1)))

	type spec struct {
		r    types.Ray
		tMin float32
		tMax float32
	}
	specs := []spec{
		// negative discriminant
		{types.NewRay(types.XYZ(0, 5, 5), types.XYZ(0, 0, -1)), 0.001, 100},
		// sphere behind the ray
		{types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, 1)), 0.001, 100},
		// both roots beyond tMax
		{types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1)), 0.001, 3.9},
		// both roots before tMin
		{types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1)), 6.1, 100},
	}

	for index, s := range specs {
		if _, ok := sphere.Hit(s.r, s.tMin, s.tMax); ok {
			t.Fatalf("[spec %d] expected ray to miss the sphere", index)
		}
	}
}

func TestSphereFallsBackToFarRoot(t *testing.T) {
	sphere := NewSphere(types.Vec3{}, 1, NewDiffuse(types.XYZ(1, 1, 1)))
	r := types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1))

	hit, ok := sphere.Hit(r, 4.5, 100)
	if !ok {
		t.Fatal("expected ray to hit the far side of the sphere")
	}
	if !approxEqual(hit.T, 6) {
		t.Fatalf("expected t = 6; got %f", hit.T)
	}
	if hit.FrontFace {
		t.Fatal("expected back face hit")
	}
}
