package scene

import (
	"math/rand"
	"testing"

	"github.com/achilleasa/spheretrace/types"
)

func TestCameraPinholeRays(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cam := NewCamera(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), types.XYZ(0, 1, 0), 90, 2, 0, 1)

	type spec struct {
		s, t   float32
		expDir types.Vec3
	}
	// vfov = 90 -> viewport height = 2, width = aspect * 2 = 4
	specs := []spec{
		{0.5, 0.5, types.XYZ(0, 0, -1)},
		{0, 0, types.XYZ(-2, -1, -1)},
		{1, 1, types.XYZ(2, 1, -1)},
		{1, 0, types.XYZ(2, -1, -1)},
	}

	for index, s := range specs {
		r := cam.GetRay(s.s, s.t, rng)
		if r.Origin != (types.Vec3{}) {
			t.Fatalf("[spec %d] expected pinhole ray to start at the eye; got %v", index, r.Origin)
		}
		if !approxEqualVec(r.Dir, s.expDir) {
			t.Fatalf("[spec %d] expected direction %v; got %v", index, s.expDir, r.Dir)
		}
	}
}

func TestCameraBasis(t *testing.T) {
	cam := NewCamera(types.XYZ(3, 3, 2), types.XYZ(0, 0, -1), types.XYZ(0, 1, 0), 20, 16.0/9.0, 2, 5)

	if !approxEqual(cam.u.Dot(cam.v), 0) || !approxEqual(cam.u.Dot(cam.w), 0) || !approxEqual(cam.v.Dot(cam.w), 0) {
		t.Fatalf("expected orthogonal basis; got u=%v v=%v w=%v", cam.u, cam.v, cam.w)
	}
	for _, axis := range []types.Vec3{cam.u, cam.v, cam.w} {
		if !approxEqual(axis.Len(), 1) {
			t.Fatalf("expected unit basis vectors; got %v", axis)
		}
	}
	if cam.lensRadius != 1 {
		t.Fatalf("expected lens radius 1; got %f", cam.lensRadius)
	}
}

func TestCameraDefocusKeepsFocalPlaneSharp(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	lookFrom := types.XYZ(-2, 2, 1)
	lookAt := types.XYZ(0, 0, -1)
	focusDist := lookFrom.Sub(lookAt).Len()
	cam := NewCamera(lookFrom, lookAt, types.XYZ(0, 1, 0), 30, 16.0/9.0, 0.6, focusDist)

	// Every ray through the image centre must pass through the look-at point
	// which lies on the focal plane, no matter where it leaves the lens.
	var jittered bool
	for i := 0; i < 100; i++ {
		r := cam.GetRay(0.5, 0.5, rng)
		if lensOffset := r.Origin.Sub(lookFrom); lensOffset.Len() > 0.3+floatCmpEpsilon {
			t.Fatalf("expected ray origin within the lens radius; got offset %v", lensOffset)
		} else if lensOffset.LenSq() > 0 {
			jittered = true
		}

		if p := r.At(1); !approxEqualVec(p, lookAt) && p.Sub(lookAt).Len() > 1e-4 {
			t.Fatalf("expected ray to pass through the focal point %v; got %v", lookAt, p)
		}
	}

	if !jittered {
		t.Fatal("expected lens sampling to jitter ray origins")
	}
}
