package scene

import (
	"math/rand"
	"testing"

	"github.com/achilleasa/spheretrace/types"
)

func TestDiffuseScatter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	albedo := types.XYZ(0.3, 0.5, 0.9)
	mat := NewDiffuse(albedo)

	normals := []types.Vec3{
		types.XYZ(0, 1, 0),
		types.XYZ(0, 0, -1),
		types.XYZ(1, 1, 1).Normalize(),
	}
	for index, n := range normals {
		hit := &Intersection{Point: types.XYZ(1, 2, 3), Normal: n, T: 1, FrontFace: true, Material: &mat}
		for i := 0; i < 100; i++ {
			ok, attenuation, out := mat.Scatter(types.NewRay(types.Vec3{}, n.Neg()), hit, rng)
			if !ok {
				t.Fatalf("[spec %d] expected diffuse material to always scatter", index)
			}
			if attenuation != albedo {
				t.Fatalf("[spec %d] expected attenuation %v; got %v", index, albedo, attenuation)
			}
			if out.Origin != hit.Point {
				t.Fatalf("[spec %d] expected scattered ray to start at the hit point; got %v", index, out.Origin)
			}
			if out.Dir.Dot(n) < 0 {
				t.Fatalf("[spec %d] expected scattered ray to leave the surface; got %v", index, out.Dir)
			}
		}
	}
}

func TestMetalMirrorReflection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mat := NewMetal(types.XYZ(0.8, 0.8, 0.8), 0)
	n := types.XYZ(0, 0, 1)
	hit := &Intersection{Point: types.Vec3{}, Normal: n, T: 1, FrontFace: true, Material: &mat}

	rIn := types.NewRay(types.XYZ(0, 0, 5), types.XYZ(0, 0, -1))
	ok, attenuation, out := mat.Scatter(rIn, hit, rng)
	if !ok {
		t.Fatal("expected metal to reflect a normal incidence ray")
	}
	if attenuation != mat.Albedo {
		t.Fatalf("expected attenuation %v; got %v", mat.Albedo, attenuation)
	}
	if exp := types.Reflect(rIn.Dir, n); out.Dir != exp {
		t.Fatalf("expected mirror reflection %v; got %v", exp, out.Dir)
	}
}

func TestMetalRoughnessIsClamped(t *testing.T) {
	if mat := NewMetal(types.XYZ(1, 1, 1), 3); mat.Roughness != 1 {
		t.Fatalf("expected roughness to be clamped to 1; got %f", mat.Roughness)
	}
	if mat := NewMetal(types.XYZ(1, 1, 1), -1); mat.Roughness != 0 {
		t.Fatalf("expected roughness to be clamped to 0; got %f", mat.Roughness)
	}
}

func TestMetalAbsorbsRaysScatteredBelowSurface(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	mat := NewMetal(types.XYZ(0.8, 0.8, 0.8), 1)
	n := types.XYZ(0, 1, 0)
	hit := &Intersection{Normal: n, T: 1, FrontFace: true, Material: &mat}

	// A grazing ray with maximum roughness gets fuzzed below the surface
	// for a good share of the samples.
	rIn := types.NewRay(types.XYZ(-1, 0.01, 0), types.XYZ(1, -0.01, 0))
	var absorbed int
	for i := 0; i < 1000; i++ {
		ok, _, out := mat.Scatter(rIn, hit, rng)
		if ok != (out.Dir.Dot(n) > 0) {
			t.Fatalf("expected scatter status to match the outgoing ray orientation; got %t for %v", ok, out.Dir)
		}
		if !ok {
			absorbed++
		}
	}
	if absorbed == 0 {
		t.Fatal("expected some grazing rays to be absorbed")
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mat := NewDielectric(1.5)
	n := types.XYZ(0, 1, 0)

	// Ray travelling inside the glass at a steep angle to the normal.
	hit := &Intersection{Normal: n, T: 1, FrontFace: false, Material: &mat}
	rIn := types.NewRay(types.Vec3{}, types.XYZ(1, -0.2, 0))
	for i := 0; i < 100; i++ {
		ok, attenuation, out := mat.Scatter(rIn, hit, rng)
		if !ok {
			t.Fatal("expected dielectric to always scatter")
		}
		if attenuation != (types.Vec3{1, 1, 1}) {
			t.Fatalf("expected white attenuation; got %v", attenuation)
		}
		exp := types.Reflect(rIn.Dir.Normalize(), n)
		if !approxEqualVec(out.Dir, exp) {
			t.Fatalf("expected total internal reflection %v; got %v", exp, out.Dir)
		}
	}
}

func TestDielectricRefractsOrReflects(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mat := NewDielectric(1.5)
	n := types.XYZ(0, 1, 0)
	hit := &Intersection{Normal: n, T: 1, FrontFace: true, Material: &mat}
	rIn := types.NewRay(types.XYZ(0, 1, 0), types.XYZ(0.5, -1, 0))

	unit := rIn.Dir.Normalize()
	expReflect := types.Reflect(unit, n)
	expRefract := types.Refract(unit, n, 1/mat.IOR)

	var reflected, refracted int
	for i := 0; i < 2000; i++ {
		ok, _, out := mat.Scatter(rIn, hit, rng)
		if !ok {
			t.Fatal("expected dielectric to always scatter")
		}
		switch {
		case approxEqualVec(out.Dir, expReflect):
			reflected++
		case approxEqualVec(out.Dir, expRefract):
			refracted++
		default:
			t.Fatalf("expected either %v or %v; got %v", expReflect, expRefract, out.Dir)
		}
	}

	// Schlick reflectance at this angle is roughly 4%.
	if reflected == 0 || refracted <= reflected {
		t.Fatalf("expected mostly refracted rays; got %d reflected and %d refracted", reflected, refracted)
	}
}

func TestSchlickReflectance(t *testing.T) {
	// Normal incidence for glass: ((1-1.5)/(1+1.5))^2 = 0.04
	if got := reflectance(1, 1.5); !approxEqual(got, 0.04) {
		t.Fatalf("expected 0.04; got %f", got)
	}

	// The approximation is symmetric in the index ratio.
	if a, b := reflectance(0.7, 1.5), reflectance(0.7, 1/1.5); !approxEqual(a, b) {
		t.Fatalf("expected reflectance(c, n) == reflectance(c, 1/n); got %f vs %f", a, b)
	}

	// Grazing angles reflect everything.
	if got := reflectance(0, 1.5); !approxEqual(got, 1) {
		t.Fatalf("expected 1; got %f", got)
	}
}

// A rand source that replays a fixed sequence of values.
type replaySource struct {
	values []int64
	next   int
}

func (s *replaySource) Int63() int64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func (s *replaySource) Seed(int64) {}

func TestDiffuseScatterDegenerateDirection(t *testing.T) {
	// Float32 draws of 0.5, 0.5, 0.25 produce the unit sphere sample
	// (0, 0, -0.5) which normalizes to -normal.
	rng := rand.New(&replaySource{values: []int64{1 << 62, 1 << 62, 1 << 61}})
	if v := types.RandomUnitVector(rng); v != types.XYZ(0, 0, -1) {
		t.Fatalf("expected replayed unit vector (0, 0, -1); got %v", v)
	}

	rng = rand.New(&replaySource{values: []int64{1 << 62, 1 << 62, 1 << 61}})
	mat := NewDiffuse(types.XYZ(0.5, 0.5, 0.5))
	normal := types.XYZ(0, 0, 1)
	hit := &Intersection{Point: types.XYZ(0, 0, -1), Normal: normal, T: 1, FrontFace: true, Material: &mat}

	ok, _, out := mat.Scatter(types.NewRay(types.Vec3{}, normal.Neg()), hit, rng)
	if !ok {
		t.Fatal("expected diffuse material to scatter")
	}
	if out.Dir != normal {
		t.Fatalf("expected a cancelled scatter direction to fall back to the normal %v; got %v", normal, out.Dir)
	}
}
