package builtin

import (
	"math/rand"
	"sort"

	"github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/types"
)

// A Builder populates a scene whose camera matches the given frame aspect
// ratio. Builders that do not use randomness ignore the seed.
type Builder func(aspect float32, seed int64) *scene.Scene

var builders = map[string]Builder{
	"default": func(aspect float32, _ int64) *scene.Scene { return Default(aspect) },
	"random":  Random,
}

// Get the sorted list of built-in scene names.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup a built-in scene builder by name.
func Lookup(name string) (Builder, bool) {
	builder, ok := builders[name]
	return builder, ok
}

// Build a scene with three spheres resting on a large metal ground sphere.
// The left sphere is a hollow glass bubble modelled as a glass sphere with
// a smaller negative-radius sphere inside it.
func Default(aspect float32) *scene.Scene {
	lookFrom := types.XYZ(-2, 2, 1)
	lookAt := types.XYZ(0, 0, -1)

	matGround := scene.NewMetal(types.XYZ(0.8, 0.8, 0.8), 0.1)
	matCenter := scene.NewDiffuse(types.XYZ(0.3, 0.5, 0.9))
	matLeft := scene.NewDielectric(1.5)
	matRight := scene.NewDielectric(1.3)

	sc := scene.NewScene()
	sc.SetCamera(scene.NewCamera(lookFrom, lookAt, types.XYZ(0, 1, 0), 30, aspect, 0.6, lookFrom.Sub(lookAt).Len()))
	addAll(sc,
		scene.NewSphere(types.XYZ(0, -100.5, -1), 100, matGround),
		scene.NewSphere(types.XYZ(0, 0, -1), 0.5, matCenter),
		scene.NewSphere(types.XYZ(-1, 0, -1), -0.45, matLeft),
		scene.NewSphere(types.XYZ(-1, 0, -1), 0.5, matLeft),
		scene.NewSphere(types.XYZ(1, 0, -1), 0.5, matRight),
	)
	return sc
}

// Build a field of small randomly placed spheres around three large ones.
// The same seed always yields the same scene.
func Random(aspect float32, seed int64) *scene.Scene {
	rng := rand.New(rand.NewSource(seed))
	lookFrom := types.XYZ(13, 2, 3)
	lookAt := types.XYZ(0, 0, 0)

	sc := scene.NewScene()
	sc.SetCamera(scene.NewCamera(lookFrom, lookAt, types.XYZ(0, 1, 0), 20, aspect, 0.1, 10))
	addAll(sc, scene.NewSphere(types.XYZ(0, -1000, 0), 1000, scene.NewDiffuse(types.XYZ(0.5, 0.5, 0.5))))

	// Keep the area around the large metal sphere clear
	clearing := types.XYZ(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := types.XYZ(float32(a)+0.9*rng.Float32(), 0.2, float32(b)+0.9*rng.Float32())
			if center.Sub(clearing).Len() <= 0.9 {
				continue
			}

			var mat scene.Material
			switch chooseMat := rng.Float32(); {
			case chooseMat < 0.8:
				mat = scene.NewDiffuse(types.RandomVec3(rng, 0, 1).MulVec(types.RandomVec3(rng, 0, 1)))
			case chooseMat < 0.95:
				mat = scene.NewMetal(types.RandomVec3(rng, 0.5, 1), types.RandomRange(rng, 0, 0.5))
			default:
				mat = scene.NewDielectric(1.5)
			}
			addAll(sc, scene.NewSphere(center, 0.2, mat))
		}
	}

	addAll(sc,
		scene.NewSphere(types.XYZ(0, 1, 0), 1, scene.NewDielectric(1.5)),
		scene.NewSphere(types.XYZ(-4, 1, 0), 1, scene.NewDiffuse(types.XYZ(0.4, 0.2, 0.1))),
		scene.NewSphere(types.XYZ(4, 1, 0), 1, scene.NewMetal(types.XYZ(0.7, 0.6, 0.5), 0)),
	)
	return sc
}

// Spheres created by the builders are never nil or shared so AddPrimitive
// cannot fail.
func addAll(sc *scene.Scene, spheres ...*scene.Sphere) {
	for _, sphere := range spheres {
		_ = sc.AddPrimitive(sphere)
	}
}
