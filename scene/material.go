package scene

import (
	"fmt"
	"math/rand"

	"github.com/achilleasa/spheretrace/types"
	"github.com/chewxy/math32"
)

type MaterialType uint8

const (
	DiffuseMaterial MaterialType = iota
	MetalMaterial
	DielectricMaterial
)

func (t MaterialType) String() string {
	switch t {
	case DiffuseMaterial:
		return "diffuse"
	case MetalMaterial:
		return "metal"
	case DielectricMaterial:
		return "dielectric"
	}
	return fmt.Sprintf("MaterialType(%d)", uint8(t))
}

// Defines a scene material. The Type field selects the scattering model and
// which of the remaining fields are meaningful.
type Material struct {
	// The type of the material.
	Type MaterialType

	// Per-channel reflectance (diffuse and metal materials).
	Albedo types.Vec3

	// Reflection blur in [0, 1] (metal materials only).
	Roughness float32

	// Index of refraction (dielectric materials only).
	IOR float32
}

// Create a lambertian material.
func NewDiffuse(albedo types.Vec3) Material {
	return Material{Type: DiffuseMaterial, Albedo: albedo}
}

// Create a metal material. Roughness is clamped to [0, 1].
func NewMetal(albedo types.Vec3, roughness float32) Material {
	return Material{Type: MetalMaterial, Albedo: albedo, Roughness: math32.Max(0, math32.Min(roughness, 1))}
}

// Create a clear dielectric material with the given index of refraction.
func NewDielectric(ior float32) Material {
	return Material{Type: DielectricMaterial, IOR: ior}
}

// Scatter an incoming ray off a surface hit. Returns false if the ray was
// absorbed; otherwise returns the attenuation color and the outgoing ray.
func (m *Material) Scatter(rIn types.Ray, hit *Intersection, rng *rand.Rand) (bool, types.Vec3, types.Ray) {
	switch m.Type {
	case MetalMaterial:
		return m.scatterMetal(rIn, hit, rng)
	case DielectricMaterial:
		return m.scatterDielectric(rIn, hit, rng)
	default:
		return m.scatterDiffuse(hit, rng)
	}
}

func (m *Material) scatterDiffuse(hit *Intersection, rng *rand.Rand) (bool, types.Vec3, types.Ray) {
	dir := hit.Normal.Add(types.RandomUnitVector(rng))

	// The random vector may cancel out the normal
	if dir.NearZero() {
		dir = hit.Normal
	}

	return true, m.Albedo, types.NewRay(hit.Point, dir)
}

func (m *Material) scatterMetal(rIn types.Ray, hit *Intersection, rng *rand.Rand) (bool, types.Vec3, types.Ray) {
	reflected := types.Reflect(rIn.Dir.Normalize(), hit.Normal)
	scattered := types.NewRay(hit.Point, reflected.Add(types.RandomInUnitSphere(rng).Mul(m.Roughness)))

	// Rays fuzzed below the surface are absorbed
	return scattered.Dir.Dot(hit.Normal) > 0, m.Albedo, scattered
}

func (m *Material) scatterDielectric(rIn types.Ray, hit *Intersection, rng *rand.Rand) (bool, types.Vec3, types.Ray) {
	ratio := m.IOR
	if hit.FrontFace {
		ratio = 1.0 / m.IOR
	}

	unitDir := rIn.Dir.Normalize()
	cosTheta := math32.Min(unitDir.Neg().Dot(hit.Normal), 1.0)
	sinTheta := math32.Sqrt(1.0 - cosTheta*cosTheta)

	var dir types.Vec3
	if ratio*sinTheta > 1.0 || reflectance(cosTheta, ratio) > rng.Float32() {
		dir = types.Reflect(unitDir, hit.Normal)
	} else {
		dir = types.Refract(unitDir, hit.Normal, ratio)
	}

	return true, types.Vec3{1, 1, 1}, types.NewRay(hit.Point, dir)
}

// Schlick's approximation for the reflectance of a dielectric surface.
func reflectance(cosine, refIdx float32) float32 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math32.Pow(1-cosine, 5)
}
