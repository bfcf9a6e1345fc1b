package cpu

import (
	"math/rand"

	"github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/types"
	"github.com/chewxy/math32"
)

// Hits closer than this to the ray origin are ignored to prevent surfaces
// from shadowing themselves due to floating point error.
const minHitDistance float32 = 0.001

var (
	skyHorizonColor = types.Vec3{1.0, 1.0, 1.0}
	skyZenithColor  = types.Vec3{0.5, 0.7, 1.0}
)

// Estimate the color carried by a ray by recursively following its bounces
// through the scene. Paths are terminated when a material absorbs the ray or
// after depth bounces; both cases contribute no light.
func RayColor(r types.Ray, sc *scene.Scene, depth int, rng *rand.Rand) types.Vec3 {
	if depth <= 0 {
		return types.Vec3{}
	}

	hit, ok := sc.ClosestIntersection(r, minHitDistance, math32.Inf(1))
	if !ok {
		return Background(r)
	}

	scattered, attenuation, out := hit.Material.Scatter(r, &hit, rng)
	if !scattered {
		return types.Vec3{}
	}

	return attenuation.MulVec(RayColor(out, sc, depth-1, rng))
}

// Get the sky color for a ray that escapes the scene. The sky is a vertical
// gradient from white at the horizon to light blue overhead.
func Background(r types.Ray) types.Vec3 {
	t := 0.5 * (r.Dir.Normalize().Y() + 1.0)
	return skyHorizonColor.Lerp(skyZenithColor, t)
}
