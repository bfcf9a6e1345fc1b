package types

import "math/rand"

// Random helpers never touch the global rand source. Each tracer owns a
// generator and passes it down the call chain.

// Generate a random float in [min, max).
func RandomRange(rng *rand.Rand, min, max float32) float32 {
	return min + (max-min)*rng.Float32()
}

// Generate a vector whose components are uniformly distributed in [min, max).
func RandomVec3(rng *rand.Rand, min, max float32) Vec3 {
	return Vec3{
		RandomRange(rng, min, max),
		RandomRange(rng, min, max),
		RandomRange(rng, min, max),
	}
}

// Pick a random point inside the unit sphere using rejection sampling.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomVec3(rng, -1, 1)
		if p.LenSq() < 1 {
			return p
		}
	}
}

// Pick a random direction on the surface of the unit sphere.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}

// Pick a random point inside the unit disk lying on the XY plane.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{RandomRange(rng, -1, 1), RandomRange(rng, -1, 1), 0}
		if p.LenSq() < 1 {
			return p
		}
	}
}
