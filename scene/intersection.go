package scene

import "github.com/achilleasa/spheretrace/types"

// Describes a ray/primitive intersection.
type Intersection struct {
	// The hit point and the surface normal at that point. The normal
	// always points against the incoming ray.
	Point  types.Vec3
	Normal types.Vec3

	// The ray parameter at the hit point.
	T float32

	// True if the ray hit the outward facing side of the surface.
	FrontFace bool

	// The material of the hit primitive. Only valid while the scene that
	// owns the primitive is alive; it must not be retained across bounces.
	Material *Material
}

// Orient the intersection normal so it points against the ray direction.
func (in *Intersection) setFaceNormal(r types.Ray, outwardNormal types.Vec3) {
	in.FrontFace = r.Dir.Dot(outwardNormal) < 0
	if in.FrontFace {
		in.Normal = outwardNormal
	} else {
		in.Normal = outwardNormal.Neg()
	}
}
