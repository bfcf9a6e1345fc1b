package scene

import (
	"github.com/achilleasa/spheretrace/types"
	"github.com/chewxy/math32"
)

// Defines a sphere primitive. A negative radius flips the surface normals
// which can be used to model hollow spheres.
type Sphere struct {
	Center types.Vec3
	Radius float32

	// The sphere material.
	Material Material
}

// Create new sphere primitive.
func NewSphere(center types.Vec3, radius float32, material Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Test whether the ray intersects the sphere with a ray parameter in
// [tMin, tMax]. The nearest root is preferred.
func (s *Sphere) Hit(r types.Ray, tMin, tMax float32) (Intersection, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Dir.LenSq()
	halfB := oc.Dot(r.Dir)
	c := oc.LenSq() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math32.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || tMax < root {
		root = (-halfB + sqrtD) / a
		if root < tMin || tMax < root {
			return Intersection{}, false
		}
	}

	hit := Intersection{
		T:        root,
		Point:    r.At(root),
		Material: &s.Material,
	}
	hit.setFaceNormal(r, hit.Point.Sub(s.Center).Div(s.Radius))
	return hit, true
}
