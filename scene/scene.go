package scene

import (
	"errors"

	"github.com/achilleasa/spheretrace/types"
)

var (
	ErrDuplicatePrimitive = errors.New("scene: primitive already added")
	ErrNilPrimitive       = errors.New("scene: nil primitive")
)

// A scene is an ordered list of spheres viewed through a camera. Scenes are
// not modified while rendering so they can be shared by all tracers
// without locking.
type Scene struct {
	Camera *Camera

	Primitives []*Sphere
}

func NewScene() *Scene {
	return &Scene{
		Primitives: make([]*Sphere, 0),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Add a primitive to the scene.
func (s *Scene) AddPrimitive(primitive *Sphere) error {
	if primitive == nil {
		return ErrNilPrimitive
	}
	for _, prim := range s.Primitives {
		if prim == primitive {
			return ErrDuplicatePrimitive
		}
	}
	s.Primitives = append(s.Primitives, primitive)
	return nil
}

// Find the intersection closest to the ray origin with a ray parameter in
// [tMin, tMax]. Every primitive is tested; each hit narrows the search
// window so farther primitives are rejected early.
func (s *Scene) ClosestIntersection(r types.Ray, tMin, tMax float32) (Intersection, bool) {
	var (
		closest Intersection
		found   bool
	)

	for _, prim := range s.Primitives {
		if hit, ok := prim.Hit(r, tMin, tMax); ok {
			closest = hit
			tMax = hit.T
			found = true
		}
	}

	return closest, found
}
