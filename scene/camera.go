package scene

import (
	"fmt"
	"math/rand"

	"github.com/achilleasa/spheretrace/types"
	"github.com/chewxy/math32"
)

// The camera type maps normalized image plane coordinates to world space
// rays. A non-zero aperture turns it into a thin lens camera whose focal
// plane lies focusDist units in front of the eye.
//
// The camera basis is computed once by NewCamera and never changes
// afterwards so a single instance can be shared between tracers.
type Camera struct {
	// Camera placement as supplied to NewCamera.
	LookFrom types.Vec3
	LookAt   types.Vec3
	Up       types.Vec3

	// Vertical FOV in degrees.
	FOV float32

	Aspect    float32
	Aperture  float32
	FocusDist float32

	origin          types.Vec3
	horizontal      types.Vec3
	vertical        types.Vec3
	lowerLeftCorner types.Vec3
	u, v, w         types.Vec3
	lensRadius      float32
}

// Create a new camera.
func NewCamera(lookFrom, lookAt, vup types.Vec3, vfov, aspect, aperture, focusDist float32) *Camera {
	theta := vfov * math32.Pi / 180.0
	viewportH := 2.0 * math32.Tan(theta/2.0)
	viewportW := aspect * viewportH

	w := lookFrom.Sub(lookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Mul(focusDist * viewportW)
	vertical := v.Mul(focusDist * viewportH)

	return &Camera{
		LookFrom:        lookFrom,
		LookAt:          lookAt,
		Up:              vup,
		FOV:             vfov,
		Aspect:          aspect,
		Aperture:        aperture,
		FocusDist:       focusDist,
		origin:          lookFrom,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lookFrom.Sub(horizontal.Div(2)).Sub(vertical.Div(2)).Sub(w.Mul(focusDist)),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
	}
}

// Generate a ray through the image plane point (s, t) where both
// coordinates are in [0, 1] and (0, 0) is the lower left corner.
func (c *Camera) GetRay(s, t float32, rng *rand.Rand) types.Ray {
	var offset types.Vec3
	if c.lensRadius > 0 {
		rd := types.RandomInUnitDisk(rng).Mul(c.lensRadius)
		offset = c.u.Mul(rd[0]).Add(c.v.Mul(rd[1]))
	}

	return types.NewRay(
		c.origin.Add(offset),
		c.lowerLeftCorner.Add(c.horizontal.Mul(s)).Add(c.vertical.Mul(t)).Sub(c.origin).Sub(offset),
	)
}

func (c *Camera) String() string {
	return fmt.Sprintf(
		"Camera:\nOrigin     : %v\nLowerLeft  : %v\nHorizontal : %v\nVertical   : %v\nU/V/W      : %v %v %v\nLens radius: %3.3f",
		c.origin, c.lowerLeftCorner, c.horizontal, c.vertical, c.u, c.v, c.w, c.lensRadius,
	)
}
