package reader

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/achilleasa/spheretrace/asset"
	"github.com/achilleasa/spheretrace/log"
	"github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/types"
)

type jsonCamera struct {
	LookFrom  *[3]float32 `json:"lookFrom"`
	LookAt    *[3]float32 `json:"lookAt"`
	Up        *[3]float32 `json:"up"`
	FOV       float32     `json:"fov"`
	Aperture  float32     `json:"aperture"`
	FocusDist float32     `json:"focusDist"`
}

type jsonMaterial struct {
	Type      string     `json:"type"`
	Albedo    [3]float32 `json:"albedo"`
	Roughness float32    `json:"roughness"`
	IOR       float32    `json:"ior"`
}

type jsonSphere struct {
	Name     string       `json:"name"`
	Center   [3]float32   `json:"center"`
	Radius   float32      `json:"radius"`
	Material jsonMaterial `json:"material"`
}

type jsonScene struct {
	Camera  *jsonCamera  `json:"camera"`
	Spheres []jsonSphere `json:"spheres"`
	Include []string     `json:"include"`
}

// Reads scenes described as a camera block followed by a list of spheres:
//
//	{
//	  "camera": {"lookFrom": [-2, 2, 1], "lookAt": [0, 0, -1], "fov": 30, "aperture": 0.6},
//	  "spheres": [
//	    {"name": "ground", "center": [0, -100.5, -1], "radius": 100,
//	     "material": {"type": "metal", "albedo": [0.8, 0.8, 0.8], "roughness": 0.1}}
//	  ]
//	}
//
// The camera up vector defaults to +Y and a zero focus distance selects the
// distance between lookFrom and lookAt. An optional "include" list names
// further scene files, relative to the including file, whose spheres are
// appended to the scene; their camera blocks are ignored.
type jsonSceneReader struct {
	logger log.Logger

	// An error stack that provides the location of validation errors.
	errStack []string

	// Paths of the scene files on the current include chain.
	visited map[string]bool
}

func newJSONReader() *jsonSceneReader {
	return &jsonSceneReader{
		logger:   log.New("jsonSceneReader"),
		errStack: make([]string, 0),
		visited:  make(map[string]bool),
	}
}

// Read scene definition.
func (r *jsonSceneReader) Read(res *asset.Resource, aspect float32) (*scene.Scene, error) {
	r.logger.Infof("parsing scene from %s", res.Path())
	start := time.Now()

	def, err := r.decode(res)
	if err != nil {
		return nil, fmt.Errorf("reader: could not parse %s: %s", res.Name(), err)
	}

	r.pushFrame(fmt.Sprintf("in scene %s", res.Name()))
	sc := scene.NewScene()

	cam, err := r.buildCamera(def.Camera, aspect)
	if err != nil {
		return nil, err
	}
	sc.SetCamera(cam)

	if err = r.addSpheres(sc, res, def); err != nil {
		return nil, err
	}

	r.logger.Infof("parsed scene with %d spheres in %d ms", len(sc.Primitives), time.Since(start).Nanoseconds()/1000000)
	return sc, nil
}

func (r *jsonSceneReader) decode(res *asset.Resource) (*jsonScene, error) {
	var def jsonScene
	dec := json.NewDecoder(res)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// Append the spheres defined by a scene followed by the spheres of any
// scenes it includes. Include paths are resolved relative to the including
// scene.
func (r *jsonSceneReader) addSpheres(sc *scene.Scene, res *asset.Resource, def *jsonScene) error {
	if r.visited[res.Path()] {
		return r.emitError("include cycle detected at %s", res.Path())
	}
	r.visited[res.Path()] = true
	defer delete(r.visited, res.Path())

	for idx, sphereDef := range def.Spheres {
		sphere, err := r.buildSphere(idx, sphereDef)
		if err != nil {
			return err
		}
		if err = sc.AddPrimitive(sphere); err != nil {
			return r.emitError("%s", err)
		}
	}

	for _, include := range def.Include {
		incRes, err := asset.NewResource(include, res)
		if err != nil {
			return r.emitError("could not open included scene %q: %s", include, err)
		}

		incDef, err := r.decode(incRes)
		incRes.Close()
		if err != nil {
			return r.emitError("could not parse included scene %s: %s", incRes.Name(), err)
		}
		if incDef.Camera != nil {
			r.logger.Debugf("ignoring camera definition in included scene %s", incRes.Path())
		}

		r.pushFrame(fmt.Sprintf("in included scene %s", incRes.Name()))
		err = r.addSpheres(sc, incRes, incDef)
		r.popFrame()
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *jsonSceneReader) buildCamera(def *jsonCamera, aspect float32) (*scene.Camera, error) {
	if def == nil {
		return nil, r.emitError("missing camera definition")
	}

	r.pushFrame("in camera definition")
	defer r.popFrame()

	if def.LookFrom == nil || def.LookAt == nil {
		return nil, r.emitError("camera requires both lookFrom and lookAt")
	}
	lookFrom, lookAt := types.Vec3(*def.LookFrom), types.Vec3(*def.LookAt)
	if lookFrom == lookAt {
		return nil, r.emitError("lookFrom and lookAt must not coincide")
	}

	up := types.XYZ(0, 1, 0)
	if def.Up != nil {
		up = types.Vec3(*def.Up)
	}
	if up.Cross(lookFrom.Sub(lookAt)).NearZero() {
		return nil, r.emitError("up vector must not be parallel to the view direction")
	}

	if def.FOV <= 0 || def.FOV >= 180 {
		return nil, r.emitError("fov must be in (0, 180) degrees; got %g", def.FOV)
	}
	if def.Aperture < 0 {
		return nil, r.emitError("aperture must not be negative; got %g", def.Aperture)
	}

	focusDist := def.FocusDist
	switch {
	case focusDist < 0:
		return nil, r.emitError("focusDist must not be negative; got %g", focusDist)
	case focusDist == 0:
		focusDist = lookFrom.Sub(lookAt).Len()
	}

	return scene.NewCamera(lookFrom, lookAt, up, def.FOV, aspect, def.Aperture, focusDist), nil
}

func (r *jsonSceneReader) buildSphere(idx int, def jsonSphere) (*scene.Sphere, error) {
	name := def.Name
	if name == "" {
		name = fmt.Sprintf("#%d", idx)
	}
	r.pushFrame(fmt.Sprintf("in sphere %s", name))
	defer r.popFrame()

	if def.Radius == 0 {
		return nil, r.emitError("radius must not be zero")
	}

	var mat scene.Material
	switch strings.ToLower(def.Material.Type) {
	case "diffuse":
		mat = scene.NewDiffuse(types.Vec3(def.Material.Albedo))
	case "metal":
		mat = scene.NewMetal(types.Vec3(def.Material.Albedo), def.Material.Roughness)
	case "dielectric":
		if def.Material.IOR <= 0 {
			return nil, r.emitError("dielectric material requires a positive ior; got %g", def.Material.IOR)
		}
		mat = scene.NewDielectric(def.Material.IOR)
	case "":
		return nil, r.emitError("missing material type")
	default:
		return nil, r.emitError("unsupported material type %q", def.Material.Type)
	}

	return scene.NewSphere(types.Vec3(def.Center), def.Radius, mat), nil
}

// Generate an error message that also includes any data in the error stack.
func (r *jsonSceneReader) emitError(msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)
	return fmt.Errorf("reader: %s", strings.Trim(msg+"\n"+strings.Join(r.errStack, "\n"), "\n"))
}

// Push a frame to the error stack.
func (r *jsonSceneReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *jsonSceneReader) popFrame() {
	r.errStack = r.errStack[1:]
}
