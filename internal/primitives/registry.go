package primitives

import (
	"fmt"
	"os"
	"unsafe"

	"bounce-demo/internal/textures"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BunnyPaths are tried in order so the model is found whether run from the repo root or cmd/bounce.
var BunnyPaths = []string{
	"assets/models/bunny.obj",
	"../../assets/models/bunny.obj",
}

const (
	sphereRadius = 1
	sphereRings  = 24
	sphereSlices = 24
	cubeSide     = 1.5
)

// cached holds a model and the meshes drawn from it.
type cached struct {
	model  rl.Model
	meshes []rl.Mesh
}

// Registry owns meshes, shaders and textures for cube, sphere and bunny.
// Meshes are created on first use so that GPU resources are allocated after the
// window/OpenGL context exists.
type Registry struct {
	cache    map[string]cached
	phong    rl.Shader
	gouraud  rl.Shader
	phongU   lightUniforms
	gouraudU lightUniforms
	mtl      rl.Material
	white    rl.Texture2D
	textures []rl.Texture2D
	bunny    bool
	shaders  bool

	viewPos  [3]float32
	lightDir [3]float32
	lighting Lighting
}

// NewRegistry returns an empty registry. Call Init once the window exists.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.5, 1, 0.75},
		lighting: Lighting{Ambient: true, Diffuse: true, Specular: true, Material: Plastic},
	}
}

// Init compiles the shaders and tries to load the bunny model. It reports whether
// the bunny is available.
func (r *Registry) Init() bool {
	r.phong = loadPhongShader()
	r.gouraud = loadGouraudShader()
	r.phongU = locateUniforms(r.phong)
	r.gouraudU = locateUniforms(r.gouraud)
	r.shaders = rl.IsShaderValid(r.phong) && rl.IsShaderValid(r.gouraud)
	r.mtl = rl.LoadMaterialDefault()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		r.white = albedo.Texture
	}

	for _, p := range BunnyPaths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		model := rl.LoadModel(p)
		if model.MeshCount == 0 {
			continue
		}
		r.cache["bunny"] = cached{model: model, meshes: meshesOf(model)}
		r.bunny = true
		break
	}
	return r.bunny
}

// LoadTextures decodes and uploads each path, skipping files that fail. It returns
// how many textures are available and the errors for the ones that were skipped.
func (r *Registry) LoadTextures(paths []string) (int, []error) {
	var errs []error
	for _, p := range paths {
		img, err := textures.Load(p, textures.MaxSize)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rimg := rl.NewImageFromImage(img)
		tex := rl.LoadTextureFromImage(rimg)
		rl.UnloadImage(rimg)
		if !rl.IsTextureValid(tex) {
			errs = append(errs, fmt.Errorf("upload texture %s failed", p))
			continue
		}
		rl.GenTextureMipmaps(&tex)
		rl.SetTextureFilter(tex, rl.FilterTrilinear)
		r.textures = append(r.textures, tex)
	}
	return len(r.textures), errs
}

// SetView sets camera position and direction to the light for this frame.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// SetLighting sets the shading model, light terms and material for following draws.
func (r *Registry) SetLighting(l Lighting) {
	r.lighting = l
}

func (r *Registry) ensure(kind string) (cached, bool) {
	if c, ok := r.cache[kind]; ok {
		return c, true
	}
	var mesh rl.Mesh
	switch kind {
	case "cube":
		mesh = rl.GenMeshCube(cubeSide, cubeSide, cubeSide)
	case "sphere":
		mesh = rl.GenMeshSphere(sphereRadius, sphereRings, sphereSlices)
	default:
		return cached{}, false
	}
	model := rl.LoadModelFromMesh(mesh)
	c := cached{model: model, meshes: meshesOf(model)}
	r.cache[kind] = c
	return c, true
}

func meshesOf(m rl.Model) []rl.Mesh {
	if m.Meshes == nil || m.MeshCount <= 0 {
		return nil
	}
	return unsafe.Slice(m.Meshes, m.MeshCount)
}

// Draw draws one instance of kind ("cube", "sphere" or "bunny") with the given model
// transform and tint. Must be called between BeginMode3D and EndMode3D, after SetView.
// Unknown kinds and a missing bunny are skipped.
func (r *Registry) Draw(kind string, transform rl.Matrix, tint rl.Color, style Style) {
	c, ok := r.ensure(kind)
	if !ok {
		return
	}
	if style.Wireframe {
		c.model.Transform = transform
		rl.DrawModelWires(c.model, rl.Vector3{}, 1, tint)
		return
	}

	textured := style.Texture >= 0 && style.Texture < len(r.textures)
	shader, u := r.phong, r.phongU
	if r.lighting.Gouraud && !textured {
		shader, u = r.gouraud, r.gouraudU
	}
	if !r.shaders {
		shader = r.mtl.Shader
	}
	light := r.lightDir
	if r.lighting.Follow {
		light = FollowLight(light, transform)
	}
	u.apply(shader, r.viewPos, light, r.lighting, textured)

	mtl := r.mtl
	mtl.Shader = shader
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
		if textured {
			albedo.Texture = r.textures[style.Texture]
		} else {
			albedo.Texture = r.white
		}
	}
	for _, m := range c.meshes {
		rl.DrawMesh(m, mtl, transform)
	}
}

// FollowLight rotates a light direction by the model transform (ignoring
// translation) and normalizes it.
func FollowLight(dir [3]float32, m rl.Matrix) [3]float32 {
	v := rl.Vector3{
		X: dir[0]*m.M0 + dir[1]*m.M4 + dir[2]*m.M8,
		Y: dir[0]*m.M1 + dir[1]*m.M5 + dir[2]*m.M9,
		Z: dir[0]*m.M2 + dir[1]*m.M6 + dir[2]*m.M10,
	}
	v = rl.Vector3Normalize(v)
	return [3]float32{v.X, v.Y, v.Z}
}

// Unload frees every GPU resource the registry created.
func (r *Registry) Unload() {
	for k, c := range r.cache {
		rl.UnloadModel(c.model)
		delete(r.cache, k)
	}
	for _, t := range r.textures {
		rl.UnloadTexture(t)
	}
	r.textures = nil
	if r.shaders {
		rl.UnloadShader(r.phong)
		rl.UnloadShader(r.gouraud)
	}
}
