package primitives

// Material sets how tight and how strong the specular highlight is.
type Material struct {
	Shininess        float32
	SpecularStrength float32
}

var (
	Plastic  = Material{Shininess: 16, SpecularStrength: 0.3}
	Metallic = Material{Shininess: 64, SpecularStrength: 0.8}
)

// Lighting is the per-frame light setup shared by every draw.
type Lighting struct {
	Gouraud  bool
	Ambient  bool
	Diffuse  bool
	Specular bool
	// Follow transforms the light direction with each object's model matrix.
	Follow   bool
	Material Material
}

// Style selects how one instance is drawn.
type Style struct {
	Wireframe bool
	// Texture indexes the loaded textures; -1 draws untextured.
	Texture int
}
