package primitives

import rl "github.com/gen2brain/raylib-go/raylib"

// loadPhongShader lights per fragment. Texture mode always uses it.
func loadPhongShader() rl.Shader {
	return rl.LoadShaderFromMemory(phongVS, phongFS)
}

// loadGouraudShader lights per vertex and interpolates the color.
func loadGouraudShader() rl.Shader {
	return rl.LoadShaderFromMemory(gouraudVS, gouraudFS)
}

const (
	phongVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	phongFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform float useAmbient;
uniform float useDiffuse;
uniform float useSpecular;
uniform float useTexture;
uniform float shininess;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 base = colDiffuse;
  if (useTexture > 0.5) {
    base = texture(texture0, fragTexCoord) * vec4(1.0, 1.0, 1.0, colDiffuse.a);
  }
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 color = vec3(0.0);
  if (useAmbient > 0.5) {
    color += 0.2 * base.rgb;
  }
  float NdotL = max(dot(N, L), 0.0);
  if (useDiffuse > 0.5) {
    color += NdotL * base.rgb;
  }
  if (useSpecular > 0.5 && NdotL > 0.0) {
    vec3 R = reflect(-L, N);
    color += specularStrength * pow(max(dot(V, R), 0.0), shininess) * vec3(1.0);
  }
  finalColor = vec4(color, base.a);
}
`
	gouraudVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform float useAmbient;
uniform float useDiffuse;
uniform float useSpecular;
uniform float shininess;
uniform float specularStrength;
out vec4 vertColor;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  vec3 N = normalize(mat3(matModel) * vertexNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - worldPos.xyz);
  vec3 color = vec3(0.0);
  if (useAmbient > 0.5) {
    color += 0.2 * colDiffuse.rgb;
  }
  float NdotL = max(dot(N, L), 0.0);
  if (useDiffuse > 0.5) {
    color += NdotL * colDiffuse.rgb;
  }
  if (useSpecular > 0.5 && NdotL > 0.0) {
    vec3 R = reflect(-L, N);
    color += specularStrength * pow(max(dot(V, R), 0.0), shininess) * vec3(1.0);
  }
  vertColor = vec4(color, colDiffuse.a);
  gl_Position = matProjection * matView * worldPos;
}
`
	gouraudFS = `#version 330
in vec4 vertColor;
out vec4 finalColor;
void main() {
  finalColor = vertColor;
}
`
)

// lightUniforms caches uniform locations for one shader.
type lightUniforms struct {
	viewPos, lightDir               int32
	useAmbient, useDiffuse, useSpec int32
	useTexture                      int32
	shininess, specularStrength     int32
}

func locateUniforms(s rl.Shader) lightUniforms {
	return lightUniforms{
		viewPos:          rl.GetShaderLocation(s, "viewPos"),
		lightDir:         rl.GetShaderLocation(s, "lightDir"),
		useAmbient:       rl.GetShaderLocation(s, "useAmbient"),
		useDiffuse:       rl.GetShaderLocation(s, "useDiffuse"),
		useSpec:          rl.GetShaderLocation(s, "useSpecular"),
		useTexture:       rl.GetShaderLocation(s, "useTexture"),
		shininess:        rl.GetShaderLocation(s, "shininess"),
		specularStrength: rl.GetShaderLocation(s, "specularStrength"),
	}
}

// apply uploads the lighting state (cgo-safe: local arrays).
func (u lightUniforms) apply(s rl.Shader, viewPos, lightDir [3]float32, l Lighting, textured bool) {
	if !rl.IsShaderValid(s) {
		return
	}
	setVec3(s, u.viewPos, viewPos)
	setVec3(s, u.lightDir, lightDir)
	setBool(s, u.useAmbient, l.Ambient)
	setBool(s, u.useDiffuse, l.Diffuse)
	setBool(s, u.useSpec, l.Specular)
	setBool(s, u.useTexture, textured)
	setFloat(s, u.shininess, l.Material.Shininess)
	setFloat(s, u.specularStrength, l.Material.SpecularStrength)
}

func setVec3(s rl.Shader, loc int32, v [3]float32) {
	if loc >= 0 {
		rl.SetShaderValueV(s, loc, v[:], rl.ShaderUniformVec3, 1)
	}
}

func setFloat(s rl.Shader, loc int32, v float32) {
	if loc >= 0 {
		rl.SetShaderValue(s, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

func setBool(s rl.Shader, loc int32, b bool) {
	if loc < 0 {
		return
	}
	var v float32
	if b {
		v = 1
	}
	rl.SetShaderValue(s, loc, []float32{v}, rl.ShaderUniformFloat)
}
