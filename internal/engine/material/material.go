// Package material defines the per-draw specular surface parameters.
package material

// Material is an immutable pair of Blinn-Phong specular coefficients.
type Material struct {
	specularIntensity float32
	shininess         float32
}

// New returns a material.
func New(specularIntensity, shininess float32) Material {
	return Material{specularIntensity: specularIntensity, shininess: shininess}
}

// SpecularIntensity scales the specular highlight.
func (m Material) SpecularIntensity() float32 { return m.specularIntensity }

// Shininess is the specular exponent.
func (m Material) Shininess() float32 { return m.shininess }
