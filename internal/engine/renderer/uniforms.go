package renderer

import (
	"fmt"

	"github.com/Faultbox/lumen/internal/engine/lighting"
)

// Scene program uniform names.
const (
	uniformModel             = "model"
	uniformView              = "view"
	uniformProjection        = "projection"
	uniformEyePosition       = "eyePosition"
	uniformTexture           = "theTexture"
	uniformSpecularIntensity = "material.specularIntensity"
	uniformShininess         = "material.shininess"
	uniformPointLightCount   = "pointLightCount"
	uniformSpotLightCount    = "spotLightCount"
)

// uniformScreenTexture is the sampler of every post-process program.
const uniformScreenTexture = "screenTexture"

// lightNames holds the uniform names of one light struct.
type lightNames struct {
	colour, ambient, diffuse string
}

type directionalNames struct {
	lightNames
	direction string
}

type pointNames struct {
	lightNames
	position, constant, linear, exponent string
}

type spotNames struct {
	pointNames
	direction, edge string
}

func newLightNames(prefix string) lightNames {
	return lightNames{
		colour:  prefix + ".colour",
		ambient: prefix + ".ambientIntensity",
		diffuse: prefix + ".diffuseIntensity",
	}
}

func newPointNames(prefix string) pointNames {
	return pointNames{
		lightNames: newLightNames(prefix + ".base"),
		position:   prefix + ".position",
		constant:   prefix + ".constant",
		linear:     prefix + ".linear",
		exponent:   prefix + ".exponent",
	}
}

var (
	directionalUniforms = directionalNames{
		lightNames: newLightNames("directionalLight.base"),
		direction:  "directionalLight.direction",
	}
	pointUniforms [lighting.MaxPointLights]pointNames
	spotUniforms  [lighting.MaxSpotLights]spotNames
)

func init() {
	for i := range pointUniforms {
		pointUniforms[i] = newPointNames(fmt.Sprintf("pointLights[%d]", i))
	}
	for i := range spotUniforms {
		prefix := fmt.Sprintf("spotLights[%d]", i)
		spotUniforms[i] = spotNames{
			pointNames: newPointNames(prefix + ".base"),
			direction:  prefix + ".direction",
			edge:       prefix + ".edge",
		}
	}
}

func (n lightNames) list() []string {
	return []string{n.colour, n.ambient, n.diffuse}
}

func (n pointNames) list() []string {
	return append(n.lightNames.list(), n.position, n.constant, n.linear, n.exponent)
}

// SceneUniforms lists every uniform the scene program is bound through.
func SceneUniforms() []string {
	names := []string{
		uniformModel, uniformView, uniformProjection, uniformEyePosition,
		uniformTexture, uniformSpecularIntensity, uniformShininess,
		uniformPointLightCount, uniformSpotLightCount,
	}
	names = append(names, directionalUniforms.list()...)
	names = append(names, directionalUniforms.direction)
	for _, p := range pointUniforms {
		names = append(names, p.list()...)
	}
	for _, s := range spotUniforms {
		names = append(names, s.pointNames.list()...)
		names = append(names, s.direction, s.edge)
	}
	return names
}

// ScreenUniforms lists the uniforms of the post-process programs.
func ScreenUniforms() []string {
	return []string{uniformScreenTexture}
}
