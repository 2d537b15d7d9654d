// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader transforms lit world geometry.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader applies Blinn-Phong lighting from one directional,
// up to three point and up to three spot lights.
//
//go:embed scene.frag
var SceneFragmentShader string

// ScreenVertexShader passes screen-space quad positions through unchanged.
//
//go:embed screen.vert
var ScreenVertexShader string

// PassthroughFragmentShader samples the offscreen color buffer as-is.
//
//go:embed passthrough.frag
var PassthroughFragmentShader string

// SharpenFragmentShader applies a 3x3 sharpen kernel.
//
//go:embed sharpen.frag
var SharpenFragmentShader string

// BoxBlurFragmentShader averages a 5x5 neighbourhood.
//
//go:embed boxblur.frag
var BoxBlurFragmentShader string
