package gles

// Caps holds the capability limits of the device context. The pipeline sizes
// every per-draw collection (texture slots, attribute layouts, indexed buffer
// bindings) from these limits; it never grows past them.
type Caps struct {
	// MaxDrawBuffers is the number of color attachments a framebuffer
	// may carry.
	MaxDrawBuffers int

	// MaxVertexAttributes is the number of vertex attribute slots.
	MaxVertexAttributes int

	// MaxTextureImageUnits is the pixel-stage sampler slot capacity.
	MaxTextureImageUnits int

	// MaxVertexTextureImageUnits is the vertex-stage sampler slot capacity.
	MaxVertexTextureImageUnits int

	// MaxCombinedTextureImageUnits is the total number of texture units
	// addressable by a program across all stages.
	MaxCombinedTextureImageUnits int

	// MaxTransformFeedbackSeparateAttributes is the number of indexed
	// transform-feedback buffer binding points.
	MaxTransformFeedbackSeparateAttributes int

	// MaxUniformBufferBindings is the number of indexed uniform buffer
	// binding points.
	MaxUniformBufferBindings int
}

// DefaultCaps returns the minimum capability limits a conforming GLES 3
// context guarantees. Backends report real limits; these exist so tests and
// headless tools have a sane baseline.
func DefaultCaps() Caps {
	return Caps{
		MaxDrawBuffers:                         4,
		MaxVertexAttributes:                    16,
		MaxTextureImageUnits:                   16,
		MaxVertexTextureImageUnits:             16,
		MaxCombinedTextureImageUnits:           32,
		MaxTransformFeedbackSeparateAttributes: 4,
		MaxUniformBufferBindings:               24,
	}
}

// StageSamplerCount returns the sampler slot capacity of a shader stage.
func (c *Caps) StageSamplerCount(stage ShaderStage) int {
	if stage == StageVertex {
		return c.MaxVertexTextureImageUnits
	}
	return c.MaxTextureImageUnits
}
