package gles

// Program is the interface a linked program object presents to the draw
// pipeline. Compilation and reflection are collaborator concerns; the
// pipeline consumes the reflected sampler/uniform-block layout and delegates
// uniform uploads back to the program.
type Program interface {
	// UpdateSamplerMapping refreshes the slot-to-unit mapping after any
	// uniform change. Called once at the top of every draw.
	UpdateSamplerMapping()

	// UsedSamplerRange returns one past the highest sampler slot the
	// stage uses. Slots below the range may still be unmapped.
	UsedSamplerRange(stage ShaderStage) int

	// SamplerTextureKind returns the texture dimensionality the shader
	// declared for a sampler slot.
	SamplerTextureKind(stage ShaderStage, slot int) TextureKind

	// SamplerMapping resolves a sampler slot to its texture unit, or -1
	// when the slot has no unit mapped.
	SamplerMapping(stage ShaderStage, slot int, caps *Caps) int

	// UsesPointSize reports whether the vertex stage writes the point
	// size output. Point draws without it are skipped.
	UsesPointSize() bool

	// UsesAttribute reports whether the program consumes the given
	// vertex attribute slot.
	UsesAttribute(slot int) bool

	// ActiveUniformBlockCount returns the number of active uniform
	// blocks.
	ActiveUniformBlockCount() int

	// UniformBlockBinding returns the indexed binding point a uniform
	// block is assigned to.
	UniformBlockBinding(block int) int

	// ApplyUniforms pushes dirty uniform values to the device. Invoked
	// exactly once per draw, after shader binding.
	ApplyUniforms() error

	// ApplyUniformBuffers hands the complete, block-ordered list of
	// bound uniform buffers to the device in one call.
	ApplyUniformBuffers(buffers []Buffer, caps *Caps) error
}
