package gles

// Framebuffer is the interface a frontend framebuffer object presents to
// the draw pipeline. Completeness is computed by a collaborator; the
// pipeline only asserts it.
type Framebuffer interface {
	// Complete reports whether the framebuffer is framebuffer-complete.
	// Drawing to an incomplete framebuffer is an upstream validation
	// failure.
	Complete(caps *Caps) bool

	// Samples returns the framebuffer's sample count; 0 means
	// single-sampled.
	Samples(caps *Caps) int

	// ColorAttachment returns the attachment at a color slot, or nil.
	ColorAttachment(i int) Attachment

	// DepthOrStencilAttachment returns the depth attachment if present,
	// otherwise the stencil attachment, otherwise nil.
	DepthOrStencilAttachment() Attachment
}

// Attachment is one framebuffer attachment point. Only texture-backed
// attachments participate in feedback-loop detection.
type Attachment interface {
	// IsTexture reports whether the attachment is backed by a texture
	// (as opposed to a renderbuffer).
	IsTexture() bool

	// Texture returns the backing texture. Valid only when IsTexture
	// reports true.
	Texture() Texture
}
