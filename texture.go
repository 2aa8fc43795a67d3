package gles

// Texture is the interface a frontend texture object presents to the draw
// pipeline. Texture storage and mip-chain management happen elsewhere; the
// pipeline only needs identity, sampling configuration, and completeness.
type Texture interface {
	// Kind returns the texture's basic dimensionality.
	Kind() TextureKind

	// Serial returns a unique identifier stable for the texture's
	// lifetime. Serial 0 is reserved for renderer-internal fallback
	// textures and is never assigned to a user-visible object.
	Serial() uint32

	// SamplerState returns the texture's own sampling parameters.
	SamplerState() SamplerState

	// SamplerComplete reports whether the texture satisfies all
	// structural requirements (size, format, mip completeness) to be
	// sampled with the given parameters under the given limits.
	SamplerComplete(sampler SamplerState, caps *Caps) bool
}

// Sampler is a frontend sampler object. When bound to a texture unit, its
// parameters replace the texture's own for that unit.
type Sampler interface {
	SamplerState() SamplerState
}
