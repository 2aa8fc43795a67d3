package gles

// Rectangle is an axis-aligned integer rectangle in window coordinates,
// used for viewports and scissor boxes.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Color is a normalized RGBA color, used for the blend constant.
type Color struct {
	R, G, B, A float32
}

// RasterizerState is the frontend rasterizer configuration.
type RasterizerState struct {
	RasterizerDiscard bool

	CullFace  bool
	CullMode  CullFace
	FrontFace Winding

	PolygonOffsetFill   bool
	PolygonOffsetFactor float32
	PolygonOffsetUnits  float32
}

// BlendState is the frontend per-target blend configuration.
type BlendState struct {
	Blend bool

	SourceBlendRGB   BlendFactor
	DestBlendRGB     BlendFactor
	BlendEquationRGB BlendOp

	SourceBlendAlpha   BlendFactor
	DestBlendAlpha     BlendFactor
	BlendEquationAlpha BlendOp

	ColorMaskRed   bool
	ColorMaskGreen bool
	ColorMaskBlue  bool
	ColorMaskAlpha bool

	SampleAlphaToCoverage bool
	Dither                bool
}

// DepthStencilState is the frontend depth and stencil configuration.
// Stencil reference values live on [State], not here, mirroring how the
// device consumes them separately from the rest of the stencil state.
type DepthStencilState struct {
	DepthTest bool
	DepthFunc CompareFunc
	DepthMask bool

	StencilTest bool

	StencilFunc          CompareFunc
	StencilMask          uint32
	StencilFail          StencilOp
	StencilPassDepthFail StencilOp
	StencilPassDepthPass StencilOp
	StencilWriteMask     uint32

	StencilBackFunc          CompareFunc
	StencilBackMask          uint32
	StencilBackFail          StencilOp
	StencilBackPassDepthFail StencilOp
	StencilBackPassDepthPass StencilOp
	StencilBackWriteMask     uint32
}

// SamplerState is a full set of sampling parameters. It originates from a
// texture object and may be overridden wholesale by a bound sampler object.
type SamplerState struct {
	MinFilter Filter
	MagFilter Filter

	WrapS Wrap
	WrapT Wrap
	WrapR Wrap

	MinLod float32
	MaxLod float32

	CompareEnabled bool
	CompareFunc    CompareFunc

	SwizzleRed   Swizzle
	SwizzleGreen Swizzle
	SwizzleBlue  Swizzle
	SwizzleAlpha Swizzle
}

// SwizzleRequired reports whether the swizzle configuration deviates from
// the identity mapping, requiring a swizzled texture representation.
func (s *SamplerState) SwizzleRequired() bool {
	return s.SwizzleRed != SwizzleRed ||
		s.SwizzleGreen != SwizzleGreen ||
		s.SwizzleBlue != SwizzleBlue ||
		s.SwizzleAlpha != SwizzleAlpha
}

// VertexAttrib is the configuration of one vertex attribute slot.
type VertexAttrib struct {
	Enabled bool

	Size        int
	Type        AttribType
	Normalized  bool
	PureInteger bool
}

// TextureUnit holds the textures bound to one texture image unit, one per
// dimensionality kind.
type TextureUnit struct {
	Tex2D      Texture
	TexCubeMap Texture
	Tex3D      Texture
	Tex2DArray Texture
}

// IndexRange is the closed range of index values referenced by an indexed
// draw, precomputed by upstream validation.
type IndexRange struct {
	Start uint32
	End   uint32
}

// Length returns End - Start. The draw's vertex count is Length()+1.
func (r IndexRange) Length() uint32 { return r.End - r.Start }

// State is the frontend state snapshot consumed by one draw call. It is
// owned by the caller and borrowed by the pipeline; the pipeline never
// mutates it and never retains it past the call.
//
// Indexed bindings (TextureUnits, Samplers, UniformBuffers,
// TransformFeedbackBuffers) are slices sized by the corresponding Caps
// limits; a nil element means nothing is bound at that index.
type State struct {
	Program         Program
	DrawFramebuffer Framebuffer
	VertexArray     VertexArray

	Rasterizer   RasterizerState
	Blend        BlendState
	DepthStencil DepthStencilState

	Viewport    Rectangle
	Scissor     Rectangle
	ScissorTest bool

	NearZ float32
	FarZ  float32

	BlendColor Color

	SampleCoverage       bool
	SampleCoverageValue  float32
	SampleCoverageInvert bool

	StencilRef     int
	StencilBackRef int

	TextureUnits []TextureUnit
	Samplers     []Sampler

	UniformBuffers           []Buffer
	TransformFeedbackBuffers []Buffer
	TransformFeedback        TransformFeedback

	Caps *Caps
}

// SamplerTexture returns the texture of the given kind bound to a texture
// unit, or nil when the unit is out of range or holds no such texture.
func (s *State) SamplerTexture(unit int, kind TextureKind) Texture {
	if unit < 0 || unit >= len(s.TextureUnits) {
		return nil
	}
	u := &s.TextureUnits[unit]
	switch kind {
	case Texture2D:
		return u.Tex2D
	case TextureCubeMap:
		return u.TexCubeMap
	case Texture3D:
		return u.Tex3D
	case Texture2DArray:
		return u.Tex2DArray
	}
	return nil
}

// SamplerObject returns the sampler object bound to a texture unit, or nil.
// A bound sampler object's parameters override the texture's own.
func (s *State) SamplerObject(unit int) Sampler {
	if unit < 0 || unit >= len(s.Samplers) {
		return nil
	}
	return s.Samplers[unit]
}

// IndexedUniformBuffer returns the buffer bound at an indexed uniform buffer
// binding point. A nil result is the "unbound" sentinel.
func (s *State) IndexedUniformBuffer(binding int) Buffer {
	if binding < 0 || binding >= len(s.UniformBuffers) {
		return nil
	}
	return s.UniformBuffers[binding]
}

// IndexedTransformFeedbackBuffer returns the buffer bound at an indexed
// transform-feedback binding point, or nil.
func (s *State) IndexedTransformFeedbackBuffer(i int) Buffer {
	if i < 0 || i >= len(s.TransformFeedbackBuffers) {
		return nil
	}
	return s.TransformFeedbackBuffers[i]
}
