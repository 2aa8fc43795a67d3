package gles

// Primitive identifies the primitive topology of a draw call.
type Primitive uint8

// Primitive modes.
const (
	Points Primitive = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

// IsTriangleMode reports whether the primitive belongs to the triangle
// family (triangles, strips, fans). Face culling applies only to these.
func (p Primitive) IsTriangleMode() bool {
	switch p {
	case Triangles, TriangleStrip, TriangleFan:
		return true
	}
	return false
}

func (p Primitive) String() string {
	switch p {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case LineLoop:
		return "line_loop"
	case LineStrip:
		return "line_strip"
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle_strip"
	case TriangleFan:
		return "triangle_fan"
	}
	return "unknown"
}

// TextureKind is the basic dimensionality of a texture object.
type TextureKind uint8

// Texture dimensionality kinds.
const (
	Texture2D TextureKind = iota
	TextureCubeMap
	Texture3D
	Texture2DArray
)

func (k TextureKind) String() string {
	switch k {
	case Texture2D:
		return "2d"
	case TextureCubeMap:
		return "cube"
	case Texture3D:
		return "3d"
	case Texture2DArray:
		return "2d_array"
	}
	return "unknown"
}

// ShaderStage identifies a programmable pipeline stage with sampler slots.
type ShaderStage uint8

// Shader stages. The pipeline processes vertex-stage slots before
// pixel-stage slots.
const (
	StageVertex ShaderStage = iota
	StagePixel
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StagePixel:
		return "pixel"
	}
	return "unknown"
}

// IndexType is the element type of an index buffer.
type IndexType uint8

// Index element types.
const (
	IndexUint8 IndexType = iota
	IndexUint16
	IndexUint32
)

// Size returns the size in bytes of one index element.
func (t IndexType) Size() int {
	switch t {
	case IndexUint8:
		return 1
	case IndexUint16:
		return 2
	case IndexUint32:
		return 4
	}
	return 0
}

// Winding is a polygon front-face winding order.
type Winding uint8

// Winding orders.
const (
	WindingCCW Winding = iota
	WindingCW
)

// CullFace selects which polygon faces are discarded when culling is on.
type CullFace uint8

// Cull face modes.
const (
	CullFront CullFace = iota
	CullBack
	CullFrontAndBack
)

// BlendFactor is a frontend blend coefficient.
type BlendFactor uint8

// Blend factors.
const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
	BlendConstantColor
	BlendOneMinusConstantColor
	BlendConstantAlpha
	BlendOneMinusConstantAlpha
	BlendSrcAlphaSaturate
)

// BlendOp is a frontend blend equation.
type BlendOp uint8

// Blend equations.
const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// CompareFunc is a depth or stencil comparison function.
type CompareFunc uint8

// Comparison functions.
const (
	CompareNever CompareFunc = iota
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
)

// StencilOp is a stencil update operation.
type StencilOp uint8

// Stencil operations.
const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
	StencilIncr
	StencilDecr
	StencilInvert
	StencilIncrWrap
	StencilDecrWrap
)

// Wrap is a texture coordinate addressing mode.
type Wrap uint8

// Wrap modes.
const (
	WrapRepeat Wrap = iota
	WrapClampToEdge
	WrapMirroredRepeat
)

// Filter is a texture sampling filter. Minification filters may carry a
// mipmap component; magnification uses only FilterNearest or FilterLinear.
type Filter uint8

// Texture filters.
const (
	FilterNearest Filter = iota
	FilterLinear
	FilterNearestMipmapNearest
	FilterLinearMipmapNearest
	FilterNearestMipmapLinear
	FilterLinearMipmapLinear
)

// Swizzle selects the source component for one channel of a texture read.
type Swizzle uint8

// Swizzle sources.
const (
	SwizzleRed Swizzle = iota
	SwizzleGreen
	SwizzleBlue
	SwizzleAlpha
	SwizzleZero
	SwizzleOne
)

// AttribType is the component type of a vertex attribute.
type AttribType uint8

// Vertex attribute component types.
const (
	AttribByte AttribType = iota
	AttribUnsignedByte
	AttribShort
	AttribUnsignedShort
	AttribInt
	AttribUnsignedInt
	AttribFloat
	AttribHalfFloat
)
