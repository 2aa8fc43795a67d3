package render

import (
	"github.com/gogpu/gles"
	"github.com/gogpu/gles/backend"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// translateWinding maps a frontend winding order to the device front face.
func translateWinding(w gles.Winding) gputypes.FrontFace {
	if w == gles.WindingCW {
		return gputypes.FrontFaceCW
	}
	return gputypes.FrontFaceCCW
}

// translateCullMode maps the frontend cull configuration to a device cull
// mode. "Front and back" has no device equivalent; it maps to no culling
// because the skip-draw policy prevents any triangle draw from reaching the
// device in that configuration.
func translateCullMode(cullFace bool, mode gles.CullFace) gputypes.CullMode {
	if !cullFace {
		return gputypes.CullModeNone
	}
	switch mode {
	case gles.CullFront:
		return gputypes.CullModeFront
	case gles.CullBack:
		return gputypes.CullModeBack
	}
	return gputypes.CullModeNone
}

// translateRasterizerState derives the device rasterizer state. The
// per-draw PointDrawMode and Multisample fields are filled by the caller.
func translateRasterizerState(rs *gles.RasterizerState) backend.RasterizerState {
	return backend.RasterizerState{
		CullMode:            translateCullMode(rs.CullFace, rs.CullMode),
		FrontFace:           translateWinding(rs.FrontFace),
		RasterizerDiscard:   rs.RasterizerDiscard,
		PolygonOffsetFill:   rs.PolygonOffsetFill,
		PolygonOffsetFactor: rs.PolygonOffsetFactor,
		PolygonOffsetUnits:  rs.PolygonOffsetUnits,
	}
}

// translateBlendFactor maps a frontend blend factor to the device factor.
// The device blend constant carries a single color; constant-alpha factors
// map onto it, with the alpha channel taken from the same constant.
func translateBlendFactor(f gles.BlendFactor) gputypes.BlendFactor {
	switch f {
	case gles.BlendZero:
		return gputypes.BlendFactorZero
	case gles.BlendOne:
		return gputypes.BlendFactorOne
	case gles.BlendSrcColor:
		return gputypes.BlendFactorSrc
	case gles.BlendOneMinusSrcColor:
		return gputypes.BlendFactorOneMinusSrc
	case gles.BlendDstColor:
		return gputypes.BlendFactorDst
	case gles.BlendOneMinusDstColor:
		return gputypes.BlendFactorOneMinusDst
	case gles.BlendSrcAlpha:
		return gputypes.BlendFactorSrcAlpha
	case gles.BlendOneMinusSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha
	case gles.BlendDstAlpha:
		return gputypes.BlendFactorDstAlpha
	case gles.BlendOneMinusDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha
	case gles.BlendConstantColor, gles.BlendConstantAlpha:
		return gputypes.BlendFactorConstant
	case gles.BlendOneMinusConstantColor, gles.BlendOneMinusConstantAlpha:
		return gputypes.BlendFactorOneMinusConstant
	case gles.BlendSrcAlphaSaturate:
		return gputypes.BlendFactorSrcAlphaSaturated
	}
	return gputypes.BlendFactorZero
}

// translateBlendOp maps a frontend blend equation to the device operation.
func translateBlendOp(op gles.BlendOp) gputypes.BlendOperation {
	switch op {
	case gles.BlendOpSubtract:
		return gputypes.BlendOperationSubtract
	case gles.BlendOpReverseSubtract:
		return gputypes.BlendOperationReverseSubtract
	case gles.BlendOpMin:
		return gputypes.BlendOperationMin
	case gles.BlendOpMax:
		return gputypes.BlendOperationMax
	}
	return gputypes.BlendOperationAdd
}

// translateBlendState derives the device blend state and color write mask.
// A nil blend state means blending is disabled for the draw.
func translateBlendState(b *gles.BlendState) (*gputypes.BlendState, gputypes.ColorWriteMask) {
	var mask gputypes.ColorWriteMask
	if b.ColorMaskRed {
		mask |= gputypes.ColorWriteMaskRed
	}
	if b.ColorMaskGreen {
		mask |= gputypes.ColorWriteMaskGreen
	}
	if b.ColorMaskBlue {
		mask |= gputypes.ColorWriteMaskBlue
	}
	if b.ColorMaskAlpha {
		mask |= gputypes.ColorWriteMaskAlpha
	}

	if !b.Blend {
		return nil, mask
	}

	return &gputypes.BlendState{
		Color: gputypes.BlendComponent{
			Operation: translateBlendOp(b.BlendEquationRGB),
			SrcFactor: translateBlendFactor(b.SourceBlendRGB),
			DstFactor: translateBlendFactor(b.DestBlendRGB),
		},
		Alpha: gputypes.BlendComponent{
			Operation: translateBlendOp(b.BlendEquationAlpha),
			SrcFactor: translateBlendFactor(b.SourceBlendAlpha),
			DstFactor: translateBlendFactor(b.DestBlendAlpha),
		},
	}, mask
}

// translateColor widens the frontend blend constant to the device color.
func translateColor(c gles.Color) gputypes.Color {
	return gputypes.Color{
		R: float64(c.R),
		G: float64(c.G),
		B: float64(c.B),
		A: float64(c.A),
	}
}

// translateCompare maps a frontend comparison function to the device one.
func translateCompare(f gles.CompareFunc) gputypes.CompareFunction {
	switch f {
	case gles.CompareNever:
		return gputypes.CompareFunctionNever
	case gles.CompareLess:
		return gputypes.CompareFunctionLess
	case gles.CompareEqual:
		return gputypes.CompareFunctionEqual
	case gles.CompareLessEqual:
		return gputypes.CompareFunctionLessEqual
	case gles.CompareGreater:
		return gputypes.CompareFunctionGreater
	case gles.CompareNotEqual:
		return gputypes.CompareFunctionNotEqual
	case gles.CompareGreaterEqual:
		return gputypes.CompareFunctionGreaterEqual
	}
	return gputypes.CompareFunctionAlways
}

// translateStencilOp maps a frontend stencil operation to the device one.
func translateStencilOp(op gles.StencilOp) hal.StencilOperation {
	switch op {
	case gles.StencilZero:
		return hal.StencilOperationZero
	case gles.StencilReplace:
		return hal.StencilOperationReplace
	case gles.StencilIncr:
		return hal.StencilOperationIncrementClamp
	case gles.StencilDecr:
		return hal.StencilOperationDecrementClamp
	case gles.StencilInvert:
		return hal.StencilOperationInvert
	case gles.StencilIncrWrap:
		return hal.StencilOperationIncrementWrap
	case gles.StencilDecrWrap:
		return hal.StencilOperationDecrementWrap
	}
	return hal.StencilOperationKeep
}

// translateDepthStencilState derives the device depth/stencil state.
// Disabled tests translate to always-passing comparisons with writes and
// updates suppressed. The device carries a single stencil read/write mask
// pair; the front-face masks are used (separate back-face masks are beyond
// the device state model).
func translateDepthStencilState(ds *gles.DepthStencilState) hal.DepthStencilState {
	out := hal.DepthStencilState{
		DepthCompare: gputypes.CompareFunctionAlways,
		StencilFront: hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionAlways,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		},
		StencilBack: hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionAlways,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		},
		StencilReadMask:  ds.StencilMask,
		StencilWriteMask: ds.StencilWriteMask,
	}

	if ds.DepthTest {
		out.DepthCompare = translateCompare(ds.DepthFunc)
		out.DepthWriteEnabled = ds.DepthMask
	}

	if ds.StencilTest {
		out.StencilFront = hal.StencilFaceState{
			Compare:     translateCompare(ds.StencilFunc),
			FailOp:      translateStencilOp(ds.StencilFail),
			DepthFailOp: translateStencilOp(ds.StencilPassDepthFail),
			PassOp:      translateStencilOp(ds.StencilPassDepthPass),
		}
		out.StencilBack = hal.StencilFaceState{
			Compare:     translateCompare(ds.StencilBackFunc),
			FailOp:      translateStencilOp(ds.StencilBackFail),
			DepthFailOp: translateStencilOp(ds.StencilBackPassDepthFail),
			PassOp:      translateStencilOp(ds.StencilBackPassDepthPass),
		}
	}

	return out
}

// translateWrap maps a frontend wrap mode to the device address mode.
func translateWrap(w gles.Wrap) gputypes.AddressMode {
	switch w {
	case gles.WrapClampToEdge:
		return gputypes.AddressModeClampToEdge
	case gles.WrapMirroredRepeat:
		return gputypes.AddressModeMirrorRepeat
	}
	return gputypes.AddressModeRepeat
}

// translateMinFilter splits a frontend minification filter into the device
// minification and mip filters. Non-mipmapped filters pin mip sampling to
// the nearest (only) level.
func translateMinFilter(f gles.Filter) (minFilter, mipFilter gputypes.FilterMode) {
	switch f {
	case gles.FilterNearest:
		return gputypes.FilterModeNearest, gputypes.FilterModeNearest
	case gles.FilterLinear:
		return gputypes.FilterModeLinear, gputypes.FilterModeNearest
	case gles.FilterNearestMipmapNearest:
		return gputypes.FilterModeNearest, gputypes.FilterModeNearest
	case gles.FilterLinearMipmapNearest:
		return gputypes.FilterModeLinear, gputypes.FilterModeNearest
	case gles.FilterNearestMipmapLinear:
		return gputypes.FilterModeNearest, gputypes.FilterModeLinear
	}
	return gputypes.FilterModeLinear, gputypes.FilterModeLinear
}

// translateMagFilter maps a frontend magnification filter. Only nearest and
// linear are meaningful for magnification.
func translateMagFilter(f gles.Filter) gputypes.FilterMode {
	if f == gles.FilterNearest {
		return gputypes.FilterModeNearest
	}
	return gputypes.FilterModeLinear
}

// translateSamplerState derives the device sampler descriptor from the
// effective frontend sampling parameters.
func translateSamplerState(s *gles.SamplerState) hal.SamplerDescriptor {
	minFilter, mipFilter := translateMinFilter(s.MinFilter)
	desc := hal.SamplerDescriptor{
		AddressModeU: translateWrap(s.WrapS),
		AddressModeV: translateWrap(s.WrapT),
		AddressModeW: translateWrap(s.WrapR),
		MagFilter:    translateMagFilter(s.MagFilter),
		MinFilter:    minFilter,
		MipmapFilter: mipFilter,
		LodMinClamp:  s.MinLod,
		LodMaxClamp:  s.MaxLod,
	}
	if s.CompareEnabled {
		desc.Compare = translateCompare(s.CompareFunc)
	}
	return desc
}

// translateVertexFormat maps a vertex attribute configuration to a device
// vertex format. Two- and three-byte-wide component counts that the device
// cannot express widen to the next supported count; the extra components
// are ignored by the shader.
func translateVertexFormat(a gles.VertexAttrib) gputypes.VertexFormat {
	switch a.Type {
	case gles.AttribByte:
		if a.Normalized {
			return pick2or4(a.Size, gputypes.VertexFormatSnorm8x2, gputypes.VertexFormatSnorm8x4)
		}
		return pick2or4(a.Size, gputypes.VertexFormatSint8x2, gputypes.VertexFormatSint8x4)
	case gles.AttribUnsignedByte:
		if a.Normalized {
			return pick2or4(a.Size, gputypes.VertexFormatUnorm8x2, gputypes.VertexFormatUnorm8x4)
		}
		return pick2or4(a.Size, gputypes.VertexFormatUint8x2, gputypes.VertexFormatUint8x4)
	case gles.AttribShort:
		if a.Normalized {
			return pick2or4(a.Size, gputypes.VertexFormatSnorm16x2, gputypes.VertexFormatSnorm16x4)
		}
		return pick2or4(a.Size, gputypes.VertexFormatSint16x2, gputypes.VertexFormatSint16x4)
	case gles.AttribUnsignedShort:
		if a.Normalized {
			return pick2or4(a.Size, gputypes.VertexFormatUnorm16x2, gputypes.VertexFormatUnorm16x4)
		}
		return pick2or4(a.Size, gputypes.VertexFormatUint16x2, gputypes.VertexFormatUint16x4)
	case gles.AttribInt:
		switch a.Size {
		case 1:
			return gputypes.VertexFormatSint32
		case 2:
			return gputypes.VertexFormatSint32x2
		case 3:
			return gputypes.VertexFormatSint32x3
		}
		return gputypes.VertexFormatSint32x4
	case gles.AttribUnsignedInt:
		switch a.Size {
		case 1:
			return gputypes.VertexFormatUint32
		case 2:
			return gputypes.VertexFormatUint32x2
		case 3:
			return gputypes.VertexFormatUint32x3
		}
		return gputypes.VertexFormatUint32x4
	case gles.AttribHalfFloat:
		return pick2or4(a.Size, gputypes.VertexFormatFloat16x2, gputypes.VertexFormatFloat16x4)
	}
	switch a.Size {
	case 1:
		return gputypes.VertexFormatFloat32
	case 2:
		return gputypes.VertexFormatFloat32x2
	case 3:
		return gputypes.VertexFormatFloat32x3
	}
	return gputypes.VertexFormatFloat32x4
}

// pick2or4 selects the two-component format for sizes up to two and the
// four-component format otherwise.
func pick2or4(size int, two, four gputypes.VertexFormat) gputypes.VertexFormat {
	if size <= 2 {
		return two
	}
	return four
}
