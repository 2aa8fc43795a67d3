// Package backend defines the device-hook interface concrete GPU backends
// implement, and a registry through which they are selected by name.
//
// The render package drives a [Device] through a fixed per-draw phase
// sequence; the device latches each piece of translated state as it arrives.
// Devices are not required to be safe for concurrent use; the pipeline
// assumes one device context per goroutine.
package backend

import (
	"errors"

	"github.com/gogpu/gles"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// RasterizerState is the translated rasterizer configuration a device
// consumes. PointDrawMode and Multisample are derived per draw by the
// pipeline; the rest is translated from the frontend rasterizer state.
type RasterizerState struct {
	// CullMode selects the faces the device discards. A frontend
	// "front and back" cull translates to CullModeNone here because the
	// skip-draw policy guarantees no triangle draw reaches the device in
	// that configuration.
	CullMode gputypes.CullMode

	// FrontFace is the winding order of front-facing polygons.
	FrontFace gputypes.FrontFace

	// RasterizerDiscard disables rasterization entirely (transform
	// feedback capture still runs).
	RasterizerDiscard bool

	PolygonOffsetFill   bool
	PolygonOffsetFactor float32
	PolygonOffsetUnits  float32

	// PointDrawMode is set iff the draw's primitive mode is points.
	PointDrawMode bool

	// Multisample is set iff the draw framebuffer's sample count is
	// nonzero.
	Multisample bool
}

// TranslatedIndexData is the result of index buffer preparation for an
// indexed draw. The device fills it from the precomputed index range and
// whatever backend-specific handles vertex preparation needs afterwards.
type TranslatedIndexData struct {
	// IndexRange is the closed range of index values the draw
	// references. Vertex count for buffer preparation is Length()+1.
	IndexRange gles.IndexRange

	// StartOffset is the byte offset of the first index in the
	// device-side index buffer after translation.
	StartOffset int
}

// Device is the set of hooks the draw pipeline invokes on a concrete
// backend. Hooks are synchronous; an error from any hook aborts the draw
// with no rollback of state latched by earlier hooks.
type Device interface {
	// Name returns the backend identifier (e.g. "noop", "wgpu").
	Name() string

	// Init initializes the device. Must be called before any draw.
	Init() error

	// Close releases all device resources. The device must not be used
	// after Close.
	Close()

	// Caps returns the device capability limits.
	Caps() gles.Caps

	// ApplyPrimitiveType reports whether the device can issue a draw of
	// the given mode and count. False makes the entire call a successful
	// no-op (for example, fewer vertices than the primitive requires).
	ApplyPrimitiveType(mode gles.Primitive, count int) bool

	// ApplyRenderTarget binds the framebuffer's target surfaces.
	ApplyRenderTarget(fb gles.Framebuffer) error

	// SetViewport applies the viewport rectangle and clamped depth
	// range. ignoreViewport is an orthogonal override instructing the
	// device to keep its current viewport.
	SetViewport(viewport gles.Rectangle, nearZ, farZ float32, mode gles.Primitive, frontFace gputypes.FrontFace, ignoreViewport bool)

	// SetScissor applies the scissor rectangle, gated on enabled.
	SetScissor(rect gles.Rectangle, enabled bool)

	// SetRasterizerState latches the translated rasterizer state.
	SetRasterizerState(rs *RasterizerState) error

	// SetBlendState latches blend state for the framebuffer's targets.
	// A nil blend means blending is disabled. sampleMask is the
	// multisample coverage mask.
	SetBlendState(fb gles.Framebuffer, blend *gputypes.BlendState, colorMask gputypes.ColorWriteMask, blendColor gputypes.Color, sampleMask uint32) error

	// SetDepthStencilState latches depth/stencil state with per-face
	// stencil references. frontFaceCCW carries the rasterizer winding
	// for backends that emulate two-sided stencil by face inversion.
	SetDepthStencilState(ds *hal.DepthStencilState, stencilRef, stencilBackRef int, frontFaceCCW bool) error

	// ApplyShaders binds the program's device shaders with the derived
	// input layout, one entry per vertex attribute slot.
	ApplyShaders(prog gles.Program, inputLayout []gputypes.VertexFormat, fb gles.Framebuffer, rasterizerDiscard, transformFeedbackActive bool) error

	// SetSamplerState latches sampling parameters for a stage slot.
	SetSamplerState(stage gles.ShaderStage, slot int, tex gles.Texture, desc *hal.SamplerDescriptor) error

	// SetTexture binds a texture to a stage slot. A nil texture unbinds
	// the slot.
	SetTexture(stage gles.ShaderStage, slot int, tex gles.Texture) error

	// ApplyIndexBuffer prepares index data for an indexed draw and fills
	// out with the translated result.
	ApplyIndexBuffer(indices []byte, buffer gles.Buffer, count int, mode gles.Primitive, typ gles.IndexType, out *TranslatedIndexData) error

	// ApplyVertexBuffers prepares vertex buffers for the draw range.
	ApplyVertexBuffers(state *gles.State, first, count, instances int) error

	// ApplyTransformFeedbackBuffers binds the state's indexed
	// transform-feedback buffers for capture.
	ApplyTransformFeedbackBuffers(state *gles.State)

	// GenerateSwizzle regenerates the swizzled representation of a
	// texture whose sampling state requires component swizzling.
	// Idempotent: an up-to-date swizzle is left in place.
	GenerateSwizzle(tex gles.Texture) error

	// DrawArrays issues a non-indexed device draw.
	DrawArrays(mode gles.Primitive, count, instances int, transformFeedbackActive bool) error

	// DrawElements issues an indexed device draw.
	DrawElements(mode gles.Primitive, count int, typ gles.IndexType, indices []byte, elementBuffer gles.Buffer, indexInfo *TranslatedIndexData, instances int) error

	// CreateTexture allocates a device texture. Used by the pipeline for
	// its fallback textures; frontend texture storage is created
	// elsewhere.
	CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error)

	// WriteTexture uploads pixel data to one layer of level 0.
	WriteTexture(tex hal.Texture, layer int, layout *hal.ImageDataLayout, size hal.Extent3D, data []byte) error

	// DestroyTexture releases a device texture created by CreateTexture.
	DestroyTexture(tex hal.Texture)
}

// Topology maps a frontend primitive mode to a device primitive topology.
// It is a helper for concrete backends building device pipelines in their
// ApplyShaders and ApplyIndexBuffer hooks; the no-op device has no pipelines
// to build and never consults it. Line loops and triangle fans have no
// direct topology; backends emulate them during index preparation, so ok is
// false for those.
func Topology(mode gles.Primitive) (topology gputypes.PrimitiveTopology, ok bool) {
	switch mode {
	case gles.Points:
		return gputypes.PrimitiveTopologyPointList, true
	case gles.Lines:
		return gputypes.PrimitiveTopologyLineList, true
	case gles.LineStrip:
		return gputypes.PrimitiveTopologyLineStrip, true
	case gles.Triangles:
		return gputypes.PrimitiveTopologyTriangleList, true
	case gles.TriangleStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, true
	}
	return 0, false
}

// MinimumVertexCount returns the fewest vertices that produce any output
// for a primitive mode. Draws below the minimum are valid no-ops.
func MinimumVertexCount(mode gles.Primitive) int {
	switch mode {
	case gles.Points:
		return 1
	case gles.Lines, gles.LineStrip, gles.LineLoop:
		return 2
	case gles.Triangles, gles.TriangleStrip, gles.TriangleFan:
		return 3
	}
	return 0
}
