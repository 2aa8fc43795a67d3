package backend

import (
	"github.com/gogpu/gles"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Device name constants.
const (
	// BackendNoop is the name of the no-op device. It latches nothing and
	// draws nothing; it exists as a registry fallback and for headless
	// pipeline testing.
	BackendNoop = "noop"
)

// NoopDevice is a device that accepts every hook and performs no work.
// It reports the GLES 3 minimum capability limits.
type NoopDevice struct {
	initialized bool
}

// init registers the no-op device on package import.
func init() {
	Register(BackendNoop, func() Device {
		return &NoopDevice{}
	})
}

// NewNoopDevice creates a new no-op device.
func NewNoopDevice() *NoopDevice {
	return &NoopDevice{}
}

// Name returns the device identifier.
func (d *NoopDevice) Name() string {
	return BackendNoop
}

// Init initializes the device.
func (d *NoopDevice) Init() error {
	d.initialized = true
	return nil
}

// Close releases all device resources.
func (d *NoopDevice) Close() {
	d.initialized = false
}

// Caps returns the GLES 3 minimum limits.
func (d *NoopDevice) Caps() gles.Caps {
	return gles.DefaultCaps()
}

// ApplyPrimitiveType reports whether the draw produces any output.
func (d *NoopDevice) ApplyPrimitiveType(mode gles.Primitive, count int) bool {
	return count >= MinimumVertexCount(mode)
}

// ApplyRenderTarget does nothing.
func (d *NoopDevice) ApplyRenderTarget(gles.Framebuffer) error { return nil }

// SetViewport does nothing.
func (d *NoopDevice) SetViewport(gles.Rectangle, float32, float32, gles.Primitive, gputypes.FrontFace, bool) {
}

// SetScissor does nothing.
func (d *NoopDevice) SetScissor(gles.Rectangle, bool) {}

// SetRasterizerState does nothing.
func (d *NoopDevice) SetRasterizerState(*RasterizerState) error { return nil }

// SetBlendState does nothing.
func (d *NoopDevice) SetBlendState(gles.Framebuffer, *gputypes.BlendState, gputypes.ColorWriteMask, gputypes.Color, uint32) error {
	return nil
}

// SetDepthStencilState does nothing.
func (d *NoopDevice) SetDepthStencilState(*hal.DepthStencilState, int, int, bool) error { return nil }

// ApplyShaders does nothing.
func (d *NoopDevice) ApplyShaders(gles.Program, []gputypes.VertexFormat, gles.Framebuffer, bool, bool) error {
	return nil
}

// SetSamplerState does nothing.
func (d *NoopDevice) SetSamplerState(gles.ShaderStage, int, gles.Texture, *hal.SamplerDescriptor) error {
	return nil
}

// SetTexture does nothing.
func (d *NoopDevice) SetTexture(gles.ShaderStage, int, gles.Texture) error { return nil }

// ApplyIndexBuffer leaves the precomputed range untouched.
func (d *NoopDevice) ApplyIndexBuffer([]byte, gles.Buffer, int, gles.Primitive, gles.IndexType, *TranslatedIndexData) error {
	return nil
}

// ApplyVertexBuffers does nothing.
func (d *NoopDevice) ApplyVertexBuffers(*gles.State, int, int, int) error { return nil }

// ApplyTransformFeedbackBuffers does nothing.
func (d *NoopDevice) ApplyTransformFeedbackBuffers(*gles.State) {}

// GenerateSwizzle does nothing.
func (d *NoopDevice) GenerateSwizzle(gles.Texture) error { return nil }

// DrawArrays does nothing.
func (d *NoopDevice) DrawArrays(gles.Primitive, int, int, bool) error { return nil }

// DrawElements does nothing.
func (d *NoopDevice) DrawElements(gles.Primitive, int, gles.IndexType, []byte, gles.Buffer, *TranslatedIndexData, int) error {
	return nil
}

// CreateTexture allocates nothing and returns a nil handle.
func (d *NoopDevice) CreateTexture(*hal.TextureDescriptor) (hal.Texture, error) {
	if !d.initialized {
		return nil, ErrNotInitialized
	}
	return nil, nil
}

// WriteTexture does nothing.
func (d *NoopDevice) WriteTexture(hal.Texture, int, *hal.ImageDataLayout, hal.Extent3D, []byte) error {
	return nil
}

// DestroyTexture does nothing.
func (d *NoopDevice) DestroyTexture(hal.Texture) {}
