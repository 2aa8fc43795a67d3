package render

import (
	"github.com/gogpu/gles"
	"github.com/gogpu/gles/backend"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// fakeHALTexture is a test double for hal.Texture.
type fakeHALTexture struct {
	label     string
	destroyed int
}

// Destroy implements hal.Resource.
func (t *fakeHALTexture) Destroy() {}

// NativeHandle implements hal.NativeHandle.
func (t *fakeHALTexture) NativeHandle() uintptr { return 0 }

// CurrentUsage implements hal.Texture.
func (t *fakeHALTexture) CurrentUsage() gputypes.TextureUsage { return 0 }

// AddPendingRef implements hal.Texture.
func (t *fakeHALTexture) AddPendingRef() {}

// DecPendingRef implements hal.Texture.
func (t *fakeHALTexture) DecPendingRef() {}

var _ hal.Texture = (*fakeHALTexture)(nil)

// textureBinding records one SetTexture call.
type textureBinding struct {
	stage gles.ShaderStage
	slot  int
	tex   gles.Texture
}

// samplerBinding records one SetSamplerState call.
type samplerBinding struct {
	stage gles.ShaderStage
	slot  int
	tex   gles.Texture
	desc  hal.SamplerDescriptor
}

// fakeDevice is a scripted test double for backend.Device. It records the
// hook invocation order and arguments; individual hooks can be made to fail
// through the err* fields.
type fakeDevice struct {
	calls []string

	errRenderTarget  error
	errRasterizer    error
	errBlend         error
	errDepthStencil  error
	errShaders       error
	errSamplerState  error
	errSetTexture    error
	errIndexBuffer   error
	errVertexBuffers error
	errSwizzle       error
	errDrawArrays    error
	errDrawElements  error
	errCreateTexture error
	errWriteTexture  error

	primitiveTypeOK func(mode gles.Primitive, count int) bool

	lastRasterizer   backend.RasterizerState
	lastBlend        *gputypes.BlendState
	lastColorMask    gputypes.ColorWriteMask
	lastBlendColor   gputypes.Color
	lastSampleMask   uint32
	lastDepthStencil hal.DepthStencilState
	lastFrontRef     int
	lastBackRef      int
	lastFrontFaceCCW bool
	lastInputLayout  []gputypes.VertexFormat
	lastViewport     gles.Rectangle
	lastNearZ        float32
	lastFarZ         float32

	lastFirst     int
	lastCount     int
	lastInstances int

	textureBindings []textureBinding
	samplerBindings []samplerBinding
	swizzled        []gles.Texture

	created   []*fakeHALTexture
	destroyed int
	writes    int

	drawArraysCalls   int
	drawElementsCalls int
	tfApplies         int
}

func (d *fakeDevice) record(name string) { d.calls = append(d.calls, name) }

func (d *fakeDevice) Name() string    { return "fake" }
func (d *fakeDevice) Init() error     { return nil }
func (d *fakeDevice) Close()          {}
func (d *fakeDevice) Caps() gles.Caps { return gles.DefaultCaps() }

func (d *fakeDevice) ApplyPrimitiveType(mode gles.Primitive, count int) bool {
	d.record("ApplyPrimitiveType")
	if d.primitiveTypeOK != nil {
		return d.primitiveTypeOK(mode, count)
	}
	return true
}

func (d *fakeDevice) ApplyRenderTarget(gles.Framebuffer) error {
	d.record("ApplyRenderTarget")
	return d.errRenderTarget
}

func (d *fakeDevice) SetViewport(viewport gles.Rectangle, nearZ, farZ float32, _ gles.Primitive, _ gputypes.FrontFace, _ bool) {
	d.record("SetViewport")
	d.lastViewport = viewport
	d.lastNearZ = nearZ
	d.lastFarZ = farZ
}

func (d *fakeDevice) SetScissor(gles.Rectangle, bool) {
	d.record("SetScissor")
}

func (d *fakeDevice) SetRasterizerState(rs *backend.RasterizerState) error {
	d.record("SetRasterizerState")
	d.lastRasterizer = *rs
	return d.errRasterizer
}

func (d *fakeDevice) SetBlendState(_ gles.Framebuffer, blend *gputypes.BlendState, colorMask gputypes.ColorWriteMask, blendColor gputypes.Color, sampleMask uint32) error {
	d.record("SetBlendState")
	d.lastBlend = blend
	d.lastColorMask = colorMask
	d.lastBlendColor = blendColor
	d.lastSampleMask = sampleMask
	return d.errBlend
}

func (d *fakeDevice) SetDepthStencilState(ds *hal.DepthStencilState, frontRef, backRef int, frontFaceCCW bool) error {
	d.record("SetDepthStencilState")
	d.lastDepthStencil = *ds
	d.lastFrontRef = frontRef
	d.lastBackRef = backRef
	d.lastFrontFaceCCW = frontFaceCCW
	return d.errDepthStencil
}

func (d *fakeDevice) ApplyShaders(_ gles.Program, inputLayout []gputypes.VertexFormat, _ gles.Framebuffer, _, _ bool) error {
	d.record("ApplyShaders")
	d.lastInputLayout = inputLayout
	return d.errShaders
}

func (d *fakeDevice) SetSamplerState(stage gles.ShaderStage, slot int, tex gles.Texture, desc *hal.SamplerDescriptor) error {
	d.record("SetSamplerState")
	d.samplerBindings = append(d.samplerBindings, samplerBinding{stage: stage, slot: slot, tex: tex, desc: *desc})
	return d.errSamplerState
}

func (d *fakeDevice) SetTexture(stage gles.ShaderStage, slot int, tex gles.Texture) error {
	d.record("SetTexture")
	d.textureBindings = append(d.textureBindings, textureBinding{stage: stage, slot: slot, tex: tex})
	return d.errSetTexture
}

func (d *fakeDevice) ApplyIndexBuffer(_ []byte, _ gles.Buffer, _ int, _ gles.Primitive, _ gles.IndexType, _ *backend.TranslatedIndexData) error {
	d.record("ApplyIndexBuffer")
	return d.errIndexBuffer
}

func (d *fakeDevice) ApplyVertexBuffers(_ *gles.State, first, count, instances int) error {
	d.record("ApplyVertexBuffers")
	d.lastFirst = first
	d.lastCount = count
	d.lastInstances = instances
	return d.errVertexBuffers
}

func (d *fakeDevice) ApplyTransformFeedbackBuffers(*gles.State) {
	d.record("ApplyTransformFeedbackBuffers")
	d.tfApplies++
}

func (d *fakeDevice) GenerateSwizzle(tex gles.Texture) error {
	d.record("GenerateSwizzle")
	d.swizzled = append(d.swizzled, tex)
	return d.errSwizzle
}

func (d *fakeDevice) DrawArrays(gles.Primitive, int, int, bool) error {
	d.record("DrawArrays")
	d.drawArraysCalls++
	return d.errDrawArrays
}

func (d *fakeDevice) DrawElements(gles.Primitive, int, gles.IndexType, []byte, gles.Buffer, *backend.TranslatedIndexData, int) error {
	d.record("DrawElements")
	d.drawElementsCalls++
	return d.errDrawElements
}

func (d *fakeDevice) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	d.record("CreateTexture")
	if d.errCreateTexture != nil {
		return nil, d.errCreateTexture
	}
	tex := &fakeHALTexture{label: desc.Label}
	d.created = append(d.created, tex)
	return tex, nil
}

func (d *fakeDevice) WriteTexture(hal.Texture, int, *hal.ImageDataLayout, hal.Extent3D, []byte) error {
	d.record("WriteTexture")
	if d.errWriteTexture != nil {
		return d.errWriteTexture
	}
	d.writes++
	return nil
}

func (d *fakeDevice) DestroyTexture(tex hal.Texture) {
	d.record("DestroyTexture")
	d.destroyed++
	if ft, ok := tex.(*fakeHALTexture); ok {
		ft.destroyed++
	}
}

// drawCalls returns the total number of device draw invocations.
func (d *fakeDevice) drawCalls() int { return d.drawArraysCalls + d.drawElementsCalls }

// fakeTexture is a test double for gles.Texture.
type fakeTexture struct {
	kind     gles.TextureKind
	serial   uint32
	sampler  gles.SamplerState
	complete bool
}

func (t *fakeTexture) Kind() gles.TextureKind          { return t.kind }
func (t *fakeTexture) Serial() uint32                  { return t.serial }
func (t *fakeTexture) SamplerState() gles.SamplerState { return t.sampler }
func (t *fakeTexture) SamplerComplete(gles.SamplerState, *gles.Caps) bool {
	return t.complete
}

// fakeSampler is a test double for gles.Sampler.
type fakeSampler struct {
	sampler gles.SamplerState
}

func (s *fakeSampler) SamplerState() gles.SamplerState { return s.sampler }

// stageSamplers describes one stage's sampler slots for fakeProgram.
type stageSamplers struct {
	kinds    []gles.TextureKind
	mappings []int
}

// fakeProgram is a test double for gles.Program.
type fakeProgram struct {
	samplers      map[gles.ShaderStage]stageSamplers
	usesPointSize bool
	attributes    map[int]bool

	blockBindings []int

	uniformsErr       error
	uniformBuffersErr error

	updateMappingCalls int
	applyUniformsCalls int
	appliedBuffers     []gles.Buffer
}

func (p *fakeProgram) UpdateSamplerMapping() { p.updateMappingCalls++ }

func (p *fakeProgram) UsedSamplerRange(stage gles.ShaderStage) int {
	return len(p.samplers[stage].kinds)
}

func (p *fakeProgram) SamplerTextureKind(stage gles.ShaderStage, slot int) gles.TextureKind {
	return p.samplers[stage].kinds[slot]
}

func (p *fakeProgram) SamplerMapping(stage gles.ShaderStage, slot int, _ *gles.Caps) int {
	return p.samplers[stage].mappings[slot]
}

func (p *fakeProgram) UsesPointSize() bool { return p.usesPointSize }

func (p *fakeProgram) UsesAttribute(slot int) bool { return p.attributes[slot] }

func (p *fakeProgram) ActiveUniformBlockCount() int { return len(p.blockBindings) }

func (p *fakeProgram) UniformBlockBinding(block int) int { return p.blockBindings[block] }

func (p *fakeProgram) ApplyUniforms() error {
	p.applyUniformsCalls++
	return p.uniformsErr
}

func (p *fakeProgram) ApplyUniformBuffers(buffers []gles.Buffer, _ *gles.Caps) error {
	p.appliedBuffers = buffers
	return p.uniformBuffersErr
}

// fakeAttachment is a test double for gles.Attachment.
type fakeAttachment struct {
	isTexture bool
	tex       gles.Texture
}

func (a *fakeAttachment) IsTexture() bool       { return a.isTexture }
func (a *fakeAttachment) Texture() gles.Texture { return a.tex }

// fakeFramebuffer is a test double for gles.Framebuffer.
type fakeFramebuffer struct {
	complete     bool
	samples      int
	colors       map[int]gles.Attachment
	depthStencil gles.Attachment
}

func (f *fakeFramebuffer) Complete(*gles.Caps) bool { return f.complete }
func (f *fakeFramebuffer) Samples(*gles.Caps) int   { return f.samples }
func (f *fakeFramebuffer) ColorAttachment(i int) gles.Attachment {
	return f.colors[i]
}
func (f *fakeFramebuffer) DepthOrStencilAttachment() gles.Attachment {
	return f.depthStencil
}

// fakeBuffer is a test double for gles.Buffer.
type fakeBuffer struct {
	tfMarks int
}

func (b *fakeBuffer) MarkTransformFeedbackUsage() { b.tfMarks++ }

// fakeTransformFeedback is a test double for gles.TransformFeedback.
type fakeTransformFeedback struct {
	started bool
	paused  bool
}

func (t *fakeTransformFeedback) Started() bool { return t.started }
func (t *fakeTransformFeedback) Paused() bool  { return t.paused }

// fakeVertexArray is a test double for gles.VertexArray.
type fakeVertexArray struct {
	attribs       map[int]gles.VertexAttrib
	elementBuffer gles.Buffer
}

func (v *fakeVertexArray) Attribute(i int) gles.VertexAttrib { return v.attribs[i] }
func (v *fakeVertexArray) ElementArrayBuffer() gles.Buffer   { return v.elementBuffer }

// newTestState assembles a minimal valid state snapshot: an empty program,
// a complete single-sampled framebuffer, and bindings sized to the default
// capability limits.
func newTestState() (*gles.State, *fakeProgram, *fakeFramebuffer) {
	caps := gles.DefaultCaps()
	prog := &fakeProgram{
		samplers:   map[gles.ShaderStage]stageSamplers{},
		attributes: map[int]bool{},
	}
	fb := &fakeFramebuffer{complete: true, colors: map[int]gles.Attachment{}}
	state := &gles.State{
		Program:         prog,
		DrawFramebuffer: fb,
		VertexArray:     &fakeVertexArray{attribs: map[int]gles.VertexAttrib{}},
		Viewport:        gles.Rectangle{Width: 64, Height: 64},
		FarZ:            1,
		Blend: gles.BlendState{
			ColorMaskRed:   true,
			ColorMaskGreen: true,
			ColorMaskBlue:  true,
			ColorMaskAlpha: true,
		},
		TextureUnits:             make([]gles.TextureUnit, caps.MaxCombinedTextureImageUnits),
		Samplers:                 make([]gles.Sampler, caps.MaxCombinedTextureImageUnits),
		UniformBuffers:           make([]gles.Buffer, caps.MaxUniformBufferBindings),
		TransformFeedbackBuffers: make([]gles.Buffer, caps.MaxTransformFeedbackSeparateAttributes),
		Caps:                     &caps,
	}
	return state, prog, fb
}

// identitySampler returns sampling parameters with the identity swizzle,
// the default a frontend texture would carry.
func identitySampler() gles.SamplerState {
	return gles.SamplerState{
		SwizzleRed:   gles.SwizzleRed,
		SwizzleGreen: gles.SwizzleGreen,
		SwizzleBlue:  gles.SwizzleBlue,
		SwizzleAlpha: gles.SwizzleAlpha,
	}
}

// newTestRenderer pairs a renderer with its fake device.
func newTestRenderer() (*Renderer, *fakeDevice) {
	dev := &fakeDevice{}
	return New(dev), dev
}
