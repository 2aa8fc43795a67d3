package render

import (
	"testing"

	"github.com/gogpu/gles"
	"github.com/gogpu/gputypes"
)

func TestInputLayout(t *testing.T) {
	caps := gles.DefaultCaps()
	prog := &fakeProgram{attributes: map[int]bool{0: true, 1: true, 2: true}}
	va := &fakeVertexArray{attribs: map[int]gles.VertexAttrib{
		0: {Enabled: true, Size: 3, Type: gles.AttribFloat},
		1: {Enabled: false},
		2: {Enabled: true, Size: 2, Type: gles.AttribShort, Normalized: true},
	}}

	layout := inputLayout(prog, va, &caps)

	if len(layout) != caps.MaxVertexAttributes {
		t.Fatalf("layout length = %d, want %d", len(layout), caps.MaxVertexAttributes)
	}
	if layout[0] != gputypes.VertexFormatFloat32x3 {
		t.Errorf("slot 0 = %v, want %v", layout[0], gputypes.VertexFormatFloat32x3)
	}
	if layout[1] != gputypes.VertexFormatFloat32x4 {
		t.Errorf("slot 1 = %v, want %v for a disabled array", layout[1], gputypes.VertexFormatFloat32x4)
	}
	if layout[2] != gputypes.VertexFormatSnorm16x2 {
		t.Errorf("slot 2 = %v, want %v", layout[2], gputypes.VertexFormatSnorm16x2)
	}
	if layout[3] != gputypes.VertexFormatUndefined {
		t.Errorf("slot 3 = %v, want undefined for an unused attribute", layout[3])
	}
}

func TestApplyShadersPassesLayoutAndFlags(t *testing.T) {
	r, dev := newTestRenderer()
	state, prog, _ := newTestState()
	prog.attributes[0] = true
	state.Rasterizer.RasterizerDiscard = true

	if err := r.applyShaders(state, true); err != nil {
		t.Fatalf("applyShaders() = %v, want nil", err)
	}
	if len(dev.lastInputLayout) != state.Caps.MaxVertexAttributes {
		t.Errorf("input layout length = %d, want %d", len(dev.lastInputLayout), state.Caps.MaxVertexAttributes)
	}
	if dev.lastInputLayout[0] != gputypes.VertexFormatFloat32x4 {
		t.Errorf("slot 0 = %v, want %v", dev.lastInputLayout[0], gputypes.VertexFormatFloat32x4)
	}
	if prog.applyUniformsCalls != 1 {
		t.Errorf("ApplyUniforms calls = %d, want 1", prog.applyUniformsCalls)
	}
}
