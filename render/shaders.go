package render

import (
	"github.com/gogpu/gles"
	"github.com/gogpu/gputypes"
)

// applyShaders derives the input layout, binds the program's shaders, and
// then pushes dirty uniform values, each exactly once per draw.
func (r *Renderer) applyShaders(state *gles.State, transformFeedbackActive bool) error {
	prog := state.Program

	layout := inputLayout(prog, state.VertexArray, state.Caps)

	fb := state.DrawFramebuffer
	if err := r.device.ApplyShaders(prog, layout, fb, state.Rasterizer.RasterizerDiscard, transformFeedbackActive); err != nil {
		return err
	}

	return prog.ApplyUniforms()
}

// inputLayout derives one device vertex format per supported attribute
// slot. Slots the program does not consume are undefined; consumed slots
// with the array disabled source the four-component generic attribute
// value instead of buffer data.
func inputLayout(prog gles.Program, va gles.VertexArray, caps *gles.Caps) []gputypes.VertexFormat {
	layout := make([]gputypes.VertexFormat, caps.MaxVertexAttributes)
	for i := range layout {
		if !prog.UsesAttribute(i) {
			layout[i] = gputypes.VertexFormatUndefined
			continue
		}
		attrib := va.Attribute(i)
		if !attrib.Enabled {
			layout[i] = gputypes.VertexFormatFloat32x4
			continue
		}
		layout[i] = translateVertexFormat(attrib)
	}
	return layout
}
