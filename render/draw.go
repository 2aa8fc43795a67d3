package render

import (
	"github.com/gogpu/gles"
	"github.com/gogpu/gles/backend"
)

// DrawArrays translates the frontend state snapshot and issues a
// non-indexed draw of count vertices starting at first.
//
// A program must be active in state; upstream validation guarantees this,
// so a nil program is a fatal programming error. The first phase error
// aborts the call and is returned verbatim; device state latched by earlier
// phases stays applied.
func (r *Renderer) DrawArrays(state *gles.State, mode gles.Primitive, first, count, instances int) error {
	prog := state.Program
	if prog == nil {
		panic("render: draw without an active program")
	}
	prog.UpdateSamplerMapping()

	if err := r.generateSwizzles(state); err != nil {
		return err
	}

	if !r.device.ApplyPrimitiveType(mode, count) {
		return nil
	}

	if err := r.applyRenderTarget(state, mode, false); err != nil {
		return err
	}

	if err := r.applyState(state, mode); err != nil {
		return err
	}

	if err := r.device.ApplyVertexBuffers(state, first, count, instances); err != nil {
		return err
	}

	transformFeedbackActive := r.applyTransformFeedbackBuffers(state)

	if err := r.applyShaders(state, transformFeedbackActive); err != nil {
		return err
	}

	if err := r.applyTextures(state); err != nil {
		return err
	}

	if err := r.applyUniformBuffers(state); err != nil {
		return err
	}

	if r.skipDraw(state, mode) {
		return nil
	}

	if err := r.device.DrawArrays(mode, count, instances, transformFeedbackActive); err != nil {
		return err
	}

	if transformFeedbackActive {
		r.markTransformFeedbackUsage(state)
	}

	return nil
}

// DrawElements translates the frontend state snapshot and issues an indexed
// draw. indexRange is the precomputed closed range of index values the draw
// references; the vertex range prepared for the draw is derived from it.
//
// Transform feedback must not be active and unpaused: indexed draws with
// active feedback are rejected by upstream validation, so encountering one
// here is a fatal programming error.
func (r *Renderer) DrawElements(state *gles.State, mode gles.Primitive, count int, typ gles.IndexType, indices []byte, instances int, indexRange gles.IndexRange) error {
	prog := state.Program
	if prog == nil {
		panic("render: draw without an active program")
	}
	prog.UpdateSamplerMapping()

	if err := r.generateSwizzles(state); err != nil {
		return err
	}

	if !r.device.ApplyPrimitiveType(mode, count) {
		return nil
	}

	if err := r.applyRenderTarget(state, mode, false); err != nil {
		return err
	}

	if err := r.applyState(state, mode); err != nil {
		return err
	}

	elementBuffer := state.VertexArray.ElementArrayBuffer()
	indexInfo := backend.TranslatedIndexData{IndexRange: indexRange}
	if err := r.device.ApplyIndexBuffer(indices, elementBuffer, count, mode, typ, &indexInfo); err != nil {
		return err
	}

	vertexCount := int(indexInfo.IndexRange.Length()) + 1
	if err := r.device.ApplyVertexBuffers(state, int(indexInfo.IndexRange.Start), vertexCount, instances); err != nil {
		return err
	}

	if r.applyTransformFeedbackBuffers(state) {
		panic("render: transform feedback active during an indexed draw")
	}

	if err := r.applyShaders(state, false); err != nil {
		return err
	}

	if err := r.applyTextures(state); err != nil {
		return err
	}

	if err := r.applyUniformBuffers(state); err != nil {
		return err
	}

	if r.skipDraw(state, mode) {
		return nil
	}

	return r.device.DrawElements(mode, count, typ, indices, elementBuffer, &indexInfo, instances)
}

// generateSwizzles regenerates swizzled representations for every bound
// texture whose sampling state requires swizzling, vertex stage first.
// Already-regenerated swizzles are left alone, so a retried draw repeats
// this safely.
func (r *Renderer) generateSwizzles(state *gles.State) error {
	if err := r.generateStageSwizzles(state, gles.StageVertex); err != nil {
		return err
	}
	return r.generateStageSwizzles(state, gles.StagePixel)
}

func (r *Renderer) generateStageSwizzles(state *gles.State, stage gles.ShaderStage) error {
	prog := state.Program
	samplerRange := prog.UsedSamplerRange(stage)
	for slot := 0; slot < samplerRange; slot++ {
		unit := prog.SamplerMapping(stage, slot, state.Caps)
		if unit == -1 {
			continue
		}
		tex := state.SamplerTexture(unit, prog.SamplerTextureKind(stage, slot))
		if tex == nil {
			panic("render: mapped texture unit holds no texture")
		}
		sampler := tex.SamplerState()
		if sampler.SwizzleRequired() {
			if err := r.device.GenerateSwizzle(tex); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyTransformFeedbackBuffers binds the indexed transform-feedback
// buffers when feedback is active (started and not paused) and reports
// whether it was.
func (r *Renderer) applyTransformFeedbackBuffers(state *gles.State) bool {
	tf := state.TransformFeedback
	if tf != nil && tf.Started() && !tf.Paused() {
		r.device.ApplyTransformFeedbackBuffers(state)
		return true
	}
	return false
}

// skipDraw decides whether the device draw is issued at all. All state
// application phases run regardless; only the draw itself is omitted.
func (r *Renderer) skipDraw(state *gles.State, mode gles.Primitive) bool {
	if mode == gles.Points {
		// The value of the point size output is undefined when the
		// program never writes it, and varying interpolation differs
		// between point and non-point rendering. Skip the draw rather
		// than produce unexpected results.
		if !state.Program.UsesPointSize() {
			gles.Logger().Warn("gles: point rendering without writing to the point size output")
			return true
		}
	} else if mode.IsTriangleMode() {
		rs := &state.Rasterizer
		if rs.CullFace && rs.CullMode == gles.CullFrontAndBack {
			return true
		}
	}
	return false
}

// markTransformFeedbackUsage marks every indexed transform-feedback buffer
// slot with a bound buffer as written by feedback. Runs only after a
// non-skipped, successful non-indexed draw.
func (r *Renderer) markTransformFeedbackUsage(state *gles.State) {
	for i := 0; i < state.Caps.MaxTransformFeedbackSeparateAttributes; i++ {
		if buf := state.IndexedTransformFeedbackBuffer(i); buf != nil {
			buf.MarkTransformFeedbackUsage()
		}
	}
}
