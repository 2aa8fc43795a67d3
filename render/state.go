package render

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/gles"
)

// applyRenderTarget binds the draw framebuffer's target surfaces, then
// applies the viewport (computed from the clamped depth range, primitive
// mode, and winding) and the scissor rectangle.
//
// The draw framebuffer must be complete; upstream validation guarantees it.
func (r *Renderer) applyRenderTarget(state *gles.State, mode gles.Primitive, ignoreViewport bool) error {
	fb := state.DrawFramebuffer
	if fb == nil || !fb.Complete(state.Caps) {
		panic("render: draw framebuffer is missing or incomplete")
	}

	if err := r.device.ApplyRenderTarget(fb); err != nil {
		return err
	}

	nearZ := math32.Min(math32.Max(state.NearZ, 0), 1)
	farZ := math32.Min(math32.Max(state.FarZ, 0), 1)
	r.device.SetViewport(state.Viewport, nearZ, farZ, mode,
		translateWinding(state.Rasterizer.FrontFace), ignoreViewport)

	r.device.SetScissor(state.Scissor, state.ScissorTest)

	return nil
}

// applyState translates and latches the fixed-function state: rasterizer,
// blend (with the multisample coverage mask), and depth/stencil.
func (r *Renderer) applyState(state *gles.State, mode gles.Primitive) error {
	fb := state.DrawFramebuffer
	samples := fb.Samples(state.Caps)

	rasterizer := translateRasterizerState(&state.Rasterizer)
	rasterizer.PointDrawMode = mode == gles.Points
	rasterizer.Multisample = samples != 0

	if err := r.device.SetRasterizerState(&rasterizer); err != nil {
		return err
	}

	mask := ^uint32(0)
	if state.SampleCoverage {
		mask = coverageMask(samples, state.SampleCoverageValue, state.SampleCoverageInvert)
	}

	blend, colorMask := translateBlendState(&state.Blend)
	if err := r.device.SetBlendState(fb, blend, colorMask, translateColor(state.BlendColor), mask); err != nil {
		return err
	}

	depthStencil := translateDepthStencilState(&state.DepthStencil)
	return r.device.SetDepthStencilState(&depthStencil,
		state.StencilRef, state.StencilBackRef,
		state.Rasterizer.FrontFace == gles.WindingCCW)
}

// coverageMask derives the multisample coverage mask from the sample count
// and the coverage parameters. One bit is set per covered sample, spread
// evenly across the sample positions: the threshold starts at one half and
// advances by one whole sample each time the accumulated coverage crosses
// it. A zero coverage value covers nothing; invert complements the result.
func coverageMask(samples int, coverage float32, invert bool) uint32 {
	var mask uint32
	if coverage != 0 {
		threshold := float32(0.5)
		for i := 0; i < samples; i++ {
			mask <<= 1

			if float32(i+1)*coverage >= threshold {
				threshold += 1.0
				mask |= 1
			}
		}
	}

	if invert {
		mask = ^mask
	}
	return mask
}
