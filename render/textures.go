package render

import (
	"github.com/gogpu/gles"
)

// applyTextures binds a texture and sampler configuration for every sampler
// slot of both shader stages, vertex stage first. The framebuffer serial
// set is computed once and shared by both stages.
func (r *Renderer) applyTextures(state *gles.State) error {
	serials := boundFramebufferTextureSerials(state)

	if err := r.applyStageTextures(state, gles.StageVertex, &serials); err != nil {
		return err
	}
	return r.applyStageTextures(state, gles.StagePixel, &serials)
}

// applyStageTextures resolves each used sampler slot of one stage to either
// the bound texture (when it is safely sampleable) or the fallback texture
// of the declared dimensionality. Slots past the used range are explicitly
// unbound so stale bindings from a previous draw cannot persist.
func (r *Renderer) applyStageTextures(state *gles.State, stage gles.ShaderStage, serials *framebufferSerials) error {
	prog := state.Program

	samplerRange := prog.UsedSamplerRange(stage)
	for slot := 0; slot < samplerRange; slot++ {
		kind := prog.SamplerTextureKind(stage, slot)
		unit := prog.SamplerMapping(stage, slot, state.Caps)
		if unit == -1 {
			// The shader declares the slot but no texture unit is
			// mapped to it.
			if err := r.device.SetTexture(stage, slot, nil); err != nil {
				return err
			}
			continue
		}

		tex := state.SamplerTexture(unit, kind)
		if tex == nil {
			panic("render: mapped texture unit holds no texture")
		}

		sampler := tex.SamplerState()
		if obj := state.SamplerObject(unit); obj != nil {
			sampler = obj.SamplerState()
		}

		if tex.SamplerComplete(sampler, state.Caps) && !serials.contains(tex.Serial()) {
			desc := translateSamplerState(&sampler)
			if err := r.device.SetSamplerState(stage, slot, tex, &desc); err != nil {
				return err
			}
			if err := r.device.SetTexture(stage, slot, tex); err != nil {
				return err
			}
			continue
		}

		// The texture is not sampler complete, or sampling it would
		// read from the draw framebuffer. Bind the fallback texture
		// with its default sampling parameters.
		fallback, err := r.incompleteTextureFor(kind)
		if err != nil {
			return err
		}
		if err := r.device.SetTexture(stage, slot, fallback); err != nil {
			return err
		}
	}

	samplerCount := state.Caps.StageSamplerCount(stage)
	for slot := samplerRange; slot < samplerCount; slot++ {
		if err := r.device.SetTexture(stage, slot, nil); err != nil {
			return err
		}
	}

	return nil
}
