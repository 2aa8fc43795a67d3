package render

import (
	"fmt"

	"github.com/gogpu/gles"
)

// applyUniformBuffers resolves every active uniform block to the buffer
// bound at its binding point and hands the complete, block-ordered list to
// the program in one call.
//
// A used block whose binding point has no buffer bound is undefined
// behaviour at the API level; the draw fails with
// [gles.ErrInvalidOperation] before any device binding happens.
func (r *Renderer) applyUniformBuffers(state *gles.State) error {
	prog := state.Program

	blockCount := prog.ActiveUniformBlockCount()
	boundBuffers := make([]gles.Buffer, 0, blockCount)

	for block := 0; block < blockCount; block++ {
		binding := prog.UniformBlockBinding(block)
		buffer := state.IndexedUniformBuffer(binding)
		if buffer == nil {
			return fmt.Errorf("%w: it is undefined behaviour to have a used but unbound uniform buffer (block %d, binding point %d)",
				gles.ErrInvalidOperation, block, binding)
		}
		boundBuffers = append(boundBuffers, buffer)
	}

	return prog.ApplyUniformBuffers(boundBuffers, state.Caps)
}
