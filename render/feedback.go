package render

import (
	"slices"

	"github.com/gogpu/gles"
)

// implementationMaxDrawBuffers caps the color attachment slots the feedback
// detector scans. It bounds the serial array independently of the
// per-context limit, which can never exceed it.
const implementationMaxDrawBuffers = 8

// framebufferSerials is the sorted set of texture serials attached to the
// draw framebuffer: color attachments in slot order, then depth/stencil.
// Only texture-backed attachments contribute. Rebuilt once per draw and
// used for membership tests during texture binding; a hit means sampling
// the texture would create a framebuffer feedback loop.
type framebufferSerials struct {
	serials [implementationMaxDrawBuffers + 1]uint32
	count   int
}

// boundFramebufferTextureSerials collects and sorts the attachment serials
// of the draw framebuffer.
func boundFramebufferTextureSerials(state *gles.State) framebufferSerials {
	var fs framebufferSerials

	fb := state.DrawFramebuffer
	for i := 0; i < implementationMaxDrawBuffers; i++ {
		if att := fb.ColorAttachment(i); att != nil && att.IsTexture() {
			fs.serials[fs.count] = att.Texture().Serial()
			fs.count++
		}
	}

	if att := fb.DepthOrStencilAttachment(); att != nil && att.IsTexture() {
		fs.serials[fs.count] = att.Texture().Serial()
		fs.count++
	}

	slices.Sort(fs.serials[:fs.count])

	return fs
}

// contains reports whether a serial is in the set, by binary search.
func (fs *framebufferSerials) contains(serial uint32) bool {
	_, found := slices.BinarySearch(fs.serials[:fs.count], serial)
	return found
}
