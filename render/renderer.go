// Package render implements the draw-call orchestration pipeline: it
// translates the frontend's implicit, mutable state into the explicit
// pipeline snapshot a [backend.Device] expects, phase by phase, and issues
// the device draw.
//
// Phase order per draw: swizzle preparation, render target/viewport,
// fixed-function state, (index translation for indexed draws), vertex
// preparation, shader and uniform binding, texture and sampler binding,
// uniform buffer binding, skip-draw check, device draw, transform-feedback
// usage marking. The first error aborts the remaining phases and is
// returned verbatim; state latched by earlier phases is not rolled back,
// matching the frontend API's own stateful contract.
//
// A Renderer is bound to one device context and performs no internal
// locking; callers sharing one across goroutines must serialize access.
package render

import (
	"github.com/gogpu/gles"
	"github.com/gogpu/gles/backend"
)

// Renderer drives a backend device through the per-draw phase sequence.
// The only state it owns beyond the device handle is the incomplete
// texture cache, which lives exactly as long as the renderer.
type Renderer struct {
	device backend.Device

	// incomplete maps dimensionality kind to the renderer's fallback
	// texture of that kind. Entries are created lazily on first use and
	// released in Close; they are never evicted or replaced in between.
	incomplete map[gles.TextureKind]*incompleteTexture
}

// New creates a renderer bound to the given device.
func New(device backend.Device) *Renderer {
	if device == nil {
		panic("render: device is nil")
	}
	return &Renderer{
		device:     device,
		incomplete: make(map[gles.TextureKind]*incompleteTexture),
	}
}

// Device returns the backend device the renderer drives.
func (r *Renderer) Device() backend.Device {
	return r.device
}

// Close releases the incomplete texture cache. Each entry's device resource
// is destroyed exactly once. The device itself belongs to the caller and is
// not closed here.
func (r *Renderer) Close() {
	for kind, tex := range r.incomplete {
		if tex.resource != nil {
			r.device.DestroyTexture(tex.resource)
			tex.resource = nil
		}
		delete(r.incomplete, kind)
	}
}
