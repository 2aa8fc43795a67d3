// Package gles models the mutable, globally-visible state of a GLES-style
// graphics API and translates it, one draw call at a time, into the explicit
// pipeline state a modern GPU backend expects.
//
// # Overview
//
// A GLES-style frontend accumulates implicit state: bound textures and
// samplers, the active program, the draw framebuffer, fixed-function
// rasterizer/blend/depth-stencil configuration, indexed buffer bindings.
// A backend device wants none of that ambiguity: it wants a fully-specified
// pipeline snapshot per draw. This module performs that reconciliation.
//
// The library is organized into:
//   - Root package: the frontend state snapshot ([State], [Caps]) and the
//     collaborator interfaces the pipeline consumes ([Program], [Texture],
//     [Framebuffer], [Buffer], [VertexArray], [Sampler]).
//   - backend: the [backend.Device] hook interface every concrete backend
//     implements, plus the named backend registry.
//   - render: the draw-call orchestrator with its state-synchronization
//     phases, incomplete-texture cache, and framebuffer feedback detector.
//
// # Quick Start
//
//	dev := backend.MustDefault()
//	r := render.New(dev)
//	defer r.Close()
//
//	// state is assembled by the frontend for each draw call.
//	if err := r.DrawArrays(state, gles.Triangles, 0, 36, 1); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// The pipeline assumes at most one active device context per goroutine and
// performs no internal locking. Callers
// sharing a renderer across goroutines must serialize access externally.
package gles

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
