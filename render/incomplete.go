package render

import (
	"github.com/gogpu/gles"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// incompleteTextureSerial is the reserved serial shared by all fallback
// textures. User-visible texture serials start at 1.
const incompleteTextureSerial = 0

// incompleteTexture is a renderer-owned fallback texture: a single-level,
// 1x1-per-face, fully-opaque black texture substituted when a frontend
// binding cannot be sampled safely.
type incompleteTexture struct {
	kind     gles.TextureKind
	resource hal.Texture
}

// Kind returns the texture's dimensionality.
func (t *incompleteTexture) Kind() gles.TextureKind { return t.kind }

// Serial returns the reserved fallback serial.
func (t *incompleteTexture) Serial() uint32 { return incompleteTextureSerial }

// SamplerState returns default sampling parameters: nearest filtering,
// edge clamping, identity swizzle.
func (t *incompleteTexture) SamplerState() gles.SamplerState {
	return gles.SamplerState{
		MinFilter:    gles.FilterNearest,
		MagFilter:    gles.FilterNearest,
		WrapS:        gles.WrapClampToEdge,
		WrapT:        gles.WrapClampToEdge,
		WrapR:        gles.WrapClampToEdge,
		SwizzleRed:   gles.SwizzleRed,
		SwizzleGreen: gles.SwizzleGreen,
		SwizzleBlue:  gles.SwizzleBlue,
		SwizzleAlpha: gles.SwizzleAlpha,
	}
}

// SamplerComplete always reports true: the fallback is complete by
// construction.
func (t *incompleteTexture) SamplerComplete(gles.SamplerState, *gles.Caps) bool { return true }

// incompleteTexture returns the cached fallback texture for a
// dimensionality kind, creating it on first use. Entries are never mutated
// after creation and live until Close.
func (r *Renderer) incompleteTextureFor(kind gles.TextureKind) (*incompleteTexture, error) {
	if tex, ok := r.incomplete[kind]; ok {
		return tex, nil
	}

	layers := 1
	dimension := gputypes.TextureDimension2D
	switch kind {
	case gles.TextureCubeMap:
		layers = 6
	case gles.Texture3D:
		dimension = gputypes.TextureDimension3D
	}

	resource, err := r.device.CreateTexture(&hal.TextureDescriptor{
		Label: "gles_incomplete_" + kind.String(),
		Size: hal.Extent3D{
			Width:              1,
			Height:             1,
			DepthOrArrayLayers: uint32(layers),
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     dimension,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}

	// Opaque black, one pixel per face, tightly packed single row.
	black := []byte{0x00, 0x00, 0x00, 0xFF}
	layout := hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  4,
		RowsPerImage: 1,
	}
	extent := hal.Extent3D{Width: 1, Height: 1, DepthOrArrayLayers: 1}
	for layer := 0; layer < layers; layer++ {
		if err := r.device.WriteTexture(resource, layer, &layout, extent, black); err != nil {
			r.device.DestroyTexture(resource)
			return nil, err
		}
	}

	tex := &incompleteTexture{kind: kind, resource: resource}
	r.incomplete[kind] = tex
	return tex, nil
}
