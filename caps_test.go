package gles

import "testing"

func TestDefaultCaps(t *testing.T) {
	caps := DefaultCaps()
	if caps.MaxDrawBuffers < 4 {
		t.Errorf("MaxDrawBuffers = %d, want at least 4", caps.MaxDrawBuffers)
	}
	if caps.MaxVertexAttributes < 16 {
		t.Errorf("MaxVertexAttributes = %d, want at least 16", caps.MaxVertexAttributes)
	}
	if caps.MaxCombinedTextureImageUnits < caps.MaxTextureImageUnits {
		t.Errorf("MaxCombinedTextureImageUnits = %d, want at least MaxTextureImageUnits (%d)",
			caps.MaxCombinedTextureImageUnits, caps.MaxTextureImageUnits)
	}
}

func TestStageSamplerCount(t *testing.T) {
	caps := Caps{
		MaxTextureImageUnits:       16,
		MaxVertexTextureImageUnits: 8,
	}
	if got := caps.StageSamplerCount(StageVertex); got != 8 {
		t.Errorf("StageSamplerCount(vertex) = %d, want 8", got)
	}
	if got := caps.StageSamplerCount(StagePixel); got != 16 {
		t.Errorf("StageSamplerCount(pixel) = %d, want 16", got)
	}
}
