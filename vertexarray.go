package gles

// VertexArray is the interface a frontend vertex array object presents to
// the draw pipeline.
type VertexArray interface {
	// Attribute returns the configuration of a vertex attribute slot.
	Attribute(i int) VertexAttrib

	// ElementArrayBuffer returns the bound index buffer, or nil when
	// index data is sourced from client memory.
	ElementArrayBuffer() Buffer
}
