package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Uniform block binding points shared by every program.
const (
	cameraBinding = 0
	systemBinding = 1
)

type uniformBuffer struct {
	id      uint32
	size    int
	binding uint32
}

func newUniformBuffer(binding uint32, size int) *uniformBuffer {
	ub := &uniformBuffer{size: size, binding: binding}
	gl.GenBuffers(1, &ub.id)
	gl.BindBuffer(gl.UNIFORM_BUFFER, ub.id)
	gl.BufferData(gl.UNIFORM_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, ub.id)
	return ub
}

// write replaces the start of the buffer with data. Extra bytes are dropped.
func (ub *uniformBuffer) write(data []byte) {
	n := len(data)
	if n > ub.size {
		n = ub.size
	}
	if n == 0 {
		return
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, ub.id)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, n, gl.Ptr(data))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (ub *uniformBuffer) destroy() {
	if ub.id != 0 {
		gl.DeleteBuffers(1, &ub.id)
		ub.id = 0
	}
}
