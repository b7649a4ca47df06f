package renderer

import (
	"encoding/binary"
	gomath "math"

	"pathview/math"
)

// Sizes of the encoded uniform blocks. Both follow std140 rules: vec3 members
// take 16 bytes unless a scalar fills the fourth slot, and the block size is
// rounded up to a multiple of 16.
const (
	CameraRecordSize = 64
	SystemRecordSize = 32
)

// CameraRecord is the per-view uniform block consumed by the accumulate
// program.
type CameraRecord struct {
	Location  math.Vec3
	Direction math.Vec3
	Right     math.Vec3
	Up        math.Vec3
	Near      float32

	// Image plane half-extents: extent / min(width, height).
	ProjectionExtent math.Vec2
}

// SystemRecord is the per-frame uniform block shared by both programs.
type SystemRecord struct {
	Resolution math.Vec2
	Time       float32
	FrameIndex uint32
	TexelSize  math.Vec2
}

// NewSystemRecord fills a system record for a target of the given extent.
func NewSystemRecord(extent math.Extent2, time float32, frameIndex uint32) SystemRecord {
	return SystemRecord{
		Resolution: extent.Vec2(),
		Time:       time,
		FrameIndex: frameIndex,
		TexelSize:  extent.TexelSize(),
	}
}

type recordWriter struct {
	buf []byte
	off int
}

func (w *recordWriter) f32(v float32) {
	binary.LittleEndian.PutUint32(w.buf[w.off:], gomath.Float32bits(v))
	w.off += 4
}

func (w *recordWriter) u32(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[w.off:], v)
	w.off += 4
}

func (w *recordWriter) vec2(v math.Vec2) {
	w.f32(v.X)
	w.f32(v.Y)
}

func (w *recordWriter) vec3(v math.Vec3) {
	w.f32(v.X)
	w.f32(v.Y)
	w.f32(v.Z)
}

// EncodeCamera serializes rec as:
//
//	offset  0  location.xyz   pad
//	offset 16  direction.xyz  near
//	offset 32  right.xyz      projection.x
//	offset 48  up.xyz         projection.y
func EncodeCamera(rec CameraRecord) []byte {
	w := recordWriter{buf: make([]byte, CameraRecordSize)}
	w.vec3(rec.Location)
	w.f32(0)
	w.vec3(rec.Direction)
	w.f32(rec.Near)
	w.vec3(rec.Right)
	w.f32(rec.ProjectionExtent.X)
	w.vec3(rec.Up)
	w.f32(rec.ProjectionExtent.Y)
	return w.buf
}

// EncodeSystem serializes rec as:
//
//	offset  0  resolution.xy  time  frameIndex
//	offset 16  texel.xy       (8 bytes zero)
func EncodeSystem(rec SystemRecord) []byte {
	w := recordWriter{buf: make([]byte, SystemRecordSize)}
	w.vec2(rec.Resolution)
	w.f32(rec.Time)
	w.u32(rec.FrameIndex)
	w.vec2(rec.TexelSize)
	return w.buf
}
