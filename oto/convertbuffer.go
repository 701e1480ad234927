package oto

import (
	"encoding/binary"
	"math"
)

const bytesPerFrame = 2 * 4 // stereo float32

// FramesToFloat32LE appends stereo frames to dst as interleaved float32
// little-endian values, clamped to [-1, 1]. If dst has enough capacity, no
// allocation happens.
func FramesToFloat32LE(dst []byte, frames [][2]float64) []byte {
	for _, f := range frames {
		for _, v := range f {
			dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(clamp(v))))
		}
	}
	return dst
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
