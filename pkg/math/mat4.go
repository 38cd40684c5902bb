package math

// Mat4 is a column-major 4x4 affine transform; element (row, col) lives at
// index col*4+row, which is the layout GPU uniform uploads expect.
type Mat4 [16]float32

// Translate returns a transform that moves points by (x, y, z).
func Translate(x, y, z float32) Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	m[12], m[13], m[14] = x, y, z
	return m
}

// TransformPoint applies m to p with w = 1. The bottom row is assumed to be
// (0, 0, 0, 1).
func (m Mat4) TransformPoint(p [3]float32) [3]float32 {
	out := m.TransformDirection(p)
	for r := range out {
		out[r] += m[12+r]
	}
	return out
}

// TransformDirection applies the linear part of m to d.
func (m Mat4) TransformDirection(d [3]float32) [3]float32 {
	var out [3]float32
	for r := range out {
		out[r] = m[r]*d[0] + m[4+r]*d[1] + m[8+r]*d[2]
	}
	return out
}
