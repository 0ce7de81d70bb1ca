package core

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

func (m Mat3) Add(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] + o[i][j]
		}
	}
	return r
}

func (m Mat3) Scale(f float64) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] * f
		}
	}
	return r
}

func (m Mat3) Trace() float64 {
	return m[0][0] + m[1][1] + m[2][2]
}

func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the matrix inverse computed from the adjugate. A singular
// matrix yields non-finite entries; callers that cannot tolerate that must
// check Det first.
func (m Mat3) Inverse() Mat3 {
	inv := 1.0 / m.Det()
	var r Mat3
	r[0][0] = inv * (m[1][1]*m[2][2] - m[1][2]*m[2][1])
	r[0][1] = inv * (m[0][2]*m[2][1] - m[0][1]*m[2][2])
	r[0][2] = inv * (m[0][1]*m[1][2] - m[0][2]*m[1][1])
	r[1][0] = inv * (m[1][2]*m[2][0] - m[1][0]*m[2][2])
	r[1][1] = inv * (m[0][0]*m[2][2] - m[0][2]*m[2][0])
	r[1][2] = inv * (m[0][2]*m[1][0] - m[0][0]*m[1][2])
	r[2][0] = inv * (m[1][0]*m[2][1] - m[1][1]*m[2][0])
	r[2][1] = inv * (m[0][1]*m[2][0] - m[0][0]*m[2][1])
	r[2][2] = inv * (m[0][0]*m[1][1] - m[0][1]*m[1][0])
	return r
}
