package types

// A row-major 3x3 matrix.
type Mat3 [9]float32

// Create a 3x3 identity matrix.
func Ident3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Calculate the outer product of two vectors.
func Outer3(a, b Vec3) Mat3 {
	return Mat3{
		a[0] * b[0], a[0] * b[1], a[0] * b[2],
		a[1] * b[0], a[1] * b[1], a[1] * b[2],
		a[2] * b[0], a[2] * b[1], a[2] * b[2],
	}
}

// Add a matrix.
func (m Mat3) Add(m2 Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] + m2[i]
	}
	return out
}

// Multiply all matrix elements with a scalar.
func (m Mat3) Scale(s float32) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Transpose the matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Multiply matrix with a column vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Multiply two matrices.
func (m Mat3) Mul(m2 Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3]*m2[c] + m[r*3+1]*m2[3+c] + m[r*3+2]*m2[6+c]
		}
	}
	return out
}

// Invert the matrix via its adjugate. The second return value is false when
// the matrix is singular.
func (m Mat3) Inverse() (Mat3, bool) {
	c00 := m[4]*m[8] - m[5]*m[7]
	c01 := m[5]*m[6] - m[3]*m[8]
	c02 := m[3]*m[7] - m[4]*m[6]

	det := m[0]*c00 + m[1]*c01 + m[2]*c02
	if det > -floatCmpEpsilon && det < floatCmpEpsilon {
		return Mat3{}, false
	}

	inv := 1.0 / det
	return Mat3{
		c00 * inv, (m[2]*m[7] - m[1]*m[8]) * inv, (m[1]*m[5] - m[2]*m[4]) * inv,
		c01 * inv, (m[0]*m[8] - m[2]*m[6]) * inv, (m[2]*m[3] - m[0]*m[5]) * inv,
		c02 * inv, (m[1]*m[6] - m[0]*m[7]) * inv, (m[0]*m[4] - m[1]*m[3]) * inv,
	}, true
}

// A row-major 3x4 rigid transform. Columns 0-2 hold the rotation basis vectors
// and column 3 the translation. Camera-to-world poses use the right/up/back
// basis convention.
type Mat34 [12]float32

// Create a 3x4 identity transform.
func Ident34() Mat34 {
	return Mat34{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
}

// Assemble a transform from its four columns.
func ColMajor34(x, y, z, t Vec3) Mat34 {
	return Mat34{
		x[0], y[0], z[0], t[0],
		x[1], y[1], z[1], t[1],
		x[2], y[2], z[2], t[2],
	}
}

// Build a camera-to-world transform whose view axis points along z, with the
// X axis orthogonal to both z and up.
func ViewMatrix(z, up, pos Vec3) Mat34 {
	vz := z.Normalize()
	vx := up.Cross(vz).Normalize()
	vy := vz.Cross(vx).Normalize()
	return ColMajor34(vx, vy, vz, pos)
}

// Get matrix column as a vector.
func (m Mat34) Col(col int) Vec3 {
	return Vec3{m[col], m[4+col], m[8+col]}
}

// Replace a matrix column.
func (m Mat34) SetCol(col int, v Vec3) Mat34 {
	m[col], m[4+col], m[8+col] = v[0], v[1], v[2]
	return m
}

// Extract the rotation block.
func (m Mat34) Rot() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Get the translation column.
func (m Mat34) Trans() Vec3 {
	return m.Col(3)
}

// Apply the transform to a point.
func (m Mat34) TransformPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// Apply only the rotation block to a direction.
func (m Mat34) TransformDir(v Vec3) Vec3 {
	return m.Rot().MulVec(v)
}

// Invert a rigid transform. Only valid when the rotation block is orthonormal.
func (m Mat34) RigidInverse() Mat34 {
	rt := m.Rot().Transpose()
	t := rt.MulVec(m.Trans()).Mul(-1)
	return Mat34{
		rt[0], rt[1], rt[2], t[0],
		rt[3], rt[4], rt[5], t[1],
		rt[6], rt[7], rt[8], t[2],
	}
}

// Compose two transforms, treating both as 4x4 matrices with an implicit
// (0, 0, 0, 1) bottom row.
func (m Mat34) Compose(m2 Mat34) Mat34 {
	r := m.Rot().Mul(m2.Rot())
	t := m.TransformPoint(m2.Trans())
	return Mat34{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
	}
}
