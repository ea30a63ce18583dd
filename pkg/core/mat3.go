package core

import "math"

// Mat3 represents a 3x3 matrix stored in row-major order
type Mat3 [3][3]float64

// IdentityMat3 returns the identity matrix
func IdentityMat3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// MultiplyVec3 applies the matrix to a vector
func (m Mat3) MultiplyVec3(v Vec3) Vec3 {
	return Vec3{
		X: v.X*m[0][0] + v.Y*m[0][1] + v.Z*m[0][2],
		Y: v.X*m[1][0] + v.Y*m[1][1] + v.Z*m[1][2],
		Z: v.X*m[2][0] + v.Y*m[2][1] + v.Z*m[2][2],
	}
}

// MultiplyMat3 returns the matrix product m * other
func (m Mat3) MultiplyMat3(other Mat3) Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return result
}

// Scale returns the matrix with every element scaled
func (m Mat3) Scale(scalar float64) Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = scalar * m[i][j]
		}
	}
	return result
}

// addMat3 returns the element-wise sum of two matrices
func (m Mat3) addMat3(other Mat3) Mat3 {
	var result Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i][j] = m[i][j] + other[i][j]
		}
	}
	return result
}

// RotationBetween builds the rotation matrix that transforms unit vector
// `from` into unit vector `to`, using Rodrigues' rotation formula. Cameras
// and oriented planes use it to derive their local axes from a look
// direction or a surface normal.
func RotationBetween(from, to Vec3) Mat3 {
	f := from.Normalize()
	t := to.Normalize()
	axis := f.Cross(t)
	sinAngle := axis.Length()
	cosAngle := f.Dot(t)

	// Parallel vectors need no rotation
	if sinAngle < 1e-12 {
		if cosAngle > 0 {
			return IdentityMat3()
		}
		// Opposite vectors: rotate half a turn around any axis orthogonal to `from`
		var ortho Vec3
		if math.Abs(f.X) < 0.9 {
			ortho = NewVec3(1, 0, 0)
		} else {
			ortho = NewVec3(0, 1, 0)
		}
		axis = f.Cross(ortho).Normalize()
		k := skewSymmetric(axis)
		return IdentityMat3().addMat3(k.MultiplyMat3(k).Scale(2))
	}

	axis = axis.Multiply(1 / sinAngle)
	k := skewSymmetric(axis)
	// R = I + sin(θ)K + (1-cos(θ))K²
	return IdentityMat3().
		addMat3(k.Scale(sinAngle)).
		addMat3(k.MultiplyMat3(k).Scale(1 - cosAngle))
}

// skewSymmetric returns the cross-product matrix of a vector
func skewSymmetric(v Vec3) Mat3 {
	return Mat3{
		{0, -v.Z, v.Y},
		{v.Z, 0, -v.X},
		{-v.Y, v.X, 0},
	}
}
