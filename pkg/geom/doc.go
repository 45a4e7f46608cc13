// Package geom implements the vector, quaternion, matrix and affine
// transform algebra used to place products in space.
//
// Vectors are generic over any Scalar, so a Vector3[unit.Length] holds
// positions and a Vector3[number.Number] holds directions. Matrices and
// quaternions are always unitless. Matrices are column-major: each axis
// field is a column, and vectors are multiplied on the right (M·v).
package geom
