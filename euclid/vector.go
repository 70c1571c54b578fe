// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package euclid

import "math"

// Vector3 is a free vector in 3D space.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 builds a Vector3 from three components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v x w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a unit vector in the direction of v. If v has
// (near-)zero length, v is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l <= Eps {
		return v
	}
	return v.Scale(1.0 / l)
}

// IsZero reports whether v has length below tol.
func (v Vector3) IsZero(tol float64) bool {
	return v.Length() <= tol
}

// Parallel reports whether v and w are parallel (including anti-parallel)
// within tol, comparing the magnitude of their normalized cross product.
func (v Vector3) Parallel(w Vector3, tol float64) bool {
	if v.IsZero(tol) || w.IsZero(tol) {
		return true
	}
	return v.Normalize().Cross(w.Normalize()).Length() <= tol
}
