// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package euclid implements small 3D Euclidean primitives: points, vectors
// and planes, with tolerance-based equality and containment tests. It plays
// the role the teacher's gosl/gm geometry package plays for spatial binning
// and point/vector arithmetic.
package euclid

import "math"

// Eps is the default tolerance used by on-plane / on-line / equality tests,
// relative to machine epsilon for float64.
const Eps = 1.0e-13

// Point3 is a point in 3D space.
type Point3 struct {
	X, Y, Z float64
}

// NewPoint3 builds a Point3 from three coordinates.
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Sub returns the vector from q to p (p - q).
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Add returns the point translated by v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Scale returns p scaled about the origin by s.
func (p Point3) Scale(s float64) Point3 {
	return Point3{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Mean returns the arithmetic mean (centroid) of pts.
func Mean(pts ...Point3) Point3 {
	var sx, sy, sz float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
		sz += p.Z
	}
	n := float64(len(pts))
	return Point3{X: sx / n, Y: sy / n, Z: sz / n}
}

// Distance returns the Euclidean distance between p and q.
func (p Point3) Distance(q Point3) float64 {
	return p.Sub(q).Length()
}

// Equals reports whether p and q are equal within tol (absolute,
// component-wise).
func (p Point3) Equals(q Point3, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol && math.Abs(p.Z-q.Z) <= tol
}
