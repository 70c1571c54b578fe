// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
)

// Triangle3D is a triangle embedded in 3D space.
type Triangle3D struct {
	A, B, C euclid.Point3

	haveArea bool
	area     float64
	haveCen  bool
	cen      euclid.Point3
	haveNorm bool
	norm     euclid.Vector3
}

// NewTriangle3D builds a triangle from three vertices.
func NewTriangle3D(a, b, c euclid.Point3) *Triangle3D {
	return &Triangle3D{A: a, B: b, C: c}
}

// Normal returns the unit normal ((b-a) x (c-a)) normalized; first call
// computes and caches, subsequent calls return the cached value.
func (t *Triangle3D) Normal() euclid.Vector3 {
	if t.haveNorm {
		return t.norm
	}
	t.norm = t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
	t.haveNorm = true
	return t.norm
}

// Area returns ½ |(b-a) x (c-a)|; first call computes and caches.
func (t *Triangle3D) Area() float64 {
	if t.haveArea {
		return t.area
	}
	t.area = 0.5 * t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Length()
	t.haveArea = true
	return t.area
}

// Centroid returns the arithmetic mean of the three vertices; first call
// computes and caches.
func (t *Triangle3D) Centroid() euclid.Point3 {
	if t.haveCen {
		return t.cen
	}
	t.cen = euclid.Mean(t.A, t.B, t.C)
	t.haveCen = true
	return t.cen
}

// IsCoplanar reports whether p lies on the triangle's supporting plane.
func (t *Triangle3D) IsCoplanar(p euclid.Point3) bool {
	pl, err := euclid.NewPlane3FromPoints(t.A, t.B, t.C)
	if err != nil {
		return false
	}
	return pl.Contains(p, Tol)
}

// IsPointInside first demands coplanarity, then tests the three
// half-plane (edge) conditions using the triangle's own normal as the
// reference orientation.
func (t *Triangle3D) IsPointInside(p euclid.Point3) bool {
	if !t.IsCoplanar(p) {
		return false
	}
	n := t.Normal()
	edges := [3][2]euclid.Point3{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
	for _, e := range edges {
		edgeVec := e[1].Sub(e[0])
		toPoint := p.Sub(e[0])
		side := edgeVec.Cross(toPoint).Dot(n)
		if side < -Tol {
			return false
		}
	}
	return true
}

// Volume always returns 0 for a (degenerate, 2D) triangle; it exists so
// Triangle3D satisfies the Shape interface used by composite polyhedra.
func (t *Triangle3D) Volume() float64 {
	return 0
}
