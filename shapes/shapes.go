// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes implements concrete polygon and polyhedron geometry:
// Triangle3D, Quadrilateral3D, Tetrahedron, QuadPyramid, TriPrism and
// Hexahedron, with memoized volume/centroid and point-containment tests.
// Each shape plays the role the teacher's shp package plays for
// isoparametric reference elements, but computes real 3D solid geometry
// instead of shape functions.
package shapes

import "github.com/warwick-hpsc/CUP-CFD-sub002/euclid"

// Tol is the default geometric tolerance used by on-face/on-edge/on-vertex
// and coplanarity tests throughout this package.
const Tol = 1.0e-10

// Shape is satisfied by every concrete polygon/polyhedron in this package.
type Shape interface {
	Volume() float64
	Centroid() euclid.Point3
	IsPointInside(p euclid.Point3) bool
}

// PolyhedronType identifies a closed-set polyhedron family.
type PolyhedronType int

// Recognized polyhedron families, identified from (vertexCount, faceCount).
const (
	Unknown PolyhedronType = iota
	TypeTetrahedron
	TypeQuadPyramid
	TypeTriPrism
	TypeHexahedron
)

// String returns a human-readable name for t.
func (t PolyhedronType) String() string {
	switch t {
	case TypeTetrahedron:
		return "tetrahedron"
	case TypeQuadPyramid:
		return "quadrilateral pyramid"
	case TypeTriPrism:
		return "triangular prism"
	case TypeHexahedron:
		return "hexahedron"
	default:
		return "unknown"
	}
}

// FindPolyhedronType identifies the polyhedron family implied by a vertex
// count and face count, per spec.md §4.3: (4,4)->Tet, (5,5)->QuadPyramid,
// (6,5)->TriPrism, (8,6)->Hex, else Unknown.
func FindPolyhedronType(nVertices, nFaces int) PolyhedronType {
	switch {
	case nVertices == 4 && nFaces == 4:
		return TypeTetrahedron
	case nVertices == 5 && nFaces == 5:
		return TypeQuadPyramid
	case nVertices == 6 && nFaces == 5:
		return TypeTriPrism
	case nVertices == 8 && nFaces == 6:
		return TypeHexahedron
	default:
		return Unknown
	}
}
