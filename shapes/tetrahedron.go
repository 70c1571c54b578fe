// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
)

// Tetrahedron is an apex point over a triangular base.
type Tetrahedron struct {
	Apex euclid.Point3
	Base *Triangle3D

	haveVol bool
	vol     float64
	haveCen bool
	cen     euclid.Point3
	faces   []orientedFace
}

// NewTetrahedron builds a tetrahedron from an apex and a triangular base.
// Vertex ordering of the base does not need to be anticlockwise when
// viewed from the apex; orientation is determined internally.
func NewTetrahedron(apex euclid.Point3, base *Triangle3D) *Tetrahedron {
	return &Tetrahedron{Apex: apex, Base: base}
}

// Volume returns ⅓·baseArea·height, where height is the distance from the
// apex to the base's plane; first call computes and caches.
func (t *Tetrahedron) Volume() float64 {
	if t.haveVol {
		return t.vol
	}
	pl, err := euclid.NewPlane3FromPoints(t.Base.A, t.Base.B, t.Base.C)
	height := 0.0
	if err == nil {
		height = pl.Distance(t.Apex)
	}
	t.vol = t.Base.Area() * height / 3.0
	t.haveVol = true
	return t.vol
}

// Centroid returns ¼·(sum of the four vertices); first call computes and
// caches.
func (t *Tetrahedron) Centroid() euclid.Point3 {
	if t.haveCen {
		return t.cen
	}
	t.cen = euclid.Mean(t.Apex, t.Base.A, t.Base.B, t.Base.C)
	t.haveCen = true
	return t.cen
}

func (t *Tetrahedron) vertices() []euclid.Point3 {
	return []euclid.Point3{t.Apex, t.Base.A, t.Base.B, t.Base.C}
}

func (t *Tetrahedron) buildFaces() []orientedFace {
	if t.faces != nil {
		return t.faces
	}
	interior := t.Centroid()
	tris := [][3]euclid.Point3{
		{t.Base.A, t.Base.B, t.Base.C},
		{t.Apex, t.Base.A, t.Base.B},
		{t.Apex, t.Base.B, t.Base.C},
		{t.Apex, t.Base.C, t.Base.A},
	}
	faces := make([]orientedFace, 0, 4)
	for _, tr := range tris {
		n := tr[1].Sub(tr[0]).Cross(tr[2].Sub(tr[0])).Normalize()
		faces = append(faces, orientedFace{normal: orientOutward(n, tr[0], interior), anchor: tr[0]})
	}
	t.faces = faces
	return faces
}

// IsPointInside follows the common polyhedron skeleton: explicit
// on-vertex/on-edge checks, then a half-space test against every
// outward-oriented face.
func (t *Tetrahedron) IsPointInside(p euclid.Point3) bool {
	verts := t.vertices()
	edges := [][2]euclid.Point3{
		{verts[0], verts[1]}, {verts[0], verts[2]}, {verts[0], verts[3]},
		{verts[1], verts[2]}, {verts[2], verts[3]}, {verts[3], verts[1]},
	}
	return pointInsideConvex(p, verts, edges, t.buildFaces())
}

// TetrahedronCounts returns the (vertexCount, faceCount, edgeCount) a
// well-formed tetrahedron has, for use by the Euler edge-count check in
// mesh reconstruction.
func TetrahedronCounts() (nVerts, nFaces, nEdges int) {
	return 4, 4, 6
}
