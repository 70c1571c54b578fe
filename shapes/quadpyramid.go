// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import "github.com/warwick-hpsc/CUP-CFD-sub002/euclid"

// QuadPyramid is an apex point over a quadrilateral base.
type QuadPyramid struct {
	Apex euclid.Point3
	Base *Quadrilateral3D

	haveVol bool
	vol     float64
	haveCen bool
	cen     euclid.Point3
	faces   []orientedFace
}

// NewQuadPyramid builds a quad pyramid from an apex and a quadrilateral
// base.
func NewQuadPyramid(apex euclid.Point3, base *Quadrilateral3D) *QuadPyramid {
	return &QuadPyramid{Apex: apex, Base: base}
}

// Volume returns ⅓·baseArea·height; first call computes and caches.
func (q *QuadPyramid) Volume() float64 {
	if q.haveVol {
		return q.vol
	}
	pl, err := euclid.NewPlane3FromPoints(q.Base.A, q.Base.B, q.Base.C)
	height := 0.0
	if err == nil {
		height = pl.Distance(q.Apex)
	}
	q.vol = q.Base.Area() * height / 3.0
	q.haveVol = true
	return q.vol
}

// Centroid returns baseCentroid + ¼·(apex - baseCentroid); first call
// computes and caches.
func (q *QuadPyramid) Centroid() euclid.Point3 {
	if q.haveCen {
		return q.cen
	}
	bc := q.Base.Centroid()
	q.cen = bc.Add(q.Apex.Sub(bc).Scale(0.25))
	q.haveCen = true
	return q.cen
}

func (q *QuadPyramid) vertices() []euclid.Point3 {
	bv := q.Base.Vertices()
	return []euclid.Point3{q.Apex, bv[0], bv[1], bv[2], bv[3]}
}

func (q *QuadPyramid) buildFaces() []orientedFace {
	if q.faces != nil {
		return q.faces
	}
	interior := q.Centroid()
	bv := q.Base.Vertices()

	faces := make([]orientedFace, 0, 5)
	baseNormal := bv[1].Sub(bv[0]).Cross(bv[2].Sub(bv[0])).Normalize()
	faces = append(faces, orientedFace{normal: orientOutward(baseNormal, bv[0], interior), anchor: bv[0]})

	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		n := bv[j].Sub(bv[i]).Cross(q.Apex.Sub(bv[i])).Normalize()
		faces = append(faces, orientedFace{normal: orientOutward(n, bv[i], interior), anchor: bv[i]})
	}
	q.faces = faces
	return faces
}

// IsPointInside follows the common polyhedron skeleton.
func (q *QuadPyramid) IsPointInside(p euclid.Point3) bool {
	verts := q.vertices()
	bv := q.Base.Vertices()
	edges := edgesOfCycle(bv[:])
	for _, v := range bv {
		edges = append(edges, [2]euclid.Point3{q.Apex, v})
	}
	return pointInsideConvex(p, verts, edges, q.buildFaces())
}

// QuadPyramidCounts returns the (vertexCount, faceCount, edgeCount) a
// well-formed quadrilateral pyramid has.
func QuadPyramidCounts() (nVerts, nFaces, nEdges int) {
	return 5, 5, 8
}
