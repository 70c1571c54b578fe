// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import "github.com/warwick-hpsc/CUP-CFD-sub002/euclid"

// TriPrism is a triangular prism defined by a top and a bottom triangle,
// with Top.A/B/C connected by edges to Bottom.A/B/C respectively.
type TriPrism struct {
	Top    *Triangle3D
	Bottom *Triangle3D

	haveVol bool
	vol     float64
	haveCen bool
	cen     euclid.Point3
	faces   []orientedFace
}

// NewTriPrism builds a triangular prism from a top and bottom triangle
// whose vertices are in corresponding order (Top.A opposite Bottom.A,
// etc.).
func NewTriPrism(top, bottom *Triangle3D) *TriPrism {
	return &TriPrism{Top: top, Bottom: bottom}
}

// Volume returns |topCentroid - bottomCentroid| · baseArea.
func (p *TriPrism) Volume() float64 {
	if p.haveVol {
		return p.vol
	}
	height := p.Top.Centroid().Distance(p.Bottom.Centroid())
	p.vol = height * p.Bottom.Area()
	p.haveVol = true
	return p.vol
}

// Centroid returns ⅙·(sum of the six vertices).
func (p *TriPrism) Centroid() euclid.Point3 {
	if p.haveCen {
		return p.cen
	}
	p.cen = euclid.Mean(p.Top.A, p.Top.B, p.Top.C, p.Bottom.A, p.Bottom.B, p.Bottom.C)
	p.haveCen = true
	return p.cen
}

func (p *TriPrism) vertices() []euclid.Point3 {
	return []euclid.Point3{p.Top.A, p.Top.B, p.Top.C, p.Bottom.A, p.Bottom.B, p.Bottom.C}
}

func (p *TriPrism) buildFaces() []orientedFace {
	if p.faces != nil {
		return p.faces
	}
	interior := p.Centroid()
	top := [3]euclid.Point3{p.Top.A, p.Top.B, p.Top.C}
	bot := [3]euclid.Point3{p.Bottom.A, p.Bottom.B, p.Bottom.C}

	faces := make([]orientedFace, 0, 5)

	nTop := top[1].Sub(top[0]).Cross(top[2].Sub(top[0])).Normalize()
	faces = append(faces, orientedFace{normal: orientOutward(nTop, top[0], interior), anchor: top[0]})

	nBot := bot[1].Sub(bot[0]).Cross(bot[2].Sub(bot[0])).Normalize()
	faces = append(faces, orientedFace{normal: orientOutward(nBot, bot[0], interior), anchor: bot[0]})

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		// quadrilateral side face: top[i], top[j], bottom[j], bottom[i]
		n := top[j].Sub(top[i]).Cross(bot[i].Sub(top[i])).Normalize()
		faces = append(faces, orientedFace{normal: orientOutward(n, top[i], interior), anchor: top[i]})
	}
	p.faces = faces
	return faces
}

// IsPointInside follows the common polyhedron skeleton.
func (p *TriPrism) IsPointInside(pt euclid.Point3) bool {
	verts := p.vertices()
	top := [3]euclid.Point3{p.Top.A, p.Top.B, p.Top.C}
	bot := [3]euclid.Point3{p.Bottom.A, p.Bottom.B, p.Bottom.C}
	edges := edgesOfCycle(top[:])
	edges = append(edges, edgesOfCycle(bot[:])...)
	for i := 0; i < 3; i++ {
		edges = append(edges, [2]euclid.Point3{top[i], bot[i]})
	}
	return pointInsideConvex(pt, verts, edges, p.buildFaces())
}

// TriPrismCounts returns the (vertexCount, faceCount, edgeCount) a
// well-formed triangular prism has.
func TriPrismCounts() (nVerts, nFaces, nEdges int) {
	return 6, 5, 9
}
