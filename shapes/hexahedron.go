// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"github.com/cpmech/gosl/chk"

	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
)

// Hexahedron is built from six quadrilateral faces. The constructor does
// not presume opposite faces are parallel or equivalent; it determines
// orientation, detects the opposing-face pair, and decomposes the body
// into five tetrahedra for volume/centroid purposes.
type Hexahedron struct {
	inputFaces [6]*Quadrilateral3D

	bottomIdx, topIdx int
	bottom, top       [4]euclid.Point3 // bottom[i] connected to top[i] by an edge

	tets [5]*Tetrahedron

	haveVol bool
	vol     float64
	haveCen bool
	cen     euclid.Point3
	faces   []orientedFace
}

// NewHexahedron constructs a hexahedron from six appropriately-connected
// quadrilaterals. Face ordering is not important; the constructor
// determines orientation. Panics (a contract breach, not a recoverable
// error) if any two faces share the same four vertices.
func NewHexahedron(f0, f1, f2, f3, f4, f5 *Quadrilateral3D) *Hexahedron {
	h := &Hexahedron{inputFaces: [6]*Quadrilateral3D{f0, f1, f2, f3, f4, f5}}
	h.verifyFacesDistinct()
	h.detectOpposingFaces()
	return h
}

func faceVertexSet(f *Quadrilateral3D) [4]euclid.Point3 {
	return f.Vertices()
}

func sameVertexSet(a, b [4]euclid.Point3) bool {
	for _, va := range a {
		found := false
		for _, vb := range b {
			if va.Equals(vb, Tol) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// verifyFacesDistinct checks that no two faces used to construct the
// hexahedron have the same vertices; panics otherwise (programmer-visible
// contract breach, not a recoverable state).
func (h *Hexahedron) verifyFacesDistinct() {
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			if sameVertexSet(faceVertexSet(h.inputFaces[i]), faceVertexSet(h.inputFaces[j])) {
				chk.Panic("shapes: hexahedron built from two identical faces (%d, %d)\n", i, j)
			}
		}
	}
}

// detectOpposingFaces finds the pair of mutually-opposite faces (the pair
// that shares no vertex), then shifts the bottom/top vertex ordering so
// that bottom[i] is connected to top[i] by an edge of the hexahedron.
func (h *Hexahedron) detectOpposingFaces() {
	h.bottomIdx = 0
	bottomSet := faceVertexSet(h.inputFaces[0])
	opp := -1
	for k := 1; k < 6; k++ {
		topSet := faceVertexSet(h.inputFaces[k])
		shares := false
		for _, vb := range bottomSet {
			for _, vt := range topSet {
				if vb.Equals(vt, Tol) {
					shares = true
				}
			}
		}
		if !shares {
			opp = k
			break
		}
	}
	if opp < 0 {
		chk.Panic("shapes: hexahedron faces do not contain a mutually-opposite pair\n")
	}
	h.topIdx = opp
	h.bottom = bottomSet
	topSet := faceVertexSet(h.inputFaces[opp])

	// side faces are every face other than bottom/top
	var sides []*Quadrilateral3D
	for i := 0; i < 6; i++ {
		if i != h.bottomIdx && i != h.topIdx {
			sides = append(sides, h.inputFaces[i])
		}
	}

	for i := 0; i < 4; i++ {
		match, ok := correspondingTopVertex(h.bottom[i], topSet, sides)
		if !ok {
			chk.Panic("shapes: hexahedron bottom vertex %d has no corresponding top vertex\n", i)
		}
		h.top[i] = match
	}
}

// correspondingTopVertex finds, among the side faces, the vertex adjacent
// (by a direct edge) to bi that belongs to the top face.
func correspondingTopVertex(bi euclid.Point3, topSet [4]euclid.Point3, sides []*Quadrilateral3D) (euclid.Point3, bool) {
	inTop := func(p euclid.Point3) bool {
		for _, v := range topSet {
			if p.Equals(v, Tol) {
				return true
			}
		}
		return false
	}
	for _, f := range sides {
		verts := f.Vertices()
		for idx, v := range verts {
			if !v.Equals(bi, Tol) {
				continue
			}
			prev := verts[(idx+3)%4]
			next := verts[(idx+1)%4]
			if inTop(prev) {
				return prev, true
			}
			if inTop(next) {
				return next, true
			}
		}
	}
	return euclid.Point3{}, false
}

// buildTets decomposes the hexahedron into five tetrahedra using the
// bottom[0..3]/top[0..3] vertex correspondence: four "corner" tets at
// alternating corners plus one central tet, the classic 5-tetrahedron
// split of a hexahedron along the (bottom1,bottom3,top0,top2) diagonal.
func (h *Hexahedron) buildTets() [5]*Tetrahedron {
	if h.tets[0] != nil {
		return h.tets
	}
	b, t := h.bottom, h.top
	h.tets = [5]*Tetrahedron{
		NewTetrahedron(t[0], NewTriangle3D(b[0], b[1], b[3])),
		NewTetrahedron(t[2], NewTriangle3D(b[1], b[2], b[3])),
		NewTetrahedron(b[1], NewTriangle3D(t[0], t[1], t[2])),
		NewTetrahedron(b[3], NewTriangle3D(t[0], t[2], t[3])),
		NewTetrahedron(t[0], NewTriangle3D(b[1], b[3], t[2])),
	}
	return h.tets
}

// Volume returns the sum of the five decomposition tetrahedra's volumes;
// first call computes and caches.
func (h *Hexahedron) Volume() float64 {
	if h.haveVol {
		return h.vol
	}
	var sum float64
	for _, tet := range h.buildTets() {
		sum += tet.Volume()
	}
	h.vol = sum
	h.haveVol = true
	return h.vol
}

// Centroid returns the volume-weighted average of the five decomposition
// tetrahedra's centroids; first call computes and caches.
func (h *Hexahedron) Centroid() euclid.Point3 {
	if h.haveCen {
		return h.cen
	}
	var sx, sy, sz, sv float64
	for _, tet := range h.buildTets() {
		v := tet.Volume()
		c := tet.Centroid()
		sx += v * c.X
		sy += v * c.Y
		sz += v * c.Z
		sv += v
	}
	if sv <= 0 {
		h.cen = euclid.Mean(h.vertices()...)
	} else {
		h.cen = euclid.NewPoint3(sx/sv, sy/sv, sz/sv)
	}
	h.haveCen = true
	return h.cen
}

func (h *Hexahedron) vertices() []euclid.Point3 {
	out := make([]euclid.Point3, 0, 8)
	out = append(out, h.bottom[:]...)
	out = append(out, h.top[:]...)
	return out
}

func (h *Hexahedron) buildFaces() []orientedFace {
	if h.faces != nil {
		return h.faces
	}
	interior := h.Centroid()
	faces := make([]orientedFace, 0, 6)
	for _, f := range h.inputFaces {
		v := f.Vertices()
		n := v[1].Sub(v[0]).Cross(v[2].Sub(v[0])).Normalize()
		faces = append(faces, orientedFace{normal: orientOutward(n, v[0], interior), anchor: v[0]})
	}
	h.faces = faces
	return faces
}

// IsPointInside follows the common polyhedron skeleton: explicit
// on-vertex/on-edge checks, then a half-space test against every
// outward-oriented face.
func (h *Hexahedron) IsPointInside(p euclid.Point3) bool {
	verts := h.vertices()
	edges := edgesOfCycle(h.bottom[:])
	edges = append(edges, edgesOfCycle(h.top[:])...)
	for i := 0; i < 4; i++ {
		edges = append(edges, [2]euclid.Point3{h.bottom[i], h.top[i]})
	}
	return pointInsideConvex(p, verts, edges, h.buildFaces())
}

// HexahedronCounts returns the (vertexCount, faceCount, edgeCount) a
// well-formed hexahedron has.
func HexahedronCounts() (nVerts, nFaces, nEdges int) {
	return 8, 6, 12
}
