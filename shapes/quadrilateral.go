// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"

	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
)

// Quadrilateral3D is a planar quadrilateral embedded in 3D space,
// constructed from four vertices assumed coplanar and connected
// cyclically: A-B-C-D-A.
type Quadrilateral3D struct {
	A, B, C, D euclid.Point3

	haveArea bool
	area     float64
	haveCen  bool
	cen      euclid.Point3
	haveNorm bool
	norm     euclid.Vector3
}

// NewQuadrilateral3D builds a quadrilateral from four cyclically-connected,
// assumed-coplanar vertices.
func NewQuadrilateral3D(a, b, c, d euclid.Point3) *Quadrilateral3D {
	return &Quadrilateral3D{A: a, B: b, C: c, D: d}
}

// Vertices returns the four vertices in cyclic order.
func (q *Quadrilateral3D) Vertices() [4]euclid.Point3 {
	return [4]euclid.Point3{q.A, q.B, q.C, q.D}
}

// Normal returns the unit normal of the quadrilateral's plane, derived
// from its first triangulation (A,B,C).
func (q *Quadrilateral3D) Normal() euclid.Vector3 {
	if q.haveNorm {
		return q.norm
	}
	q.norm = q.B.Sub(q.A).Cross(q.C.Sub(q.A)).Normalize()
	q.haveNorm = true
	return q.norm
}

// Area returns the sum of the two triangulations (A,B,C) and (A,C,D);
// first call computes and caches.
func (q *Quadrilateral3D) Area() float64 {
	if q.haveArea {
		return q.area
	}
	t1 := NewTriangle3D(q.A, q.B, q.C)
	t2 := NewTriangle3D(q.A, q.C, q.D)
	q.area = t1.Area() + t2.Area()
	q.haveArea = true
	return q.area
}

// Volume is always 0 for a planar quadrilateral.
func (q *Quadrilateral3D) Volume() float64 {
	return 0
}

// shoelace2D returns (signedArea, Cx, Cy) for a closed 2D polygon with
// vertices xs[i], ys[i] (cyclic, implicit wrap to index 0).
func shoelace2D(xs, ys []float64) (area, cx, cy float64) {
	n := len(xs)
	var a, sx, sy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := xs[i]*ys[j] - xs[j]*ys[i]
		a += cross
		sx += (xs[i] + xs[j]) * cross
		sy += (ys[i] + ys[j]) * cross
	}
	a *= 0.5
	if math.Abs(a) <= 1e-300 {
		return a, 0, 0
	}
	cx = sx / (6 * a)
	cy = sy / (6 * a)
	return
}

// Centroid computes the polygon centroid via the closed-form formula
// applied to three coordinate projections (XY, XZ, YZ), combining the two
// independent estimates of each coordinate weighted by the magnitude of
// the signed area in the projection that produced them (a degenerate
// projection, e.g. a polygon lying in the YZ plane, contributes ~0 weight
// and is naturally suppressed). First call computes and caches.
func (q *Quadrilateral3D) Centroid() euclid.Point3 {
	if q.haveCen {
		return q.cen
	}
	verts := q.Vertices()
	xs := make([]float64, 4)
	ys := make([]float64, 4)
	zs := make([]float64, 4)
	for i, v := range verts {
		xs[i], ys[i], zs[i] = v.X, v.Y, v.Z
	}

	axy, cxXY, cyXY := shoelace2D(xs, ys)
	axz, cxXZ, czXZ := shoelace2D(xs, zs)
	ayz, cyYZ, czYZ := shoelace2D(ys, zs)

	wxy, wxz, wyz := math.Abs(axy), math.Abs(axz), math.Abs(ayz)

	cx := weightedPair(cxXY, wxy, cxXZ, wxz)
	cy := weightedPair(cyXY, wxy, cyYZ, wyz)
	cz := weightedPair(czXZ, wxz, czYZ, wyz)

	q.cen = euclid.NewPoint3(cx, cy, cz)
	q.haveCen = true
	return q.cen
}

func weightedPair(v1, w1, v2, w2 float64) float64 {
	if w1+w2 <= 1e-300 {
		return 0.5 * (v1 + v2)
	}
	return (v1*w1 + v2*w2) / (w1 + w2)
}

// IsPointInside uses the ray-from-point-to-centroid / edge-intersection
// method: a point is inside iff it lies on the polygon's plane and the
// segment from the point to the centroid crosses none of the four edges.
// On-face/on-edge/on-vertex cases are detected explicitly first so that
// numerical noise at the segment's shared endpoint cannot be mistaken for
// a crossing.
func (q *Quadrilateral3D) IsPointInside(p euclid.Point3) bool {
	pl, err := euclid.NewPlane3FromPoints(q.A, q.B, q.C)
	if err != nil {
		return false
	}
	if !pl.Contains(p, Tol) {
		return false
	}

	verts := q.Vertices()
	for i := 0; i < 4; i++ {
		if p.Equals(verts[i], Tol) {
			return true // on vertex
		}
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		if isOnSegment(p, verts[i], verts[j]) {
			return true // on edge
		}
	}

	cen := q.Centroid()
	if p.Equals(cen, Tol) {
		return true
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		if euclid.IsVectorRangeIntersection(p, cen, verts[i], verts[j]) {
			return false
		}
	}
	return true
}

func isOnSegment(p, a, b euclid.Point3) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	if ab.Cross(ap).Length() > Tol {
		return false
	}
	len2 := ab.Dot(ab)
	if len2 <= Tol*Tol {
		return p.Equals(a, Tol)
	}
	t := ap.Dot(ab) / len2
	return t >= -Tol && t <= 1+Tol
}
