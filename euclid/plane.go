// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package euclid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Plane3 is an (infinite) plane in 3D space, defined by a point on the
// plane and a unit normal vector.
type Plane3 struct {
	P0     Point3  // a point known to lie on the plane
	Normal Vector3 // unit normal
}

// NewPlane3FromPoints builds a plane from three non-collinear points.
// Returns an error if the points are collinear (degenerate normal).
func NewPlane3FromPoints(a, b, c Point3) (Plane3, error) {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Length() <= Eps {
		return Plane3{}, chk.Err("euclid: points are collinear; cannot build a plane\n")
	}
	return Plane3{P0: a, Normal: n.Normalize()}, nil
}

// SignedDistance returns the signed shortest distance from p to the plane
// (positive on the side the normal points to).
func (pl Plane3) SignedDistance(p Point3) float64 {
	return pl.Normal.Dot(p.Sub(pl.P0))
}

// Distance returns the (unsigned) shortest distance from p to the plane.
func (pl Plane3) Distance(p Point3) float64 {
	return math.Abs(pl.SignedDistance(p))
}

// Contains reports whether p lies on the plane within tol.
func (pl Plane3) Contains(p Point3, tol float64) bool {
	return pl.Distance(p) <= tol
}

// VectorInPlane reports whether v is parallel to the plane (i.e.
// perpendicular to its normal) within tol.
func (pl Plane3) VectorInPlane(v Vector3, tol float64) bool {
	return math.Abs(pl.Normal.Dot(v)) <= tol
}

// IsVectorRangeIntersection returns whether the 3D segment p1-p2 crosses
// the 3D segment q1-q2. Coplanar segments are handled; collinear overlap
// counts as an intersection.
func IsVectorRangeIntersection(p1, p2, q1, q2 Point3) bool {

	d1 := p2.Sub(p1)
	d2 := q2.Sub(q1)
	r := q1.Sub(p1)

	cross := d1.Cross(d2)
	crossLen := cross.Length()

	// non-coplanar check: the four points must lie on a common plane for a
	// 3D segment-segment intersection to be possible.
	triple := r.Dot(d1.Cross(d2))
	if math.Abs(triple) > Eps && crossLen > Eps {
		return false
	}

	if crossLen > Eps {
		// coplanar, non-parallel: solve p1 + s*d1 == q1 + t*d2
		rCrossD2 := r.Cross(d2)
		rCrossD1 := r.Cross(d1)
		denom := cross.Dot(cross)
		s := rCrossD2.Dot(cross) / denom
		t := rCrossD1.Dot(cross) / denom
		return s >= -Eps && s <= 1+Eps && t >= -Eps && t <= 1+Eps
	}

	// parallel (or one/both segments degenerate to a point)
	if d1.Cross(r).Length() > Eps {
		return false // parallel but not collinear
	}

	// collinear: project onto d1 and check 1D interval overlap
	len1 := d1.Dot(d1)
	if len1 <= Eps {
		// p1 == p2: check if the point lies on q1-q2
		return isPointOnSegment1D(p1, q1, q2)
	}
	t0 := r.Dot(d1) / len1
	t1 := t0 + d2.Dot(d1)/len1
	lo, hi := t0, t1
	if lo > hi {
		lo, hi = hi, lo
	}
	return hi >= -Eps && lo <= 1+Eps
}

func isPointOnSegment1D(p, a, b Point3) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	if ab.Cross(ap).Length() > Eps {
		return false
	}
	len2 := ab.Dot(ab)
	if len2 <= Eps {
		return p.Equals(a, Eps)
	}
	t := ap.Dot(ab) / len2
	return t >= -Eps && t <= 1+Eps
}
