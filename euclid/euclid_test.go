// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package euclid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vector01(tst *testing.T) {

	chk.PrintTitle("Test vector01")

	v := NewVector3(1, 0, 0)
	w := NewVector3(0, 1, 0)
	c := v.Cross(w)
	if math.Abs(c.Z-1.0) > 1e-15 {
		tst.Errorf("cross product failed: %v\n", c)
	}
	if math.Abs(v.Dot(w)) > 1e-15 {
		tst.Errorf("dot product should be zero for orthogonal unit vectors\n")
	}
	if math.Abs(v.Length()-1.0) > 1e-15 {
		tst.Errorf("length failed\n")
	}
}

func Test_plane01(tst *testing.T) {

	chk.PrintTitle("Test plane01")

	a := NewPoint3(0, 0, 0)
	b := NewPoint3(1, 0, 0)
	c := NewPoint3(0, 1, 0)
	pl, err := NewPlane3FromPoints(a, b, c)
	if err != nil {
		tst.Errorf("plane construction failed: %v\n", err)
		return
	}
	if !pl.Contains(NewPoint3(5, 5, 0), 1e-12) {
		tst.Errorf("point on z=0 plane should be contained\n")
	}
	if pl.Contains(NewPoint3(0, 0, 1), 1e-12) {
		tst.Errorf("point off-plane should not be contained\n")
	}
	if math.Abs(pl.Distance(NewPoint3(0, 0, 2))-2.0) > 1e-12 {
		tst.Errorf("distance from plane failed\n")
	}

	_, err = NewPlane3FromPoints(a, b, NewPoint3(2, 0, 0))
	if err == nil {
		tst.Errorf("collinear points should fail to build a plane\n")
	}
}

func Test_segmentIntersect01(tst *testing.T) {

	chk.PrintTitle("Test segmentIntersect01")

	// crossing segments in the XY plane
	p1 := NewPoint3(0, 0, 0)
	p2 := NewPoint3(2, 2, 0)
	q1 := NewPoint3(0, 2, 0)
	q2 := NewPoint3(2, 0, 0)
	if !IsVectorRangeIntersection(p1, p2, q1, q2) {
		tst.Errorf("crossing segments should intersect\n")
	}

	// parallel, non-intersecting
	q1b := NewPoint3(0, 3, 0)
	q2b := NewPoint3(2, 5, 0)
	if IsVectorRangeIntersection(p1, p2, q1b, q2b) {
		tst.Errorf("parallel non-overlapping segments should not intersect\n")
	}

	// collinear overlap counts as intersection
	r1 := NewPoint3(1, 1, 0)
	r2 := NewPoint3(3, 3, 0)
	if !IsVectorRangeIntersection(p1, p2, r1, r2) {
		tst.Errorf("collinear overlapping segments should intersect\n")
	}

	// skew (non-coplanar) segments
	s1 := NewPoint3(0, 2, 1)
	s2 := NewPoint3(2, 0, 1)
	if IsVectorRangeIntersection(p1, p2, s1, s2) {
		tst.Errorf("skew non-coplanar segments should not intersect\n")
	}
}
