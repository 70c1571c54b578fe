// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
)

func Test_polyhedronType01(tst *testing.T) {

	chk.PrintTitle("Test polyhedronType01")

	if FindPolyhedronType(4, 4) != TypeTetrahedron {
		tst.Errorf("(4,4) should identify as tetrahedron\n")
	}
	if FindPolyhedronType(5, 5) != TypeQuadPyramid {
		tst.Errorf("(5,5) should identify as quad pyramid\n")
	}
	if FindPolyhedronType(6, 5) != TypeTriPrism {
		tst.Errorf("(6,5) should identify as triangular prism, got %s\n", FindPolyhedronType(6, 5))
	}
	if FindPolyhedronType(8, 6) != TypeHexahedron {
		tst.Errorf("(8,6) should identify as hexahedron, got %s\n", FindPolyhedronType(8, 6))
	}
	if FindPolyhedronType(3, 3) != Unknown {
		tst.Errorf("(3,3) should be unknown\n")
	}
}

func Test_tetrahedron01(tst *testing.T) {

	chk.PrintTitle("Test tetrahedron01")

	base := NewTriangle3D(euclid.NewPoint3(1, 0, 0), euclid.NewPoint3(0, 1, 0), euclid.NewPoint3(0, 0, 0))
	tet := NewTetrahedron(euclid.NewPoint3(0, 0, 1), base)

	cen := tet.Centroid()
	exp := euclid.NewPoint3(0.25, 0.25, 0.25)
	if !cen.Equals(exp, 1e-12) {
		tst.Errorf("tetrahedron centroid failed: got %v want %v\n", cen, exp)
	}

	vol := tet.Volume()
	if math.Abs(vol-1.0/6.0) > 1e-12 {
		tst.Errorf("tetrahedron volume failed: got %g want %g\n", vol, 1.0/6.0)
	}

	if vol <= 0 {
		tst.Errorf("tetrahedron volume must be positive\n")
	}
	if !tet.IsPointInside(tet.Centroid()) {
		tst.Errorf("centroid must be inside its own polyhedron\n")
	}
	if tet.IsPointInside(euclid.NewPoint3(5, 5, 5)) {
		tst.Errorf("far point should not be inside tetrahedron\n")
	}
	// vertex/edge cases count as inside
	if !tet.IsPointInside(euclid.NewPoint3(0, 0, 0)) {
		tst.Errorf("vertex should count as inside\n")
	}
}

func Test_quadrilateral01(tst *testing.T) {

	chk.PrintTitle("Test quadrilateral01")

	q := NewQuadrilateral3D(
		euclid.NewPoint3(0, 0, 0),
		euclid.NewPoint3(2, 0, 0),
		euclid.NewPoint3(2, 2, 0),
		euclid.NewPoint3(0, 2, 0),
	)
	if math.Abs(q.Area()-4.0) > 1e-12 {
		tst.Errorf("square area failed: got %g\n", q.Area())
	}
	cen := q.Centroid()
	if !cen.Equals(euclid.NewPoint3(1, 1, 0), 1e-9) {
		tst.Errorf("square centroid failed: got %v\n", cen)
	}
	if !q.IsPointInside(euclid.NewPoint3(1, 1, 0)) {
		tst.Errorf("center should be inside square\n")
	}
	if q.IsPointInside(euclid.NewPoint3(3, 3, 0)) {
		tst.Errorf("outside point should not be inside square\n")
	}
	if !q.IsPointInside(euclid.NewPoint3(0, 0, 0)) {
		tst.Errorf("vertex should count as inside\n")
	}
}

func cube(side float64) *Hexahedron {
	p := func(x, y, z float64) euclid.Point3 { return euclid.NewPoint3(x*side, y*side, z*side) }
	bottom := NewQuadrilateral3D(p(0, 0, 0), p(1, 0, 0), p(1, 1, 0), p(0, 1, 0))
	top := NewQuadrilateral3D(p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1))
	front := NewQuadrilateral3D(p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1))
	back := NewQuadrilateral3D(p(0, 1, 0), p(1, 1, 0), p(1, 1, 1), p(0, 1, 1))
	left := NewQuadrilateral3D(p(0, 0, 0), p(0, 1, 0), p(0, 1, 1), p(0, 0, 1))
	right := NewQuadrilateral3D(p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1))
	return NewHexahedron(bottom, top, front, back, left, right)
}

func Test_hexahedron01(tst *testing.T) {

	chk.PrintTitle("Test hexahedron01")

	h := cube(2.0)
	vol := h.Volume()
	if math.Abs(vol-8.0) > 1e-9 {
		tst.Errorf("cube volume failed: got %g want 8\n", vol)
	}

	cen := h.Centroid()
	if !cen.Equals(euclid.NewPoint3(1, 1, 1), 1e-9) {
		tst.Errorf("cube centroid failed: got %v\n", cen)
	}

	if !h.IsPointInside(cen) {
		tst.Errorf("centroid must be inside cube\n")
	}
	if h.IsPointInside(euclid.NewPoint3(10, 10, 10)) {
		tst.Errorf("far point should not be inside cube\n")
	}

	// five-tetrahedron decomposition sums to the cube's volume
	var sumTets float64
	for _, tet := range h.buildTets() {
		sumTets += tet.Volume()
	}
	if math.Abs(sumTets-vol) > 1e-9 {
		tst.Errorf("tet decomposition volume mismatch: got %g want %g\n", sumTets, vol)
	}
}

func Test_hexahedron_duplicateFaces(tst *testing.T) {

	chk.PrintTitle("Test hexahedron duplicate faces panics")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("expected panic building hexahedron from duplicate faces\n")
		}
	}()

	p := func(x, y, z float64) euclid.Point3 { return euclid.NewPoint3(x, y, z) }
	bottom := NewQuadrilateral3D(p(0, 0, 0), p(1, 0, 0), p(1, 1, 0), p(0, 1, 0))
	dup := NewQuadrilateral3D(p(0, 0, 0), p(1, 0, 0), p(1, 1, 0), p(0, 1, 0))
	top := NewQuadrilateral3D(p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1))
	front := NewQuadrilateral3D(p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1))
	left := NewQuadrilateral3D(p(0, 0, 0), p(0, 1, 0), p(0, 1, 1), p(0, 0, 1))
	right := NewQuadrilateral3D(p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1))
	NewHexahedron(bottom, dup, top, front, left, right)
}

func Test_quadpyramid01(tst *testing.T) {

	chk.PrintTitle("Test quadpyramid01")

	base := NewQuadrilateral3D(
		euclid.NewPoint3(0, 0, 0),
		euclid.NewPoint3(2, 0, 0),
		euclid.NewPoint3(2, 2, 0),
		euclid.NewPoint3(0, 2, 0),
	)
	qp := NewQuadPyramid(euclid.NewPoint3(1, 1, 3), base)
	vol := qp.Volume()
	exp := (1.0 / 3.0) * 4.0 * 3.0
	if math.Abs(vol-exp) > 1e-9 {
		tst.Errorf("quad pyramid volume failed: got %g want %g\n", vol, exp)
	}
	if vol <= 0 {
		tst.Errorf("quad pyramid volume must be positive\n")
	}
	if !qp.IsPointInside(qp.Centroid()) {
		tst.Errorf("centroid must be inside quad pyramid\n")
	}
}

func Test_triprism01(tst *testing.T) {

	chk.PrintTitle("Test triprism01")

	bottom := NewTriangle3D(euclid.NewPoint3(0, 0, 0), euclid.NewPoint3(1, 0, 0), euclid.NewPoint3(0, 1, 0))
	top := NewTriangle3D(euclid.NewPoint3(0, 0, 2), euclid.NewPoint3(1, 0, 2), euclid.NewPoint3(0, 1, 2))
	pr := NewTriPrism(top, bottom)

	vol := pr.Volume()
	exp := 2.0 * 0.5
	if math.Abs(vol-exp) > 1e-9 {
		tst.Errorf("tri prism volume failed: got %g want %g\n", vol, exp)
	}
	if vol <= 0 {
		tst.Errorf("tri prism volume must be positive\n")
	}
	if !pr.IsPointInside(pr.Centroid()) {
		tst.Errorf("centroid must be inside tri prism\n")
	}
}
