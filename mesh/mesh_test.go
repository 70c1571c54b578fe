// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
)

func buildUnitTetMesh(tst *testing.T) (*Mesh, int) {
	msh := New()
	must := func(e error) {
		if e != nil {
			tst.Fatalf("unexpected error: %v\n", e)
		}
	}
	must(msh.AddVertex(0, euclid.NewPoint3(0, 0, 0)))
	must(msh.AddVertex(1, euclid.NewPoint3(1, 0, 0)))
	must(msh.AddVertex(2, euclid.NewPoint3(0, 1, 0)))
	must(msh.AddVertex(3, euclid.NewPoint3(0, 0, 1)))
	must(msh.AddRegion(0, "Default", RegionDefault, RegionParams{}))
	must(msh.AddCell(100, euclid.NewPoint3(0.25, 0.25, 0.25), 1.0/6.0, true))

	// a lone tetrahedron has no neighbouring cell, so all 4 faces are
	// registered as boundary faces, each tied to its own boundary record.
	for i := 0; i < 4; i++ {
		must(msh.AddBoundary(200+i, 0, nil, 0))
	}
	must(msh.AddFace(300, 100, 200, true, []int{0, 1, 2}, FaceOptional{}))
	must(msh.AddFace(301, 100, 201, true, []int{0, 1, 3}, FaceOptional{}))
	must(msh.AddFace(302, 100, 202, true, []int{1, 2, 3}, FaceOptional{}))
	must(msh.AddFace(303, 100, 203, true, []int{2, 0, 3}, FaceOptional{}))

	must(msh.Finalize())
	return msh, 0
}

func Test_mesh_finalizeOrdering01(tst *testing.T) {

	chk.PrintTitle("Test mesh finalizeOrdering01")

	msh := New()
	must := func(e error) {
		if e != nil {
			tst.Errorf("unexpected error: %v\n", e)
		}
	}
	must(msh.AddCell(10, euclid.NewPoint3(0, 0, 0), 1.0, false)) // ghost
	must(msh.AddCell(11, euclid.NewPoint3(1, 0, 0), 1.0, true))  // owned
	must(msh.AddCell(12, euclid.NewPoint3(2, 0, 0), 1.0, false)) // ghost
	must(msh.AddCell(13, euclid.NewPoint3(3, 0, 0), 1.0, true))  // owned
	must(msh.Finalize())

	props := msh.Properties()
	if props.LocalCells != 2 || props.GhostCells != 2 {
		tst.Errorf("local/ghost split failed: got local=%d ghost=%d\n", props.LocalCells, props.GhostCells)
	}
	for i := 0; i < props.LocalCells; i++ {
		c, _ := msh.Cell(i)
		if !c.IsLocal {
			tst.Errorf("cell at local id %d should be owned\n", i)
		}
	}
	for i := props.LocalCells; i < props.LocalCells+props.GhostCells; i++ {
		c, _ := msh.Cell(i)
		if c.IsLocal {
			tst.Errorf("cell at local id %d should be a ghost\n", i)
		}
	}
}

func Test_mesh_finalizeTwice01(tst *testing.T) {

	chk.PrintTitle("Test mesh finalizeTwice01")

	msh := New()
	msh.AddCell(1, euclid.NewPoint3(0, 0, 0), 1.0, true)
	if err := msh.Finalize(); err != nil {
		tst.Errorf("unexpected error: %v\n", err)
	}
	if err := msh.Finalize(); err == nil {
		tst.Errorf("expected error finalizing twice\n")
	}
	if err := msh.AddCell(2, euclid.NewPoint3(1, 0, 0), 1.0, true); err == nil {
		tst.Errorf("expected error adding a cell after finalize\n")
	}
}

func Test_mesh_buildPolyhedron01(tst *testing.T) {

	chk.PrintTitle("Test mesh buildPolyhedron01")

	msh, cellLID := buildUnitTetMesh(tst)
	shape, err := msh.BuildPolyhedron(cellLID)
	if err != nil {
		tst.Errorf("unexpected error: %v\n", err)
	}
	if shape.Volume() <= 0 {
		tst.Errorf("reconstructed polyhedron must have positive volume, got %g\n", shape.Volume())
	}
	if !shape.IsPointInside(shape.Centroid()) {
		tst.Errorf("reconstructed polyhedron's centroid should test as inside\n")
	}
}

func Test_mesh_findCellID01(tst *testing.T) {

	chk.PrintTitle("Test mesh findCellID01")

	msh, cellLID := buildUnitTetMesh(tst)
	id, err := msh.FindCellID(euclid.NewPoint3(0.2, 0.2, 0.2))
	if err != nil || id != cellLID {
		tst.Errorf("expected to find the tetrahedron cell, got id=%d err=%v\n", id, err)
	}
	if _, err := msh.FindCellID(euclid.NewPoint3(50, 50, 50)); err == nil {
		tst.Errorf("expected no-valid-cell error for a far point\n")
	}
}

func Test_mesh_duplicateLabel01(tst *testing.T) {

	chk.PrintTitle("Test mesh duplicateLabel01")

	msh := New()
	if err := msh.AddVertex(1, euclid.NewPoint3(0, 0, 0)); err != nil {
		tst.Errorf("unexpected error: %v\n", err)
	}
	if err := msh.AddVertex(1, euclid.NewPoint3(1, 1, 1)); err == nil {
		tst.Errorf("expected error adding a duplicate vertex label\n")
	}
}

func Test_mesh_unknownReference01(tst *testing.T) {

	chk.PrintTitle("Test mesh unknownReference01")

	msh := New()
	if err := msh.AddBoundary(1, 999, nil, 0); err == nil {
		tst.Errorf("expected error for boundary referencing unknown region\n")
	}
}
