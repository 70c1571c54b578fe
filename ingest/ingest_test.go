// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ingest

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
	"github.com/warwick-hpsc/CUP-CFD-sub002/mesh"
	"github.com/warwick-hpsc/CUP-CFD-sub002/meshsource"
)

func Test_ingest_wholeGrid01(tst *testing.T) {

	chk.PrintTitle("Test ingest wholeGrid01")

	g, err := meshsource.NewStructuredGrid(2, 2, 2, euclid.NewPoint3(0, 0, 0), 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v\n", err)
	}

	all := make([]int, g.CellCount())
	for i := range all {
		all[i] = i
	}

	dst := mesh.New()
	if err := Ingest(g, all, dst); err != nil {
		tst.Fatalf("ingest failed: %v\n", err)
	}

	p := dst.Properties()
	if p.LocalCells != g.CellCount() {
		tst.Errorf("local cells failed: got %d want %d\n", p.LocalCells, g.CellCount())
	}
	if p.GhostCells != 0 {
		tst.Errorf("whole-grid ingestion should have no ghosts, got %d\n", p.GhostCells)
	}
	if p.LocalVertices != g.VertexCount() {
		tst.Errorf("vertex count failed: got %d want %d\n", p.LocalVertices, g.VertexCount())
	}
	if p.LocalBoundaries != g.BoundaryCount() {
		tst.Errorf("boundary count failed: got %d want %d\n", p.LocalBoundaries, g.BoundaryCount())
	}
	if p.LocalFaces != g.FaceCount() {
		tst.Errorf("face count failed: got %d want %d\n", p.LocalFaces, g.FaceCount())
	}

	id, err := dst.FindCellID(euclid.NewPoint3(0.5, 0.5, 0.5))
	if err != nil {
		tst.Errorf("find cell id failed: %v\n", err)
	}
	shape, err := dst.BuildPolyhedron(id)
	if err != nil {
		tst.Errorf("build polyhedron failed: %v\n", err)
	} else if shape.Volume() <= 0 {
		tst.Errorf("expected positive volume, got %f\n", shape.Volume())
	}
}

func Test_ingest_partitionWithGhosts01(tst *testing.T) {

	chk.PrintTitle("Test ingest partitionWithGhosts01")

	g, err := meshsource.NewStructuredGrid(3, 3, 3, euclid.NewPoint3(0, 0, 0), 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v\n", err)
	}

	// assign only the single cell at the centre of the 3x3x3 grid: its 6
	// face neighbours all become ghosts, none of them are boundary cells.
	centre := 1 + 3*1 + 9*1 // cellLabel(1,1,1) for nx=ny=3
	dst := mesh.New()
	if err := Ingest(g, []int{centre}, dst); err != nil {
		tst.Fatalf("ingest failed: %v\n", err)
	}

	p := dst.Properties()
	if p.LocalCells != 1 {
		tst.Errorf("local cells failed: got %d want 1\n", p.LocalCells)
	}
	if p.GhostCells != 6 {
		tst.Errorf("ghost cells failed: got %d want 6\n", p.GhostCells)
	}
	if dst.NumLocalCells() != 1 {
		tst.Errorf("NumLocalCells failed: got %d\n", dst.NumLocalCells())
	}
	if dst.NumCells() != 7 {
		tst.Errorf("NumCells failed: got %d want 7\n", dst.NumCells())
	}

	// the centre cell of a 3x3x3 grid touches no domain boundary.
	c, err := dst.CellByLabel(centre)
	if err != nil {
		tst.Fatalf("unexpected error: %v\n", err)
	}
	if c.StoredNFaces() != 6 {
		tst.Errorf("centre cell should have 6 stored faces, got %d\n", c.StoredNFaces())
	}
	if c.NFaces() != 6 {
		tst.Errorf("centre cell geometric face count failed: got %d want 6\n", c.NFaces())
	}

	// ghost cell (0,1,1): only its face shared with the centre cell is
	// physically stored, but its true geometric face count (propagated
	// from the source, not derivable from stored topology alone) is the
	// full hexahedron count of 6.
	ghost := 0 + 3*1 + 9*1
	gc, err := dst.CellByLabel(ghost)
	if err != nil {
		tst.Fatalf("unexpected error: %v\n", err)
	}
	if gc.StoredNFaces() >= 6 {
		tst.Errorf("ghost cell should not have its full topology stored, got %d stored faces\n", gc.StoredNFaces())
	}
	if gc.NFaces() != 6 {
		tst.Errorf("ghost cell geometric face count failed: got %d want 6\n", gc.NFaces())
	}

	shape, err := dst.BuildPolyhedron(0)
	if err != nil {
		tst.Errorf("build polyhedron failed: %v\n", err)
	} else if shape.Volume() <= 0 {
		tst.Errorf("expected positive volume, got %f\n", shape.Volume())
	}
}
