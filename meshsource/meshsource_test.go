// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshsource

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
)

func Test_structuredGrid_counts01(tst *testing.T) {

	chk.PrintTitle("Test structuredGrid counts01")

	g, err := NewStructuredGrid(3, 3, 3, euclid.NewPoint3(0, 0, 0), 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v\n", err)
	}
	if g.CellCount() != 27 {
		tst.Errorf("cell count failed: got %d want 27\n", g.CellCount())
	}
	if g.VertexCount() != 64 {
		tst.Errorf("vertex count failed: got %d want 64\n", g.VertexCount())
	}
	if g.yzCount() != 36 || g.xzCount() != 36 || g.xyCount() != 36 {
		tst.Errorf("per-plane face counts failed: yz=%d xz=%d xy=%d\n", g.yzCount(), g.xzCount(), g.xyCount())
	}
	if g.FaceCount() != 108 {
		tst.Errorf("total face count failed: got %d want 108\n", g.FaceCount())
	}
	if g.BoundaryCount() != 54 {
		tst.Errorf("boundary count failed: got %d want 54\n", g.BoundaryCount())
	}
}

func Test_structuredGrid_cellFaces01(tst *testing.T) {

	chk.PrintTitle("Test structuredGrid cellFaces01")

	g, _ := NewStructuredGrid(1, 1, 1, euclid.NewPoint3(0, 0, 0), 1.0)
	faces, err := g.CellFaceLabels([]int{0})
	if err != nil || len(faces[0]) != 6 {
		tst.Errorf("unit cube cell should have 6 faces, got %v, %v\n", faces, err)
	}
	for _, fl := range faces[0] {
		fg, err := g.FaceGeometry([]int{fl})
		if err != nil || !fg[0].IsBoundary {
			tst.Errorf("every face of a 1x1x1 grid's single cell must be a boundary face\n")
		}
	}
	if g.BoundaryCount() != 6 {
		tst.Errorf("1x1x1 grid should have 6 boundaries, got %d\n", g.BoundaryCount())
	}
}

func Test_structuredGrid_unknownLabel01(tst *testing.T) {

	chk.PrintTitle("Test structuredGrid unknownLabel01")

	g, _ := NewStructuredGrid(1, 1, 1, euclid.NewPoint3(0, 0, 0), 1.0)
	if _, err := g.CellGeometry([]int{99}); err == nil {
		tst.Errorf("expected error for out-of-range cell label\n")
	}
}
