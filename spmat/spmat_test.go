// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spmat

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_coordinate_insertOrder01(tst *testing.T) {

	chk.PrintTitle("Test coordinate insertOrder01")

	m, err := NewCoordinate(4, 4, 0)
	if err != nil {
		tst.Errorf("unexpected error: %v\n", err)
	}
	must := func(e error) {
		if e != nil {
			tst.Errorf("unexpected error: %v\n", e)
		}
	}
	must(m.SetElement(2, 1, 10))
	must(m.SetElement(0, 3, 20))
	must(m.SetElement(2, 1, 30))
	must(m.SetElement(1, 0, 40))

	if m.NNZ() != 3 {
		tst.Errorf("nnz failed: got %d want 3\n", m.NNZ())
	}

	expRows := []int{0, 1, 2}
	expCols := []int{3, 0, 1}
	expVals := []float64{20, 40, 30}
	for i := range m.rows {
		if m.rows[i] != expRows[i] || m.cols[i] != expCols[i] || m.vals[i] != expVals[i] {
			tst.Errorf("stored order mismatch at %d: got (%d,%d,%g) want (%d,%d,%g)\n",
				i, m.rows[i], m.cols[i], m.vals[i], expRows[i], expCols[i], expVals[i])
		}
	}

	v, err := m.GetElement(2, 1)
	if err != nil || v != 30 {
		tst.Errorf("getElement(2,1) failed: got %g, %v\n", v, err)
	}
}

func Test_coordinate_bounds01(tst *testing.T) {

	chk.PrintTitle("Test coordinate bounds01")

	m, _ := NewCoordinate(4, 4, 0)
	if err := m.SetElement(-1, 0, 1); err == nil {
		tst.Errorf("expected row-out-of-bounds error\n")
	}
	if err := m.SetElement(0, 0, 0); err != nil {
		tst.Errorf("unexpected error setting zero value: %v\n", err)
	}
	if m.NNZ() != 1 {
		tst.Errorf("zero-valued setElement should still create a stored slot\n")
	}
	v, err := m.GetElement(1, 1)
	if err != nil || v != 0 {
		tst.Errorf("unset element should read back as 0, got %g, %v\n", v, err)
	}
}

func Test_coordinate_resize01(tst *testing.T) {

	chk.PrintTitle("Test coordinate resize01")

	m, _ := NewCoordinate(3, 3, 0)
	m.SetElement(0, 0, 1)
	m.SetElement(1, 1, 2)
	if err := m.Resize(5, 5); err != nil {
		tst.Errorf("unexpected error: %v\n", err)
	}
	if len(m.GetNonZeroRowIndexes()) != 0 {
		tst.Errorf("resize should drop all stored entries\n")
	}
	if err := m.Resize(0, 5); err == nil {
		tst.Errorf("expected error resizing to m=0\n")
	}
}

func Test_coordinate_rowQueries01(tst *testing.T) {

	chk.PrintTitle("Test coordinate rowQueries01")

	m, _ := NewCoordinate(3, 3, 1) // base index 1
	m.SetElement(2, 1, 5)
	m.SetElement(2, 3, 6)
	m.SetElement(1, 1, 7)

	rows := m.GetNonZeroRowIndexes()
	if len(rows) != 2 || rows[0] != 1 || rows[1] != 2 {
		tst.Errorf("nonzero row indexes failed: got %v\n", rows)
	}
	cols, err := m.GetRowColumnIndexes(2)
	if err != nil || len(cols) != 2 || cols[0] != 1 || cols[1] != 3 {
		tst.Errorf("row column indexes failed: got %v, %v\n", cols, err)
	}
	vals, err := m.GetRowNNZValues(2)
	if err != nil || len(vals) != 2 || vals[0] != 5 || vals[1] != 6 {
		tst.Errorf("row nnz values failed: got %v, %v\n", vals, err)
	}
	if _, err := m.GetRowColumnIndexes(3); err == nil {
		tst.Errorf("expected error querying an empty row\n")
	}
}

func Test_compressed_matchesCoordinate01(tst *testing.T) {

	chk.PrintTitle("Test compressed matchesCoordinate01")

	co, _ := NewCoordinate(4, 4, 0)
	co.SetElement(2, 1, 10)
	co.SetElement(0, 3, 20)
	co.SetElement(2, 1, 30)
	co.SetElement(1, 0, 40)

	cs := co.ToCompressed()
	if cs.NNZ() != co.NNZ() {
		tst.Errorf("nnz mismatch: coo %d vs csr %d\n", co.NNZ(), cs.NNZ())
	}

	for _, row := range co.GetNonZeroRowIndexes() {
		coCols, _ := co.GetRowColumnIndexes(row)
		csCols, err := cs.GetRowColumnIndexes(row)
		if err != nil {
			tst.Errorf("csr row %d query failed: %v\n", row, err)
		}
		for i := range coCols {
			if coCols[i] != csCols[i] {
				tst.Errorf("column mismatch row %d idx %d: coo %d vs csr %d\n", row, i, coCols[i], csCols[i])
			}
		}
	}

	v, err := cs.GetElement(2, 1)
	if err != nil || v != 30 {
		tst.Errorf("csr getElement failed: got %g, %v\n", v, err)
	}
}

func Test_compressed_directInsert01(tst *testing.T) {

	chk.PrintTitle("Test compressed directInsert01")

	m, err := NewCompressed(3, 3, 0)
	if err != nil {
		tst.Errorf("unexpected error: %v\n", err)
	}
	m.SetElement(1, 2, 9)
	m.SetElement(1, 0, 8)
	m.SetElement(0, 0, 1)

	cols, err := m.GetRowColumnIndexes(1)
	if err != nil || len(cols) != 2 || cols[0] != 0 || cols[1] != 2 {
		tst.Errorf("row column indexes failed: got %v, %v\n", cols, err)
	}

	m.Clear()
	if m.NNZ() != 0 || len(m.GetNonZeroRowIndexes()) != 0 {
		tst.Errorf("clear should drop all entries\n")
	}
}
