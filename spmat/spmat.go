// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spmat implements sparse-matrix storage in two interchangeable
// variants, Coordinate (COO) and Compressed (CSR), both holding entries in
// strict row-major, column-secondary sorted order with overwrite-on-
// duplicate semantics.
package spmat

import "github.com/cpmech/gosl/chk"

// Matrix is the shared contract both variants satisfy.
type Matrix interface {
	SetElement(r, c int, v float64) error
	GetElement(r, c int) (float64, error)
	NNZ() int
	Dims() (m, n int)
	BaseIndex() int
	GetNonZeroRowIndexes() []int
	GetRowColumnIndexes(row int) ([]int, error)
	GetRowNNZValues(row int) ([]float64, error)
	Resize(m, n int) error
	Clear()
}

func checkShape(m, n int) error {
	if m < 1 || n < 1 {
		return chk.Err("spmat: shape must have m>=1 and n>=1, got m=%d n=%d\n", m, n)
	}
	return nil
}

func checkBounds(r, c, base, m, n int) error {
	if r < base || r >= base+m {
		return chk.Err("spmat: row %d out of bounds [%d, %d)\n", r, base, base+m)
	}
	if c < base || c >= base+n {
		return chk.Err("spmat: column %d out of bounds [%d, %d)\n", c, base, base+n)
	}
	return nil
}
