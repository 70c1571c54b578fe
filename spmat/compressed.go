// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spmat

import "github.com/cpmech/gosl/chk"

// Compressed is the CSR sparse-matrix variant: a row-pointer array plus
// column-index/value arrays, sharing the same sorted, overwrite-on-
// duplicate contract as Coordinate.
type Compressed struct {
	m, n   int
	base   int
	rowPtr []int
	colIdx []int
	vals   []float64
}

// NewCompressed builds an empty m-by-n compressed-row matrix.
func NewCompressed(m, n, baseIndex int) (*Compressed, error) {
	if err := checkShape(m, n); err != nil {
		return nil, err
	}
	return &Compressed{m: m, n: n, base: baseIndex, rowPtr: make([]int, m+1)}, nil
}

// Init matches the Coordinate/la.Triplet idiom.
func (c *Compressed) Init(m, n, baseIndex int) error {
	if err := checkShape(m, n); err != nil {
		return err
	}
	c.m, c.n, c.base = m, n, baseIndex
	c.rowPtr = make([]int, m+1)
	c.colIdx, c.vals = nil, nil
	return nil
}

func (c *Compressed) Dims() (m, n int) { return c.m, c.n }
func (c *Compressed) BaseIndex() int   { return c.base }
func (c *Compressed) NNZ() int         { return len(c.colIdx) }

func (c *Compressed) rowBounds(row int) (start, end int) {
	i := row - c.base
	return c.rowPtr[i], c.rowPtr[i+1]
}

func (c *Compressed) findSlot(r, col int) (idx int, found bool) {
	start, end := c.rowBounds(r)
	lo, hi := start, end
	for lo < hi {
		mid := (lo + hi) / 2
		if c.colIdx[mid] < col {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < end && c.colIdx[lo] == col {
		return lo, true
	}
	return lo, false
}

// SetElement inserts or overwrites the value at (r,c), shifting every
// row-pointer entry past r when a new column is inserted.
func (c *Compressed) SetElement(r, col int, v float64) error {
	if err := checkBounds(r, col, c.base, c.m, c.n); err != nil {
		return err
	}
	idx, found := c.findSlot(r, col)
	if found {
		c.vals[idx] = v
		return nil
	}
	c.colIdx = append(c.colIdx, 0)
	copy(c.colIdx[idx+1:], c.colIdx[idx:])
	c.colIdx[idx] = col

	c.vals = append(c.vals, 0)
	copy(c.vals[idx+1:], c.vals[idx:])
	c.vals[idx] = v

	ri := r - c.base
	for i := ri + 1; i <= c.m; i++ {
		c.rowPtr[i]++
	}
	return nil
}

// GetElement returns the stored value at (r,c), or 0 if never written.
func (c *Compressed) GetElement(r, col int) (float64, error) {
	if err := checkBounds(r, col, c.base, c.m, c.n); err != nil {
		return 0, err
	}
	if idx, found := c.findSlot(r, col); found {
		return c.vals[idx], nil
	}
	return 0, nil
}

// GetNonZeroRowIndexes returns the distinct, sorted row ids holding at
// least one stored entry.
func (c *Compressed) GetNonZeroRowIndexes() []int {
	var out []int
	for i := 0; i < c.m; i++ {
		if c.rowPtr[i+1] > c.rowPtr[i] {
			out = append(out, i+c.base)
		}
	}
	return out
}

// GetRowColumnIndexes returns the sorted column ids stored for row; it
// fails if the row holds no entries.
func (c *Compressed) GetRowColumnIndexes(row int) ([]int, error) {
	if row < c.base || row >= c.base+c.m {
		return nil, chk.Err("spmat: row %d out of bounds\n", row)
	}
	start, end := c.rowBounds(row)
	if start == end {
		return nil, chk.Err("spmat: row %d has no stored entries\n", row)
	}
	out := make([]int, end-start)
	copy(out, c.colIdx[start:end])
	return out, nil
}

// GetRowNNZValues returns the values stored for row, in column order; it
// fails if the row holds no entries.
func (c *Compressed) GetRowNNZValues(row int) ([]float64, error) {
	if row < c.base || row >= c.base+c.m {
		return nil, chk.Err("spmat: row %d out of bounds\n", row)
	}
	start, end := c.rowBounds(row)
	if start == end {
		return nil, chk.Err("spmat: row %d has no stored entries\n", row)
	}
	out := make([]float64, end-start)
	copy(out, c.vals[start:end])
	return out, nil
}

// Resize validates the new shape, clears all storage, and updates shape.
func (c *Compressed) Resize(m, n int) error {
	if err := checkShape(m, n); err != nil {
		return err
	}
	c.m, c.n = m, n
	c.rowPtr = make([]int, m+1)
	c.colIdx, c.vals = nil, nil
	return nil
}

// Clear drops all stored nnz, leaving shape and baseIndex untouched.
func (c *Compressed) Clear() {
	c.rowPtr = make([]int, c.m+1)
	c.colIdx, c.vals = nil, nil
}
