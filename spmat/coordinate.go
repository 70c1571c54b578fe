// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spmat

import "github.com/cpmech/gosl/chk"

// Coordinate is the COO sparse-matrix variant: three parallel slices
// (rows, cols, vals) kept sorted by (row,col). Unlike gosl/la.Triplet,
// which sums repeated Put calls at the same (row,col) at assembly time,
// Coordinate overwrites on duplicate insertion and never accumulates.
type Coordinate struct {
	m, n int
	base int
	rows []int
	cols []int
	vals []float64
}

// NewCoordinate builds an empty m-by-n coordinate matrix using baseIndex
// as the first valid row/column index (0 or 1, following the source
// mesh/matrix numbering convention).
func NewCoordinate(m, n, baseIndex int) (*Coordinate, error) {
	if err := checkShape(m, n); err != nil {
		return nil, err
	}
	return &Coordinate{m: m, n: n, base: baseIndex}, nil
}

// Init matches the teacher's la.Triplet.Init idiom: (re)initialise shape
// and drop all stored entries.
func (c *Coordinate) Init(m, n, baseIndex int) error {
	if err := checkShape(m, n); err != nil {
		return err
	}
	c.m, c.n, c.base = m, n, baseIndex
	c.rows, c.cols, c.vals = nil, nil, nil
	return nil
}

func (c *Coordinate) Dims() (m, n int) { return c.m, c.n }
func (c *Coordinate) BaseIndex() int   { return c.base }
func (c *Coordinate) NNZ() int         { return len(c.rows) }

// findSlot returns the index of (r,c) if present (found=true), else the
// sorted insertion index it would occupy.
func (c *Coordinate) findSlot(r, c_ int) (idx int, found bool) {
	lo, hi := 0, len(c.rows)
	for lo < hi {
		mid := (lo + hi) / 2
		if c.rows[mid] < r || (c.rows[mid] == r && c.cols[mid] < c_) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(c.rows) && c.rows[lo] == r && c.cols[lo] == c_ {
		return lo, true
	}
	return lo, false
}

// SetElement inserts or overwrites the value at (r,c). Overwriting an
// existing entry leaves nnz and ordering unchanged; inserting zero still
// creates a stored slot.
func (c *Coordinate) SetElement(r, col int, v float64) error {
	if err := checkBounds(r, col, c.base, c.m, c.n); err != nil {
		return err
	}
	idx, found := c.findSlot(r, col)
	if found {
		c.vals[idx] = v
		return nil
	}
	c.rows = append(c.rows, 0)
	copy(c.rows[idx+1:], c.rows[idx:])
	c.rows[idx] = r

	c.cols = append(c.cols, 0)
	copy(c.cols[idx+1:], c.cols[idx:])
	c.cols[idx] = col

	c.vals = append(c.vals, 0)
	copy(c.vals[idx+1:], c.vals[idx:])
	c.vals[idx] = v
	return nil
}

// GetElement returns the stored value at (r,c), or 0 if the slot was
// never written — a zero element is indistinguishable from an absent one.
func (c *Coordinate) GetElement(r, col int) (float64, error) {
	if err := checkBounds(r, col, c.base, c.m, c.n); err != nil {
		return 0, err
	}
	if idx, found := c.findSlot(r, col); found {
		return c.vals[idx], nil
	}
	return 0, nil
}

// GetNonZeroRowIndexes returns the distinct, sorted row ids that contain
// at least one stored entry.
func (c *Coordinate) GetNonZeroRowIndexes() []int {
	var out []int
	for i, r := range c.rows {
		if i == 0 || c.rows[i-1] != r {
			out = append(out, r)
		}
	}
	return out
}

// GetRowColumnIndexes returns the sorted column ids stored for row; it
// fails if the row holds no entries.
func (c *Coordinate) GetRowColumnIndexes(row int) ([]int, error) {
	var out []int
	for i, r := range c.rows {
		if r == row {
			out = append(out, c.cols[i])
		}
	}
	if len(out) == 0 {
		return nil, chk.Err("spmat: row %d has no stored entries\n", row)
	}
	return out, nil
}

// GetRowNNZValues returns the values stored for row, in column order; it
// fails if the row holds no entries.
func (c *Coordinate) GetRowNNZValues(row int) ([]float64, error) {
	var out []float64
	for i, r := range c.rows {
		if r == row {
			out = append(out, c.vals[i])
		}
	}
	if len(out) == 0 {
		return nil, chk.Err("spmat: row %d has no stored entries\n", row)
	}
	return out, nil
}

// Resize validates the new shape, clears all storage, and updates shape.
func (c *Coordinate) Resize(m, n int) error {
	if err := checkShape(m, n); err != nil {
		return err
	}
	c.m, c.n = m, n
	c.Clear()
	return nil
}

// Clear drops all stored nnz, leaving shape and baseIndex untouched.
func (c *Coordinate) Clear() {
	c.rows, c.cols, c.vals = nil, nil, nil
}

// ToCompressed converts the coordinate matrix into an equivalent
// row-compressed matrix, preserving sorted order and stored-zero slots.
func (c *Coordinate) ToCompressed() *Compressed {
	cs := &Compressed{m: c.m, n: c.n, base: c.base}
	cs.rowPtr = make([]int, c.m+1)
	cs.colIdx = append([]int(nil), c.cols...)
	cs.vals = append([]float64(nil), c.vals...)
	for _, r := range c.rows {
		cs.rowPtr[r-c.base+1]++
	}
	for i := 0; i < c.m; i++ {
		cs.rowPtr[i+1] += cs.rowPtr[i]
	}
	return cs
}
