// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/cpmech/gosl/chk"

	"github.com/warwick-hpsc/CUP-CFD-sub002/spmat"
)

// SetupVectorX allocates the solution vector (n entries, baseIndex base).
func (s *Solver) SetupVectorX(n, base int) error {
	if n < 1 {
		return chk.Err("solver: unset row size\n")
	}
	s.n, s.base = n, base
	s.x = make([]float64, n)
	s.xSetup = true
	return nil
}

// SetupVectorB allocates the right-hand-side vector (n entries, baseIndex
// base).
func (s *Solver) SetupVectorB(n, base int) error {
	if n < 1 {
		return chk.Err("solver: unset column size\n")
	}
	s.n, s.base = n, base
	s.b = make([]float64, n)
	s.bSetup = true
	return nil
}

// SetupMatrixA captures srcA's non-zero structure over this rank's owned
// row range and fixes it: every later SetValuesMatrixA call must present
// the same pattern.
func (s *Solver) SetupMatrixA(srcA spmat.Matrix) error {
	if s.rowHi <= s.rowLo {
		return chk.Err("solver: call SetRowRange before SetupMatrixA\n")
	}
	m, n := srcA.Dims()
	if m < 1 || n < 1 {
		return chk.Err("solver: unset row size\n")
	}
	s.n, s.base = n, srcA.BaseIndex()
	s.pattern = make(map[[2]int]bool)
	s.a = make(map[[2]int]float64)
	s.rowCols = make(map[int][]int)
	for _, r := range srcA.GetNonZeroRowIndexes() {
		if r < s.rowLo || r >= s.rowHi {
			continue
		}
		cols, err := srcA.GetRowColumnIndexes(r)
		if err != nil {
			return err
		}
		vals, err := srcA.GetRowNNZValues(r)
		if err != nil {
			return err
		}
		s.rowCols[r] = append([]int(nil), cols...)
		for i, c := range cols {
			key := [2]int{r, c}
			s.pattern[key] = true
			s.a[key] = vals[i]
		}
	}
	s.aSetup = true
	return nil
}

// Setup is the combined setupMatrixA + setupVectorX/B convenience.
func (s *Solver) Setup(srcA spmat.Matrix) error {
	if err := s.SetupMatrixA(srcA); err != nil {
		return err
	}
	if err := s.SetupVectorX(s.n, s.base); err != nil {
		return err
	}
	return s.SetupVectorB(s.n, s.base)
}

// SetValuesVectorXScalar fills every entry of X with v.
func (s *Solver) SetValuesVectorXScalar(v float64) error {
	if !s.xSetup {
		return chk.Err("solver: vector X is not set up\n")
	}
	for i := range s.x {
		s.x[i] = v
	}
	return nil
}

// SetValuesVectorBScalar fills every entry of B with v.
func (s *Solver) SetValuesVectorBScalar(v float64) error {
	if !s.bSetup {
		return chk.Err("solver: vector B is not set up\n")
	}
	for i := range s.b {
		s.b[i] = v
	}
	return nil
}

// SetValuesVectorX writes values[i] to X[indices[i]-base+s.base].
func (s *Solver) SetValuesVectorX(values []float64, indices []int, base int) error {
	if !s.xSetup {
		return chk.Err("solver: vector X is not set up\n")
	}
	return setIndexed(s.x, s.base, values, indices, base)
}

// SetValuesVectorB writes values[i] to B[indices[i]-base+s.base].
func (s *Solver) SetValuesVectorB(values []float64, indices []int, base int) error {
	if !s.bSetup {
		return chk.Err("solver: vector B is not set up\n")
	}
	return setIndexed(s.b, s.base, values, indices, base)
}

func setIndexed(dst []float64, dstBase int, values []float64, indices []int, base int) error {
	if len(values) != len(indices) {
		return chk.Err("solver: values/indices size mismatch: %d vs %d\n", len(values), len(indices))
	}
	for i, idx := range indices {
		p := idx - base + dstBase
		if p < dstBase || p >= dstBase+len(dst) {
			return chk.Err("solver: index %d out of bounds\n", idx)
		}
		dst[p-dstBase] = values[i]
	}
	return nil
}

// SetValuesMatrixA overwrites this rank's owned-row values from srcA.
// srcA must present exactly the pattern captured at setup time.
func (s *Solver) SetValuesMatrixA(srcA spmat.Matrix) error {
	if !s.aSetup {
		return chk.Err("solver: matrix A is not set up\n")
	}
	for _, r := range srcA.GetNonZeroRowIndexes() {
		if r < s.rowLo || r >= s.rowHi {
			continue
		}
		cols, err := srcA.GetRowColumnIndexes(r)
		if err != nil {
			return err
		}
		vals, err := srcA.GetRowNNZValues(r)
		if err != nil {
			return err
		}
		for i, c := range cols {
			key := [2]int{r, c}
			if !s.pattern[key] {
				return chk.Err("solver: setValuesMatrixA: (%d,%d) is outside the pattern fixed at setup\n", r, c)
			}
			s.a[key] = vals[i]
		}
	}
	return nil
}

// GetValuesVectorX returns the full current solution vector.
func (s *Solver) GetValuesVectorX() ([]float64, error) {
	if !s.xSetup {
		return nil, chk.Err("solver: vector X is not set up\n")
	}
	out := make([]float64, len(s.x))
	copy(out, s.x)
	return out, nil
}

// GetValuesVectorXAt returns X[indices[i]] for each requested index.
func (s *Solver) GetValuesVectorXAt(indices []int, base int) ([]float64, error) {
	if !s.xSetup {
		return nil, chk.Err("solver: vector X is not set up\n")
	}
	return getIndexed(s.x, s.base, indices, base)
}

// GetValuesVectorB returns the full current right-hand-side vector.
func (s *Solver) GetValuesVectorB() ([]float64, error) {
	if !s.bSetup {
		return nil, chk.Err("solver: vector B is not set up\n")
	}
	out := make([]float64, len(s.b))
	copy(out, s.b)
	return out, nil
}

// GetValuesVectorBAt returns B[indices[i]] for each requested index.
func (s *Solver) GetValuesVectorBAt(indices []int, base int) ([]float64, error) {
	if !s.bSetup {
		return nil, chk.Err("solver: vector B is not set up\n")
	}
	return getIndexed(s.b, s.base, indices, base)
}

func getIndexed(src []float64, srcBase int, indices []int, base int) ([]float64, error) {
	out := make([]float64, len(indices))
	for i, idx := range indices {
		p := idx - base + srcBase
		if p < srcBase || p >= srcBase+len(src) {
			return nil, chk.Err("solver: index %d out of bounds\n", idx)
		}
		out[i] = src[p-srcBase]
	}
	return out, nil
}

// GetValuesMatrixA writes this rank's owned-row values into dstA, which
// must already carry the same shape as the matrix given to setup.
func (s *Solver) GetValuesMatrixA(dstA spmat.Matrix) error {
	if !s.aSetup {
		return chk.Err("solver: matrix A is not set up\n")
	}
	for key, v := range s.a {
		if err := dstA.SetElement(key[0], key[1], v); err != nil {
			return err
		}
	}
	return nil
}
