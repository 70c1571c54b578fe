// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the distributed solver bridge (C7): the
// contract by which a sparse matrix plus right-hand-side and solution
// vectors are transferred to an external iterative solver, with per-rank
// row ownership, solve, and retrieval. Generalizes
// github.com/cpmech/gosl/la.LinSol's InitR/Fact/SolveR/Clean binding (as
// used by fem/domain.go and fem/solver.go) into the reset/setup/
// setValues/getValues/solve contract, with two preconfigured profiles.
package solver

import "github.com/cpmech/gosl/chk"

// Profile names a preconfigured algorithmic profile.
type Profile string

const (
	// ProfileCommandLine runs unpreconditioned CG with the Config
	// tolerances; it reads no solver options from the host environment.
	ProfileCommandLine Profile = "CommandLine"
	// ProfileCGAMG runs CG preconditioned by Jacobi (diagonal) sweeps;
	// no algebraic-multigrid hierarchy is built.
	ProfileCGAMG Profile = "CGAMG"
)

// Config holds the tunables of a solver profile, mirroring
// inp/sim.go's LinSolData SetDefault/PostProcess pattern.
type Config struct {
	Profile           Profile
	RTol              float64 // relative tolerance
	ETol              float64 // absolute (error) tolerance
	AMGThreshold      float64 // rows with |diagonal| <= this are not scaled (CGAMG only)
	AMGSmoothingSteps int     // Jacobi sweeps per preconditioner application (CGAMG only)
	MaxIterations     int
}

// SetDefault fills unset fields with the profile's defaults.
func (c *Config) SetDefault() {
	if c.Profile == "" {
		c.Profile = ProfileCommandLine
	}
	if c.RTol == 0 {
		c.RTol = 1e-8
	}
	if c.ETol == 0 {
		c.ETol = 1e-12
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = 1000
	}
	if c.Profile == ProfileCGAMG {
		if c.AMGThreshold == 0 {
			c.AMGThreshold = 0.02
		}
		if c.AMGSmoothingSteps == 0 {
			c.AMGSmoothingSteps = 1
		}
	}
}

// PostProcess rejects an unrecognized profile name.
func (c *Config) PostProcess() error {
	switch c.Profile {
	case ProfileCommandLine, ProfileCGAMG:
		return nil
	default:
		return chk.Err("solver: unknown profile %q\n", c.Profile)
	}
}

// Solver is the external-solver bridge. One Solver instance binds to a
// single linear system A x = b, owned in row ranges across ranks.
type Solver struct {
	cfg Config

	n           int // global vector/matrix dimension
	base        int
	rowLo, rowHi int // this rank's owned row range [rowLo, rowHi)

	aSetup, xSetup, bSetup bool
	pattern                map[[2]int]bool    // non-zero structure fixed at setup
	a                      map[[2]int]float64 // values for owned rows only
	rowCols                map[int][]int      // owned row -> its non-zero columns
	x, b                   []float64          // length n, global-indexed

	reason     string
	iterations int
}

// New builds a solver bound to cfg (SetDefault is applied).
func New(cfg Config) *Solver {
	cfg.SetDefault()
	return &Solver{cfg: cfg}
}

// SetRowRange declares the row range [lo,hi) owned by this rank. Must be
// called before Setup/SetupMatrixA.
func (s *Solver) SetRowRange(lo, hi int) error {
	if hi < lo {
		return chk.Err("solver: invalid row range [%d,%d)\n", lo, hi)
	}
	s.rowLo, s.rowHi = lo, hi
	return nil
}

// Reset drops the matrix and both vectors, returning the solver to its
// pre-setup state.
func (s *Solver) Reset() error {
	s.ResetMatrixA()
	s.ResetVectorX()
	s.ResetVectorB()
	s.reason = ""
	s.iterations = 0
	return nil
}

// ResetMatrixA drops the matrix's structure and values.
func (s *Solver) ResetMatrixA() {
	s.aSetup = false
	s.pattern = nil
	s.a = nil
}

// ResetVectorX drops the solution vector.
func (s *Solver) ResetVectorX() {
	s.xSetup = false
	s.x = nil
}

// ResetVectorB drops the right-hand-side vector.
func (s *Solver) ResetVectorB() {
	s.bSetup = false
	s.b = nil
}

// ClearMatrixA zeroes every stored value without dropping the structure.
func (s *Solver) ClearMatrixA() error {
	if !s.aSetup {
		return chk.Err("solver: matrix A is not set up\n")
	}
	for k := range s.a {
		s.a[k] = 0
	}
	return nil
}

// ClearVectorX zeroes the solution vector.
func (s *Solver) ClearVectorX() error {
	if !s.xSetup {
		return chk.Err("solver: vector X is not set up\n")
	}
	for i := range s.x {
		s.x[i] = 0
	}
	return nil
}

// ClearVectorB zeroes the right-hand-side vector.
func (s *Solver) ClearVectorB() error {
	if !s.bSetup {
		return chk.Err("solver: vector B is not set up\n")
	}
	for i := range s.b {
		s.b[i] = 0
	}
	return nil
}

// Reason returns the human-readable convergence reason left by the last
// Solve call ("" before any solve has run).
func (s *Solver) Reason() string { return s.reason }

// Iterations returns the iteration count of the last Solve call.
func (s *Solver) Iterations() int { return s.iterations }

// Dims returns the global row/column dimension.
func (s *Solver) Dims() int { return s.n }
