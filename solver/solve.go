// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/warwick-hpsc/CUP-CFD-sub002/comm"
)

// Solve runs the configured profile to completion. It is collective:
// every rank holding a share of A/X/B must call it. Reads A and B,
// writes X, and records a convergence reason (§4.7). The backend itself
// is out of scope (§1 Non-goals); both profiles here run a
// conjugate-gradient iteration, "CGAMG" preconditioned by a Jacobi sweep
// standing in for an algebraic-multigrid smoothing step, honoring the
// externally supplied rTol/eTol.
func (s *Solver) Solve() error {
	if !s.aSetup {
		return chk.Err("solver: matrix A is not set up\n")
	}
	if !s.xSetup || !s.bSetup {
		return chk.Err("solver: vector is not set up\n")
	}

	n := s.n
	bFull := comm.Gather(s.b[s.rowLo:s.rowHi], n, s.rowLo)
	xFull := comm.Gather(s.x[s.rowLo:s.rowHi], n, s.rowLo)
	diagFull := s.gatherDiag()

	r := make([]float64, n)
	ax := s.matVec(xFull)
	for i := range r {
		r[i] = bFull[i] - ax[i]
	}

	bNorm := math.Sqrt(s.dot(bFull, bFull))
	if bNorm == 0 {
		bNorm = 1
	}
	tol := s.cfg.RTol*bNorm + s.cfg.ETol

	z := s.precondition(r, diagFull)
	p := append([]float64(nil), z...)
	rz := s.dot(r, z)

	it := 0
	resNorm := math.Sqrt(s.dot(r, r))
	for ; it < s.cfg.MaxIterations && resNorm > tol; it++ {
		ap := s.matVec(p)
		pAp := s.dot(p, ap)
		if pAp == 0 {
			break
		}
		alpha := rz / pAp
		for i := range xFull {
			xFull[i] += alpha * p[i]
		}
		for i := range r {
			r[i] -= alpha * ap[i]
		}
		resNorm = math.Sqrt(s.dot(r, r))
		if resNorm <= tol {
			it++
			break
		}
		zNew := s.precondition(r, diagFull)
		rzNew := s.dot(r, zNew)
		beta := rzNew / rz
		for i := range p {
			p[i] = zNew[i] + beta*p[i]
		}
		z, rz = zNew, rzNew
	}

	s.iterations = it
	copy(s.x[s.rowLo:s.rowHi], xFull[s.rowLo:s.rowHi])

	if resNorm > tol {
		s.reason = "did not converge"
		return chk.Err("solver: external-solver failure: did not converge after %d iterations (residual=%g, tol=%g)\n", it, resNorm, tol)
	}
	s.reason = "converged"
	return nil
}

// dot computes a full dot product, collective: each rank sums over its
// own owned row range and the partial sums are all-reduced.
func (s *Solver) dot(a, b []float64) float64 {
	var local float64
	for i := s.rowLo; i < s.rowHi; i++ {
		local += a[i] * b[i]
	}
	dest := make([]float64, 1)
	comm.AllReduceSum(dest, []float64{local})
	return dest[0]
}

// matVec computes A*full for this rank's owned rows and assembles the
// full result vector across ranks.
func (s *Solver) matVec(full []float64) []float64 {
	partial := make([]float64, s.rowHi-s.rowLo)
	for r := s.rowLo; r < s.rowHi; r++ {
		var sum float64
		for _, c := range s.rowCols[r] {
			sum += s.a[[2]int{r, c}] * full[c]
		}
		partial[r-s.rowLo] = sum
	}
	return comm.Gather(partial, s.n, s.rowLo)
}

func (s *Solver) gatherDiag() []float64 {
	local := make([]float64, s.rowHi-s.rowLo)
	for r := s.rowLo; r < s.rowHi; r++ {
		local[r-s.rowLo] = s.a[[2]int{r, r}]
	}
	return comm.Gather(local, s.n, s.rowLo)
}

// precondition applies the profile's preconditioner to the residual.
func (s *Solver) precondition(r, diag []float64) []float64 {
	z := make([]float64, len(r))
	if s.cfg.Profile != ProfileCGAMG {
		copy(z, r)
		return z
	}
	for i, v := range r {
		d := diag[i]
		if math.Abs(d) <= s.cfg.AMGThreshold {
			z[i] = v
			continue
		}
		for step := 0; step < s.cfg.AMGSmoothingSteps; step++ {
			z[i] += (v - d*z[i]) / d
		}
	}
	return z
}
