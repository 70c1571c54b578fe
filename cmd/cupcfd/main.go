// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cupcfd is the benchmark harness entry point: it wires the
// configuration surface, the command-line surface, the communicator,
// mesh ingestion, and the solver bridge the way main.go wires
// fem.Start/fem.Run.
package main

import (
	"os"

	"github.com/cpmech/gosl/utl"

	"github.com/warwick-hpsc/CUP-CFD-sub002/cliflags"
	"github.com/warwick-hpsc/CUP-CFD-sub002/comm"
	"github.com/warwick-hpsc/CUP-CFD-sub002/config"
	"github.com/warwick-hpsc/CUP-CFD-sub002/euclid"
	"github.com/warwick-hpsc/CUP-CFD-sub002/ingest"
	"github.com/warwick-hpsc/CUP-CFD-sub002/mesh"
	"github.com/warwick-hpsc/CUP-CFD-sub002/meshsource"
	"github.com/warwick-hpsc/CUP-CFD-sub002/solver"
)

func main() {

	// catch errors
	utl.Tsilent = false
	defer func() {
		if comm.Rank() == 0 {
			if err := recover(); err != nil {
				utl.PfRed("ERROR: %v\n", err)
			}
		}
		comm.Stop(false)
	}()
	comm.Start(false)

	// message
	utl.PfWhite("\nCUP-CFD-sub002 -- unstructured-mesh CFD preprocessing benchmark\n\n")

	// configuration filepath
	cli := cliflags.Parse(os.Args[1:])
	var cfgPath string
	if path, err := cli.String("config", 0); err == nil {
		cfgPath = path
	} else {
		utl.Panic("please provide -config <path-to-benchmark.json>\n")
		return
	}

	cfg, err := config.Read(cfgPath)
	if err != nil {
		utl.Panic("failed to read configuration: %v\n", err)
		return
	}
	utl.Pf("benchmark: %s (%d repetition(s), %s data distribution)\n",
		cfg.BenchmarkName, cfg.Repetitions, cfg.DataDistribution)

	if err := run(cfg); err != nil {
		utl.Panic("run failed: %v\n", err)
		return
	}
}

// run builds a structured-grid mesh source, assigns this rank's cell
// range, ingests it into a mesh, and prepares the solver bridge: it sets
// this rank's row range, sets up X and B sized to the grid's global cell
// count, and resets the solver. No matrix is assembled and Solve is not
// called. Real matrix assembly from mesh geometry is outside the
// abstract solver-bridge contract this benchmark exercises (§1
// Non-goals).
func run(cfg *config.Data) error {

	nx, ny, nz := 4, 4, 4
	src, err := meshsource.NewStructuredGrid(nx, ny, nz, euclid.NewPoint3(0, 0, 0), 1.0)
	if err != nil {
		return err
	}

	assigned := assignCellRange(src.CellCount(), comm.Rank(), comm.Size())

	dst := mesh.New()
	if err := ingest.Ingest(src, assigned, dst); err != nil {
		return err
	}
	utl.Pf("rank %d: %d local cells, %d ghost cells\n", comm.Rank(), dst.Properties().LocalCells, dst.Properties().GhostCells)

	profile := solver.Profile(cfg.LinearSolver.LinearSolverPETSc.Algorithm)
	s := solver.New(solver.Config{
		Profile: profile,
		RTol:    cfg.LinearSolver.LinearSolverPETSc.RTol,
		ETol:    cfg.LinearSolver.LinearSolverPETSc.ETol,
	})

	lo, hi := assigned[0], assigned[len(assigned)-1]+1
	if err := s.SetRowRange(lo, hi); err != nil {
		return err
	}
	if err := s.SetupVectorX(src.CellCount(), 0); err != nil {
		return err
	}
	if err := s.SetupVectorB(src.CellCount(), 0); err != nil {
		return err
	}
	return s.Reset()
}

func assignCellRange(total, rank, size int) []int {
	per := total / size
	lo := rank * per
	hi := lo + per
	if rank == size-1 {
		hi = total
	}
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}
